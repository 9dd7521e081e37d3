package cmd

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/content"
	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/learner"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/screens/quiz"
	"github.com/abhisek/vidya/internal/screens/read"
	"github.com/abhisek/vidya/internal/speech"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/streak"
	"github.com/abhisek/vidya/internal/tutor"
)

// openLedger opens the store and returns the ledger for the selected
// profile. The caller owns closing the store.
func openLedger(cmd *cobra.Command) (*store.Store, *ledger.Ledger, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, ledger.New(st.Profiles(), profileKey(cmd)), nil
}

// loadProfile loads or creates the learner profile and records today's
// activity in the streak before any session starts.
func loadProfile(cmd *cobra.Command, led *ledger.Ledger) (*learner.Profile, error) {
	ctx := cmd.Context()
	name, _ := cmd.Flags().GetString("name")
	grade, _ := cmd.Flags().GetString("grade")

	profile, err := led.LoadOrCreate(ctx, name, grade)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	// Commit only when the day rolled over; same-day re-entry is not a
	// new pending change.
	before := profile.LastActiveDate
	streak.Update(profile, time.Now())
	if profile.LastActiveDate != before {
		if err := led.Commit(ctx, profile); err != nil {
			return nil, fmt.Errorf("save streak: %w", err)
		}
	}
	return profile, nil
}

// runStudy opens the store, builds dependencies, and launches the quiz TUI.
func runStudy(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, led, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := loadProfile(cmd, led)
	if err != nil {
		return err
	}

	// Tutor is optional — quizzes work offline with canned feedback.
	var tut *tutor.Service
	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI explanations will be unavailable.")
	} else {
		cfg := tutor.DefaultConfig()
		cfg.SimpleLanguage = profile.Language == "basic"
		tut = tutor.NewService(provider, cfg)
	}

	modules := content.ForGrade(profile.Grade)
	_, err = tea.NewProgram(quiz.New(profile, led, tut, modules)).Run()
	return err
}

// runRead launches the read-aloud TUI.
func runRead(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, led, err := openLedger(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := loadProfile(cmd, led)
	if err != nil {
		return err
	}

	// Recognizer is optional — without it the learner types (or skips)
	// the transcript.
	var rec speech.Recognizer
	audioPath, _ := cmd.Flags().GetString("audio")
	if key := os.Getenv("VIDYA_GEMINI_API_KEY"); key != "" && audioPath != "" {
		r, err := speech.NewGeminiRecognizer(ctx, key, os.Getenv("VIDYA_GEMINI_MODEL"))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Speech recognition unavailable:", err)
		} else {
			rec = r
		}
	}

	modules := content.ForGrade(profile.Grade)
	_, err = tea.NewProgram(read.New(profile, led, rec, audioPath, modules)).Run()
	return err
}
