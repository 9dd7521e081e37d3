package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vidya/internal/content"
	"github.com/abhisek/vidya/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, led, err := openLedger(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profile, err := led.Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if profile == nil {
			fmt.Println("No progress yet. Run `vidya study` to get started.")
			return nil
		}

		sep := strings.Repeat("─", 48)

		fmt.Println(sep)
		if profile.Name != "" {
			fmt.Printf("Learner:     %s (grade %s)\n", profile.Name, profile.Grade)
		}
		fmt.Printf("Level:       %d\n", progression.Level(profile.XP))
		fmt.Printf("XP:          %d (%d to next level)\n",
			profile.XP, progression.XPPerLevel-profile.XP%progression.XPPerLevel)
		fmt.Printf("Streak:      %d day(s)\n", profile.StreakCount)
		fmt.Printf("Difficulty:  %s\n", profile.PreferredDifficulty)
		fmt.Printf("Pending sync: %d change(s) not yet synced\n", profile.PendingSyncCount)
		fmt.Println(sep)

		if len(profile.Badges) > 0 {
			fmt.Println("Badges")
			for _, b := range profile.Badges {
				fmt.Println("  ★", b)
			}
			fmt.Println(sep)
		}

		if len(profile.BestScores) > 0 {
			fmt.Println("Best Scores")
			for _, mod := range content.Catalog() {
				score, ok := profile.BestScores[mod.ID]
				if !ok {
					continue
				}
				done := " "
				if profile.HasCompleted(mod.ID) {
					done = "✓"
				}
				fmt.Printf("  %s %-28s %d\n", done, mod.Title, score)
			}
			fmt.Println(sep)
		}

		return nil
	},
}
