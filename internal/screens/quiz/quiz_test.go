package quiz

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vidya/internal/assessment"
	"github.com/abhisek/vidya/internal/content"
	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/learner"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/store"
	"github.com/abhisek/vidya/internal/tutor"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testModules() []content.Module {
	return []content.Module{{
		ID:       "mod-1",
		Title:    "Test Module",
		Subject:  "Math",
		Content:  []string{"Numbers help us count and share."},
		XPReward: 100,
		Questions: []content.Question{
			{ID: "q1", Text: "2 + 2?", Options: []string{"3", "4"}, CorrectIndex: 1, Tier: content.TierStandard},
			{ID: "q2", Text: "3 * 3?", Options: []string{"9", "6"}, CorrectIndex: 0, Tier: content.TierStandard},
		},
	}}
}

func testQuizModel(t *testing.T) Model {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	led := ledger.New(s.Profiles(), "local")
	profile := learner.New("Asha", "5")
	return New(profile, led, nil, testModules())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	qm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return qm, cmd
}

// startQuiz drives selection and the content page up to the first question.
func startQuiz(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, specialKey(tea.KeyEnter)) // select module
	m, _ = update(t, m, specialKey(tea.KeyEnter)) // done reading
	return m
}

func TestQuiz_SelectShowsContent(t *testing.T) {
	m := testQuizModel(t)

	m, _ = update(t, m, specialKey(tea.KeyEnter))

	if !m.reviewing {
		t.Fatal("expected content page after selection")
	}
	if m.session != nil {
		t.Fatal("expected no session while reading content")
	}
	if m.active.ID != "mod-1" {
		t.Errorf("active module = %q, want mod-1", m.active.ID)
	}
}

func TestQuiz_StartsSessionAfterContent(t *testing.T) {
	m := startQuiz(t, testQuizModel(t))

	if m.session == nil {
		t.Fatal("expected session after content page")
	}
	if m.reviewing {
		t.Error("expected content page dismissed")
	}
	if m.session.Phase != assessment.PhaseInProgress {
		t.Errorf("expected PhaseInProgress, got %q", m.session.Phase)
	}
}

func TestQuiz_AnswerShowsFeedback(t *testing.T) {
	m := startQuiz(t, testQuizModel(t))

	// Move to option B (correct) and answer.
	m, _ = update(t, m, specialKey(tea.KeyDown))
	m, _ = update(t, m, specialKey(tea.KeyEnter))

	if m.feedback == nil {
		t.Fatal("expected feedback after answering")
	}
	if !m.feedback.Correct {
		t.Error("expected correct feedback")
	}
	if m.session.Phase != assessment.PhaseAwaitingFeedback {
		t.Errorf("expected PhaseAwaitingFeedback, got %q", m.session.Phase)
	}
	// Without a tutor configured the canned text shows immediately.
	if m.explanation == "" {
		t.Error("expected fallback explanation")
	}
}

func TestQuiz_AdvanceMovesToNextQuestion(t *testing.T) {
	m := startQuiz(t, testQuizModel(t))

	m, _ = update(t, m, specialKey(tea.KeyDown))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, specialKey(tea.KeyEnter))

	if m.session.Index != 1 {
		t.Errorf("expected second question, got index %d", m.session.Index)
	}
	if m.feedback != nil {
		t.Error("expected feedback cleared")
	}
	if m.choice.Submitted {
		t.Error("expected fresh choice component")
	}
}

func TestQuiz_CompletionRecordsProgress(t *testing.T) {
	m := startQuiz(t, testQuizModel(t))

	// q1: pick B (correct).
	m, _ = update(t, m, specialKey(tea.KeyDown))
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	m, _ = update(t, m, specialKey(tea.KeyEnter))

	// q2: pick A (correct).
	m, cmd := update(t, m, specialKey(tea.KeyEnter))
	m, cmd = update(t, m, specialKey(tea.KeyEnter))

	if m.session.Phase != assessment.PhaseCompleted {
		t.Fatalf("expected PhaseCompleted, got %q", m.session.Phase)
	}
	if m.result == nil || m.result.Score != 2*assessment.PointsPerQuestion {
		t.Fatalf("unexpected result: %+v", m.result)
	}
	if m.outcome == nil {
		t.Fatal("expected progression outcome")
	}
	if m.outcome.XPGained != 100 {
		t.Errorf("expected 100 XP, got %d", m.outcome.XPGained)
	}
	if m.profile.XP != 100 {
		t.Errorf("expected profile XP 100, got %d", m.profile.XP)
	}
	if !m.profile.HasCompleted("mod-1") {
		t.Error("expected module marked completed")
	}

	// Run the commit command and confirm persistence.
	if cmd == nil {
		t.Fatal("expected commit command on completion")
	}
	if msg, ok := cmd().(savedMsg); !ok || msg.Err != nil {
		t.Fatalf("unexpected commit result: %+v", msg)
	}

	saved, err := m.ledger.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if saved == nil || saved.XP != 100 {
		t.Fatalf("expected persisted XP 100, got %+v", saved)
	}
}

func TestQuiz_ProviderFailureShowsFallback(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	tut := tutor.NewService(mock, tutor.DefaultConfig())

	led := ledger.New(s.Profiles(), "local")
	profile := learner.New("Asha", "5")
	m := startQuiz(t, New(profile, led, tut, testModules()))

	// Answer A (wrong) with the tutor configured.
	m, _ = update(t, m, specialKey(tea.KeyEnter))
	if !m.aiThinking {
		t.Fatal("expected explanation request in flight")
	}

	// The failed request must degrade to the canned text, not keep
	// the screen on "Thinking..." until the learner gives up.
	deadline := time.Now().Add(5 * time.Second)
	for m.aiThinking {
		if time.Now().After(deadline) {
			t.Fatal("fallback never shown after provider failure")
		}
		time.Sleep(10 * time.Millisecond)
		m, _ = update(t, m, explanationTickMsg(time.Now()))
	}

	if m.explanation != tutor.Fallback(false) {
		t.Errorf("explanation = %q, want canned fallback", m.explanation)
	}
}

func TestQuiz_ViewRendersEachPhase(t *testing.T) {
	m := testQuizModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if m.renderSelection() == "" {
		t.Error("expected non-empty selection view")
	}

	m, _ = update(t, m, specialKey(tea.KeyEnter))
	if m.renderContent() == "" {
		t.Error("expected non-empty content view")
	}

	m, _ = update(t, m, specialKey(tea.KeyEnter))
	if m.renderQuestion() == "" {
		t.Error("expected non-empty question view")
	}

	m, _ = update(t, m, specialKey(tea.KeyEnter)) // answer A (wrong)
	if m.renderQuestion() == "" {
		t.Error("expected non-empty feedback view")
	}
	if m.title() != "Test Module" {
		t.Errorf("title = %q, want module title", m.title())
	}
}
