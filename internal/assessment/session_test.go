package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/vidya/internal/content"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/tutor"
)

func testModule() content.Module {
	return content.Module{
		ID:    "test-mod",
		Title: "Test Module",
		Questions: []content.Question{
			{ID: "q1", Text: "2 + 2?", Options: []string{"3", "4", "5"}, CorrectIndex: 1, Tier: content.TierStandard},
			{ID: "q2", Text: "3 * 3?", Options: []string{"6", "9"}, CorrectIndex: 1, Tier: content.TierStandard},
			{ID: "q3", Text: "10 - 4?", Options: []string{"6", "5"}, CorrectIndex: 0, Tier: content.TierStandard},
		},
	}
}

func TestStart_EmptyModule(t *testing.T) {
	_, err := Start(content.Module{ID: "empty"}, content.TierStandard, nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestStart_InitialState(t *testing.T) {
	s, err := Start(testModule(), content.TierStandard, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID == "" {
		t.Error("expected non-empty session id")
	}
	if s.Phase != PhaseInProgress {
		t.Errorf("expected PhaseInProgress, got %q", s.Phase)
	}
	if s.Score != 0 {
		t.Errorf("expected zero score, got %d", s.Score)
	}
	if s.Current().ID != "q1" {
		t.Errorf("expected first question current, got %q", s.Current().ID)
	}
}

func TestSubmitAnswer_CorrectScoresPoints(t *testing.T) {
	s, _ := Start(testModule(), content.TierStandard, nil)

	fb, err := s.SubmitAnswer(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fb.Correct {
		t.Error("expected correct feedback")
	}
	if fb.CorrectIndex != 1 {
		t.Errorf("expected correct index 1, got %d", fb.CorrectIndex)
	}
	if s.Score != PointsPerQuestion {
		t.Errorf("expected score %d, got %d", PointsPerQuestion, s.Score)
	}
	if s.Phase != PhaseAwaitingFeedback {
		t.Errorf("expected PhaseAwaitingFeedback, got %q", s.Phase)
	}
}

func TestSubmitAnswer_IncorrectKeepsScore(t *testing.T) {
	s, _ := Start(testModule(), content.TierStandard, nil)

	fb, err := s.SubmitAnswer(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Correct {
		t.Error("expected incorrect feedback")
	}
	if s.Score != 0 {
		t.Errorf("expected zero score, got %d", s.Score)
	}
}

func TestSubmitAnswer_DuplicateRejected(t *testing.T) {
	s, _ := Start(testModule(), content.TierStandard, nil)

	if _, err := s.SubmitAnswer(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := s.SubmitAnswer(context.Background(), 1)
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
	if s.Score != 0 {
		t.Errorf("duplicate submission must not change score, got %d", s.Score)
	}
}

func TestSubmitAnswer_InvalidOption(t *testing.T) {
	s, _ := Start(testModule(), content.TierStandard, nil)

	for _, idx := range []int{-1, 3, 99} {
		_, err := s.SubmitAnswer(context.Background(), idx)
		if !errors.Is(err, ErrInvalidOption) {
			t.Fatalf("index %d: expected ErrInvalidOption, got %v", idx, err)
		}
	}
	if s.Phase != PhaseInProgress {
		t.Errorf("invalid option must not change phase, got %q", s.Phase)
	}
}

func TestAdvance_RequiresFeedback(t *testing.T) {
	s, _ := Start(testModule(), content.TierStandard, nil)

	_, err := s.Advance()
	if !errors.Is(err, ErrNotAwaitingFeedback) {
		t.Fatalf("expected ErrNotAwaitingFeedback, got %v", err)
	}
}

func TestSession_FullRun(t *testing.T) {
	s, _ := Start(testModule(), content.TierStandard, nil)
	ctx := context.Background()

	// q1 correct, q2 wrong, q3 correct.
	answers := []int{1, 0, 0}
	var result *Result
	for i, a := range answers {
		if _, err := s.SubmitAnswer(ctx, a); err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		r, err := s.Advance()
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		result = r
	}

	if result == nil {
		t.Fatal("expected result after last question")
	}
	if s.Phase != PhaseCompleted {
		t.Errorf("expected PhaseCompleted, got %q", s.Phase)
	}
	if result.Score != 2*PointsPerQuestion {
		t.Errorf("expected score %d, got %d", 2*PointsPerQuestion, result.Score)
	}
	if result.MaxScore != 3*PointsPerQuestion {
		t.Errorf("expected max score %d, got %d", 3*PointsPerQuestion, result.MaxScore)
	}

	want := 2.0 / 3.0
	if got := result.MasteryRatio(); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("expected mastery ratio %.4f, got %.4f", want, got)
	}

	if len(s.Answers) != 3 {
		t.Fatalf("expected 3 recorded answers, got %d", len(s.Answers))
	}
	if !s.Answers[0].Correct || s.Answers[1].Correct || !s.Answers[2].Correct {
		t.Errorf("unexpected answer record: %+v", s.Answers)
	}
}

func TestSession_CompletedRejectsSubmission(t *testing.T) {
	m := testModule()
	m.Questions = m.Questions[:1]
	s, _ := Start(m, content.TierStandard, nil)
	ctx := context.Background()

	if _, err := s.SubmitAnswer(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.SubmitAnswer(ctx, 1)
	if !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("expected ErrSessionCompleted, got %v", err)
	}
}

func TestResult_MasteryRatioBounds(t *testing.T) {
	zero := Result{ModuleID: "m", Score: 0, MaxScore: 0}
	if got := zero.MasteryRatio(); got != 0 {
		t.Errorf("expected 0 for empty result, got %.4f", got)
	}

	full := Result{ModuleID: "m", Score: 40, MaxScore: 40}
	if got := full.MasteryRatio(); got != 1 {
		t.Errorf("expected 1 for perfect result, got %.4f", got)
	}
}

func TestSession_TierFallback(t *testing.T) {
	// testModule has only standard questions; an expert session still
	// gets the full set.
	s, err := Start(testModule(), content.TierExpert, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Questions) != 3 {
		t.Fatalf("expected 3 questions via fallback, got %d", len(s.Questions))
	}
}

func TestSession_RequestsExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"Two pairs of two make four, like two pairs of bullocks."}`),
	})
	tut := tutor.NewService(mock, tutor.DefaultConfig())

	s, _ := Start(testModule(), content.TierStandard, tut)

	if _, err := s.SubmitAnswer(t.Context(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var expl *tutor.Explanation
	var ok bool
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		expl, ok = s.Explanation()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !ok || expl == nil {
		t.Fatal("expected explanation for submitted answer")
	}
	if expl.QuestionID != "q1" {
		t.Errorf("expected explanation for q1, got %q", expl.QuestionID)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}
