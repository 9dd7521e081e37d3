package tutor

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/vidya/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{"explanation":"Think of it like sharing 8 mangoes between 2 friends: each one gets 4."}`)
}

func testInput() ExplanationInput {
	return ExplanationInput{
		Topic:          "Basic Arithmetic",
		QuestionID:     "q-1",
		QuestionText:   "What is 8 / 2?",
		SelectedOption: "4",
		Correct:        true,
	}
}

// waitForOutcome polls Consume until a terminal outcome arrives. The
// explanation is nil when generation failed.
func waitForOutcome(t *testing.T, svc *Service, questionID string) (*Explanation, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if expl, done := svc.Consume(questionID); done {
			return expl, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validExplanationJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	expl, ok := waitForOutcome(t, svc, "q-1")
	if !ok || expl == nil {
		t.Fatal("expected explanation to be generated")
	}
	if expl.QuestionID != "q-1" {
		t.Errorf("expected question id 'q-1', got %q", expl.QuestionID)
	}
	if expl.Text == "" {
		t.Error("expected non-empty explanation text")
	}
}

func TestService_ConsumeClearsResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validExplanationJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	if _, ok := waitForOutcome(t, svc, "q-1"); !ok {
		t.Fatal("expected explanation to be generated")
	}

	if _, done := svc.Consume("q-1"); done {
		t.Error("expected second Consume to report nothing ready")
	}
}

func TestService_StaleResultDiscarded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validExplanationJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	// Wait until the result is ready, then consume for a different
	// question. The q-1 result must be dropped, not surfaced later.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, ok := svc.Consume("q-2"); ok {
		t.Fatal("expected stale result to be discarded")
	}
	if _, ok := svc.Consume("q-1"); ok {
		t.Fatal("expected discarded result to stay gone")
	}
}

func TestService_LLMErrorReportsFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	// The failure must surface as a terminal outcome, not leave the
	// caller polling forever.
	expl, done := waitForOutcome(t, svc, "q-1")
	if !done {
		t.Fatal("expected provider failure to be reported")
	}
	if expl != nil {
		t.Errorf("expected nil explanation on provider error, got %+v", expl)
	}

	if _, done := svc.Consume("q-1"); done {
		t.Error("expected failure to be consumed")
	}
}

func TestService_MalformedResponseReportsFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	expl, done := waitForOutcome(t, svc, "q-1")
	if !done {
		t.Fatal("expected malformed response to be reported")
	}
	if expl != nil {
		t.Errorf("expected nil explanation on malformed response, got %+v", expl)
	}
}

func TestService_FailureForOtherQuestionKeepsWaiting(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	// A stale failure must not end the wait for the current question.
	if _, done := svc.Consume("q-2"); done {
		t.Fatal("expected failure for another question to be discarded")
	}
}

func TestFallback(t *testing.T) {
	if Fallback(true) == "" || Fallback(false) == "" {
		t.Fatal("expected non-empty fallback text")
	}
	if Fallback(true) == Fallback(false) {
		t.Error("expected distinct fallback text for correct and incorrect")
	}
}
