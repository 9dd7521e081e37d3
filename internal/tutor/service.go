package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/vidya/internal/llm"
)

// ExplanationInput describes one answered question.
type ExplanationInput struct {
	Topic          string
	QuestionID     string
	QuestionText   string
	SelectedOption string
	Correct        bool
}

// Explanation is a generated tutor explanation for one question.
type Explanation struct {
	QuestionID string
	Text       string
}

// Service generates answer explanations asynchronously. Only one
// explanation is in-flight at a time; new requests replace pending ones.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu       sync.Mutex
	pending  *Explanation
	err      error
	failedID string
	ready    bool
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestExplanation starts async explanation generation for an answered
// question.
func (s *Service) RequestExplanation(ctx context.Context, input ExplanationInput) {
	go func() {
		expl, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = expl
		s.err = err
		s.failedID = ""
		if err != nil {
			s.failedID = input.QuestionID
		}
		s.ready = true
	}()
}

// Consume returns the outcome of the pending request if one is ready
// for the given question. The second return reports a terminal outcome:
// true with a non-nil explanation is success, true with nil means
// generation failed and the caller should fall back to canned text.
// Results generated for a different question are discarded without
// ending the wait: the learner has already moved on, so a late
// explanation must never surface against the wrong question. The
// pending slot is cleared on every call that finds one.
func (s *Service) Consume(questionID string) (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	expl := s.pending
	err := s.err
	failedID := s.failedID
	s.pending = nil
	s.ready = false
	s.err = nil
	s.failedID = ""

	if err != nil {
		// A failure for another question says nothing about this one.
		return nil, failedID == questionID
	}
	if expl == nil || expl.QuestionID != questionID {
		return nil, false
	}
	return expl, true
}

// Fallback returns a canned explanation used when no provider is
// reachable.
func Fallback(correct bool) string {
	if correct {
		return "Well done! You picked the right answer."
	}
	return "Not quite. Read the question once more and try the next one."
}

type explanationOutput struct {
	Explanation string `json:"explanation"`
}

func (s *Service) generate(ctx context.Context, input ExplanationInput) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	req := llm.Request{
		System: explanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplanationUserMessage(input, s.cfg.SimpleLanguage)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		QuestionID: input.QuestionID,
		Text:       out.Explanation,
	}, nil
}
