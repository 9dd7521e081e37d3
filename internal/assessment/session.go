package assessment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/vidya/internal/content"
	"github.com/abhisek/vidya/internal/tutor"
)

// PointsPerQuestion is the score awarded for each correct answer.
const PointsPerQuestion = 10

// Phase is the quiz session lifecycle state.
type Phase string

const (
	// PhaseSelecting is the pre-session state while a module is picked.
	PhaseSelecting Phase = "selecting"
	// PhaseInProgress means the current question awaits an answer.
	PhaseInProgress Phase = "in_progress"
	// PhaseAwaitingFeedback means an answer was submitted and its
	// feedback is on screen; the session waits for an explicit advance.
	PhaseAwaitingFeedback Phase = "awaiting_feedback"
	// PhaseCompleted means every question has been answered.
	PhaseCompleted Phase = "completed"
)

var (
	ErrNoQuestions         = errors.New("module has no questions")
	ErrInvalidOption       = errors.New("option index out of range")
	ErrDuplicateSubmission = errors.New("answer already submitted for this question")
	ErrNotAwaitingFeedback = errors.New("no feedback to advance past")
	ErrSessionCompleted    = errors.New("session already completed")
)

// Answer records one submitted answer.
type Answer struct {
	QuestionID string
	Selected   int
	Correct    bool
}

// Feedback is the immediate result of one submitted answer.
type Feedback struct {
	Correct      bool
	CorrectIndex int
}

// Result summarizes a completed session.
type Result struct {
	ModuleID string
	Score    int
	MaxScore int
}

// MasteryRatio is the fraction of available points earned, in [0,1].
func (r Result) MasteryRatio() float64 {
	if r.MaxScore == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.MaxScore)
}

// Session is a single quiz run through one module at one difficulty
// tier. It is a strict state machine: answers are only accepted in
// PhaseInProgress, and each question takes exactly one answer.
type Session struct {
	ID          string
	ModuleID    string
	ModuleTitle string
	Tier        content.Tier
	Questions   []content.Question

	Index   int
	Score   int
	Phase   Phase
	Answers []Answer

	tutor *tutor.Service
}

// Start begins a session over the module's questions for the given
// tier. The tutor service is optional; when nil, no explanations are
// requested.
func Start(m content.Module, tier content.Tier, tut *tutor.Service) (*Session, error) {
	questions := content.QuestionsForTier(m, tier)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	return &Session{
		ID:          uuid.NewString(),
		ModuleID:    m.ID,
		ModuleTitle: m.Title,
		Tier:        tier,
		Questions:   questions,
		Phase:       PhaseInProgress,
		tutor:       tut,
	}, nil
}

// Current returns the question awaiting an answer or feedback.
func (s *Session) Current() content.Question {
	return s.Questions[s.Index]
}

// SubmitAnswer scores the selected option for the current question and
// moves the session to PhaseAwaitingFeedback. A second submission for
// the same question is rejected, so the score can only be affected once
// per question.
func (s *Session) SubmitAnswer(ctx context.Context, option int) (Feedback, error) {
	switch s.Phase {
	case PhaseAwaitingFeedback:
		return Feedback{}, ErrDuplicateSubmission
	case PhaseCompleted:
		return Feedback{}, ErrSessionCompleted
	case PhaseInProgress:
	default:
		return Feedback{}, ErrNotAwaitingFeedback
	}

	q := s.Current()
	if option < 0 || option >= len(q.Options) {
		return Feedback{}, ErrInvalidOption
	}

	correct := option == q.CorrectIndex
	if correct {
		s.Score += PointsPerQuestion
	}

	s.Answers = append(s.Answers, Answer{
		QuestionID: q.ID,
		Selected:   option,
		Correct:    correct,
	})
	s.Phase = PhaseAwaitingFeedback

	if s.tutor != nil {
		s.tutor.RequestExplanation(ctx, tutor.ExplanationInput{
			Topic:          s.ModuleTitle,
			QuestionID:     q.ID,
			QuestionText:   q.Text,
			SelectedOption: q.Options[option],
			Correct:        correct,
		})
	}

	return Feedback{Correct: correct, CorrectIndex: q.CorrectIndex}, nil
}

// Explanation returns the tutor outcome for the current question once
// one has arrived: a non-nil explanation on success, nil with true when
// generation failed and canned feedback should be shown instead.
// Explanations generated for earlier questions are discarded.
func (s *Session) Explanation() (*tutor.Explanation, bool) {
	if s.tutor == nil || s.Phase == PhaseCompleted {
		return nil, false
	}
	return s.tutor.Consume(s.Current().ID)
}

// Advance moves past the feedback for the current question. On the last
// question it completes the session and returns its Result; otherwise
// it returns nil and the next question becomes current.
func (s *Session) Advance() (*Result, error) {
	if s.Phase != PhaseAwaitingFeedback {
		return nil, ErrNotAwaitingFeedback
	}

	if s.Index+1 >= len(s.Questions) {
		s.Phase = PhaseCompleted
		return &Result{
			ModuleID: s.ModuleID,
			Score:    s.Score,
			MaxScore: len(s.Questions) * PointsPerQuestion,
		}, nil
	}

	s.Index++
	s.Phase = PhaseInProgress
	return nil, nil
}
