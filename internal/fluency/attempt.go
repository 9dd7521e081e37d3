// Package fluency scores timed spoken-reading attempts.
package fluency

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attempt is one timed read-aloud pass over a passage. Transient: it is
// converted into a Result on completion and never persisted.
type Attempt struct {
	ID          string
	Passage     []string
	TargetWords []string
	Allotted    time.Duration
	Remaining   time.Duration

	finished bool
}

// Result is the scored outcome of a completed attempt.
type Result struct {
	AttemptID       string
	WordsPerMinute  int
	AccuracyPercent float64
	Elapsed         time.Duration
	Transcript      string

	// Measured is false when no transcript was available and the
	// accuracy is the offline baseline.
	Measured bool
}

// NewAttempt starts an attempt over the passage with the given time
// allotment. The countdown is cooperative: the caller feeds Tick.
func NewAttempt(passage []string, allotted time.Duration) *Attempt {
	return &Attempt{
		ID:          uuid.NewString(),
		Passage:     passage,
		TargetWords: NormalizeWords(passage),
		Allotted:    allotted,
		Remaining:   allotted,
	}
}

// Tick reduces the remaining time. It returns true when the allotment is
// exhausted, at which point the caller must finish the attempt exactly
// as if the learner had stopped manually.
func (a *Attempt) Tick(d time.Duration) bool {
	if a.finished {
		return false
	}
	a.Remaining -= d
	if a.Remaining <= 0 {
		a.Remaining = 0
		return true
	}
	return false
}

// Finish scores the attempt. The transcript may be empty (recognizer
// unavailable or offline); accuracy then falls back to the baseline.
// Finishing twice returns the same inputs scored again, but callers
// discard the attempt after the first call.
func (a *Attempt) Finish(elapsed time.Duration, transcript string) Result {
	a.finished = true
	transcript = strings.TrimSpace(transcript)
	measured := transcript != ""
	return Result{
		AttemptID:       a.ID,
		WordsPerMinute:  WordsPerMinute(len(a.TargetWords), elapsed.Seconds()),
		AccuracyPercent: Accuracy(a.TargetWords, transcript),
		Elapsed:         elapsed,
		Transcript:      transcript,
		Measured:        measured,
	}
}
