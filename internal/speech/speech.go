// Package speech turns recorded audio into a transcript for the
// reading screen. Recognition is best-effort: when no recognizer is
// configured the reading flow falls back to a typed transcript.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable means no recognizer is configured or reachable.
var ErrUnavailable = errors.New("speech recognition unavailable")

// Recognizer transcribes spoken audio.
type Recognizer interface {
	// Transcribe returns the transcript of the audio sample.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Unavailable is a Recognizer that always fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Transcribe(context.Context, []byte, string) (string, error) {
	return "", ErrUnavailable
}
