package speech

import (
	"context"
	"errors"
	"testing"
)

func TestUnavailable(t *testing.T) {
	var r Recognizer = Unavailable{}

	_, err := r.Transcribe(context.Background(), []byte("audio"), "audio/wav")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNewGeminiRecognizer_RequiresKey(t *testing.T) {
	_, err := NewGeminiRecognizer(context.Background(), "", "")
	if err == nil {
		t.Fatal("expected error without API key")
	}
}
