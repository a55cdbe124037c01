package entities

import (
	"errors"
	"testing"
	"time"
)

func TestNewTranscriptValidation(t *testing.T) {
	now := time.Now()

	if _, err := NewTranscript("sprint_planning", "hello", now); err != nil {
		t.Fatalf("valid transcript rejected: %v", err)
	}

	if _, err := NewTranscript("sprint_planning", "   \n", now); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput for blank text, got %v", err)
	}

	for _, bad := range []string{"", "a/b", `a\b`, "notes.final", "a b"} {
		if _, err := NewTranscript(bad, "hello", now); !errors.Is(err, ErrInvalidMeetingType) {
			t.Fatalf("meeting type %q should be rejected, got %v", bad, err)
		}
	}
}
