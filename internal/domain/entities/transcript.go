package entities

import (
	"fmt"
	"strings"
	"time"
)

// Transcript is a loaded meeting transcript. MeetingType comes from the
// input filename stem and becomes part of the artifact identity, so it is
// validated as a slug here rather than trusted downstream.
type Transcript struct {
	MeetingType string
	Date        time.Time
	RawText     string
}

// NewTranscript validates the meeting type and raw text and returns a
// transcript pinned to the given reference date.
func NewTranscript(meetingType, rawText string, date time.Time) (*Transcript, error) {
	meetingType = strings.TrimSpace(meetingType)
	if meetingType == "" {
		return nil, fmt.Errorf("%w: empty meeting type", ErrInvalidMeetingType)
	}
	if !isSlug(meetingType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMeetingType, meetingType)
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("%w: transcript text", ErrEmptyInput)
	}
	return &Transcript{
		MeetingType: meetingType,
		Date:        date,
		RawText:     rawText,
	}, nil
}

// IsEmpty reports whether the transcript has no usable text.
func (t *Transcript) IsEmpty() bool {
	return t == nil || strings.TrimSpace(t.RawText) == ""
}

// isSlug accepts letters, digits, underscores and hyphens. Path
// separators and dots would corrupt the artifact identity.
func isSlug(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
