package entities

import "errors"

// Domain errors. Fatal ones abort the run before an artifact is written;
// ErrSendFailure is per-email and never propagates past the send phase.
var (
	ErrEmptyInput            = errors.New("empty input")
	ErrInvalidMeetingType    = errors.New("invalid meeting type")
	ErrInvalidRoster         = errors.New("invalid roster")
	ErrGuardrailRejected     = errors.New("guardrail rejected inputs")
	ErrGuardrailUnavailable  = errors.New("guardrail model unavailable")
	ErrMalformedExtraction   = errors.New("malformed extraction response")
	ErrExtractionUnavailable = errors.New("extraction model unavailable")
	ErrWriteFailure          = errors.New("artifact write failed")
	ErrSendFailure           = errors.New("email send failed")
)
