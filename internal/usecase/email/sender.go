package email

import "context"

// Sender dispatches one draft over whatever transport is wired in.
type Sender interface {
	Send(ctx context.Context, draft Draft) error
}

// SendResult is the per-draft outcome of the send phase. Failures are
// recorded here and never abort the run or other sends.
type SendResult struct {
	Draft Draft
	Err   error
}

// OK reports whether the send succeeded.
func (r SendResult) OK() bool { return r.Err == nil }
