package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/adapter/loader"
	"github.com/johnquangdev/meeting-insights/internal/adapter/writer"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/email"
	"github.com/johnquangdev/meeting-insights/internal/usecase/extract"
	"github.com/johnquangdev/meeting-insights/internal/usecase/guardrail"
	"github.com/johnquangdev/meeting-insights/pkg/validator"
)

// Options control one run. SendEmails is the explicit dispatch gate; the
// extraction and output path never sends email on its own.
type Options struct {
	TranscriptPath string
	RosterPath     string
	SendEmails     bool
	ReferenceDate  time.Time
}

// RunResult is what a completed run reports back.
type RunResult struct {
	Outcome          *entities.MeetingOutcome
	ArtifactPath     string
	GuardrailWarning string
	SendResults      []email.SendResult
}

// Service runs the whole pipeline sequentially:
// load -> validate -> extract -> write -> (optionally) compose+send.
type Service struct {
	guard     *guardrail.Service
	extractor *extract.Service
	writer    *writer.Writer
	composer  *email.Composer
	sender    email.Sender
	validate  *validator.Validator
	logger    *zap.Logger
}

// New constructs the pipeline. sender may be nil when sending is
// disabled for the process.
func New(
	guard *guardrail.Service,
	extractor *extract.Service,
	w *writer.Writer,
	composer *email.Composer,
	sender email.Sender,
	v *validator.Validator,
	logger *zap.Logger,
) *Service {
	return &Service{
		guard:     guard,
		extractor: extractor,
		writer:    w,
		composer:  composer,
		sender:    sender,
		validate:  v,
		logger:    logger,
	}
}

// Run executes one batch run. A guardrail or extraction failure aborts
// before any artifact is written; send failures are collected per draft
// and never invalidate the already-written artifact.
func (s *Service) Run(ctx context.Context, opts Options) (*RunResult, error) {
	refDate := opts.ReferenceDate
	if refDate.IsZero() {
		refDate = time.Now()
	}

	transcript, err := loader.LoadTranscript(opts.TranscriptPath, refDate)
	if err != nil {
		return nil, err
	}
	roster, err := loader.LoadRoster(opts.RosterPath, s.validate)
	if err != nil {
		return nil, err
	}

	s.logger.Info("run started",
		zap.String("meeting_type", transcript.MeetingType),
		zap.String("date", refDate.Format("2006-01-02")),
		zap.Int("roster_size", roster.Len()),
		zap.Bool("send_emails", opts.SendEmails),
	)

	verdict, err := s.guard.Validate(ctx, transcript, roster)
	if err != nil {
		return nil, err
	}
	if !verdict.OK {
		return nil, fmt.Errorf("%w: %s", entities.ErrGuardrailRejected, verdict.Reason)
	}
	if verdict.Warning != "" {
		s.logger.Warn("guardrail passed with warning", zap.String("warning", verdict.Warning))
	}

	outcome, err := s.extractor.Extract(ctx, transcript, roster)
	if err != nil {
		return nil, err
	}

	artifactPath, err := s.writer.Write(outcome)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Outcome:          outcome,
		ArtifactPath:     artifactPath,
		GuardrailWarning: verdict.Warning,
	}

	if opts.SendEmails {
		result.SendResults = s.sendAll(ctx, outcome)
	}

	return result, nil
}

// sendAll dispatches one email per action item with a resolved assignee.
// Each send is independent; a failure is recorded and the rest continue.
func (s *Service) sendAll(ctx context.Context, outcome *entities.MeetingOutcome) []email.SendResult {
	drafts := s.composer.DraftAll(outcome)
	if len(drafts) == 0 {
		s.logger.Info("no follow-up emails to send")
		return nil
	}
	if s.sender == nil {
		s.logger.Warn("email sending requested but no sender configured, skipping",
			zap.Int("drafts", len(drafts)),
		)
		return nil
	}

	results := make([]email.SendResult, 0, len(drafts))
	for _, draft := range drafts {
		err := s.sender.Send(ctx, draft)
		results = append(results, email.SendResult{Draft: draft, Err: err})
	}
	return results
}
