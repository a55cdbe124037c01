package extract

import (
	"context"
	"errors"
	"fmt"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/ai"
)

// ChatCompleter is the model capability the extraction engine needs.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service maps a transcript into a MeetingOutcome via one structured
// model call, then resolves owners, assignees and deadlines locally.
type Service struct {
	model      ChatCompleter
	parser     *Parser
	logger     *zap.Logger
	maxRetries uint64
}

// New constructs an extraction service.
func New(model ChatCompleter, maxRetries uint64, logger *zap.Logger) *Service {
	return &Service{
		model:      model,
		parser:     NewParser(),
		logger:     logger,
		maxRetries: maxRetries,
	}
}

// Extract runs the structured extraction. Call it only after the
// guardrail has passed. Transient model failures are retried with
// exponential backoff; exhaustion surfaces ErrExtractionUnavailable and
// an unparseable response surfaces ErrMalformedExtraction. Neither
// produces a partial outcome.
func (s *Service) Extract(ctx context.Context, transcript *entities.Transcript, roster *entities.Roster) (*entities.MeetingOutcome, error) {
	prompt := buildPrompt(transcript, roster)

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx)
	raw, err := backoff.RetryWithData(func() (string, error) {
		out, err := s.model.Complete(ctx, prompt)
		if err != nil {
			if ai.IsRetryable(err) {
				s.logger.Warn("transient extraction failure, will retry", zap.Error(err))
				return "", err
			}
			return "", backoff.Permanent(err)
		}
		return out, nil
	}, bo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrExtractionUnavailable, err)
	}

	resp, err := s.parser.Parse(raw)
	if err != nil {
		if errors.Is(err, entities.ErrMalformedExtraction) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", entities.ErrMalformedExtraction, err)
	}

	outcome := s.assemble(transcript, roster, resp)

	s.logger.Info("extraction complete",
		zap.String("meeting_type", outcome.MeetingType),
		zap.Int("action_items", len(outcome.ActionItems)),
		zap.Int("decisions", len(outcome.Decisions)),
		zap.Int("risks", len(outcome.Risks)),
		zap.Int("open_questions", len(outcome.OpenQuestions)),
	)
	return outcome, nil
}

// assemble maps the wire response onto the domain outcome, resolving
// names against the roster and deadline phrases against the run date.
func (s *Service) assemble(transcript *entities.Transcript, roster *entities.Roster, resp *extractionResponse) *entities.MeetingOutcome {
	outcome := entities.NewMeetingOutcome(transcript.MeetingType, transcript.Date)

	for _, item := range resp.ActionItems {
		actionItem := entities.ActionItem{
			Description:  item.Description,
			OwnerName:    normalizeName(item.OwnerName),
			AssigneeName: normalizeName(item.Assignee),
			Priority:     item.Priority,
			Evidence:     item.Evidence,
			DueContext:   item.DeadlineText,
		}

		actionItem.Owner = resolvePerson(roster, item.OwnerName)
		actionItem.Assignee = resolvePerson(roster, item.Assignee)
		if !actionItem.OwnerResolved() {
			s.logger.Warn("unresolved action item owner",
				zap.String("owner_name", actionItem.OwnerName),
				zap.String("description", actionItem.Description),
			)
		}
		if !actionItem.AssigneeResolved() {
			s.logger.Warn("unresolved action item assignee",
				zap.String("assignee_name", actionItem.AssigneeName),
				zap.String("description", actionItem.Description),
			)
		}

		if due, ok := resolveDeadline(item.DeadlineText, transcript.Date); ok {
			actionItem.DueDate = &due
		}

		outcome.ActionItems = append(outcome.ActionItems, actionItem)
	}

	for _, d := range resp.Decisions {
		outcome.Decisions = append(outcome.Decisions, entities.Decision{
			Description: d.Decision,
			OwnerName:   normalizeName(d.OwnerName),
			Evidence:    d.Evidence,
		})
	}

	for _, r := range resp.Risks {
		outcome.Risks = append(outcome.Risks, entities.Risk{
			Description: r.Risk,
			Severity:    r.Severity,
			Evidence:    r.Evidence,
			Context:     r.Context,
		})
	}

	for _, q := range resp.OpenQuestions {
		outcome.OpenQuestions = append(outcome.OpenQuestions, entities.OpenQuestion{
			Description: q.Question,
			Evidence:    q.Evidence,
			Context:     q.Context,
		})
	}

	outcome.Normalize()
	return outcome
}
