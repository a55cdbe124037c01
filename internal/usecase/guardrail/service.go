package guardrail

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/ai"
)

// ChatCompleter is the model capability the guardrail needs.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Result is the guardrail verdict. A Warning is set when the verdict
// could not be read from the model and the run proceeds anyway.
type Result struct {
	OK      bool
	Reason  string
	Warning string
}

// Service asks the model whether the transcript and the people directory
// are compatible inputs before the expensive extraction call is made.
type Service struct {
	model      ChatCompleter
	logger     *zap.Logger
	maxRetries uint64
}

// New constructs a guardrail service.
func New(model ChatCompleter, maxRetries uint64, logger *zap.Logger) *Service {
	return &Service{model: model, maxRetries: maxRetries, logger: logger}
}

// verdict is the structured answer the guardrail prompt asks for.
type verdict struct {
	DocAType   string `json:"doc_a_type"`
	DocBType   string `json:"doc_b_type"`
	AreRelated bool   `json:"are_related"`
}

// Validate judges whether the inputs belong together. Empty inputs fail
// immediately without a model call. A negative verdict blocks the run;
// an unreadable verdict passes with a warning, since the guardrail is
// advisory and extraction is the step that actually has to succeed.
func (s *Service) Validate(ctx context.Context, transcript *entities.Transcript, roster *entities.Roster) (Result, error) {
	if transcript.IsEmpty() {
		return Result{}, fmt.Errorf("%w: transcript", entities.ErrEmptyInput)
	}
	if roster.IsEmpty() {
		return Result{}, fmt.Errorf("%w: roster", entities.ErrEmptyInput)
	}

	s.logSpeakerOverlap(transcript, roster)

	prompt := buildPrompt(transcript, roster)

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx)
	raw, err := backoff.RetryWithData(func() (string, error) {
		out, err := s.model.Complete(ctx, prompt)
		if err != nil && !ai.IsRetryable(err) {
			return "", backoff.Permanent(err)
		}
		return out, err
	}, bo)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", entities.ErrGuardrailUnavailable, err)
	}

	var v verdict
	if err := json.Unmarshal([]byte(ai.ExtractJSON(raw)), &v); err != nil {
		warning := fmt.Sprintf("unreadable guardrail verdict, proceeding: %v", err)
		s.logger.Warn("guardrail verdict could not be parsed, treating as pass",
			zap.Error(err),
			zap.String("raw", truncate(raw, 200)),
		)
		return Result{OK: true, Warning: warning}, nil
	}

	if v.DocAType != "people_directory" || v.DocBType != "meeting_transcript" || !v.AreRelated {
		reason := fmt.Sprintf(
			"people file and transcript are not compatible (doc_a=%s, doc_b=%s, related=%t)",
			v.DocAType, v.DocBType, v.AreRelated,
		)
		return Result{OK: false, Reason: reason}, nil
	}

	return Result{OK: true}, nil
}

// logSpeakerOverlap runs the local, model-free sanity signal: how many
// transcript speakers appear in the roster by first name. It only logs;
// the model verdict is the gate.
func (s *Service) logSpeakerOverlap(transcript *entities.Transcript, roster *entities.Roster) {
	speakers := ExtractSpeakers(transcript.RawText)
	if len(speakers) == 0 {
		s.logger.Warn("no timestamped speakers detected in transcript")
		return
	}

	firstNames := roster.FirstNames()
	matched := 0
	for speaker := range speakers {
		if _, ok := firstNames[strings.ToLower(speaker)]; ok {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(speakers))
	if ratio < 0.6 {
		s.logger.Warn("low speaker overlap between transcript and roster",
			zap.Int("speakers", len(speakers)),
			zap.Int("matched", matched),
			zap.Float64("ratio", ratio),
		)
		return
	}
	s.logger.Debug("speaker overlap check passed",
		zap.Int("speakers", len(speakers)),
		zap.Int("matched", matched),
	)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
