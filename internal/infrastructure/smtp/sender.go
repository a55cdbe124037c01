package smtp

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/email"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Sender submits drafts over authenticated SMTP. It implements the
// email.Sender port.
type Sender struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// New creates an SMTP sender from config. Port 465 uses implicit TLS,
// matching Gmail's submission endpoint.
func New(cfg *config.SMTPConfig, logger *zap.Logger) *Sender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)
	dialer.SSL = cfg.Port == 465

	return &Sender{
		dialer: dialer,
		from:   cfg.Email,
		logger: logger,
	}
}

// Send dispatches one draft. Failures wrap ErrSendFailure so the caller
// can record them per-draft without aborting the run.
func (s *Sender) Send(ctx context.Context, draft email.Draft) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrSendFailure, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetAddressHeader("To", draft.To, draft.ToName)
	m.SetHeader("Subject", draft.Subject)
	m.SetBody("text/plain", draft.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("email send failed",
			zap.String("to", draft.To),
			zap.Error(err),
		)
		return fmt.Errorf("%w: to %s: %v", entities.ErrSendFailure, draft.To, err)
	}

	s.logger.Info("email sent", zap.String("to", draft.To))
	return nil
}
