package notify

import (
	"context"

	"github.com/rs/zerolog"

	"reminder-engine/internal/model"
)

// ConsoleGateway writes reminders to the log instead of delivering them.
// Used in development and as a safe default when no transport is configured.
type ConsoleGateway struct {
	log zerolog.Logger
}

var _ Gateway = (*ConsoleGateway)(nil)

func NewConsoleGateway(log zerolog.Logger) *ConsoleGateway {
	return &ConsoleGateway{log: log}
}

func (g *ConsoleGateway) Send(_ context.Context, to model.Contact, subject, body string) error {
	if !to.HasAny() {
		return ErrNoRecipient
	}
	g.log.Info().
		Str("to", recipientLabel(to)).
		Str("subject", subject).
		Str("body", body).
		Msg("reminder (console gateway)")
	return nil
}

func recipientLabel(to model.Contact) string {
	switch {
	case to.Email != "":
		return to.Email
	case to.Phone != "":
		return to.Phone
	default:
		return "telegram"
	}
}
