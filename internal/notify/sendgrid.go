package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"reminder-engine/internal/model"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridGateway delivers reminders by email through the SendGrid API.
type SendgridGateway struct {
	key  string
	from *sgmail.Email
}

var _ Gateway = (*SendgridGateway)(nil)

func NewSendgridGateway(key, fromName, fromEmail string) *SendgridGateway {
	return &SendgridGateway{
		key:  key,
		from: sgmail.NewEmail(fromName, fromEmail),
	}
}

func (g *SendgridGateway) Send(ctx context.Context, to model.Contact, subject, body string) error {
	if to.Email == "" {
		return ErrNoRecipient
	}

	p := sgmail.NewPersonalization()
	p.Subject = subject
	p.AddTos(sgmail.NewEmail(to.Name, to.Email))

	m := sgmail.NewV3Mail()
	m.SetFrom(g.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", body))

	req := sendgrid.GetRequest(g.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid request: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid rejected message: status %d", res.StatusCode)
	}
	return nil
}
