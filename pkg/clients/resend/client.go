package resend

import (
	"errors"
	"fmt"

	resend "github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

// ErrNotConfigured is returned when no Resend API key was provided.
// Email delivery degrades gracefully in that case; nothing else does.
var ErrNotConfigured = errors.New("email service not configured")

// Client defines the interface for sending email through Resend
type Client interface {
	Send(from string, to []string, subject, html string) (string, error)
	Configured() bool
}

type clientImpl struct {
	client *resend.Client
}

// NewClient creates a new Resend client. An empty API key yields an
// unconfigured client whose Send always fails with ErrNotConfigured.
func NewClient(apiKey string) Client {
	var c *resend.Client
	if apiKey != "" {
		c = resend.NewClient(apiKey)
	}
	return &clientImpl{client: c}
}

func (c *clientImpl) Configured() bool {
	return c.client != nil
}

func (c *clientImpl) Send(from string, to []string, subject, html string) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	sent, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return "", fmt.Errorf("error sending email: %w", err)
	}

	log.Info().Str("emailId", sent.Id).Msg("Sent email via Resend")
	return sent.Id, nil
}
