package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"

	"contact-api/pkg/clients/resend"
	"contact-api/pkg/config"
	"contact-api/pkg/models"
	"contact-api/pkg/utils"
)

// NotificationService sends the contact-form notification email
type NotificationService interface {
	SendContactNotification(name, email string, attribs models.Attribs) (string, error)
}

type notificationServiceImpl struct {
	client resend.Client
	config *config.Config
}

// NewNotificationService creates a new notification service
func NewNotificationService(client resend.Client, cfg *config.Config) NotificationService {
	return &notificationServiceImpl{
		client: client,
		config: cfg,
	}
}

type notificationData struct {
	OwnerName  string
	SiteDomain string
	Name       string
	Email      string
	Role       string
	LinkedIn   string
	Phone      string
	Message    string
}

// Optional sections render only when the field is present; the order of
// the blocks (email, role, linkedin, phone, message) is fixed.
var notificationTemplate = template.Must(template.New("notification").Parse(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background-color: #f9f9f9; padding: 20px;">
      <div style="background-color: #10b981; color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center;">
        <h1 style="margin: 0; font-size: 24px;">New Contact Form Submission</h1>
      </div>

      <div style="background-color: white; padding: 30px; border-radius: 0 0 8px 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
        <p style="font-size: 16px; color: #333; margin-bottom: 20px; line-height: 1.5;">
          Hi {{.OwnerName}},
        </p>

        <p style="font-size: 16px; color: #333; margin-bottom: 30px; line-height: 1.5;">
          <strong>{{.Name}}</strong> wants to connect with you. Here are their contact details:
        </p>

        <div style="background-color: #f8f9fa; border: 1px solid #e9ecef; border-radius: 8px; padding: 25px; margin-bottom: 20px;">
          <div style="margin-bottom: 15px;">
            <strong style="color: #10b981; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px;">Email:</strong>
            <p style="margin: 5px 0 0 0; font-size: 16px; color: #333;">{{.Email}}</p>
          </div>
{{if .Role}}
          <div style="margin-bottom: 15px;">
            <strong style="color: #10b981; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px;">Role:</strong>
            <p style="margin: 5px 0 0 0; font-size: 16px; color: #333;">{{.Role}}</p>
          </div>
{{end}}{{if .LinkedIn}}
          <div style="margin-bottom: 15px;">
            <strong style="color: #10b981; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px;">LinkedIn Profile:</strong>
            <p style="margin: 5px 0 0 0; font-size: 16px;">
              <a href="{{.LinkedIn}}" style="color: #10b981; text-decoration: none;" target="_blank" rel="noopener noreferrer">{{.LinkedIn}}</a>
            </p>
          </div>
{{end}}{{if .Phone}}
          <div style="margin-bottom: 15px;">
            <strong style="color: #10b981; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px;">Phone Number:</strong>
            <p style="margin: 5px 0 0 0; font-size: 16px; color: #333;">{{.Phone}}</p>
          </div>
{{end}}{{if .Message}}
          <div style="margin-bottom: 0;">
            <strong style="color: #10b981; font-size: 14px; text-transform: uppercase; letter-spacing: 0.5px;">Message:</strong>
            <p style="margin: 5px 0 0 0; font-size: 16px; color: #333; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</p>
          </div>
{{end}}
        </div>

        <div style="text-align: center; margin-top: 30px;">
          <a
            href="mailto:{{.Email}}?subject=Re:%20Contact%20Form%20Submission"
            style="background-color: #10b981; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; font-size: 16px; font-weight: bold; display: inline-block;"
          >
            Reply to {{.Name}}
          </a>
        </div>
      </div>

      <div style="text-align: center; margin-top: 20px; padding: 15px; color: #6b7280; font-size: 14px;">
        <p style="margin: 0;">This email was sent from your contact form at {{.SiteDomain}}</p>
      </div>
    </div>
`))

// SendContactNotification renders the notification email and sends it to
// the configured recipient. Sender and recipient are fixed by
// configuration, never taken from form input.
func (s *notificationServiceImpl) SendContactNotification(name, email string, attribs models.Attribs) (string, error) {
	if !s.client.Configured() {
		log.Error().Msg("Resend API key not configured")
		return "", resend.ErrNotConfigured
	}

	data := notificationData{
		OwnerName:  s.config.OwnerName,
		SiteDomain: s.config.SiteDomain,
		Name:       name,
		Email:      email,
		Role:       attribs["role"],
		LinkedIn:   attribs["linkedin"],
		Phone:      attribs["phone"],
		Message:    attribs["message"],
	}

	var html bytes.Buffer
	if err := notificationTemplate.Execute(&html, data); err != nil {
		return "", fmt.Errorf("error rendering notification: %w", err)
	}

	log.Info().Str("submitter", utils.Redact(email)).Msg("Sending contact notification")

	subject := fmt.Sprintf("New Contact Form Submission from %s", name)
	return s.client.Send(s.config.NotificationFrom, []string{s.config.NotificationEmail}, subject, html.String())
}
