package services_test

import (
	"errors"
	"strings"
	"testing"

	"contact-api/pkg/clients/resend"
	"contact-api/pkg/config"
	"contact-api/pkg/models"
	"contact-api/pkg/services"
)

type captureMailer struct {
	configured bool
	from       string
	to         []string
	subject    string
	html       string
	calls      int
}

func (c *captureMailer) Configured() bool { return c.configured }

func (c *captureMailer) Send(from string, to []string, subject, html string) (string, error) {
	c.calls++
	c.from = from
	c.to = to
	c.subject = subject
	c.html = html
	return "email-id", nil
}

func notificationConfig() *config.Config {
	return &config.Config{
		NotificationEmail: "owner@example.com",
		NotificationFrom:  "onboarding@resend.dev",
		OwnerName:         "Ragul",
		SiteDomain:        "ragulsundaram.in",
	}
}

func TestSendContactNotificationRendersAllBlocks(t *testing.T) {
	mailer := &captureMailer{configured: true}
	svc := services.NewNotificationService(mailer, notificationConfig())

	attribs := models.Attribs{
		"role":     "Developer",
		"linkedin": "https://linkedin.com/in/ada",
		"phone":    "555-0100",
		"message":  "Hello there",
	}

	id, err := svc.SendContactNotification("Ada", "ada@example.com", attribs)
	if err != nil {
		t.Fatalf("SendContactNotification: %v", err)
	}
	if id != "email-id" {
		t.Fatalf("email id: got %q want %q", id, "email-id")
	}

	if mailer.from != "onboarding@resend.dev" {
		t.Fatalf("from: got %q", mailer.from)
	}
	if len(mailer.to) != 1 || mailer.to[0] != "owner@example.com" {
		t.Fatalf("to: got %v", mailer.to)
	}
	if mailer.subject != "New Contact Form Submission from Ada" {
		t.Fatalf("subject: got %q", mailer.subject)
	}

	for _, want := range []string{
		"Hi Ragul,",
		"ada@example.com",
		"Role:", "Developer",
		"LinkedIn Profile:", "https://linkedin.com/in/ada",
		"Phone Number:", "555-0100",
		"Message:", "Hello there",
		"mailto:ada@example.com",
		"Reply to Ada",
		"ragulsundaram.in",
	} {
		if !strings.Contains(mailer.html, want) {
			t.Fatalf("rendered email missing %q", want)
		}
	}
}

func TestSendContactNotificationOmitsEmptyBlocks(t *testing.T) {
	mailer := &captureMailer{configured: true}
	svc := services.NewNotificationService(mailer, notificationConfig())

	if _, err := svc.SendContactNotification("Ada", "ada@example.com", models.Attribs{}); err != nil {
		t.Fatalf("SendContactNotification: %v", err)
	}

	// No empty labels: absent fields drop their whole block
	for _, label := range []string{"Role:", "LinkedIn Profile:", "Phone Number:", "Message:"} {
		if strings.Contains(mailer.html, label) {
			t.Fatalf("rendered email contains %q for an absent field", label)
		}
	}
	if !strings.Contains(mailer.html, "Email:") {
		t.Fatal("rendered email missing the always-present email block")
	}
}

func TestSendContactNotificationEscapesInput(t *testing.T) {
	mailer := &captureMailer{configured: true}
	svc := services.NewNotificationService(mailer, notificationConfig())

	attribs := models.Attribs{"message": `<script>alert("x")</script>`}
	if _, err := svc.SendContactNotification("Ada", "ada@example.com", attribs); err != nil {
		t.Fatalf("SendContactNotification: %v", err)
	}

	if strings.Contains(mailer.html, "<script>") {
		t.Fatal("form input rendered unescaped")
	}
}

func TestSendContactNotificationUnconfigured(t *testing.T) {
	mailer := &captureMailer{configured: false}
	svc := services.NewNotificationService(mailer, notificationConfig())

	_, err := svc.SendContactNotification("Ada", "ada@example.com", models.Attribs{})
	if !errors.Is(err, resend.ErrNotConfigured) {
		t.Fatalf("error: got %v want ErrNotConfigured", err)
	}
	if mailer.calls != 0 {
		t.Fatalf("Send called %d times on unconfigured client", mailer.calls)
	}
}
