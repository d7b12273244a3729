package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration values
type Config struct {
	ListmonkBaseURL  string
	ListmonkUsername string
	ListmonkPassword string

	ContactListToken    string
	ContactListIntID    int
	NewsletterListToken string
	NewsletterListIntID int

	ResendAPIKey      string
	NotificationEmail string
	NotificationFrom  string

	OwnerName  string
	SiteDomain string

	LogLevel string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		ListmonkBaseURL:  os.Getenv("LISTMONK_BASE_URL"),
		ListmonkUsername: os.Getenv("LISTMONK_USERNAME"),
		ListmonkPassword: os.Getenv("LISTMONK_PASSWORD"),

		ContactListToken:    getEnv("CONTACT_LIST_ID", "a4428028-1751-4c8e-8e40-0f2ab839131d"),
		ContactListIntID:    getEnvInt("CONTACT_LIST_INT_ID", 1),
		NewsletterListToken: getEnv("NEWSLETTER_LIST_ID", "5d80e417-542e-422a-b15e-0b478dcd894c"),
		NewsletterListIntID: getEnvInt("NEWSLETTER_LIST_INT_ID", 2),

		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", "ragulsundaram15@gmail.com"),
		NotificationFrom:  getEnv("NOTIFICATION_FROM", "onboarding@resend.dev"),

		OwnerName:  getEnv("OWNER_NAME", "Ragul"),
		SiteDomain: getEnv("SITE_DOMAIN", "ragulsundaram.in"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// ListMapping returns the opaque list token to internal list ID mapping.
// The mapping is fixed for the life of the process.
func (c *Config) ListMapping() map[string]int {
	return map[string]int{
		c.ContactListToken:    c.ContactListIntID,
		c.NewsletterListToken: c.NewsletterListIntID,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
