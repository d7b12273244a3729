package listmonk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"contact-api/pkg/utils"
)

// Client defines the interface for interacting with the Listmonk API
type Client interface {
	CreateSubscriber(email, name string, listIDs []int, attribs map[string]string) error
}

// APIError is a non-2xx response from Listmonk. Body holds the raw
// response body verbatim; callers decide how much of it to show.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("error from Listmonk API (status %d): %s", e.StatusCode, e.Body)
}

type clientImpl struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

// NewClient creates a new Listmonk client
func NewClient(baseURL, username, password string) Client {
	return &clientImpl{
		baseURL:  baseURL,
		username: username,
		password: password,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *clientImpl) CreateSubscriber(email, name string, listIDs []int, attribs map[string]string) error {
	createURL := fmt.Sprintf("%s/api/subscribers", c.baseURL)

	// Create payload
	payload := map[string]interface{}{
		"email":                    email,
		"name":                     name,
		"status":                   "enabled",
		"lists":                    listIDs,
		"attribs":                  attribs,
		"preconfirm_subscriptions": true,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	log.Debug().RawJSON("payload", jsonPayload).Msg("Submitting to Listmonk")

	req, err := http.NewRequest("POST", createURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	// Add authentication headers
	req.SetBasicAuth(c.username, c.password)
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error creating subscriber: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	log.Debug().Int("status", resp.StatusCode).Str("body", string(body)).Msg("Listmonk response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	log.Info().Str("subscriber", utils.Redact(email)).Ints("lists", listIDs).Msg("Created Listmonk subscriber")
	return nil
}
