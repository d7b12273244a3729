package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"contact-api/pkg/clients/listmonk"
	"contact-api/pkg/clients/resend"
	"contact-api/pkg/models"
	"contact-api/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	subscriptionService services.SubscriptionService
	notificationService services.NotificationService
	submissionService   services.SubmissionService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	subscriptionService services.SubscriptionService,
	notificationService services.NotificationService,
	submissionService services.SubmissionService,
) *Handlers {
	return &Handlers{
		subscriptionService: subscriptionService,
		notificationService: notificationService,
		submissionService:   submissionService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleSubscribe registers a contact with the mailing-list manager.
// Multipart fields: email, name, attribs (JSON string), repeated l list
// tokens.
func (h *Handlers) HandleSubscribe(c *gin.Context) {
	email := c.PostForm("email")
	name := c.PostForm("name")
	if email == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	attribs := models.Attribs{}
	if raw := c.PostForm("attribs"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &attribs); err != nil {
			log.Error().Err(err).Msg("Error parsing attributes")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
			return
		}
	}

	tokens := c.PostFormArray("l")

	if err := h.subscriptionService.Subscribe(email, name, attribs, tokens); err != nil {
		var apiErr *listmonk.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   services.SubscriptionFailedPrefix + apiErr.Body,
			})
			return
		}
		log.Error().Err(err).Msg("Subscribe handler error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleSendEmail sends the contact notification email. Multipart fields:
// email, name, attribs (JSON string, may include message).
func (h *Handlers) HandleSendEmail(c *gin.Context) {
	email := c.PostForm("email")
	name := c.PostForm("name")
	if email == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	attribs := models.Attribs{}
	if raw := c.PostForm("attribs"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &attribs); err != nil {
			// Attributes are optional decoration; the notification still
			// goes out without them.
			log.Error().Err(err).Msg("Error parsing attributes")
			attribs = models.Attribs{}
		}
	}

	emailID, err := h.notificationService.SendContactNotification(name, email, attribs)
	if err != nil {
		if errors.Is(err, resend.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Email service not configured"})
			return
		}
		log.Error().Err(err).Msg("Error sending email")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email notification sent successfully",
		"emailId": emailID,
	})
}

// HandleContact runs the full submission workflow from one JSON body:
// subscribe first, then the best-effort notification. The notification
// outcome never shows up in the response.
func (h *Handlers) HandleContact(c *gin.Context) {
	submission := models.Submission{SubscribeToUpdates: true}

	if err := c.ShouldBindJSON(&submission); err != nil {
		log.Error().Err(err).Msg("Error parsing contact submission")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing or invalid fields"})
		return
	}

	if err := h.submissionService.ProcessSubmission(submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
