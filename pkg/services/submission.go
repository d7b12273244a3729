package services

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"contact-api/pkg/clients/listmonk"
	"contact-api/pkg/config"
	"contact-api/pkg/models"
	"contact-api/pkg/utils"
)

// SubmissionService defines the interface for handling one contact-form
// submission end to end
type SubmissionService interface {
	// ProcessSubmission registers the contact with the mailing-list manager
	// and, on success, dispatches the notification email. A nil return
	// means the submission succeeded; the returned error's message is safe
	// to show to the visitor.
	ProcessSubmission(sub models.Submission) error
}

type submissionServiceImpl struct {
	subscriptions SubscriptionService
	notifications NotificationService
	config        *config.Config
	notifyWG      sync.WaitGroup
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	subscriptions SubscriptionService,
	notifications NotificationService,
	cfg *config.Config,
) SubmissionService {
	return &submissionServiceImpl{
		subscriptions: subscriptions,
		notifications: notifications,
		config:        cfg,
	}
}

// ProcessSubmission handles the entire submission workflow. The mailing-list
// registration is the record of truth: the notification email goes out only
// after it succeeds, detached, and its outcome is logged but never changes
// the result.
func (s *submissionServiceImpl) ProcessSubmission(sub models.Submission) error {
	tokens := sub.ListTokens(s.config.ContactListToken, s.config.NewsletterListToken)

	err := s.subscriptions.Subscribe(sub.Email, sub.Name, sub.ListAttribs(), tokens)
	if err != nil {
		var apiErr *listmonk.APIError
		if errors.As(err, &apiErr) {
			msg := ExtractErrorMessage(SubscriptionFailedPrefix + apiErr.Body)
			log.Error().Int("status", apiErr.StatusCode).Str("subscriber", utils.Redact(sub.Email)).Msg("Subscription rejected upstream")
			return errors.New(msg)
		}
		log.Error().Err(err).Str("subscriber", utils.Redact(sub.Email)).Msg("Subscription transport error")
		return errors.New(FallbackErrorMessage)
	}

	s.notifyWG.Add(1)
	go func() {
		defer s.notifyWG.Done()
		if _, err := s.notifications.SendContactNotification(sub.Name, sub.Email, sub.NotificationAttribs()); err != nil {
			// Best effort only. The subscription already succeeded.
			log.Error().Err(err).Str("submitter", utils.Redact(sub.Email)).Msg("Email notification failed")
		}
	}()

	return nil
}
