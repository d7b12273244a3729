package services

import (
	"github.com/rs/zerolog/log"

	"contact-api/pkg/clients/listmonk"
	"contact-api/pkg/lists"
	"contact-api/pkg/models"
	"contact-api/pkg/utils"
)

// SubscriptionService registers a contact with the mailing-list manager
type SubscriptionService interface {
	Subscribe(email, name string, attribs models.Attribs, listTokens []string) error
}

type subscriptionServiceImpl struct {
	client   listmonk.Client
	resolver *lists.Resolver
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(client listmonk.Client, resolver *lists.Resolver) SubscriptionService {
	return &subscriptionServiceImpl{
		client:   client,
		resolver: resolver,
	}
}

// Subscribe resolves the list tokens and creates the subscriber. A non-2xx
// upstream response comes back as *listmonk.APIError with the raw body;
// anything else is a transport error.
func (s *subscriptionServiceImpl) Subscribe(email, name string, attribs models.Attribs, listTokens []string) error {
	listIDs := s.resolver.ResolveAll(listTokens)

	log.Info().
		Str("subscriber", utils.Redact(email)).
		Ints("lists", listIDs).
		Msg("Processing subscription")

	return s.client.CreateSubscriber(email, name, listIDs, attribs)
}
