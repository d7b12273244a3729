package services

import (
	"encoding/json"
	"strings"
)

// SubscriptionFailedPrefix wraps raw upstream bodies in handler error
// responses.
const SubscriptionFailedPrefix = "Subscription failed: "

// FallbackErrorMessage is shown when no parser can make sense of the
// failure detail.
const FallbackErrorMessage = "Something went wrong. Please try again."

// An errorParser attempts to turn a failure detail into a user-facing
// message. It reports false when the detail isn't in its shape.
type errorParser func(detail string) (string, bool)

// Parsers run in order; the first success wins.
var errorParsers = []errorParser{
	parseWrappedUpstream,
	parseMessageField,
	parseLiteral,
}

// ExtractErrorMessage turns an opaque failure detail into something a
// visitor can read, on a best-effort basis.
func ExtractErrorMessage(detail string) string {
	for _, parse := range errorParsers {
		if msg, ok := parse(detail); ok {
			return msg
		}
	}
	return FallbackErrorMessage
}

// parseWrappedUpstream handles details of the form
// "Subscription failed: {...json with a message field...}".
func parseWrappedUpstream(detail string) (string, bool) {
	if !strings.HasPrefix(detail, SubscriptionFailedPrefix) {
		return "", false
	}
	return parseMessageField(strings.TrimPrefix(detail, SubscriptionFailedPrefix))
}

// parseMessageField handles details that are a JSON object with a
// message field.
func parseMessageField(detail string) (string, bool) {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(detail), &parsed); err != nil || parsed.Message == "" {
		return "", false
	}
	return parsed.Message, true
}

// parseLiteral passes a non-empty detail through as-is
func parseLiteral(detail string) (string, bool) {
	return detail, detail != ""
}
