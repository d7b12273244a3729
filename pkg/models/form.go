package models

// Attribs is the optional-field projection sent to a downstream system.
// Fields with empty values are never present: downstream consumers treat
// "field absent" differently from "field empty".
type Attribs map[string]string

// Submission represents one contact-form fill ready for dispatch
type Submission struct {
	Name               string `json:"name" form:"name" binding:"required"`
	Email              string `json:"email" form:"email" binding:"required,email"`
	Role               string `json:"role" form:"role" binding:"required,oneof=Developer Designer 'Project Manager' 'Product Manager' Student Other"`
	LinkedIn           string `json:"linkedin" form:"linkedin" binding:"omitempty,url"`
	Phone              string `json:"phone" form:"phone"`
	Message            string `json:"message" form:"message"`
	SubscribeToUpdates bool   `json:"subscribeToUpdates" form:"subscribeToUpdates"`
}

// Roles is the closed set of accepted role values
var Roles = []string{
	"Developer",
	"Designer",
	"Project Manager",
	"Product Manager",
	"Student",
	"Other",
}

// ValidRole reports whether role is one of the accepted role values
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Complete reports whether all required fields are filled in. Submissions
// must not be dispatched while this is false.
func (s Submission) Complete() bool {
	return s.Name != "" && s.Email != "" && s.Role != ""
}

// ListAttribs returns the attributes stored on the mailing-list profile.
// The free-text message is excluded so it never ends up in the subscriber
// record.
func (s Submission) ListAttribs() Attribs {
	attribs := Attribs{}
	if s.Role != "" {
		attribs["role"] = s.Role
	}
	if s.LinkedIn != "" {
		attribs["linkedin"] = s.LinkedIn
	}
	if s.Phone != "" {
		attribs["phone"] = s.Phone
	}
	return attribs
}

// NotificationAttribs returns the attributes carried by the email
// notification: everything in ListAttribs plus the message, if any.
func (s Submission) NotificationAttribs() Attribs {
	attribs := s.ListAttribs()
	if s.Message != "" {
		attribs["message"] = s.Message
	}
	return attribs
}

// ListTokens returns the opaque list tokens this submission subscribes to:
// the contact list always, the newsletter list only when opted in.
func (s Submission) ListTokens(contactToken, newsletterToken string) []string {
	tokens := []string{contactToken}
	if s.SubscribeToUpdates {
		tokens = append(tokens, newsletterToken)
	}
	return tokens
}
