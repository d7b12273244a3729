// Package form implements the contact-form submission controller: the
// state machine a front end drives while a visitor fills in and submits
// the form.
package form

import (
	"errors"
	"sync"

	"contact-api/pkg/models"
)

// State is the lifecycle of one form session
type State int

const (
	// StateIdle accepts input; submission is allowed once the required
	// fields are filled.
	StateIdle State = iota
	// StateSubmitting is in flight; the submit control stays disabled to
	// prevent duplicate submissions.
	StateSubmitting
	// StateSubmitted is terminal; the form is replaced by the success view.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	}
	return "unknown"
}

// SuccessMessage is the transient notification shown on a successful
// submission.
const SuccessMessage = "Message sent successfully! I'll get back to you soon."

var (
	ErrNotReady    = errors.New("required fields missing or submission already in progress")
	ErrInvalidRole = errors.New("role is not one of the accepted values")
	ErrAlreadyDone = errors.New("form already submitted")
)

// Submitter runs the submission workflow for one frozen Submission
type Submitter interface {
	ProcessSubmission(sub models.Submission) error
}

// Form owns one visitor's submission state. Fields mutate freely while
// idle; Submit freezes a copy and runs the workflow. A failed submission
// returns to idle with all data intact.
type Form struct {
	mu         sync.Mutex
	state      State
	data       models.Submission
	confirming bool
	submitter  Submitter

	// OnSuccess and OnFailure receive the transient notification text for
	// terminal outcomes. Optional.
	OnSuccess func(message string)
	OnFailure func(message string)
}

// New creates an empty form. Newsletter subscription defaults to on.
func New(submitter Submitter) *Form {
	return &Form{
		state:     StateIdle,
		data:      models.Submission{SubscribeToUpdates: true},
		submitter: submitter,
	}
}

// State returns the current lifecycle state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Data returns a copy of the current field values
func (f *Form) Data() models.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *Form) SetName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Name = name
}

func (f *Form) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Email = email
}

// SetRole accepts only values from the closed role set
func (f *Form) SetRole(role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Role = role
	return nil
}

func (f *Form) SetLinkedIn(linkedin string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.LinkedIn = linkedin
}

func (f *Form) SetPhone(phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Phone = phone
}

func (f *Form) SetMessage(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Message = message
}

// CanSubmit reports whether the submit control is enabled: idle state and
// all required fields filled.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == StateIdle && f.data.Complete()
}

// Subscribed reports the current newsletter opt-in value
func (f *Form) Subscribed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.SubscribeToUpdates
}

// AwaitingConfirmation reports whether an opt-out confirmation is open
func (f *Form) AwaitingConfirmation() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirming
}

// ToggleNewsletter flips the newsletter checkbox. Opting in is immediate.
// Opting out only opens the confirmation; the value changes when
// ConfirmOptOut is called.
func (f *Form) ToggleNewsletter() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data.SubscribeToUpdates {
		f.confirming = true
	} else {
		f.data.SubscribeToUpdates = true
	}
}

// ConfirmOptOut commits a pending opt-out
func (f *Form) ConfirmOptOut() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirming {
		f.data.SubscribeToUpdates = false
		f.confirming = false
	}
}

// CancelOptOut dismisses a pending opt-out, leaving the subscription on
func (f *Form) CancelOptOut() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirming = false
}

// Submit freezes the current field values and runs the submission
// workflow. On success the form transitions to submitted and stays there.
// On failure it returns to idle with the data intact so the visitor can
// retry; the returned error's message is what was shown to them.
func (f *Form) Submit() error {
	f.mu.Lock()
	if f.state == StateSubmitted {
		f.mu.Unlock()
		return ErrAlreadyDone
	}
	if f.state != StateIdle || !f.data.Complete() {
		f.mu.Unlock()
		return ErrNotReady
	}
	f.state = StateSubmitting
	sub := f.data
	f.mu.Unlock()

	err := f.submitter.ProcessSubmission(sub)

	f.mu.Lock()
	if err != nil {
		f.state = StateIdle
		f.mu.Unlock()
		if f.OnFailure != nil {
			f.OnFailure(err.Error())
		}
		return err
	}
	f.state = StateSubmitted
	f.mu.Unlock()
	if f.OnSuccess != nil {
		f.OnSuccess(SuccessMessage)
	}
	return nil
}
