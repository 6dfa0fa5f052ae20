package signup

import (
	"strings"
	"sync/atomic"

	"github.com/dmitrijs2005/ttioportal/internal/models"
)

// Form is the state of the signup form. State and Error are written by
// Workflow.Submit.
type Form struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	Role          models.Role
	Newsletter    bool
	Interests     models.Interests
	TermsAccepted bool

	State State
	Error string

	inFlight atomic.Bool
}

// ToggleInterest selects tag if it is not selected and deselects it
// otherwise.
func (f *Form) ToggleInterest(tag string) bool {
	return f.Interests.Toggle(tag)
}

// InFlight reports whether a Submit on f has not returned yet.
func (f *Form) InFlight() bool { return f.inFlight.Load() }

// Profile snapshots the form as a SignupProfile. Names and email are
// trimmed; the password is taken as typed.
func (f *Form) Profile() models.SignupProfile {
	return models.SignupProfile{
		FirstName:       strings.TrimSpace(f.FirstName),
		LastName:        strings.TrimSpace(f.LastName),
		Email:           strings.TrimSpace(f.Email),
		Password:        f.Password,
		Role:            f.Role,
		NewsletterOptIn: f.Newsletter,
		Interests:       models.NewInterests(f.Interests.Tags()...),
		TermsAccepted:   f.TermsAccepted,
	}
}

// validate checks p in display order and replaces p.Role with its canonical
// form.
func validate(p *models.SignupProfile) *ValidationError {
	required := []struct {
		field, label, value string
	}{
		{"first_name", "First name", p.FirstName},
		{"last_name", "Last name", p.LastName},
		{"email", "Email", p.Email},
		{"password", "Password", strings.TrimSpace(p.Password)},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: r.label + " is required."}
		}
	}

	if !p.TermsAccepted {
		return &ValidationError{Field: "terms", Message: MsgTermsRequired}
	}
	if p.Role == "" {
		return &ValidationError{Field: "role", Message: MsgRoleRequired}
	}
	role, err := models.ParseRole(string(p.Role))
	if err != nil {
		return &ValidationError{Field: "role", Message: MsgRoleRequired}
	}
	p.Role = role
	return nil
}
