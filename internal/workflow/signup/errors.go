package signup

import (
	"errors"
	"fmt"
)

// User-visible messages.
const (
	MsgTermsRequired = "You must accept the Terms of Service and Privacy Policy."
	MsgRoleRequired  = "Please select a role."
	MsgProfileFailed = "Account created, but failed to create student record."
)

var ErrSubmissionInFlight = errors.New("signup already in progress")

// ValidationError is a local constraint violation found before any external
// call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Stage names the external call an ExternalError came from.
type Stage string

const (
	StageIdentity Stage = "identity"
	StageProfile  Stage = "profile"
)

// ExternalError reports a failed collaborator call. For StageIdentity the
// Message is the provider's own text; for StageProfile it is MsgProfileFailed
// and UserID names the account that was created without a profile row.
type ExternalError struct {
	Stage   Stage
	Message string
	UserID  string
	Err     error
}

func (e *ExternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("signup %s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("signup %s: %s: %v", e.Stage, e.Message, e.Err)
}

func (e *ExternalError) Unwrap() error { return e.Err }

// IsOrphan reports whether the identity account exists but its profile row
// does not.
func (e *ExternalError) IsOrphan() bool { return e.Stage == StageProfile }
