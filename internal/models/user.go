package models

import "time"

// Credential is the transient email/password pair of one submit action.
type Credential struct {
	Email    string
	Password string
}

// AuthenticatedUser is written to session storage after a successful
// credential check. UserID and AccessToken are only known when a real
// identity provider answered the check.
type AuthenticatedUser struct {
	UserID      string    `json:"user_id,omitempty"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	AccessToken string    `json:"access_token,omitempty"`
	SignedInAt  time.Time `json:"signed_in_at"`
}
