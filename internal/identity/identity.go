// Package identity defines the identity-provider boundary used by the login
// and signup workflows, and the two credential checks the login form can be
// configured with.
package identity

import (
	"context"

	"github.com/dmitrijs2005/ttioportal/internal/models"
)

// Provider is the external identity collaborator.
type Provider interface {
	// CreateAccount registers email/password and attaches metadata to the new
	// account. It returns the provider's user id.
	CreateAccount(ctx context.Context, email, password string, metadata map[string]any) (string, error)
	// SignIn checks the credential pair and returns the signed-in user.
	SignIn(ctx context.Context, email, password string) (*models.AuthenticatedUser, error)
}

// Authenticator checks one credential pair.
type Authenticator interface {
	Check(ctx context.Context, email, password string) (*models.AuthenticatedUser, error)
}
