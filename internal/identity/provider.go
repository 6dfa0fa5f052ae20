package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/ttioportal/internal/models"
)

// ProviderAuthenticator performs a real credential check through a Provider.
type ProviderAuthenticator struct {
	provider Provider
}

func NewProviderAuthenticator(p Provider) *ProviderAuthenticator {
	return &ProviderAuthenticator{provider: p}
}

// Check returns ErrInvalidCredentials for blank input without calling the
// provider. Provider errors other than ErrUnavailable are folded into
// ErrInvalidCredentials so the caller never learns why a pair was refused.
func (a *ProviderAuthenticator) Check(ctx context.Context, email, password string) (*models.AuthenticatedUser, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := a.provider.SignIn(ctx, strings.TrimSpace(email), password)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
