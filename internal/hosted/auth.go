package hosted

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/ttioportal/internal/identity"
	"github.com/dmitrijs2005/ttioportal/internal/models"
)

type signupRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type authUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// signupResponse accepts both the bare user object returned when email
// confirmation is on and the session shape returned when it is off.
type signupResponse struct {
	authUser
	User *authUser `json:"user"`
}

// CreateAccount registers a new identity. Provider refusals such as a
// duplicate email come back as *identity.ProviderError with the provider's
// message.
func (c *Client) CreateAccount(ctx context.Context, email, password string, metadata map[string]any) (string, error) {
	r, err := c.do(ctx, "signup", http.MethodPost, "/auth/v1/signup", nil,
		signupRequest{Email: email, Password: password, Data: metadata}, nil)
	if err != nil {
		return "", err
	}
	if !r.ok() {
		return "", c.providerError(r)
	}

	var out signupResponse
	if err := decodeJSON(r, &out); err != nil {
		return "", fmt.Errorf("signup: %w", err)
	}
	id := out.ID
	if out.User != nil && out.User.ID != "" {
		id = out.User.ID
	}
	if id == "" {
		return "", fmt.Errorf("signup: %w: missing user id", errUnexpectedBody)
	}
	return id, nil
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	User        authUser `json:"user"`
}

// SignIn exchanges the credential pair for an access token. A 400 or 401
// answer is reported as identity.ErrInvalidCredentials whatever its message.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.AuthenticatedUser, error) {
	q := url.Values{"grant_type": {"password"}}
	r, err := c.do(ctx, "token", http.MethodPost, "/auth/v1/token", q, tokenRequest{Email: email, Password: password}, nil)
	if err != nil {
		return nil, err
	}
	if r.status == http.StatusBadRequest || r.status == http.StatusUnauthorized {
		return nil, identity.ErrInvalidCredentials
	}
	if !r.ok() {
		return nil, c.providerError(r)
	}

	var out tokenResponse
	if err := decodeJSON(r, &out); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	role := models.RoleOther
	if s, ok := out.User.UserMetadata["role"].(string); ok {
		if parsed, err := models.ParseRole(s); err == nil {
			role = parsed
		}
	}
	userEmail := out.User.Email
	if userEmail == "" {
		userEmail = email
	}

	return &models.AuthenticatedUser{
		UserID:      out.User.ID,
		Email:       userEmail,
		Role:        role,
		AccessToken: out.AccessToken,
		SignedInAt:  c.now().UTC(),
	}, nil
}
