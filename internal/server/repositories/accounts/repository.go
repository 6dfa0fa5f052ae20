// Package accounts persists backend identity accounts.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/ttioportal/internal/server/models"
)

type Repository interface {
	// Create stores a and fills its CreatedAt. A duplicate email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, a *models.Account) (*models.Account, error)
	// GetByEmail yields common.ErrorNotFound for an unknown email.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}
