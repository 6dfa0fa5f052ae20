// Package models holds the backend's persistent records.
package models

import (
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/models"
)

// Account is an identity registered with the backend. Metadata is the raw
// JSON object supplied at creation.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Metadata     []byte
	CreatedAt    time.Time
}

// Role reads the role stored in the account metadata. Accounts without a
// recognised role are treated as RoleOther.
func (a *Account) Role() models.Role {
	var md struct {
		Role string `json:"role"`
	}
	if len(a.Metadata) == 0 || json.Unmarshal(a.Metadata, &md) != nil {
		return models.RoleOther
	}
	r, err := models.ParseRole(md.Role)
	if err != nil {
		return models.RoleOther
	}
	return r
}
