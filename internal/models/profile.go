package models

import (
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/common"
)

// SignupProfile is everything the signup form collects.
type SignupProfile struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	Role            Role
	NewsletterOptIn bool
	Interests       Interests
	TermsAccepted   bool
}

// IdentityMetadata is the opaque user metadata attached to the identity
// account at creation time.
func (p *SignupProfile) IdentityMetadata() map[string]any {
	return map[string]any{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"role":       string(p.Role),
		"newsletter": p.NewsletterOptIn,
	}
}

// StudentRecord is the profile row written to the student table.
type StudentRecord struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
	Role         Role
	Interests    string
	RegDate      string
}

// NewStudentRecord derives the row from a validated profile. passwordDigest
// replaces the plaintext password; regDate is reduced to its calendar date.
func NewStudentRecord(p *SignupProfile, passwordDigest string, regDate time.Time) StudentRecord {
	return StudentRecord{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		EmailAddress: p.Email,
		Password:     passwordDigest,
		Role:         p.Role,
		Interests:    p.Interests.Join(),
		RegDate:      regDate.Format(common.DateLayout),
	}
}

// Fields returns the row keyed by column name.
func (r StudentRecord) Fields() map[string]any {
	return map[string]any{
		"first_name":    r.FirstName,
		"last_name":     r.LastName,
		"email_address": r.EmailAddress,
		"password":      r.Password,
		"role":          string(r.Role),
		"interests":     r.Interests,
		"reg_date":      r.RegDate,
	}
}

// StudentColumns lists the writable columns of the student table.
var StudentColumns = []string{"first_name", "last_name", "email_address", "password", "role", "interests", "reg_date"}
