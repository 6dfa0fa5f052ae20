package identity

import (
	"context"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/cryptox"
	"github.com/dmitrijs2005/ttioportal/internal/models"
)

// DemoEntry is one fixed credential pair of the demo allowlist.
type DemoEntry struct {
	Email    string
	Password string
	Role     models.Role
}

// Demo credential pairs. Kind names are the ones FillDemoCredentials takes.
var (
	DemoStudent   = DemoEntry{Email: "student@bowiestate.edu", Password: "student123", Role: models.RoleStudent}
	DemoProfessor = DemoEntry{Email: "professor@bowiestate.edu", Password: "professor123", Role: models.RoleFaculty}
)

// DemoAllowlist authenticates against a fixed in-memory table. It exists for
// demonstrations and must not be used against real accounts.
type DemoAllowlist struct {
	entries []DemoEntry
	now     func() time.Time
}

// NewDemoAllowlist returns an allowlist over entries, or over the two
// standard demo pairs when entries is empty.
func NewDemoAllowlist(entries ...DemoEntry) *DemoAllowlist {
	if len(entries) == 0 {
		entries = []DemoEntry{DemoStudent, DemoProfessor}
	}
	return &DemoAllowlist{entries: entries, now: time.Now}
}

// Check compares the pair byte for byte against every entry, so that timing
// does not reveal which one matched. Input is not trimmed or case folded.
// The first matching entry wins.
func (d *DemoAllowlist) Check(_ context.Context, email, password string) (*models.AuthenticatedUser, error) {
	var match *DemoEntry
	for i := range d.entries {
		e := &d.entries[i]
		emailOK := cryptox.EqualStrings(email, e.Email)
		passOK := cryptox.EqualStrings(password, e.Password)
		if emailOK && passOK && match == nil {
			match = e
		}
	}

	if match == nil || email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	return &models.AuthenticatedUser{
		Email:      match.Email,
		Role:       match.Role,
		SignedInAt: d.now().UTC(),
	}, nil
}
