package models

import "time"

// Orphan describes an identity account that has no matching profile row
// because the insert after account creation failed. Orphans are kept for
// manual reconciliation; nothing repairs them automatically.
//
// ReportedBy is filled in by the backend from the caller's access token and
// stays empty for anonymous reports.
type Orphan struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Reason     string    `json:"reason"`
	DetectedAt time.Time `json:"detected_at"`
	ReportedBy string    `json:"reported_by,omitempty"`
}
