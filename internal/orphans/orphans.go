// Package orphans records identity accounts left without a profile row.
// Nothing here repairs them; the records exist for manual reconciliation.
package orphans

import (
	"context"

	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/models"
)

type Reporter interface {
	Report(ctx context.Context, o models.Orphan) error
}

// LogReporter writes orphans to a logger. It is used when no backend accepts
// orphan reports, e.g. against the hosted provider.
type LogReporter struct {
	log logging.Logger
}

func NewLogReporter(l logging.Logger) *LogReporter {
	return &LogReporter{log: l.With("module", "orphans")}
}

func (r *LogReporter) Report(ctx context.Context, o models.Orphan) error {
	r.log.Error(ctx, "orphaned identity account",
		"user_id", o.UserID,
		"email", o.Email,
		"reason", o.Reason,
		"detected_at", o.DetectedAt,
	)
	return nil
}

// Multi fans a report out to several reporters. All reporters are tried; the
// first error is returned.
type Multi []Reporter

func (m Multi) Report(ctx context.Context, o models.Orphan) error {
	var first error
	for _, r := range m {
		if err := r.Report(ctx, o); err != nil && first == nil {
			first = err
		}
	}
	return first
}
