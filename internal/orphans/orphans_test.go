package orphans

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReporter struct {
	err   error
	calls int
}

func (s *stubReporter) Report(context.Context, models.Orphan) error {
	s.calls++
	return s.err
}

func TestLogReporter_WritesErrorLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogReporter(logging.New(&buf, logging.FormatJSON, slog.LevelInfo))

	err := r.Report(context.Background(), models.Orphan{
		UserID: "u-1", Email: "a@b.edu", Reason: "insert failed", DetectedAt: time.Unix(0, 0).UTC(),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"user_id":"u-1"`)
	assert.Contains(t, out, `"email":"a@b.edu"`)
	assert.Contains(t, out, `"module":"orphans"`)
}

func TestMulti_TriesAllReturnsFirstError(t *testing.T) {
	e1 := errors.New("first")
	a := &stubReporter{err: e1}
	b := &stubReporter{err: errors.New("second")}
	c := &stubReporter{}

	err := Multi{a, b, c}.Report(context.Background(), models.Orphan{})
	assert.ErrorIs(t, err, e1)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 1, c.calls)
}
