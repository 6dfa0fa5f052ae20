package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRowService(t *testing.T, fr *fakeRows) *RowService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewRowService(db, &fakeRepoManager{r: fr}, nopLogger{})
}

func TestRowService_Insert(t *testing.T) {
	fr := &fakeRows{}
	s := newRowService(t, fr)

	require.NoError(t, s.Insert(context.Background(), "student", map[string]any{"first_name": "Ada"}))
	assert.Len(t, fr.inserted, 1)

	fr.insertErr = fmt.Errorf("%w: unknown column", common.ErrorValidation)
	assert.ErrorIs(t, s.Insert(context.Background(), "student", nil), common.ErrorValidation)

	fr.insertErr = errors.New("db error: boom")
	assert.ErrorIs(t, s.Insert(context.Background(), "student", nil), common.ErrorInternal)
}

func TestRowService_Select(t *testing.T) {
	fr := &fakeRows{selectOut: []map[string]any{{"first_name": "Ada"}}}
	s := newRowService(t, fr)

	rows, err := s.Select(context.Background(), "student", 5)
	require.NoError(t, err)
	assert.Equal(t, fr.selectOut, rows)

	fr.selectErr = fmt.Errorf("%w: unknown table", common.ErrorValidation)
	_, err = s.Select(context.Background(), "nope", 5)
	assert.ErrorIs(t, err, common.ErrorValidation)

	fr.selectErr = errors.New("db error: boom")
	_, err = s.Select(context.Background(), "student", 5)
	assert.ErrorIs(t, err, common.ErrorInternal)
}
