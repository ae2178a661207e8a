// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/danielhkuo/quickly-schedule/models"
	"github.com/danielhkuo/quickly-schedule/store"
	"github.com/danielhkuo/quickly-schedule/testutil"
)

func setupStore(t *testing.T) (*sql.DB, *store.SQLStore) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return conn, store.NewSQLStore(conn)
}

func strPtr(s string) *string { return &s }

// failingStore wraps a real store and fails the reads that have an error set
type failingStore struct {
	store.Store
	datesErr error
}

func (f *failingStore) ListDates(ctx context.Context, scheduleID string) ([]models.ScheduleDate, error) {
	if f.datesErr != nil {
		return nil, f.datesErr
	}
	return f.Store.ListDates(ctx, scheduleID)
}
