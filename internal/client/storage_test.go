package client

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	v, err := s.Get(ctx, KeyUserID)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Set(ctx, KeyUserID, "u1"))
	v, _ = s.Get(ctx, KeyUserID)
	assert.Equal(t, "u1", v)

	require.NoError(t, s.Remove(ctx, KeyUserID))
	v, _ = s.Get(ctx, KeyUserID)
	assert.Empty(t, v)
}

func openTestStorage(t *testing.T, profile string) (*SQLiteStorage, *sql.DB) {
	t.Helper()
	s, db, err := OpenSQLiteStorage(context.Background(), ":memory:", profile)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return s, db
}

func TestSQLiteStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestStorage(t, "tab-1")

	v, err := s.Get(ctx, KeyUserEmail)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Set(ctx, KeyUserEmail, "a@x.io"))
	require.NoError(t, s.Set(ctx, KeyUserEmail, "b@x.io"))
	v, err = s.Get(ctx, KeyUserEmail)
	require.NoError(t, err)
	assert.Equal(t, "b@x.io", v)

	require.NoError(t, s.Remove(ctx, KeyUserEmail))
	v, err = s.Get(ctx, KeyUserEmail)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSQLiteStorageProfilesAreIsolated(t *testing.T) {
	ctx := context.Background()
	first, db := openTestStorage(t, "tab-1")
	second := NewSQLiteStorage(db, "tab-2")

	require.NoError(t, first.Set(ctx, KeyUserID, "u1"))

	v, err := second.Get(ctx, KeyUserID)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, second.Set(ctx, KeyUserID, "u2"))
	require.NoError(t, first.Remove(ctx, KeyUserID))

	v, _ = second.Get(ctx, KeyUserID)
	assert.Equal(t, "u2", v)
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	_, db := openTestStorage(t, "default")
	require.NoError(t, RunMigrations(context.Background(), db))
}

func TestSQLiteStorageErrors(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewSQLiteStorage(db, "p")
	boom := errors.New("disk I/O error")

	mock.ExpectQuery("SELECT value FROM session").WithArgs("p", KeyUserID).WillReturnError(boom)
	_, err = s.Get(ctx, KeyUserID)
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec("INSERT INTO session").WithArgs("p", KeyUserID, "u1").WillReturnError(boom)
	assert.ErrorIs(t, s.Set(ctx, KeyUserID, "u1"), boom)

	mock.ExpectExec("DELETE FROM session").WithArgs("p", KeyUserID).WillReturnError(boom)
	assert.ErrorIs(t, s.Remove(ctx, KeyUserID), boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorageGetMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM session").
		WithArgs("p", KeyUserName).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, err := NewSQLiteStorage(db, "p").Get(context.Background(), KeyUserName)
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}
