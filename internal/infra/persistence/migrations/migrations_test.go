package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, mock
}

func stubGoose(t *testing.T, target *func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error, err error) *string {
	t.Helper()

	var gotDir string
	orig := *target
	*target = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return err
	}
	t.Cleanup(func() { *target = orig })

	return &gotDir
}

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(files, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	content, err := fs.ReadFile(files, "sql/00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "-- +goose Down")
	assert.Contains(t, string(content), "users_username_key UNIQUE (username)")
}

func TestMigrator_Up(t *testing.T) {
	db, _ := newMockDB(t)
	gotDir := stubGoose(t, &gooseUp, nil)

	err := New(db, nil).Up(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dir, *gotDir)
}

func TestMigrator_UpError(t *testing.T) {
	db, _ := newMockDB(t)
	stubGoose(t, &gooseUp, errors.New("boom"))

	err := New(db, nil).Up(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply migrations")
	assert.Contains(t, err.Error(), "boom")
}

func TestMigrator_DownResetStatus(t *testing.T) {
	db, _ := newMockDB(t)
	downDir := stubGoose(t, &gooseDown, nil)
	resetDir := stubGoose(t, &gooseReset, nil)
	statusDir := stubGoose(t, &gooseStatus, errors.New("no table"))

	m := New(db, nil)

	require.NoError(t, m.Down(context.Background()))
	require.NoError(t, m.Reset(context.Background()))
	err := m.Status(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration status")
	assert.Equal(t, dir, *downDir)
	assert.Equal(t, dir, *resetDir)
	assert.Equal(t, dir, *statusDir)
}

func TestMigrator_Truncate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("TRUNCATE TABLE users CASCADE").WillReturnResult(sqlmock.NewResult(0, 0))

	err := New(db, nil).Truncate(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_TruncateError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("TRUNCATE TABLE users CASCADE").WillReturnError(errors.New("permission denied"))

	err := New(db, nil).Truncate(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncate users")
}
