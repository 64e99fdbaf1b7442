package postgres

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserMappers(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "testuser",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(id.String(), "alice", "$2a$10$hash", createdAt))

	user, err := repo.FindByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	user, err := repo.FindByUsername(context.Background(), "ghost")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByUsername_StoreError(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByUsername(context.Background(), "alice")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.NotErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	user := &entity.User{Username: "alice", PasswordHash: "$2a$10$hash"}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "duplicate username",
			dbErr:   &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_username_key"},
			wantErr: domainerrors.ErrUsernameTaken,
		},
		{
			name:    "missing column",
			dbErr:   &pgconn.PgError{Code: notNullViolationCode},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "username wider than column",
			dbErr:   &pgconn.PgError{Code: stringTooLongCode, Message: "value too long for type character varying(255)"},
			wantErr: domainerrors.ErrUsernameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockGorm(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).WillReturnError(tt.dbErr)

			err := repo.Create(context.Background(), &entity.User{Username: "alice", PasswordHash: "h"})

			assert.ErrorIs(t, err, tt.wantErr)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		})
	}
}

func TestUserRepository_Create_StoreError(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).WillReturnError(errors.New("disk full"))

	err := repo.Create(context.Background(), &entity.User{Username: "alice", PasswordHash: "h"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}
