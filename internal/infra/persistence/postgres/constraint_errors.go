package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	uniqueViolationCode  = "23505"
	notNullViolationCode = "23502"
	// string_data_right_truncation: a value wider than its varchar column.
	stringTooLongCode = "22001"
)

func isUniqueConstraintViolation(err error) bool {
	// Only reported when the connection was opened with TranslateError.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == notNullViolationCode
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, "not null")
}

func isStringTooLong(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == stringTooLongCode
	}

	return false
}
