// Package migrations applies the embedded SQL schema through goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"gatehouse/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

const (
	dir     = "sql"
	dialect = "postgres"
)

// Tables lists every table owned by the schema, in truncation order.
var Tables = []string{"users"}

// goose keeps its FS and dialect in package state.
var setupOnce sync.Once

// Seams for the goose entry points.
var (
	gooseUp     = goose.UpContext
	gooseDown   = goose.DownContext
	gooseReset  = goose.ResetContext
	gooseStatus = goose.StatusContext
)

// Migrator runs schema migrations against a database handle.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}

	setupOnce.Do(func() {
		goose.SetBaseFS(files)
		goose.SetLogger(&gooseLogger{logger: logger})
		// The dialect is a constant known to goose.
		_ = goose.SetDialect(dialect)
	})

	return &Migrator{db: db, logger: logger}
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	if err := gooseUp(ctx, m.db, dir); err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	m.logger.Info("Migrations applied")

	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	if err := gooseDown(ctx, m.db, dir); err != nil {
		return errors.Wrap(err, "roll back migration")
	}
	m.logger.Info("Migration rolled back")

	return nil
}

// Reset rolls back every applied migration.
func (m *Migrator) Reset(ctx context.Context) error {
	if err := gooseReset(ctx, m.db, dir); err != nil {
		return errors.Wrap(err, "reset migrations")
	}
	m.logger.Info("Migrations reset")

	return nil
}

// Status logs the applied state of every migration.
func (m *Migrator) Status(ctx context.Context) error {
	if err := gooseStatus(ctx, m.db, dir); err != nil {
		return errors.Wrap(err, "migration status")
	}

	return nil
}

// Truncate empties every schema table while keeping the schema in place.
func (m *Migrator) Truncate(ctx context.Context) error {
	for _, table := range Tables {
		if _, err := m.db.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return errors.Wrapf(err, "truncate %s", table)
		}
		m.logger.Info("Table truncated", slog.String("table", table))
	}

	return nil
}

type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...), slog.String("component", "goose"))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "goose"))
}
