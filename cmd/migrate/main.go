package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatehouse/config"
	"gatehouse/internal/errors"
	logs "gatehouse/internal/infra/log"
	"gatehouse/internal/infra/persistence/migrations"
	"gatehouse/internal/infra/persistence/postgres"
)

// Supported subcommands:
// - up:       apply pending migrations
// - down:     roll back the latest migration
// - reset:    roll back every migration
// - status:   print migration state
// - truncate: empty every table, keeping the schema

type command func(ctx context.Context, m *migrations.Migrator) error

var commands = map[string]command{
	"up":       func(ctx context.Context, m *migrations.Migrator) error { return m.Up(ctx) },
	"down":     func(ctx context.Context, m *migrations.Migrator) error { return m.Down(ctx) },
	"reset":    func(ctx context.Context, m *migrations.Migrator) error { return m.Reset(ctx) },
	"status":   func(ctx context.Context, m *migrations.Migrator) error { return m.Status(ctx) },
	"truncate": func(ctx context.Context, m *migrations.Migrator) error { return m.Truncate(ctx) },
}

func main() {
	flags := flag.NewFlagSet("migrate", flag.ExitOnError)
	timeout := flags.Duration("timeout", 2*time.Minute, "Upper bound for the whole operation")
	flags.Usage = printUsage

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	_ = flags.Parse(os.Args[2:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := execute(ctx, run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, run command) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	defer sqlDB.Close()

	return run(ctx, migrations.New(sqlDB, logger))
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate <command> [-timeout 2m]

Commands:
  up        Apply all pending migrations
  down      Roll back the most recent migration
  reset     Roll back every applied migration
  status    Show the state of each migration
  truncate  Remove all rows from every table, keeping the schema

Configuration is read from config/config.yaml and environment overrides (POSTGRES_*).
`)
}
