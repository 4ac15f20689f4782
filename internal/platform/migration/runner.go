// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the creator catalogue schema with golang-migrate.
//
// It runs at startup (unless RUN_MIGRATIONS=false, when ingestion owns the
// schema) and from the integration tests against a throwaway database.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const pgx5Scheme = "pgx5://"

/*
RunUp applies every pending UP migration found in migrationsPath.

Description: A dirty schema (a previous run failed halfway) is reported and
left alone; it needs a manual fix. Running against an up-to-date schema is a
no-op. When ctx ends first, RunUp returns its error and asks golang-migrate to
stop after the migration in progress.

Parameters:
  - ctx: context.Context (bounds connecting and migrating)
  - dsn: postgres:// or postgresql:// URL (pgx5:// is accepted as is)
  - migrationsPath: Directory of NNNNNN_name.up.sql / .down.sql files, relative paths allowed
  - logger: *slog.Logger

Returns:
  - error: Initialisation, dirty state, migration failures or ctx.Err()
*/
func RunUp(ctx context.Context, dsn string, migrationsPath string, logger *slog.Logger) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("migration: %w", err)
	}

	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- runUp(dsn, migrationsPath, logger, stop)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		close(stop)
		logger.Warn("migration_interrupted", slog.Any("error", ctx.Err()))
		return fmt.Errorf("migration: %w", ctx.Err())
	}
}

func runUp(dsn, migrationsPath string, logger *slog.Logger, stop <-chan struct{}) error {
	migrator, err := open(dsn, migrationsPath)
	if err != nil {
		return err
	}

	finished := make(chan struct{})
	defer func() {
		close(finished)
		sourceErr, databaseErr := migrator.Close()
		if err := errors.Join(sourceErr, databaseErr); err != nil {
			logger.Error("migration_close_failed", slog.Any("error", err))
		}
	}()

	go func() {
		select {
		case <-stop:
			migrator.GracefulStop <- true
		case <-finished:
		}
	}()

	migrator.Log = &migrateLogger{logger: logger}

	fromVersion, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		fromVersion = 0
	case err != nil:
		return fmt.Errorf("migration: read version: %w", err)
	case dirty:
		return fmt.Errorf("migration: schema is dirty at version %d", fromVersion)
	}

	logger.Info("migration_started", slog.Uint64("current_version", uint64(fromVersion)))

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up: %w", err)
	}

	toVersion, _, _ := migrator.Version()
	logger.Info("migration_successful",
		slog.Uint64("from_version", uint64(fromVersion)),
		slog.Uint64("to_version", uint64(toVersion)),
	)
	return nil
}

func open(dsn, migrationsPath string) (*migrate.Migrate, error) {
	directory, err := filepath.Abs(migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("migration: resolve path %q: %w", migrationsPath, err)
	}

	migrator, err := migrate.New("file://"+filepath.ToSlash(directory), pgx5DSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("migration: initialize: %w", err)
	}
	return migrator, nil
}

// pgx5DSN rewrites a postgres URL to the scheme the pgx/v5 driver registers.
// Anything else (e.g. a keyword/value DSN) is returned unchanged.
func pgx5DSN(dsn string) string {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(dsn, scheme); found {
			return pgx5Scheme + rest
		}
	}
	return dsn
}

// migrateLogger forwards golang-migrate output to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("migration_progress", slog.String("detail", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
