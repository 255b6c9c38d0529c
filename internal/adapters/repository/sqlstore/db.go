// Package sqlstore persists users, polls and submissions in a SQL database.
// The same queries run against the embedded SQLite driver and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Open connects to the database and verifies the connection. SQLite
// connections are limited to one so that writes are serialized.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		dsn = sqliteDSN(dsn)
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func sqliteDSN(dsn string) string {
	params := []string{
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
		"_time_format=sqlite",
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// MigrationNames lists the embedded migration files in apply order.
func MigrationNames(direction string) ([]string, error) {
	names, err := fs.Glob(migrationFiles, "migrations/*."+direction+".sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	for i, name := range names {
		names[i] = strings.TrimPrefix(name, "migrations/")
	}
	return names, nil
}

// ApplyMigration executes a single embedded migration file.
func ApplyMigration(ctx context.Context, db *sql.DB, name string) error {
	content, err := migrationFiles.ReadFile("migrations/" + name)
	if err != nil {
		return fmt.Errorf("migration %s not found: %w", name, err)
	}
	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to apply migration %s: %w", name, err)
	}
	return nil
}

// Migrate applies every up migration. The schema uses IF NOT EXISTS
// throughout so running it against an initialized database is a no-op.
func Migrate(ctx context.Context, db *sql.DB) error {
	names, err := MigrationNames("up")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	for _, name := range names {
		if err := ApplyMigration(ctx, db, name); err != nil {
			return err
		}
		slog.Debug("migration applied", "name", name)
	}
	return nil
}

// storageError classifies a driver error. Unique and primary key violations
// become domain.ErrDuplicateKey, everything else domain.ErrStorageUnavailable.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrDuplicateKey, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			msg := liteErr.Error()
			return strings.Contains(msg, "UNIQUE constraint failed")
		}
	}
	return false
}
