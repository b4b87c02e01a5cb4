// Package db embeds the SQL migrations for every supported driver and applies
// them with golang-migrate.
package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	migrationsTable = "schema_migrations"
)

//go:embed migrations/postgres/*.sql migrations/sqlite3/*.sql
var migrationFS embed.FS

// Source returns the migration source for the given driver.
func Source(driver string) (source.Driver, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}

	src, err := iofs.New(migrationFS, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return src, nil
}

// NewMigrator builds a migrator on top of an already opened connection.
// Closing the migrator closes the connection as well.
func NewMigrator(conn *sql.DB, driver string) (*migrate.Migrate, error) {
	if conn == nil {
		return nil, fmt.Errorf("migration connection is required")
	}

	src, err := Source(driver)
	if err != nil {
		return nil, err
	}

	var target database.Driver
	switch driver {
	case DriverPostgres:
		target, err = postgres.WithInstance(conn, &postgres.Config{MigrationsTable: migrationsTable})
	case DriverSQLite:
		target, err = sqlite3.WithInstance(conn, &sqlite3.Config{MigrationsTable: migrationsTable})
	}
	if err != nil {
		return nil, fmt.Errorf("init %s migration driver: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// Up applies every pending migration. The connection stays open.
func Up(conn *sql.DB, driver string) error {
	m, err := NewMigrator(conn, driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
