package app

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/db"
	"github.com/riskibarqy/tournament-ops/internal/config"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	dbPingTimeout        = 5 * time.Second
	maxTracedQueryLength = 512
)

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// openDB opens a traced sqlx pool for the configured driver and applies
// migrations when DB_AUTO_MIGRATE is set.
func openDB(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dsn := cfg.DBURL
	system := "sqlite"
	if cfg.DBDriver == config.DBDriverPostgres {
		dsn = normalizeDBURL(dsn, cfg.DBDisablePreparedBinary)
		system = "postgresql"
	}

	conn, err := otelsqlx.Open(cfg.DBDriver, dsn,
		otelsql.WithDBSystem(system),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	maxOpen := cfg.DBMaxOpenConns
	if cfg.DBDriver == config.DBDriverSQLite {
		// go-sqlite3 allows a single writer at a time.
		maxOpen = 1
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(cfg.DBMaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBAutoMigrate {
		if err := db.Up(conn.DB, cfg.DBDriver); err != nil {
			_ = conn.Close()
			return nil, err
		}
		logger.Info("database migrations applied", "db_driver", cfg.DBDriver)
	}

	logger.Info("database connected",
		"db_driver", cfg.DBDriver,
		"db_name", dbNameFromURL(dsn),
		"max_open_conns", maxOpen,
	)
	return conn, nil
}

// formatDBQueryForTrace collapses querybuilder output onto one line for span
// attributes.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
