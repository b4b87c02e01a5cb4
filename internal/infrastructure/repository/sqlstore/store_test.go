package sqlstore

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/db"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.Up(conn.DB, db.DriverSQLite))
	return conn
}

func insertID(t *testing.T, conn *sqlx.DB, query string, args ...any) int64 {
	t.Helper()

	var id int64
	require.NoError(t, conn.QueryRowxContext(context.Background(), query+" RETURNING id", args...).Scan(&id))
	return id
}

func seedEvent(t *testing.T, conn *sqlx.DB, name string) int64 {
	return insertID(t, conn, "INSERT INTO events (name) VALUES (?)", name)
}

func seedTeam(t *testing.T, conn *sqlx.DB, name, sport string) int64 {
	return insertID(t, conn, "INSERT INTO teams (name, sport) VALUES (?, ?)", name, sport)
}

func seedBracket(t *testing.T, conn *sqlx.DB, eventID int64, name, sport string) int64 {
	return insertID(t, conn, "INSERT INTO brackets (event_id, name, sport_type) VALUES (?, ?, ?)", eventID, name, sport)
}

func seedMatch(t *testing.T, conn *sqlx.DB, bracketID int64, team1, team2, winner *int64, status string) int64 {
	return insertID(t, conn,
		"INSERT INTO matches (bracket_id, team1_id, team2_id, winner_id, status) VALUES (?, ?, ?, ?, ?)",
		bracketID, team1, team2, winner, status,
	)
}

func seedPlayer(t *testing.T, conn *sqlx.DB, teamID int64, name string) int64 {
	return insertID(t, conn, "INSERT INTO players (team_id, name) VALUES (?, ?)", teamID, name)
}

func countRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, conn.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func ptr[T any](v T) *T {
	return &v
}
