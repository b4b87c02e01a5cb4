package sqlstore

import "database/sql"

type matchTableModel struct {
	ID          int64         `db:"id,readonly"`
	BracketID   int64         `db:"bracket_id"`
	Round       int           `db:"round"`
	BracketType string        `db:"bracket_type"`
	Team1ID     sql.NullInt64 `db:"team1_id"`
	Team2ID     sql.NullInt64 `db:"team2_id"`
	WinnerID    sql.NullInt64 `db:"winner_id"`
	Status      string        `db:"status"`
	ScheduledAt sql.NullTime  `db:"scheduled_at"`
}
