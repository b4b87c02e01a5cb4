package sqlstore

import (
	"database/sql"
	"time"
)

type scheduleInsertModel struct {
	EventID       int64          `db:"event_id"`
	BracketID     int64          `db:"bracket_id"`
	MatchID       int64          `db:"match_id"`
	ScheduledDate string         `db:"scheduled_date"`
	ScheduledTime string         `db:"scheduled_time"`
	Venue         string         `db:"venue"`
	Description   sql.NullString `db:"description"`
}

type scheduleDetailRow struct {
	ID            int64          `db:"id"`
	EventID       int64          `db:"event_id"`
	BracketID     int64          `db:"bracket_id"`
	MatchID       int64          `db:"match_id"`
	ScheduledDate time.Time      `db:"scheduled_date"`
	ScheduledTime string         `db:"scheduled_time"`
	Venue         string         `db:"venue"`
	Description   sql.NullString `db:"description"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	EventName     string         `db:"event_name"`
	BracketName   string         `db:"bracket_name"`
	SportType     string         `db:"sport_type"`
	Round         int            `db:"round"`
	Team1Name     sql.NullString `db:"team1_name"`
	Team2Name     sql.NullString `db:"team2_name"`
}
