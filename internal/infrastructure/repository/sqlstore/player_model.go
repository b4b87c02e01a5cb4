package sqlstore

import "database/sql"

type playerTableModel struct {
	ID           int64          `db:"id,readonly"`
	TeamID       int64          `db:"team_id"`
	Name         string         `db:"name"`
	Position     sql.NullString `db:"position"`
	JerseyNumber sql.NullInt64  `db:"jersey_number"`
}
