package sqlstore

import "database/sql"

type bracketTableModel struct {
	ID              int64         `db:"id,readonly"`
	EventID         sql.NullInt64 `db:"event_id"`
	Name            string        `db:"name"`
	SportType       string        `db:"sport_type"`
	EliminationType string        `db:"elimination_type"`
}
