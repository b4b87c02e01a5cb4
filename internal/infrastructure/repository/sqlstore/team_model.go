package sqlstore

import "time"

type teamTableModel struct {
	ID        int64     `db:"id,readonly"`
	Name      string    `db:"name"`
	Sport     string    `db:"sport"`
	CreatedAt time.Time `db:"created_at,readonly"`
}
