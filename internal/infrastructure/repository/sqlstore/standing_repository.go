package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/standing"
	qb "github.com/riskibarqy/tournament-ops/internal/platform/querybuilder"
)

type standingRow struct {
	TeamID   int64  `db:"team_id"`
	TeamName string `db:"team_name"`
	Sport    string `db:"sport"`
	Wins     int    `db:"wins"`
	Losses   int    `db:"losses"`
}

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

// ListRecords counts wins and losses over completed matches. A match with no
// winner contributes to neither column.
func (r *StandingRepository) ListRecords(ctx context.Context) ([]standing.Record, error) {
	query, args, err := qb.Select(
		"t.id AS team_id",
		"t.name AS team_name",
		"t.sport",
		"COUNT(DISTINCT CASE WHEN m.winner_id = t.id THEN m.id END) AS wins",
		"COUNT(DISTINCT CASE WHEN m.winner_id IS NOT NULL AND m.winner_id <> t.id THEN m.id END) AS losses",
	).
		From("teams t").
		LeftJoin("matches m", qb.Expr(
			"(m.team1_id = t.id OR m.team2_id = t.id OR m.winner_id = t.id) AND LOWER(TRIM(m.status)) = ?",
			match.StatusCompleted,
		)).
		GroupBy("t.id", "t.name", "t.sport").
		OrderBy("t.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	var rows []standingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standing.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Record{
			TeamID:   row.TeamID,
			TeamName: row.TeamName,
			Sport:    row.Sport,
			Wins:     row.Wins,
			Losses:   row.Losses,
		})
	}
	return out, nil
}
