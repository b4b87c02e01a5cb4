package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	qb "github.com/riskibarqy/tournament-ops/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select(
		"id", "bracket_id", "round", "bracket_type",
		"team1_id", "team2_id", "winner_id", "status", "scheduled_at",
	).
		From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	out := match.Match{
		ID:          row.ID,
		BracketID:   row.BracketID,
		Round:       row.Round,
		BracketType: row.BracketType,
		Team1ID:     nullInt64Ptr(row.Team1ID),
		Team2ID:     nullInt64Ptr(row.Team2ID),
		WinnerID:    nullInt64Ptr(row.WinnerID),
		Status:      match.NormalizeStatus(row.Status),
	}
	if row.ScheduledAt.Valid {
		at := row.ScheduledAt.Time
		out.ScheduledAt = &at
	}
	return out, true, nil
}
