package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/internal/domain/bracket"
	qb "github.com/riskibarqy/tournament-ops/internal/platform/querybuilder"
)

type BracketRepository struct {
	db *sqlx.DB
}

func NewBracketRepository(db *sqlx.DB) *BracketRepository {
	return &BracketRepository{db: db}
}

func (r *BracketRepository) GetByID(ctx context.Context, bracketID int64) (bracket.Bracket, bool, error) {
	query, args, err := qb.Select("id", "event_id", "name", "sport_type", "elimination_type").
		From("brackets").
		Where(qb.Eq("id", bracketID)).
		ToSQL()
	if err != nil {
		return bracket.Bracket{}, false, fmt.Errorf("build select bracket by id query: %w", err)
	}

	var row bracketTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return bracket.Bracket{}, false, nil
		}
		return bracket.Bracket{}, false, fmt.Errorf("select bracket by id: %w", err)
	}

	return bracket.Bracket{
		ID:              row.ID,
		EventID:         nullInt64Ptr(row.EventID),
		Name:            row.Name,
		SportType:       row.SportType,
		EliminationType: row.EliminationType,
	}, true, nil
}
