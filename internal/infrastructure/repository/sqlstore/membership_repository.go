package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/internal/domain/membership"
	"github.com/riskibarqy/tournament-ops/internal/domain/team"
	qb "github.com/riskibarqy/tournament-ops/internal/platform/querybuilder"
)

type MembershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(ctx context.Context, bracketID, teamID int64) (membership.Membership, error) {
	query, args, err := qb.InsertModel("bracket_teams", membershipTableModel{
		BracketID: bracketID,
		TeamID:    teamID,
	}, "RETURNING id")
	if err != nil {
		return membership.Membership{}, fmt.Errorf("build insert bracket team query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		switch {
		case isUniqueViolation(err):
			return membership.Membership{}, fmt.Errorf("%w: bracket=%d team=%d", membership.ErrDuplicate, bracketID, teamID)
		case isForeignKeyViolation(err):
			return membership.Membership{}, fmt.Errorf("%w: bracket=%d team=%d", membership.ErrInvalidReference, bracketID, teamID)
		}
		return membership.Membership{}, fmt.Errorf("insert bracket team: %w", err)
	}

	return membership.Membership{ID: id, BracketID: bracketID, TeamID: teamID}, nil
}

func (r *MembershipRepository) ListTeamsByBracket(ctx context.Context, bracketID int64) ([]membership.TeamEntry, error) {
	query, args, err := qb.Select(
		"bt.id AS membership_id",
		"bt.bracket_id",
		"t.id AS team_id",
		"t.name AS team_name",
		"t.sport AS team_sport",
	).
		From("bracket_teams bt").
		Join("teams t", qb.Expr("t.id = bt.team_id")).
		Where(qb.Eq("bt.bracket_id", bracketID)).
		OrderBy("bt.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bracket teams query: %w", err)
	}

	var rows []bracketTeamRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bracket teams: %w", err)
	}

	out := make([]membership.TeamEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, membership.TeamEntry{
			MembershipID: row.MembershipID,
			BracketID:    row.BracketID,
			Team: team.Team{
				ID:    row.TeamID,
				Name:  row.TeamName,
				Sport: row.TeamSport,
			},
		})
	}

	return out, nil
}

func (r *MembershipRepository) Delete(ctx context.Context, membershipID int64) (bool, error) {
	query, args, err := qb.DeleteFrom("bracket_teams").
		Where(qb.Eq("id", membershipID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete bracket team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete bracket team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete bracket team rows affected: %w", err)
	}

	return affected > 0, nil
}
