package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/playerstats"
	qb "github.com/riskibarqy/tournament-ops/internal/platform/querybuilder"
)

// allCounterColumns is every counter column of player_stats, across families.
var allCounterColumns = append(
	playerstats.CounterNames(playerstats.FamilyCourt),
	playerstats.CounterNames(playerstats.FamilyNet)...,
)

type playerSummaryRow struct {
	playerTableModel
	GamesPlayed int `db:"games_played"`

	Points          int64 `db:"points"`
	Assists         int64 `db:"assists"`
	Rebounds        int64 `db:"rebounds"`
	ThreePointers   int64 `db:"three_pointers"`
	Steals          int64 `db:"steals"`
	Blocks          int64 `db:"blocks"`
	Fouls           int64 `db:"fouls"`
	Turnovers       int64 `db:"turnovers"`
	Kills           int64 `db:"kills"`
	AttackAttempts  int64 `db:"attack_attempts"`
	AttackErrors    int64 `db:"attack_errors"`
	ServiceAces     int64 `db:"service_aces"`
	ServiceErrors   int64 `db:"service_errors"`
	Digs            int64 `db:"digs"`
	Receptions      int64 `db:"receptions"`
	ReceptionErrors int64 `db:"reception_errors"`
}

func (r playerSummaryRow) totals() map[string]int64 {
	return map[string]int64{
		"points":           r.Points,
		"assists":          r.Assists,
		"rebounds":         r.Rebounds,
		"three_pointers":   r.ThreePointers,
		"steals":           r.Steals,
		"blocks":           r.Blocks,
		"fouls":            r.Fouls,
		"turnovers":        r.Turnovers,
		"kills":            r.Kills,
		"attack_attempts":  r.AttackAttempts,
		"attack_errors":    r.AttackErrors,
		"service_aces":     r.ServiceAces,
		"service_errors":   r.ServiceErrors,
		"digs":             r.Digs,
		"receptions":       r.Receptions,
		"reception_errors": r.ReceptionErrors,
	}
}

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) Upsert(ctx context.Context, line playerstats.Line) (int64, error) {
	if line.Counters == nil {
		return 0, fmt.Errorf("upsert player stats: counters are required")
	}

	values := line.Counters.Values()
	columns := make([]string, 0, len(values)+2)
	args := make([]any, 0, len(values)+2)
	updates := make([]string, 0, len(values)+1)
	columns = append(columns, "player_id", "match_id")
	args = append(args, line.PlayerID, line.MatchID)
	for _, v := range values {
		columns = append(columns, v.Name)
		args = append(args, v.Value)
		updates = append(updates, v.Name+" = EXCLUDED."+v.Name)
	}
	updates = append(updates, "updated_at = CURRENT_TIMESTAMP")

	query, queryArgs, err := qb.InsertInto("player_stats").
		Columns(columns...).
		Values(args...).
		Suffix("ON CONFLICT (player_id, match_id) DO UPDATE SET " + strings.Join(updates, ", ") + " RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build upsert player stats query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, queryArgs...).Scan(&id); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return 0, fmt.Errorf("%w: player=%d match=%d", playerstats.ErrInvalidReference, line.PlayerID, line.MatchID)
		case isCheckViolation(err):
			return 0, fmt.Errorf("%w: player=%d match=%d", playerstats.ErrNegativeCounter, line.PlayerID, line.MatchID)
		}
		return 0, fmt.Errorf("upsert player stats: %w", err)
	}
	return id, nil
}

func (r *PlayerStatsRepository) SummarizeByTeam(ctx context.Context, teamID int64, family playerstats.Family) ([]playerstats.Summary, error) {
	columns := []string{
		"p.id", "p.team_id", "p.name", "p.position", "p.jersey_number",
		"COUNT(DISTINCT ps.match_id) AS games_played",
	}
	for _, name := range allCounterColumns {
		columns = append(columns, fmt.Sprintf("COALESCE(SUM(ps.%s), 0) AS %s", name, name))
	}

	query, args, err := qb.Select(columns...).
		From("players p").
		LeftJoin("player_stats ps", qb.Expr(
			"ps.player_id = p.id AND ps.match_id IN (SELECT id FROM matches WHERE LOWER(TRIM(status)) = ?)",
			match.StatusCompleted,
		)).
		Where(qb.Eq("p.team_id", teamID)).
		GroupBy("p.id", "p.team_id", "p.name", "p.position", "p.jersey_number").
		OrderBy("p.name", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build summarize player stats query: %w", err)
	}

	var rows []playerSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("summarize player stats: %w", err)
	}

	names := playerstats.CounterNames(family)
	out := make([]playerstats.Summary, 0, len(rows))
	for _, row := range rows {
		totals := row.totals()
		values := make(map[string]int64, len(names))
		for _, name := range names {
			values[name] = totals[name]
		}
		counters, err := playerstats.NewCounters(family, values)
		if err != nil {
			return nil, fmt.Errorf("decode player %d counters: %w", row.ID, err)
		}
		out = append(out, playerstats.Summary{
			Player:      playerFromRow(row.playerTableModel),
			GamesPlayed: row.GamesPlayed,
			Counters:    counters,
		})
	}
	return out, nil
}
