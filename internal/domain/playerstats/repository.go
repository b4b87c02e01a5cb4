package playerstats

import "context"

type Repository interface {
	// Upsert stores at most one line per (player, match); a second write for the
	// same pair replaces the counters.
	Upsert(ctx context.Context, line Line) (int64, error)
	// SummarizeByTeam rolls up every player of the team over completed matches,
	// ordered by player name. Players without lines get zero counters.
	SummarizeByTeam(ctx context.Context, teamID int64, family Family) ([]Summary, error)
}
