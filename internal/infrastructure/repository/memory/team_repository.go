package memory

import (
	"context"

	"github.com/riskibarqy/tournament-ops/internal/domain/bracket"
	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	return item, ok, nil
}

type BracketRepository struct {
	store *Store
}

func (r *BracketRepository) GetByID(_ context.Context, bracketID int64) (bracket.Bracket, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.brackets[bracketID]
	return item, ok, nil
}

type MatchRepository struct {
	store *Store
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[matchID]
	if ok && item.ScheduledAt != nil {
		at := *item.ScheduledAt
		item.ScheduledAt = &at
	}
	return item, ok, nil
}
