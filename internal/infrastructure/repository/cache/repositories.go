// Package cache decorates read-mostly repositories with the process-local
// TTL store.
package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/tournament-ops/internal/domain/standing"
	"github.com/riskibarqy/tournament-ops/internal/domain/team"
	basecache "github.com/riskibarqy/tournament-ops/internal/platform/cache"
)

const (
	teamKeyPrefix = "team:id:"
	standingKey   = "standing:records"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := teamKeyPrefix + strconv.FormatInt(teamID, 10)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedTeamByID, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return cachedTeamByID{}, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

// StandingRepository caches the win/loss records for the store TTL.
type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) ListRecords(ctx context.Context) ([]standing.Record, error) {
	items, err := basecache.Load(ctx, r.cache, standingKey, func(ctx context.Context) ([]standing.Record, error) {
		items, err := r.next.ListRecords(ctx)
		if err != nil {
			return nil, err
		}
		return append([]standing.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]standing.Record(nil), items...), nil
}
