package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/tournament-ops/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	store *Store
}

func (r *PlayerStatsRepository) Upsert(_ context.Context, line playerstats.Line) (int64, error) {
	if line.Counters == nil {
		return 0, fmt.Errorf("upsert player stats: counters are required")
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, playerOK := s.players[line.PlayerID]
	_, matchOK := s.matches[line.MatchID]
	if !playerOK || !matchOK {
		return 0, fmt.Errorf("%w: player=%d match=%d", playerstats.ErrInvalidReference, line.PlayerID, line.MatchID)
	}

	values := line.Counters.Values()
	for _, v := range values {
		if v.Value < 0 {
			return 0, fmt.Errorf("%w: %s=%d", playerstats.ErrNegativeCounter, v.Name, v.Value)
		}
	}

	key := statKey{playerID: line.PlayerID, matchID: line.MatchID}
	row, ok := s.stats[key]
	if !ok {
		row = statRow{id: s.nextID("player_stats"), values: make(map[string]int64)}
	}
	for _, v := range values {
		row.values[v.Name] = v.Value
	}
	s.stats[key] = row
	return row.id, nil
}

func (r *PlayerStatsRepository) SummarizeByTeam(_ context.Context, teamID int64, family playerstats.Family) ([]playerstats.Summary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := playerstats.CounterNames(family)
	out := make([]playerstats.Summary, 0)
	for _, playerID := range sortedKeys(s.players) {
		p := s.players[playerID]
		if p.TeamID != teamID {
			continue
		}

		totals := make(map[string]int64, len(names))
		games := 0
		for key, row := range s.stats {
			if key.playerID != p.ID || !s.matches[key.matchID].IsCompleted() {
				continue
			}
			games++
			for _, name := range names {
				totals[name] += row.values[name]
			}
		}

		counters, err := playerstats.NewCounters(family, totals)
		if err != nil {
			return nil, fmt.Errorf("decode player %d counters: %w", p.ID, err)
		}
		out = append(out, playerstats.Summary{Player: p, GamesPlayed: games, Counters: counters})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Player.Name < out[j].Player.Name
	})
	return out, nil
}
