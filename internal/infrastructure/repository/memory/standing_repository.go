package memory

import (
	"context"

	"github.com/riskibarqy/tournament-ops/internal/domain/standing"
)

type StandingRepository struct {
	store *Store
}

func (r *StandingRepository) ListRecords(_ context.Context) ([]standing.Record, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]standing.Record, 0, len(s.teams))
	for _, teamID := range sortedKeys(s.teams) {
		t := s.teams[teamID]
		rec := standing.Record{TeamID: t.ID, TeamName: t.Name, Sport: t.Sport}
		for _, m := range s.matches {
			if !m.IsCompleted() || m.WinnerID == nil {
				continue
			}
			switch {
			case *m.WinnerID == t.ID:
				rec.Wins++
			case m.Involves(t.ID):
				rec.Losses++
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
