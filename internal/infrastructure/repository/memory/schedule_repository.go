package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
)

type ScheduleRepository struct {
	store *Store
}

func (r *ScheduleRepository) Create(_ context.Context, item schedule.Schedule) (schedule.Schedule, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, eventOK := s.events[item.EventID]
	_, bracketOK := s.brackets[item.BracketID]
	m, matchOK := s.matches[item.MatchID]
	if !eventOK || !bracketOK || !matchOK {
		return schedule.Schedule{}, fmt.Errorf("%w: event=%d bracket=%d match=%d", schedule.ErrInvalidReference, item.EventID, item.BracketID, item.MatchID)
	}
	for _, existing := range s.schedules {
		if existing.MatchID == item.MatchID {
			return schedule.Schedule{}, fmt.Errorf("%w: match=%d", schedule.ErrAlreadyScheduled, item.MatchID)
		}
	}

	at, err := time.Parse(match.TimestampLayout, item.Slot.ScheduledAt())
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("parse scheduled_at: %w", err)
	}

	now := s.now().UTC()
	item.ID = s.nextID("schedules")
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Description != nil {
		desc := *item.Description
		item.Description = &desc
	}

	m.ScheduledAt = &at
	s.matches[m.ID] = m
	s.schedules[item.ID] = item
	return item, nil
}

func (r *ScheduleRepository) GetDetail(_ context.Context, scheduleID int64) (schedule.Detail, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.schedules[scheduleID]
	if !ok {
		return schedule.Detail{}, false, nil
	}
	return s.detailLocked(item), true, nil
}

func (r *ScheduleRepository) ListDetails(_ context.Context) ([]schedule.Detail, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schedule.Detail, 0, len(s.schedules))
	for _, id := range sortedKeys(s.schedules) {
		out = append(out, s.detailLocked(s.schedules[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Slot.Date != out[j].Slot.Date {
			return out[i].Slot.Date < out[j].Slot.Date
		}
		return out[i].Slot.Time < out[j].Slot.Time
	})
	return out, nil
}

func (r *ScheduleRepository) Cancel(_ context.Context, scheduleID int64) (int64, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.schedules[scheduleID]
	if !ok {
		return 0, false, nil
	}
	if m, ok := s.matches[item.MatchID]; ok {
		m.ScheduledAt = nil
		s.matches[m.ID] = m
	}
	delete(s.schedules, scheduleID)
	return item.MatchID, true, nil
}

func (s *Store) detailLocked(item schedule.Schedule) schedule.Detail {
	out := schedule.Detail{Schedule: item}
	if item.Description != nil {
		desc := *item.Description
		out.Description = &desc
	}
	out.EventName = s.events[item.EventID].Name
	if b, ok := s.brackets[item.BracketID]; ok {
		out.BracketName = b.Name
		out.SportType = b.SportType
	}
	if m, ok := s.matches[item.MatchID]; ok {
		out.Round = m.Round
		if m.Team1ID != nil {
			out.Team1Name = s.teams[*m.Team1ID].Name
		}
		if m.Team2ID != nil {
			out.Team2Name = s.teams[*m.Team2ID].Name
		}
	}
	return out
}
