// Package memory keeps every table in process behind one lock. It honours the
// same uniqueness and reference rules as the SQL store.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/tournament-ops/internal/domain/bracket"
	"github.com/riskibarqy/tournament-ops/internal/domain/event"
	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/membership"
	"github.com/riskibarqy/tournament-ops/internal/domain/player"
	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
	"github.com/riskibarqy/tournament-ops/internal/domain/team"
)

type statKey struct {
	playerID int64
	matchID  int64
}

type statRow struct {
	id     int64
	values map[string]int64
}

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	lastID map[string]int64

	events      map[int64]event.Event
	teams       map[int64]team.Team
	brackets    map[int64]bracket.Bracket
	matches     map[int64]match.Match
	players     map[int64]player.Player
	memberships map[int64]membership.Membership
	schedules   map[int64]schedule.Schedule
	stats       map[statKey]statRow
}

func NewStore(seed Seed) *Store {
	s := &Store{
		now:         time.Now,
		lastID:      make(map[string]int64),
		events:      make(map[int64]event.Event),
		teams:       make(map[int64]team.Team),
		brackets:    make(map[int64]bracket.Bracket),
		matches:     make(map[int64]match.Match),
		players:     make(map[int64]player.Player),
		memberships: make(map[int64]membership.Membership),
		schedules:   make(map[int64]schedule.Schedule),
		stats:       make(map[statKey]statRow),
	}

	for _, item := range seed.Events {
		s.events[item.ID] = item
		s.bumpID("events", item.ID)
	}
	for _, item := range seed.Teams {
		s.teams[item.ID] = item
		s.bumpID("teams", item.ID)
	}
	for _, item := range seed.Brackets {
		if item.EliminationType == "" {
			item.EliminationType = bracket.EliminationSingle
		}
		s.brackets[item.ID] = item
		s.bumpID("brackets", item.ID)
	}
	for _, item := range seed.Matches {
		if item.Round == 0 {
			item.Round = 1
		}
		item.Status = match.NormalizeStatus(item.Status)
		s.matches[item.ID] = item
		s.bumpID("matches", item.ID)
	}
	for _, item := range seed.Players {
		s.players[item.ID] = item
		s.bumpID("players", item.ID)
	}

	return s
}

// Teams, Brackets, ... return repository views over the shared store.

func (s *Store) Teams() *TeamRepository { return &TeamRepository{store: s} }

func (s *Store) Brackets() *BracketRepository { return &BracketRepository{store: s} }

func (s *Store) Matches() *MatchRepository { return &MatchRepository{store: s} }

func (s *Store) Players() *PlayerRepository { return &PlayerRepository{store: s} }

func (s *Store) Memberships() *MembershipRepository { return &MembershipRepository{store: s} }

func (s *Store) Schedules() *ScheduleRepository { return &ScheduleRepository{store: s} }

func (s *Store) Standings() *StandingRepository { return &StandingRepository{store: s} }

func (s *Store) PlayerStats() *PlayerStatsRepository { return &PlayerStatsRepository{store: s} }

func (s *Store) nextID(table string) int64 {
	s.lastID[table]++
	return s.lastID[table]
}

func (s *Store) bumpID(table string, id int64) {
	if id > s.lastID[table] {
		s.lastID[table] = id
	}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
