package memory

import (
	"github.com/riskibarqy/tournament-ops/internal/domain/bracket"
	"github.com/riskibarqy/tournament-ops/internal/domain/event"
	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/player"
	"github.com/riskibarqy/tournament-ops/internal/domain/team"
)

// Seed is the read-only data the store starts from. Ids must be unique per
// table; rows created later continue after the highest seeded id.
type Seed struct {
	Events   []event.Event
	Teams    []team.Team
	Brackets []bracket.Bracket
	Matches  []match.Match
	Players  []player.Player
}

// DemoSeed is a small two-sport tournament used when DB_DRIVER=memory.
func DemoSeed() Seed {
	eventID := int64(1)
	falcons, hoopers, spikers, diggers := int64(1), int64(2), int64(3), int64(4)
	jersey := func(n int) *int { return &n }

	return Seed{
		Events: []event.Event{
			{ID: eventID, Name: "Spring Invitational"},
		},
		Teams: []team.Team{
			{ID: falcons, Name: "Falcons", Sport: "basketball"},
			{ID: hoopers, Name: "Hoopers", Sport: "basketball"},
			{ID: spikers, Name: "Spikers", Sport: "volleyball"},
			{ID: diggers, Name: "Diggers", Sport: "volleyball"},
		},
		Brackets: []bracket.Bracket{
			{ID: 1, EventID: &eventID, Name: "Basketball Open", SportType: "basketball", EliminationType: bracket.EliminationSingle},
			{ID: 2, EventID: &eventID, Name: "Volleyball Open", SportType: "volleyball", EliminationType: bracket.EliminationDouble},
		},
		Matches: []match.Match{
			{ID: 1, BracketID: 1, Round: 1, BracketType: "winners", Team1ID: &falcons, Team2ID: &hoopers, WinnerID: &falcons, Status: match.StatusCompleted},
			{ID: 2, BracketID: 1, Round: 2, BracketType: "winners", Team1ID: &falcons, Team2ID: &hoopers, Status: match.StatusPending},
			{ID: 3, BracketID: 2, Round: 1, BracketType: "winners", Team1ID: &spikers, Team2ID: &diggers, WinnerID: &diggers, Status: match.StatusCompleted},
			{ID: 4, BracketID: 2, Round: 2, BracketType: "losers", Status: match.StatusPending},
		},
		Players: []player.Player{
			{ID: 1, TeamID: falcons, Name: "Ana Reyes", Position: "guard", JerseyNumber: jersey(7)},
			{ID: 2, TeamID: falcons, Name: "Bo Lind", Position: "center", JerseyNumber: jersey(12)},
			{ID: 3, TeamID: hoopers, Name: "Cy Park", Position: "forward"},
			{ID: 4, TeamID: spikers, Name: "Dee Moss", Position: "setter", JerseyNumber: jersey(3)},
			{ID: 5, TeamID: diggers, Name: "Eli Stone", Position: "libero"},
		},
	}
}
