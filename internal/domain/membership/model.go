package membership

import (
	"errors"

	"github.com/riskibarqy/tournament-ops/internal/domain/team"
)

var (
	// ErrDuplicate is returned when the team already belongs to the bracket.
	ErrDuplicate = errors.New("team already assigned to bracket")
	// ErrInvalidReference is returned when the bracket or team does not exist.
	ErrInvalidReference = errors.New("bracket or team does not exist")
)

// Membership registers one team in one bracket. It is never updated in place.
type Membership struct {
	ID        int64
	BracketID int64
	TeamID    int64
}

// TeamEntry is a bracket member as listed for the bracket.
type TeamEntry struct {
	MembershipID int64
	BracketID    int64
	Team         team.Team
}
