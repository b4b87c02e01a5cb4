package playerstats

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/tournament-ops/internal/domain/player"
)

var (
	ErrUnknownCounter   = errors.New("unknown stat counter")
	ErrNegativeCounter  = errors.New("stat counter must not be negative")
	ErrInvalidReference = errors.New("player or match does not exist")
)

// Family selects which counter set a sport records.
type Family string

const (
	FamilyCourt Family = "court"
	FamilyNet   Family = "net"
)

var netSports = map[string]struct{}{
	"volleyball":         {},
	"beach_volleyball":   {},
	"sitting_volleyball": {},
	"sepak_takraw":       {},
	"badminton":          {},
	"tennis":             {},
	"table_tennis":       {},
}

// FamilyForSport maps a team sport tag to its counter family. Anything that is
// not a net sport records court counters.
func FamilyForSport(sport string) Family {
	key := strings.ToLower(strings.TrimSpace(sport))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if _, ok := netSports[key]; ok {
		return FamilyNet
	}
	return FamilyCourt
}

type Counter struct {
	Name  string
	Value int64
}

// Counters is one sport family's counter set.
type Counters interface {
	Family() Family
	// Values lists every counter of the family in storage order.
	Values() []Counter
}

type CourtCounters struct {
	Points        int64 `json:"points"`
	Assists       int64 `json:"assists"`
	Rebounds      int64 `json:"rebounds"`
	ThreePointers int64 `json:"three_pointers"`
	Steals        int64 `json:"steals"`
	Blocks        int64 `json:"blocks"`
	Fouls         int64 `json:"fouls"`
	Turnovers     int64 `json:"turnovers"`
}

func (CourtCounters) Family() Family { return FamilyCourt }

func (c CourtCounters) Values() []Counter {
	return []Counter{
		{"points", c.Points},
		{"assists", c.Assists},
		{"rebounds", c.Rebounds},
		{"three_pointers", c.ThreePointers},
		{"steals", c.Steals},
		{"blocks", c.Blocks},
		{"fouls", c.Fouls},
		{"turnovers", c.Turnovers},
	}
}

func (c *CourtCounters) set(name string, v int64) bool {
	switch name {
	case "points":
		c.Points = v
	case "assists":
		c.Assists = v
	case "rebounds":
		c.Rebounds = v
	case "three_pointers":
		c.ThreePointers = v
	case "steals":
		c.Steals = v
	case "blocks":
		c.Blocks = v
	case "fouls":
		c.Fouls = v
	case "turnovers":
		c.Turnovers = v
	default:
		return false
	}
	return true
}

type NetCounters struct {
	Kills           int64 `json:"kills"`
	AttackAttempts  int64 `json:"attack_attempts"`
	AttackErrors    int64 `json:"attack_errors"`
	ServiceAces     int64 `json:"service_aces"`
	ServiceErrors   int64 `json:"service_errors"`
	Digs            int64 `json:"digs"`
	Receptions      int64 `json:"receptions"`
	ReceptionErrors int64 `json:"reception_errors"`
}

func (NetCounters) Family() Family { return FamilyNet }

func (c NetCounters) Values() []Counter {
	return []Counter{
		{"kills", c.Kills},
		{"attack_attempts", c.AttackAttempts},
		{"attack_errors", c.AttackErrors},
		{"service_aces", c.ServiceAces},
		{"service_errors", c.ServiceErrors},
		{"digs", c.Digs},
		{"receptions", c.Receptions},
		{"reception_errors", c.ReceptionErrors},
	}
}

func (c *NetCounters) set(name string, v int64) bool {
	switch name {
	case "kills":
		c.Kills = v
	case "attack_attempts":
		c.AttackAttempts = v
	case "attack_errors":
		c.AttackErrors = v
	case "service_aces":
		c.ServiceAces = v
	case "service_errors":
		c.ServiceErrors = v
	case "digs":
		c.Digs = v
	case "receptions":
		c.Receptions = v
	case "reception_errors":
		c.ReceptionErrors = v
	default:
		return false
	}
	return true
}

type counterSetter interface {
	Counters
	set(name string, v int64) bool
}

func newSetter(family Family) (counterSetter, error) {
	switch family {
	case FamilyCourt:
		return &CourtCounters{}, nil
	case FamilyNet:
		return &NetCounters{}, nil
	default:
		return nil, fmt.Errorf("unknown stat family %q", family)
	}
}

// NewCounters builds the family's counter set from named values. Missing
// counters are zero; names outside the family and negative values are
// rejected.
func NewCounters(family Family, values map[string]int64) (Counters, error) {
	c, err := newSetter(family)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := values[name]
		if v < 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrNegativeCounter, name, v)
		}
		if !c.set(strings.TrimSpace(name), v) {
			return nil, fmt.Errorf("%w: %q is not a %s counter", ErrUnknownCounter, name, family)
		}
	}

	return deref(c), nil
}

// CounterNames lists the counters a family records, in storage order.
func CounterNames(family Family) []string {
	c, err := newSetter(family)
	if err != nil {
		return nil
	}
	values := c.Values()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Name)
	}
	return out
}

func deref(c counterSetter) Counters {
	switch v := c.(type) {
	case *CourtCounters:
		return *v
	case *NetCounters:
		return *v
	default:
		return c
	}
}

// Line is one player's counters for one match.
type Line struct {
	PlayerID int64
	MatchID  int64
	Counters Counters
}

// Summary rolls a player's lines up over completed matches.
type Summary struct {
	Player      player.Player
	GamesPlayed int
	Counters    Counters
}
