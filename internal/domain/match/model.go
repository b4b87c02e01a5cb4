package match

import (
	"strings"
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// TimestampLayout is the wire and storage format of ScheduledAt.
const TimestampLayout = "2006-01-02 15:04:05"

// Match is one pairing inside a bracket. Team references stay nil until
// seeding, WinnerID until completion. ScheduledAt mirrors the match schedule
// and is only written by the scheduling workflow.
type Match struct {
	ID          int64
	BracketID   int64
	Round       int
	BracketType string
	Team1ID     *int64
	Team2ID     *int64
	WinnerID    *int64
	Status      string
	ScheduledAt *time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusPending
	}
	return status
}

func (m Match) IsCompleted() bool {
	return NormalizeStatus(m.Status) == StatusCompleted
}

// Involves reports whether the team is seeded into either slot.
func (m Match) Involves(teamID int64) bool {
	return (m.Team1ID != nil && *m.Team1ID == teamID) || (m.Team2ID != nil && *m.Team2ID == teamID)
}

// ScheduledAtString renders ScheduledAt with TimestampLayout, or "" when unset.
func (m Match) ScheduledAtString() string {
	if m.ScheduledAt == nil {
		return ""
	}
	return m.ScheduledAt.Format(TimestampLayout)
}
