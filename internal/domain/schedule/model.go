package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	// ErrAlreadyScheduled is returned when the match already has a schedule.
	ErrAlreadyScheduled = errors.New("match already scheduled")
	// ErrInvalidReference is returned when the event, bracket or match does not exist.
	ErrInvalidReference = errors.New("event, bracket or match does not exist")
)

// Slot is a calendar date plus a 24-hour time of day, minute precision.
type Slot struct {
	Date string
	Time string
}

// ParseSlot validates date (YYYY-MM-DD) and time (HH:MM, optional seconds are
// dropped) and returns the normalized slot.
func ParseSlot(date, timeOfDay string) (Slot, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)

	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return Slot{}, fmt.Errorf("date %q must be formatted as YYYY-MM-DD", date)
	}

	tod, err := time.Parse(TimeLayout, timeOfDay)
	if err != nil {
		tod, err = time.Parse(TimeLayout+":05", timeOfDay)
		if err != nil {
			return Slot{}, fmt.Errorf("time %q must be a 24-hour HH:MM value", timeOfDay)
		}
	}

	return Slot{Date: d.Format(DateLayout), Time: tod.Format(TimeLayout)}, nil
}

// ScheduledAt is the match timestamp mirrored from the slot, seconds zeroed.
func (s Slot) ScheduledAt() string {
	return s.Date + " " + s.Time + ":00"
}

// Schedule binds a slot and venue to exactly one match.
type Schedule struct {
	ID          int64
	EventID     int64
	BracketID   int64
	MatchID     int64
	Slot        Slot
	Venue       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Detail is a schedule joined with display fields of its event, bracket and
// match. Team names are empty while the match is unseeded.
type Detail struct {
	Schedule
	EventName   string
	BracketName string
	SportType   string
	Round       int
	Team1Name   string
	Team2Name   string
}
