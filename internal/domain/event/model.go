package event

import "time"

// Event is read-only here; schedules join it for display.
type Event struct {
	ID       int64
	Name     string
	StartsOn *time.Time
}
