package schedule

import "context"

type Repository interface {
	// Create inserts the schedule and mirrors Slot.ScheduledAt onto the match in
	// one unit of work. It fails with ErrAlreadyScheduled when the match already
	// has a schedule.
	Create(ctx context.Context, item Schedule) (Schedule, error)
	GetDetail(ctx context.Context, scheduleID int64) (Detail, bool, error)
	// ListDetails orders by (date, time) ascending.
	ListDetails(ctx context.Context) ([]Detail, error)
	// Cancel clears the mirrored match timestamp and deletes the schedule in one
	// unit of work. found is false when no schedule had that id.
	Cancel(ctx context.Context, scheduleID int64) (matchID int64, found bool, err error)
}
