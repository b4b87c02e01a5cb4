package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type CreateScheduleInput struct {
	EventID     int64
	BracketID   int64
	MatchID     int64
	Date        string
	Time        string
	Venue       string
	Description *string
}

// ScheduleNotifier is told about schedule changes after they are committed.
// Implementations must not block the caller.
type ScheduleNotifier interface {
	ScheduleCreated(ctx context.Context, item schedule.Detail)
	ScheduleCancelled(ctx context.Context, scheduleID, matchID int64)
}

type noopScheduleNotifier struct{}

func (noopScheduleNotifier) ScheduleCreated(context.Context, schedule.Detail) {}

func (noopScheduleNotifier) ScheduleCancelled(context.Context, int64, int64) {}

// ScheduleService binds slots to matches and keeps the match timestamp in
// step with the schedule.
type ScheduleService struct {
	scheduleRepo schedule.Repository
	matchRepo    match.Repository
	notifier     ScheduleNotifier
	logger       *logging.Logger
}

func NewScheduleService(
	scheduleRepo schedule.Repository,
	matchRepo match.Repository,
	notifier ScheduleNotifier,
	logger *logging.Logger,
) *ScheduleService {
	if notifier == nil {
		notifier = noopScheduleNotifier{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		matchRepo:    matchRepo,
		notifier:     notifier,
		logger:       logger.Component("schedule"),
	}
}

func (s *ScheduleService) Create(ctx context.Context, input CreateScheduleInput) (schedule.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Create",
		attribute.Int64("match.id", input.MatchID),
		attribute.Int64("bracket.id", input.BracketID),
	)
	defer span.End()

	item, err := newSchedule(input)
	if err != nil {
		return schedule.Detail{}, err
	}

	s.logger.DebugContext(ctx, "creating schedule",
		"match_id", item.MatchID,
		"date", item.Slot.Date,
		"time", item.Slot.Time,
	)

	created, err := s.scheduleRepo.Create(ctx, item)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAlreadyScheduled):
			s.logger.WarnContext(ctx, "match already scheduled", "match_id", item.MatchID)
			return schedule.Detail{}, fmt.Errorf("%w: match=%d", ErrAlreadyScheduled, item.MatchID)
		case errors.Is(err, schedule.ErrInvalidReference):
			return schedule.Detail{}, fmt.Errorf("%w: event %d, bracket %d or match %d does not exist", ErrInvalidInput, item.EventID, item.BracketID, item.MatchID)
		}
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "create schedule failed", "match_id", item.MatchID, "error", err)
		return schedule.Detail{}, fmt.Errorf("create schedule: %w", err)
	}

	detail, exists, err := s.scheduleRepo.GetDetail(ctx, created.ID)
	if err != nil {
		recordSpanError(span, err)
		return schedule.Detail{}, fmt.Errorf("get created schedule: %w", err)
	}
	if !exists {
		return schedule.Detail{}, fmt.Errorf("get created schedule: schedule %d vanished", created.ID)
	}

	s.logger.InfoContext(ctx, "schedule created",
		"schedule_id", detail.ID,
		"match_id", detail.MatchID,
		"scheduled_at", detail.Slot.ScheduledAt(),
		"venue", detail.Venue,
	)
	s.notifier.ScheduleCreated(ctx, detail)

	return detail, nil
}

func newSchedule(input CreateScheduleInput) (schedule.Schedule, error) {
	var missing []string
	if input.EventID <= 0 {
		missing = append(missing, "eventId")
	}
	if input.BracketID <= 0 {
		missing = append(missing, "bracketId")
	}
	if input.MatchID <= 0 {
		missing = append(missing, "matchId")
	}
	if strings.TrimSpace(input.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(input.Time) == "" {
		missing = append(missing, "time")
	}
	venue := strings.TrimSpace(input.Venue)
	if venue == "" {
		missing = append(missing, "venue")
	}
	if len(missing) > 0 {
		return schedule.Schedule{}, fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	slot, err := schedule.ParseSlot(input.Date, input.Time)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var description *string
	if input.Description != nil {
		if v := strings.TrimSpace(*input.Description); v != "" {
			description = &v
		}
	}

	return schedule.Schedule{
		EventID:     input.EventID,
		BracketID:   input.BracketID,
		MatchID:     input.MatchID,
		Slot:        slot,
		Venue:       venue,
		Description: description,
	}, nil
}

// List returns every schedule ordered by date then time.
func (s *ScheduleService) List(ctx context.Context) ([]schedule.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.List")
	defer span.End()

	items, err := s.scheduleRepo.ListDetails(ctx)
	if err != nil {
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "list schedules failed", "error", err)
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return items, nil
}

// Cancel clears the match timestamp and deletes the schedule. Cancelling an
// unknown id succeeds.
func (s *ScheduleService) Cancel(ctx context.Context, scheduleID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Cancel", attribute.Int64("schedule.id", scheduleID))
	defer span.End()

	if scheduleID <= 0 {
		return fmt.Errorf("%w: schedule id must be positive", ErrInvalidInput)
	}

	matchID, found, err := s.scheduleRepo.Cancel(ctx, scheduleID)
	if err != nil {
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "cancel schedule failed", "schedule_id", scheduleID, "error", err)
		return fmt.Errorf("cancel schedule: %w", err)
	}
	if !found {
		s.logger.DebugContext(ctx, "schedule already absent", "schedule_id", scheduleID)
		return nil
	}

	s.logger.InfoContext(ctx, "schedule cancelled", "schedule_id", scheduleID, "match_id", matchID)
	s.notifier.ScheduleCancelled(ctx, scheduleID, matchID)
	return nil
}

func (s *ScheduleService) GetMatch(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.GetMatch", attribute.Int64("match.id", matchID))
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		recordSpanError(span, err)
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	return item, nil
}
