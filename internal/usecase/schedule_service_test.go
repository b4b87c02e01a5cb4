package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
	"github.com/riskibarqy/tournament-ops/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/tournament-ops/internal/mocks/domain/match"
	schedulemock "github.com/riskibarqy/tournament-ops/internal/mocks/domain/schedule"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type recordingNotifier struct {
	mu        sync.Mutex
	created   []int64
	cancelled []int64
}

func (n *recordingNotifier) ScheduleCreated(_ context.Context, item schedule.Detail) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, item.ID)
}

func (n *recordingNotifier) ScheduleCancelled(_ context.Context, scheduleID, _ int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelled = append(n.cancelled, scheduleID)
}

func newMemoryScheduleService(notifier ScheduleNotifier) *ScheduleService {
	store := memory.NewStore(memory.DemoSeed())
	return NewScheduleService(store.Schedules(), store.Matches(), notifier, logging.NewNop())
}

func TestScheduleService_CreateMirrorsTimestampIntoMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := newMemoryScheduleService(notifier)

	desc := "  Semi final  "
	created, err := svc.Create(ctx, CreateScheduleInput{
		EventID:     1,
		BracketID:   1,
		MatchID:     2,
		Date:        "2024-05-01",
		Time:        "14:30",
		Venue:       "Court A",
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	if created.BracketName != "Basketball Open" || created.SportType != "basketball" || created.EventName != "Spring Invitational" {
		t.Fatalf("expected enriched schedule, got %+v", created)
	}
	if created.Team1Name != "Falcons" || created.Team2Name != "Hoopers" {
		t.Fatalf("unexpected team names: %q vs %q", created.Team1Name, created.Team2Name)
	}
	if created.Description == nil || *created.Description != "Semi final" {
		t.Fatalf("expected trimmed description, got %v", created.Description)
	}

	m, err := svc.GetMatch(ctx, 2)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if got := m.ScheduledAtString(); got != "2024-05-01 14:30:00" {
		t.Fatalf("unexpected scheduled_at: %q", got)
	}
	if len(notifier.created) != 1 || notifier.created[0] != created.ID {
		t.Fatalf("expected one created notification, got %v", notifier.created)
	}
}

func TestScheduleService_CreateTwiceForSameMatchConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryScheduleService(nil)
	input := CreateScheduleInput{EventID: 1, BracketID: 2, MatchID: 4, Date: "2024-06-10", Time: "09:00", Venue: "Hall 2"}

	if _, err := svc.Create(ctx, input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	input.Time = "11:00"
	_, err := svc.Create(ctx, input)
	if !errors.Is(err, ErrAlreadyScheduled) || !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrAlreadyScheduled, got %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list schedules: %v", err)
	}
	if len(items) != 1 || items[0].Slot.Time != "09:00" {
		t.Fatalf("expected the first schedule to survive, got %+v", items)
	}
}

func TestScheduleService_CreateValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryScheduleService(nil)
	valid := CreateScheduleInput{EventID: 1, BracketID: 1, MatchID: 1, Date: "2024-05-01", Time: "14:30", Venue: "Court A"}

	cases := map[string]func(in *CreateScheduleInput){
		"missing event":   func(in *CreateScheduleInput) { in.EventID = 0 },
		"missing venue":   func(in *CreateScheduleInput) { in.Venue = "   " },
		"bad date":        func(in *CreateScheduleInput) { in.Date = "05/01/2024" },
		"bad time":        func(in *CreateScheduleInput) { in.Time = "25:00" },
		"unknown match":   func(in *CreateScheduleInput) { in.MatchID = 999 },
		"unknown event":   func(in *CreateScheduleInput) { in.EventID = 999 },
		"missing all ids": func(in *CreateScheduleInput) { in.EventID, in.BracketID, in.MatchID = 0, 0, 0 },
	}
	for name, mutate := range cases {
		input := valid
		mutate(&input)
		if _, err := svc.Create(ctx, input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestScheduleService_CancelClearsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := newMemoryScheduleService(notifier)

	created, err := svc.Create(ctx, CreateScheduleInput{EventID: 1, BracketID: 1, MatchID: 2, Date: "2024-05-01", Time: "14:30", Venue: "Court A"})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.Cancel(ctx, created.ID); err != nil {
			t.Fatalf("cancel #%d: %v", i+1, err)
		}
	}

	m, err := svc.GetMatch(ctx, 2)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if m.ScheduledAt != nil {
		t.Fatalf("expected scheduled_at to be cleared, got %v", m.ScheduledAt)
	}
	if len(notifier.cancelled) != 1 {
		t.Fatalf("expected a single cancel notification, got %v", notifier.cancelled)
	}
}

func TestScheduleService_CreatesMinusCancels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryScheduleService(nil)

	var ids []int64
	for matchID := int64(1); matchID <= 4; matchID++ {
		created, err := svc.Create(ctx, CreateScheduleInput{
			EventID:   1,
			BracketID: 1,
			MatchID:   matchID,
			Date:      fmt.Sprintf("2024-05-%02d", matchID),
			Time:      "10:00",
			Venue:     "Court A",
		})
		if err != nil {
			t.Fatalf("create schedule for match %d: %v", matchID, err)
		}
		ids = append(ids, created.ID)
	}
	for _, id := range ids[:3] {
		if err := svc.Cancel(ctx, id); err != nil {
			t.Fatalf("cancel %d: %v", id, err)
		}
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list schedules: %v", err)
	}
	if len(items) != 1 || items[0].ID != ids[3] {
		t.Fatalf("expected only the last schedule to remain, got %+v", items)
	}
}

func TestScheduleService_GetMatchNotFound(t *testing.T) {
	t.Parallel()

	if _, err := newMemoryScheduleService(nil).GetMatch(context.Background(), 77); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScheduleService_StoreFailuresUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	scheduleRepo := schedulemock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	notifier := &recordingNotifier{}
	svc := NewScheduleService(scheduleRepo, matchRepo, notifier, logging.NewNop())

	storeErr := errors.New("deadlock detected")
	scheduleRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(item schedule.Schedule) bool {
			return item.MatchID == 5 && item.Slot.ScheduledAt() == "2024-05-01 14:30:00"
		})).
		Return(schedule.Schedule{}, storeErr).
		Once()
	scheduleRepo.
		On("Cancel", mock.Anything, int64(9)).
		Return(int64(0), false, storeErr).
		Once()

	_, err := svc.Create(ctx, CreateScheduleInput{EventID: 1, BracketID: 2, MatchID: 5, Date: "2024-05-01", Time: "14:30", Venue: "Court A"})
	if !errors.Is(err, storeErr) || errors.Is(err, ErrConflict) {
		t.Fatalf("expected raw store error, got %v", err)
	}
	if err := svc.Cancel(ctx, 9); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error from cancel, got %v", err)
	}
	if len(notifier.created) != 0 || len(notifier.cancelled) != 0 {
		t.Fatalf("expected no notifications on failure")
	}
}
