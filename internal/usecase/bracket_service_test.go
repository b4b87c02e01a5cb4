package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/tournament-ops/internal/domain/membership"
	"github.com/riskibarqy/tournament-ops/internal/infrastructure/repository/memory"
	bracketmock "github.com/riskibarqy/tournament-ops/internal/mocks/domain/bracket"
	membershipmock "github.com/riskibarqy/tournament-ops/internal/mocks/domain/membership"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func newMemoryBracketService() *BracketService {
	store := memory.NewStore(memory.DemoSeed())
	return NewBracketService(store.Brackets(), store.Memberships(), logging.NewNop())
}

func TestBracketService_AssignTwiceConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryBracketService()

	created, err := svc.AssignTeam(ctx, AssignTeamInput{BracketID: 1, TeamID: 2})
	if err != nil {
		t.Fatalf("assign team: %v", err)
	}
	if created.ID <= 0 || created.BracketID != 1 || created.TeamID != 2 {
		t.Fatalf("unexpected membership: %+v", created)
	}

	_, err = svc.AssignTeam(ctx, AssignTeamInput{BracketID: 1, TeamID: 2})
	if !errors.Is(err, ErrDuplicateMembership) || !errors.Is(err, ErrConflict) {
		t.Fatalf("expected duplicate membership conflict, got %v", err)
	}

	entries, err := svc.ListTeams(ctx, 1)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one membership row, got %d", len(entries))
	}
}

func TestBracketService_AssignValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryBracketService()

	cases := []AssignTeamInput{
		{BracketID: 0, TeamID: 1},
		{BracketID: 1, TeamID: -3},
		{BracketID: 99, TeamID: 1},
	}
	for _, tc := range cases {
		if _, err := svc.AssignTeam(ctx, tc); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", tc, err)
		}
	}
}

func TestBracketService_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryBracketService()

	created, err := svc.AssignTeam(ctx, AssignTeamInput{BracketID: 2, TeamID: 3})
	if err != nil {
		t.Fatalf("assign team: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := svc.RemoveTeam(ctx, created.ID); err != nil {
			t.Fatalf("remove #%d: %v", i+1, err)
		}
	}
	if err := svc.RemoveTeam(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero id, got %v", err)
	}

	entries, _ := svc.ListTeams(ctx, 2)
	if len(entries) != 0 {
		t.Fatalf("expected empty bracket, got %+v", entries)
	}
}

func TestBracketService_GetBracket(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newMemoryBracketService()

	got, err := svc.GetBracket(ctx, 2)
	if err != nil {
		t.Fatalf("get bracket: %v", err)
	}
	if got.Name != "Volleyball Open" {
		t.Fatalf("unexpected bracket: %+v", got)
	}
	if _, err := svc.GetBracket(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBracketService_StoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bracketRepo := bracketmock.NewRepository(t)
	membershipRepo := membershipmock.NewRepository(t)
	svc := NewBracketService(bracketRepo, membershipRepo, logging.NewNop())

	storeErr := errors.New("connection reset")
	membershipRepo.
		On("Create", mock.Anything, int64(1), int64(2)).
		Return(membership.Membership{}, storeErr).
		Once()
	membershipRepo.
		On("ListTeamsByBracket", mock.Anything, int64(1)).
		Return(nil, storeErr).
		Once()

	_, err := svc.AssignTeam(ctx, AssignTeamInput{BracketID: 1, TeamID: 2})
	if !errors.Is(err, storeErr) || errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected raw store error, got %v", err)
	}

	if _, err := svc.ListTeams(ctx, 1); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error from list, got %v", err)
	}
}
