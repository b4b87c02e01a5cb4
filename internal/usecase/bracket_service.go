package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/tournament-ops/internal/domain/bracket"
	"github.com/riskibarqy/tournament-ops/internal/domain/membership"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type AssignTeamInput struct {
	BracketID int64
	TeamID    int64
}

// BracketService manages which teams compete in which bracket.
type BracketService struct {
	bracketRepo    bracket.Repository
	membershipRepo membership.Repository
	logger         *logging.Logger
}

func NewBracketService(
	bracketRepo bracket.Repository,
	membershipRepo membership.Repository,
	logger *logging.Logger,
) *BracketService {
	if logger == nil {
		logger = logging.Default()
	}

	return &BracketService{
		bracketRepo:    bracketRepo,
		membershipRepo: membershipRepo,
		logger:         logger.Component("bracket"),
	}
}

// AssignTeam registers the team in the bracket. A second assignment of the same
// pair fails with ErrDuplicateMembership.
func (s *BracketService) AssignTeam(ctx context.Context, input AssignTeamInput) (membership.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.AssignTeam",
		attribute.Int64("bracket.id", input.BracketID),
		attribute.Int64("team.id", input.TeamID),
	)
	defer span.End()

	if input.BracketID <= 0 || input.TeamID <= 0 {
		return membership.Membership{}, fmt.Errorf("%w: bracket_id and team_id are required", ErrInvalidInput)
	}

	s.logger.DebugContext(ctx, "assigning team to bracket", "bracket_id", input.BracketID, "team_id", input.TeamID)

	created, err := s.membershipRepo.Create(ctx, input.BracketID, input.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, membership.ErrDuplicate):
			s.logger.WarnContext(ctx, "team already assigned to bracket", "bracket_id", input.BracketID, "team_id", input.TeamID)
			return membership.Membership{}, fmt.Errorf("%w: bracket=%d team=%d", ErrDuplicateMembership, input.BracketID, input.TeamID)
		case errors.Is(err, membership.ErrInvalidReference):
			return membership.Membership{}, fmt.Errorf("%w: bracket %d or team %d does not exist", ErrInvalidInput, input.BracketID, input.TeamID)
		}
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "assign team to bracket failed", "bracket_id", input.BracketID, "team_id", input.TeamID, "error", err)
		return membership.Membership{}, fmt.Errorf("create bracket membership: %w", err)
	}

	s.logger.InfoContext(ctx, "team assigned to bracket",
		"membership_id", created.ID,
		"bracket_id", created.BracketID,
		"team_id", created.TeamID,
	)
	return created, nil
}

func (s *BracketService) ListTeams(ctx context.Context, bracketID int64) ([]membership.TeamEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.ListTeams", attribute.Int64("bracket.id", bracketID))
	defer span.End()

	if bracketID <= 0 {
		return nil, fmt.Errorf("%w: bracket id must be positive", ErrInvalidInput)
	}

	entries, err := s.membershipRepo.ListTeamsByBracket(ctx, bracketID)
	if err != nil {
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "list bracket teams failed", "bracket_id", bracketID, "error", err)
		return nil, fmt.Errorf("list bracket teams: %w", err)
	}
	return entries, nil
}

// RemoveTeam deletes a membership. Removing an unknown id succeeds.
func (s *BracketService) RemoveTeam(ctx context.Context, membershipID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.RemoveTeam", attribute.Int64("membership.id", membershipID))
	defer span.End()

	if membershipID <= 0 {
		return fmt.Errorf("%w: membership id must be positive", ErrInvalidInput)
	}

	removed, err := s.membershipRepo.Delete(ctx, membershipID)
	if err != nil {
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "remove bracket team failed", "membership_id", membershipID, "error", err)
		return fmt.Errorf("delete bracket membership: %w", err)
	}

	s.logger.InfoContext(ctx, "bracket team removed", "membership_id", membershipID, "removed", removed)
	return nil
}

func (s *BracketService) GetBracket(ctx context.Context, bracketID int64) (bracket.Bracket, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BracketService.GetBracket", attribute.Int64("bracket.id", bracketID))
	defer span.End()

	if bracketID <= 0 {
		return bracket.Bracket{}, fmt.Errorf("%w: bracket id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.bracketRepo.GetByID(ctx, bracketID)
	if err != nil {
		recordSpanError(span, err)
		return bracket.Bracket{}, fmt.Errorf("get bracket: %w", err)
	}
	if !exists {
		return bracket.Bracket{}, fmt.Errorf("%w: bracket=%d", ErrNotFound, bracketID)
	}
	return item, nil
}
