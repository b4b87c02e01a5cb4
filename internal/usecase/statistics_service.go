package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/player"
	"github.com/riskibarqy/tournament-ops/internal/domain/playerstats"
	"github.com/riskibarqy/tournament-ops/internal/domain/standing"
	"github.com/riskibarqy/tournament-ops/internal/domain/team"
	"github.com/riskibarqy/tournament-ops/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type TeamStatsSummary struct {
	Team    team.Team
	Family  playerstats.Family
	Players []playerstats.Summary
}

type RecordPlayerStatsInput struct {
	PlayerID int64
	MatchID  int64
	Counters map[string]int64
}

type RecordedPlayerStats struct {
	ID     int64
	Family playerstats.Family
	Line   playerstats.Line
}

// StatisticsService derives standings and per-player roll-ups.
type StatisticsService struct {
	teamRepo     team.Repository
	playerRepo   player.Repository
	matchRepo    match.Repository
	standingRepo standing.Repository
	statsRepo    playerstats.Repository
	logger       *logging.Logger
}

func NewStatisticsService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	standingRepo standing.Repository,
	statsRepo playerstats.Repository,
	logger *logging.Logger,
) *StatisticsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StatisticsService{
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		standingRepo: standingRepo,
		statsRepo:    statsRepo,
		logger:       logger.Component("statistics"),
	}
}

// TeamStandings ranks every team within its sport by completed-match wins.
func (s *StatisticsService) TeamStandings(ctx context.Context) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.TeamStandings")
	defer span.End()

	records, err := s.standingRepo.ListRecords(ctx)
	if err != nil {
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "list standings records failed", "error", err)
		return nil, fmt.Errorf("list standings records: %w", err)
	}

	ranked := standing.Rank(records)
	s.logger.DebugContext(ctx, "standings computed", "teams", len(ranked))
	return ranked, nil
}

func (s *StatisticsService) TeamStatsSummary(ctx context.Context, teamID int64) (TeamStatsSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.TeamStatsSummary", attribute.Int64("team.id", teamID))
	defer span.End()

	if teamID <= 0 {
		return TeamStatsSummary{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		recordSpanError(span, err)
		return TeamStatsSummary{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamStatsSummary{}, fmt.Errorf("%w: team=%d", ErrTeamNotFound, teamID)
	}

	family := playerstats.FamilyForSport(item.Sport)
	players, err := s.statsRepo.SummarizeByTeam(ctx, teamID, family)
	if err != nil {
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "summarize team stats failed", "team_id", teamID, "error", err)
		return TeamStatsSummary{}, fmt.Errorf("summarize team stats: %w", err)
	}
	if players == nil {
		players = []playerstats.Summary{}
	}

	return TeamStatsSummary{Team: item, Family: family, Players: players}, nil
}

// RecordPlayerStats stores the player's line for the match, replacing any
// earlier line. Counters must belong to the family of the player's team sport.
func (s *StatisticsService) RecordPlayerStats(ctx context.Context, input RecordPlayerStatsInput) (RecordedPlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.RecordPlayerStats",
		attribute.Int64("player.id", input.PlayerID),
		attribute.Int64("match.id", input.MatchID),
	)
	defer span.End()

	if input.PlayerID <= 0 || input.MatchID <= 0 {
		return RecordedPlayerStats{}, fmt.Errorf("%w: player_id and match_id are required", ErrInvalidInput)
	}

	var (
		p           player.Player
		playerFound bool
		matchFound  bool
	)
	lookups := pool.New().WithContext(ctx).WithCancelOnError()
	lookups.Go(func(ctx context.Context) error {
		var err error
		p, playerFound, err = s.playerRepo.GetByID(ctx, input.PlayerID)
		if err != nil {
			return fmt.Errorf("get player: %w", err)
		}
		return nil
	})
	lookups.Go(func(ctx context.Context) error {
		var err error
		_, matchFound, err = s.matchRepo.GetByID(ctx, input.MatchID)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}
		return nil
	})
	if err := lookups.Wait(); err != nil {
		recordSpanError(span, err)
		return RecordedPlayerStats{}, err
	}
	if !playerFound {
		return RecordedPlayerStats{}, fmt.Errorf("%w: player=%d", ErrNotFound, input.PlayerID)
	}
	if !matchFound {
		return RecordedPlayerStats{}, fmt.Errorf("%w: match=%d", ErrNotFound, input.MatchID)
	}

	owner, exists, err := s.teamRepo.GetByID(ctx, p.TeamID)
	if err != nil {
		recordSpanError(span, err)
		return RecordedPlayerStats{}, fmt.Errorf("get player team: %w", err)
	}
	if !exists {
		return RecordedPlayerStats{}, fmt.Errorf("%w: team=%d", ErrTeamNotFound, p.TeamID)
	}

	family := playerstats.FamilyForSport(owner.Sport)
	counters, err := playerstats.NewCounters(family, input.Counters)
	if err != nil {
		return RecordedPlayerStats{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	line := playerstats.Line{PlayerID: p.ID, MatchID: input.MatchID, Counters: counters}
	id, err := s.statsRepo.Upsert(ctx, line)
	if err != nil {
		switch {
		case errors.Is(err, playerstats.ErrInvalidReference):
			return RecordedPlayerStats{}, fmt.Errorf("%w: player %d or match %d", ErrNotFound, input.PlayerID, input.MatchID)
		case errors.Is(err, playerstats.ErrNegativeCounter):
			return RecordedPlayerStats{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		recordSpanError(span, err)
		s.logger.ErrorContext(ctx, "record player stats failed", "player_id", p.ID, "match_id", input.MatchID, "error", err)
		return RecordedPlayerStats{}, fmt.Errorf("upsert player stats: %w", err)
	}

	s.logger.InfoContext(ctx, "player stats recorded",
		"stat_id", id,
		"player_id", p.ID,
		"match_id", input.MatchID,
		"family", string(family),
	)
	return RecordedPlayerStats{ID: id, Family: family, Line: line}, nil
}
