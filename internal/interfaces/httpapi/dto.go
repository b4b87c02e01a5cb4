package httpapi

import (
	"time"

	"github.com/riskibarqy/tournament-ops/internal/domain/bracket"
	"github.com/riskibarqy/tournament-ops/internal/domain/match"
	"github.com/riskibarqy/tournament-ops/internal/domain/membership"
	"github.com/riskibarqy/tournament-ops/internal/domain/playerstats"
	"github.com/riskibarqy/tournament-ops/internal/domain/schedule"
	"github.com/riskibarqy/tournament-ops/internal/domain/standing"
	"github.com/riskibarqy/tournament-ops/internal/domain/team"
	"github.com/riskibarqy/tournament-ops/internal/usecase"
)

type assignTeamRequest struct {
	BracketID int64 `json:"bracket_id" validate:"required,gt=0"`
	TeamID    int64 `json:"team_id" validate:"required,gt=0"`
}

type createScheduleRequest struct {
	EventID     int64   `json:"eventId" validate:"required,gt=0"`
	BracketID   int64   `json:"bracketId" validate:"required,gt=0"`
	MatchID     int64   `json:"matchId" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	Time        string  `json:"time" validate:"required"`
	Venue       string  `json:"venue" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type recordPlayerStatsRequest struct {
	PlayerID int64            `json:"player_id" validate:"required,gt=0"`
	MatchID  int64            `json:"match_id" validate:"required,gt=0"`
	Counters map[string]int64 `json:"counters"`
}

type membershipDTO struct {
	ID        int64 `json:"id"`
	BracketID int64 `json:"bracket_id"`
	TeamID    int64 `json:"team_id"`
}

type teamDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Sport string `json:"sport"`
}

type bracketTeamDTO struct {
	MembershipID int64  `json:"membership_id"`
	BracketID    int64  `json:"bracket_id"`
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Sport        string `json:"sport"`
}

type bracketDTO struct {
	ID              int64  `json:"id"`
	EventID         *int64 `json:"event_id"`
	Name            string `json:"name"`
	SportType       string `json:"sport_type"`
	EliminationType string `json:"elimination_type"`
}

type matchDTO struct {
	ID          int64   `json:"id"`
	BracketID   int64   `json:"bracket_id"`
	Round       int     `json:"round"`
	BracketType string  `json:"bracket_type"`
	Team1ID     *int64  `json:"team1_id"`
	Team2ID     *int64  `json:"team2_id"`
	WinnerID    *int64  `json:"winner_id"`
	Status      string  `json:"status"`
	ScheduledAt *string `json:"scheduled_at"`
}

type scheduleDTO struct {
	ID          int64      `json:"id"`
	EventID     int64      `json:"eventId"`
	BracketID   int64      `json:"bracketId"`
	MatchID     int64      `json:"matchId"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Venue       string     `json:"venue"`
	Description *string    `json:"description"`
	EventName   string     `json:"eventName"`
	BracketName string     `json:"bracketName"`
	SportType   string     `json:"sportType"`
	Round       int        `json:"round"`
	Team1Name   *string    `json:"team1Name"`
	Team2Name   *string    `json:"team2Name"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type standingDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Sport  string `json:"sport"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Rank   int    `json:"rank"`
}

type playerSummaryDTO struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Position     string               `json:"position,omitempty"`
	JerseyNumber *int                 `json:"jersey_number"`
	GamesPlayed  int                  `json:"games_played"`
	Stats        playerstats.Counters `json:"stats"`
}

type teamStatsDTO struct {
	Team    teamDTO            `json:"team"`
	Family  string             `json:"family"`
	Players []playerSummaryDTO `json:"players"`
}

type playerStatsDTO struct {
	ID       int64                `json:"id"`
	PlayerID int64                `json:"player_id"`
	MatchID  int64                `json:"match_id"`
	Family   string               `json:"family"`
	Counters playerstats.Counters `json:"counters"`
}

func membershipToDTO(m membership.Membership) membershipDTO {
	return membershipDTO{ID: m.ID, BracketID: m.BracketID, TeamID: m.TeamID}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, Sport: t.Sport}
}

func bracketTeamToDTO(entry membership.TeamEntry) bracketTeamDTO {
	return bracketTeamDTO{
		MembershipID: entry.MembershipID,
		BracketID:    entry.BracketID,
		ID:           entry.Team.ID,
		Name:         entry.Team.Name,
		Sport:        entry.Team.Sport,
	}
}

func bracketToDTO(b bracket.Bracket) bracketDTO {
	return bracketDTO{
		ID:              b.ID,
		EventID:         b.EventID,
		Name:            b.Name,
		SportType:       b.SportType,
		EliminationType: b.EliminationType,
	}
}

func matchToDTO(m match.Match) matchDTO {
	out := matchDTO{
		ID:          m.ID,
		BracketID:   m.BracketID,
		Round:       m.Round,
		BracketType: m.BracketType,
		Team1ID:     m.Team1ID,
		Team2ID:     m.Team2ID,
		WinnerID:    m.WinnerID,
		Status:      match.NormalizeStatus(m.Status),
	}
	if at := m.ScheduledAtString(); at != "" {
		out.ScheduledAt = &at
	}
	return out
}

func scheduleToDTO(item schedule.Detail) scheduleDTO {
	return scheduleDTO{
		ID:          item.ID,
		EventID:     item.EventID,
		BracketID:   item.BracketID,
		MatchID:     item.MatchID,
		Date:        item.Slot.Date,
		Time:        item.Slot.Time,
		Venue:       item.Venue,
		Description: item.Description,
		EventName:   item.EventName,
		BracketName: item.BracketName,
		SportType:   item.SportType,
		Round:       item.Round,
		Team1Name:   optionalString(item.Team1Name),
		Team2Name:   optionalString(item.Team2Name),
		CreatedAt:   optionalTime(item.CreatedAt),
		UpdatedAt:   optionalTime(item.UpdatedAt),
	}
}

func standingToDTO(s standing.Standing) standingDTO {
	return standingDTO{
		ID:     s.TeamID,
		Name:   s.TeamName,
		Sport:  s.Sport,
		Wins:   s.Wins,
		Losses: s.Losses,
		Rank:   s.Rank,
	}
}

func teamStatsToDTO(summary usecase.TeamStatsSummary) teamStatsDTO {
	players := make([]playerSummaryDTO, 0, len(summary.Players))
	for _, p := range summary.Players {
		players = append(players, playerSummaryDTO{
			ID:           p.Player.ID,
			Name:         p.Player.Name,
			Position:     p.Player.Position,
			JerseyNumber: p.Player.JerseyNumber,
			GamesPlayed:  p.GamesPlayed,
			Stats:        p.Counters,
		})
	}

	return teamStatsDTO{
		Team:    teamToDTO(summary.Team),
		Family:  string(summary.Family),
		Players: players,
	}
}

func playerStatsToDTO(rec usecase.RecordedPlayerStats) playerStatsDTO {
	return playerStatsDTO{
		ID:       rec.ID,
		PlayerID: rec.Line.PlayerID,
		MatchID:  rec.Line.MatchID,
		Family:   string(rec.Family),
		Counters: rec.Line.Counters,
	}
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func optionalTime(v time.Time) *time.Time {
	if v.IsZero() {
		return nil
	}
	return &v
}
