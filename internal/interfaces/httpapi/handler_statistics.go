package httpapi

import (
	"net/http"

	"github.com/riskibarqy/tournament-ops/internal/usecase"
)

func (h *Handler) ListTeamStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamStandings")
	defer span.End()

	standings, err := h.statisticsService.TeamStandings(ctx)
	if err != nil {
		h.logFailure(ctx, "list team standings failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		items = append(items, standingToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	teamID, err := parseIDParam(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.statisticsService.TeamStatsSummary(ctx, teamID)
	if err != nil {
		h.logFailure(ctx, "get team stats failed", err, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStatsToDTO(summary))
}

func (h *Handler) RecordPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPlayerStats")
	defer span.End()

	var req recordPlayerStatsRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rec, err := h.statisticsService.RecordPlayerStats(ctx, usecase.RecordPlayerStatsInput{
		PlayerID: req.PlayerID,
		MatchID:  req.MatchID,
		Counters: req.Counters,
	})
	if err != nil {
		h.logFailure(ctx, "record player stats failed", err, "player_id", req.PlayerID, "match_id", req.MatchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(rec))
}
