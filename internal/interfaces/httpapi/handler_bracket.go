package httpapi

import (
	"net/http"

	"github.com/riskibarqy/tournament-ops/internal/usecase"
)

func (h *Handler) AssignBracketTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignBracketTeam")
	defer span.End()

	var req assignTeamRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.bracketService.AssignTeam(ctx, usecase.AssignTeamInput{
		BracketID: req.BracketID,
		TeamID:    req.TeamID,
	})
	if err != nil {
		h.logFailure(ctx, "assign bracket team failed", err, "bracket_id", req.BracketID, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, membershipToDTO(item))
}

func (h *Handler) ListBracketTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBracketTeams")
	defer span.End()

	bracketID, err := parseIDParam(r, "bracketID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.bracketService.ListTeams(ctx, bracketID)
	if err != nil {
		h.logFailure(ctx, "list bracket teams failed", err, "bracket_id", bracketID)
		writeError(ctx, w, err)
		return
	}

	items := make([]bracketTeamDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, bracketTeamToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RemoveBracketTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveBracketTeam")
	defer span.End()

	membershipID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.bracketService.RemoveTeam(ctx, membershipID); err != nil {
		h.logFailure(ctx, "remove bracket team failed", err, "membership_id", membershipID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) GetBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBracket")
	defer span.End()

	bracketID, err := parseIDParam(r, "bracketID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.bracketService.GetBracket(ctx, bracketID)
	if err != nil {
		h.logFailure(ctx, "get bracket failed", err, "bracket_id", bracketID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bracketToDTO(item))
}
