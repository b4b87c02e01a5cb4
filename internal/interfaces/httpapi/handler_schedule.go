package httpapi

import (
	"net/http"

	"github.com/riskibarqy/tournament-ops/internal/usecase"
)

func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedules")
	defer span.End()

	details, err := h.scheduleService.List(ctx)
	if err != nil {
		h.logFailure(ctx, "list schedules failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scheduleDTO, 0, len(details))
	for _, item := range details {
		items = append(items, scheduleToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSchedule")
	defer span.End()

	var req createScheduleRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scheduleService.Create(ctx, usecase.CreateScheduleInput{
		EventID:     req.EventID,
		BracketID:   req.BracketID,
		MatchID:     req.MatchID,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Description: req.Description,
	})
	if err != nil {
		h.logFailure(ctx, "create schedule failed", err, "match_id", req.MatchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, scheduleToDTO(item))
}

func (h *Handler) CancelSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelSchedule")
	defer span.End()

	scheduleID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.scheduleService.Cancel(ctx, scheduleID); err != nil {
		h.logFailure(ctx, "cancel schedule failed", err, "schedule_id", scheduleID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"message": "schedule cancelled"})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := parseIDParam(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scheduleService.GetMatch(ctx, matchID)
	if err != nil {
		h.logFailure(ctx, "get match failed", err, "match_id", matchID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}
