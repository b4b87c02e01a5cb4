package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/brackets/{bracketID}", handler.GetBracket)
	mux.HandleFunc("GET /v1/brackets/{bracketID}/teams", handler.ListBracketTeams)
	mux.HandleFunc("GET /v1/schedules", handler.ListSchedules)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/teams/standings", handler.ListTeamStandings)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats", handler.GetTeamStats)
}

// registerMutatingRoutes guards writes with verifier; a nil verifier leaves
// them open.
func registerMutatingRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/bracket-teams", RequireAuth(verifier, http.HandlerFunc(handler.AssignBracketTeam)))
	mux.Handle("DELETE /v1/bracket-teams/{id}", RequireAuth(verifier, http.HandlerFunc(handler.RemoveBracketTeam)))
	mux.Handle("POST /v1/schedules", RequireAuth(verifier, http.HandlerFunc(handler.CreateSchedule)))
	mux.Handle("DELETE /v1/schedules/{id}", RequireAuth(verifier, http.HandlerFunc(handler.CancelSchedule)))
	mux.Handle("POST /v1/player-stats", RequireAuth(verifier, http.HandlerFunc(handler.RecordPlayerStats)))
}
