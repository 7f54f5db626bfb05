// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Users
	mux.HandleFunc("POST /users", h.createUser)
	mux.HandleFunc("GET /users", h.listUsers)
	mux.HandleFunc("GET /users/{username}", h.getUser)
	mux.HandleFunc("GET /users/{username}/progress", h.getProgress)
	mux.HandleFunc("GET /users/{username}/stats", h.getStats)

	// Contests
	mux.HandleFunc("POST /contests", h.createContest)
	mux.HandleFunc("GET /contests", h.listContests)
	mux.HandleFunc("GET /contests/{contestID}", h.getContest)
	mux.HandleFunc("POST /contests/{contestID}/problems", h.addProblem)

	// Timer presets
	mux.HandleFunc("GET /presets", h.listPresets)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/complete", h.completeSession)

	// Session timers
	mux.HandleFunc("GET /sessions/{sessionID}/timer", h.getTimer)
	mux.HandleFunc("POST /sessions/{sessionID}/timer/{action}", h.controlTimer)

	// Export / Import
	mux.HandleFunc("GET /export", h.exportAll)
	mux.HandleFunc("POST /import", h.importAll)
}
