package api

import (
	"net/http"

	"github.com/ichscheine/goAIME-sub001/internal/service"
)

// getTimer returns the current timer state of a session.
// @Summary      Get a session timer
// @Tags         Timers
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  TimerResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/timer [get]
func (h *Handler) getTimer(w http.ResponseWriter, r *http.Request) {
	snap, err := h.timers.Snapshot(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, err, "timer") {
		return
	}
	respondJSON(w, http.StatusOK, toTimerResponse(snap))
}

// controlTimer starts, pauses, stops or resets a session timer.
// @Summary      Control a session timer
// @Tags         Timers
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Param        action     path      string  true  "start, pause, stop or reset"
// @Success      200        {object}  TimerResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session already completed"
// @Failure      410        {object}  map[string]string  "time expired"
// @Router       /sessions/{sessionID}/timer/{action} [post]
func (h *Handler) controlTimer(w http.ResponseWriter, r *http.Request) {
	action, err := service.ParseAction(r.PathValue("action"))
	if h.handleServiceError(w, err, "timer") {
		return
	}

	snap, err := h.sessions.ControlTimer(r.Context(), r.PathValue("sessionID"), action)
	if h.handleServiceError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, toTimerResponse(snap))
}
