package api

import (
	"net/http"

	"github.com/ichscheine/goAIME-sub001/internal/domain/performance"
	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

// ── Response types ──────────────────────────────────────────────────────────

type OverallResponse struct {
	TotalSessions      int     `json:"total_sessions" example:"12"`
	TotalProblems      int     `json:"total_problems" example:"260"`
	TotalCorrect       int     `json:"total_correct" example:"181"`
	AccuracyPercentage float64 `json:"accuracy_percentage" example:"69.6"`
	Accuracy           string  `json:"accuracy" example:"69.6%"`
	AverageScore       float64 `json:"average_score" example:"15.1"`
	AverageTime        string  `json:"average_time" example:"02:41"`
}

type ProgressResponse struct {
	TopicPerformance      map[string]TallyResponse `json:"topic_performance"`
	DifficultyPerformance map[string]TallyResponse `json:"difficulty_performance"`
	Overall               OverallResponse          `json:"overall"`
	RecentSessions        []SessionResultResponse  `json:"recent_sessions"`
}

type StatsResponse struct {
	Username     string `json:"username" example:"alice"`
	SessionCount int    `json:"session_count" example:"12"`
	BestScore    int    `json:"best_score" example:"21"`
}

type PresetResponse struct {
	Name        string `json:"name" example:"amc10"`
	Mode        string `json:"mode" example:"countdown"`
	DurationMin int    `json:"duration_min,omitempty" example:"75"`
	Display     string `json:"display" example:"75:00"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getProgress aggregates a user's completed sessions.
// @Summary      Get user progress
// @Tags         Users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  ProgressResponse
// @Failure      404       {object}  map[string]string
// @Router       /users/{username}/progress [get]
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.sessions.Progress(r.Context(), r.PathValue("username"))
	if h.handleStoreError(w, err, "user") {
		return
	}

	o := progress.Overall
	resp := ProgressResponse{
		TopicPerformance:      toTallies(progress.TopicPerformance),
		DifficultyPerformance: toTallies(progress.DifficultyPerformance),
		Overall: OverallResponse{
			TotalSessions:      o.TotalSessions,
			TotalProblems:      o.TotalProblems,
			TotalCorrect:       o.TotalCorrect,
			AccuracyPercentage: o.AccuracyPercentage,
			Accuracy:           performance.FormatPercent(o.AccuracyPercentage),
			AverageScore:       o.AverageScore,
			AverageTime:        sessiontimer.Format(o.AverageTime),
		},
		RecentSessions: make([]SessionResultResponse, len(progress.RecentSessions)),
	}
	for i, result := range progress.RecentSessions {
		resp.RecentSessions[i] = toResultResponse(result)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GET /users/{username}/stats
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	stats, err := h.sessions.Stats(r.Context(), username)
	if h.handleStoreError(w, err, "user") {
		return
	}
	respondJSON(w, http.StatusOK, StatsResponse{
		Username:     username,
		SessionCount: stats.SessionCount,
		BestScore:    stats.BestScore,
	})
}

// listPresets lists the configured timer presets.
// @Summary      List timer presets
// @Tags         Timers
// @Produce      json
// @Success      200  {array}  PresetResponse
// @Router       /presets [get]
func (h *Handler) listPresets(w http.ResponseWriter, r *http.Request) {
	names := h.presets.Names()
	resp := make([]PresetResponse, 0, len(names))
	for _, name := range names {
		p := h.presets[name]
		resp = append(resp, PresetResponse{
			Name:        p.Name,
			Mode:        string(p.Mode),
			DurationMin: int(p.Duration.Minutes()),
			Display:     sessiontimer.Format(p.Duration),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}
