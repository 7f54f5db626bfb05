package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
	"github.com/ichscheine/goAIME-sub001/internal/domain/performance"
	practicesession "github.com/ichscheine/goAIME-sub001/internal/domain/practice_session"
	"github.com/ichscheine/goAIME-sub001/internal/service"
	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Username     string `json:"username" example:"alice"`
	ContestID    string `json:"contest_id"`
	Mode         string `json:"mode,omitempty" example:"timed"`
	Preset       string `json:"preset,omitempty" example:"amc10"`
	TimeLimitMin *int   `json:"time_limit_min,omitempty" example:"75"`
	MaxProblems  *int   `json:"max_problems,omitempty" example:"10"`
	Shuffle      bool   `json:"shuffle"`
}

func (r *CreateSessionRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.ContestID == "" {
		return errors.New("contest_id is required")
	}
	if _, ok := practicesession.ParseMode(r.Mode); !ok {
		return errors.New("invalid mode: must be timed or practice")
	}
	if r.TimeLimitMin != nil && *r.TimeLimitMin <= 0 {
		return errors.New("time_limit_min must be positive")
	}
	return nil
}

type TimerResponse struct {
	Mode        string `json:"mode" example:"countdown"`
	InitialTime int64  `json:"initial_time_ms" example:"4500000"`
	Time        int64  `json:"time_ms" example:"4380000"`
	Display     string `json:"display" example:"73:00"`
	Running     bool   `json:"running"`
	Complete    bool   `json:"complete"`
}

func toTimerResponse(s sessiontimer.Snapshot) TimerResponse {
	return TimerResponse{
		Mode:        string(s.Mode),
		InitialTime: s.Initial.Milliseconds(),
		Time:        s.Time.Milliseconds(),
		Display:     s.Display(),
		Running:     s.Running,
		Complete:    s.Complete,
	}
}

type SessionResponse struct {
	ID           string            `json:"id"`
	Username     string            `json:"username" example:"alice"`
	ContestID    string            `json:"contest_id"`
	Mode         string            `json:"mode" example:"timed"`
	TimeLimitMin int               `json:"time_limit_min,omitempty" example:"75"`
	Problems     []ProblemResponse `json:"problems"`
	StartedAt    time.Time         `json:"started_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
	Timer        *TimerResponse    `json:"timer,omitempty"`
}

func toSessionResponse(s *practicesession.PracticeSession) SessionResponse {
	resp := SessionResponse{
		ID:           s.ID,
		Username:     s.Username,
		ContestID:    s.ContestID,
		Mode:         string(s.Mode),
		TimeLimitMin: int(s.TimeLimit / time.Minute),
		Problems:     make([]ProblemResponse, len(s.Problems)),
		StartedAt:    s.StartedAt,
		CompletedAt:  s.CompletedAt,
	}
	for i, p := range s.Problems {
		resp.Problems[i] = toProblemResponse(p, false)
	}
	return resp
}

type SubmitAnswerRequest struct {
	ProblemID string `json:"problem_id"`
	Choice    string `json:"choice" example:"C"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.ProblemID == "" {
		return errors.New("problem_id is required")
	}
	if r.Choice == "" {
		return errors.New("choice is required")
	}
	return nil
}

type SubmitAnswerResponse struct {
	ProblemID   string `json:"problem_id"`
	Choice      string `json:"choice" example:"C"`
	Correct     bool   `json:"correct"`
	TimeSpentMs int64  `json:"time_spent_ms" example:"42000"`
}

type TallyResponse struct {
	Attempted int    `json:"attempted" example:"4"`
	Correct   int    `json:"correct" example:"3"`
	Accuracy  string `json:"accuracy" example:"75.0%"`
	Band      string `json:"band" example:"high"`
	Color     string `json:"color" example:"#10b981"`
}

func toTallies(in map[string]performance.Tally) map[string]TallyResponse {
	out := make(map[string]TallyResponse, len(in))
	for k, t := range in {
		band := performance.BandFor(t.Accuracy())
		out[k] = TallyResponse{
			Attempted: t.Attempted,
			Correct:   t.Correct,
			Accuracy:  performance.FormatPercent(t.Accuracy()),
			Band:      band.Name,
			Color:     band.Color,
		}
	}
	return out
}

type SessionResultResponse struct {
	SessionID             string                   `json:"session_id"`
	ContestName           string                   `json:"contest_name" example:"AMC 10A"`
	Year                  int                      `json:"year" example:"2023"`
	Mode                  string                   `json:"mode" example:"timed"`
	Score                 int                      `json:"score" example:"18"`
	Attempted             int                      `json:"attempted" example:"22"`
	TotalProblems         int                      `json:"total_problems" example:"25"`
	Accuracy              string                   `json:"accuracy" example:"81.8%"`
	TotalTime             string                   `json:"total_time" example:"68:12"`
	AverageTimeMs         int64                    `json:"average_time_per_problem_ms" example:"186000"`
	CompletedAt           time.Time                `json:"completed_at"`
	TopicPerformance      map[string]TallyResponse `json:"topic_performance"`
	DifficultyPerformance map[string]TallyResponse `json:"difficulty_performance"`
}

func toResultResponse(r performance.SessionResult) SessionResultResponse {
	return SessionResultResponse{
		SessionID:             r.SessionID,
		ContestName:           r.ContestName,
		Year:                  r.Year,
		Mode:                  r.Mode,
		Score:                 r.Score,
		Attempted:             r.Attempted,
		TotalProblems:         r.TotalProblems,
		Accuracy:              performance.FormatPercent(r.Accuracy()),
		TotalTime:             sessiontimer.Format(r.TotalTime),
		AverageTimeMs:         r.AverageTimePerProblem().Milliseconds(),
		CompletedAt:           r.CompletedAt,
		TopicPerformance:      toTallies(r.TopicPerformance),
		DifficultyPerformance: toTallies(r.DifficultyPerformance),
	}
}

// handleServiceError maps session and timer errors onto HTTP statuses and
// falls back to handleStoreError.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, entity string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrSessionClosed), errors.Is(err, service.ErrAlreadyAnswered):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTimeExpired):
		respondError(w, http.StatusGone, err.Error())
	case errors.Is(err, service.ErrEmptyContest),
		errors.Is(err, service.ErrUnknownAction),
		errors.Is(err, contest.ErrInvalidChoice):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, practicesession.ErrUnknownProblem):
		respondError(w, http.StatusNotFound, "problem not found")
	case errors.Is(err, service.ErrTimerNotFound):
		respondError(w, http.StatusNotFound, "timer not found")
	default:
		return h.handleStoreError(w, err, entity)
	}
	return true
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a practice session and its timer.
// @Summary      Start a practice session
// @Description  Timed sessions run a countdown (preset, time_limit_min, or 75 minutes); practice sessions run a stopwatch.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session options"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "user or contest not found"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cfg := practicesession.DefaultConfig()
	cfg.Mode, _ = practicesession.ParseMode(req.Mode)
	cfg.MaxProblems = req.MaxProblems
	cfg.Shuffle = req.Shuffle

	if req.Preset != "" {
		preset, ok := h.presets.Lookup(req.Preset)
		if !ok {
			respondError(w, http.StatusBadRequest, "unknown preset "+req.Preset)
			return
		}
		cfg.Mode = practicesession.ModePractice
		if preset.Mode == sessiontimer.Countdown {
			cfg.Mode = practicesession.ModeTimed
			limit := preset.Duration
			cfg.TimeLimit = &limit
		}
	}

	if req.TimeLimitMin != nil {
		limit := time.Duration(*req.TimeLimitMin) * time.Minute
		cfg.TimeLimit = &limit
	}

	session, snap, err := h.sessions.Start(r.Context(), service.StartRequest{
		Username:  req.Username,
		ContestID: req.ContestID,
		Config:    cfg,
	})
	if h.handleServiceError(w, err, "user or contest") {
		return
	}

	resp := toSessionResponse(session)
	timer := toTimerResponse(snap)
	resp.Timer = &timer
	respondJSON(w, http.StatusCreated, resp)
}

// GET /sessions/{sessionID}
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.PathValue("sessionID")

	session, err := h.store.GetSession(ctx, sessionID)
	if h.handleStoreError(w, err, "session") {
		return
	}

	resp := toSessionResponse(session)
	if snap, err := h.timers.Snapshot(ctx, sessionID); err == nil {
		timer := toTimerResponse(snap)
		resp.Timer = &timer
	}
	respondJSON(w, http.StatusOK, resp)
}

// submitAnswer grades one answer.
// @Summary      Submit an answer
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Answer"
// @Success      200        {object}  SubmitAnswerResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "already answered or session closed"
// @Failure      410        {object}  map[string]string  "time expired"
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	attempt, err := h.sessions.Answer(r.Context(), r.PathValue("sessionID"), req.ProblemID, req.Choice)
	if h.handleServiceError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		ProblemID:   attempt.ProblemID,
		Choice:      attempt.Choice,
		Correct:     attempt.Correct,
		TimeSpentMs: attempt.TimeSpent.Milliseconds(),
	})
}

// completeSession finishes a session and returns its result.
// @Summary      Complete a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResultResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session already completed"
// @Router       /sessions/{sessionID}/complete [post]
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessions.Complete(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, toResultResponse(result))
}
