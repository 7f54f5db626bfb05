package api

import (
	"errors"
	"net/http"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateContestRequest struct {
	Name string `json:"name" example:"AMC 10A"`
	Year int    `json:"year" example:"2023"`
}

func (r *CreateContestRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Year < 1950 || r.Year > 2100 {
		return errors.New("year is out of range")
	}
	return nil
}

type AddProblemRequest struct {
	Statement  string `json:"statement" example:"What is the sum of the first 10 positive integers?"`
	Answer     string `json:"answer" example:"C"`
	Topic      string `json:"topic,omitempty" example:"Arithmetic"`
	Difficulty string `json:"difficulty,omitempty" example:"easy"`
}

func (r *AddProblemRequest) Validate() error {
	if r.Statement == "" {
		return errors.New("statement is required")
	}
	if _, ok := contest.NormalizeChoice(r.Answer); !ok {
		return errors.New("answer must be one of A-E")
	}
	switch contest.Difficulty(r.Difficulty) {
	case "", contest.DifficultyEasy, contest.DifficultyMedium, contest.DifficultyHard:
		return nil
	}
	return errors.New("invalid difficulty: must be easy, medium, or hard")
}

type ProblemResponse struct {
	ID         string `json:"id"`
	Number     int    `json:"number" example:"1"`
	Topic      string `json:"topic" example:"Arithmetic"`
	Difficulty string `json:"difficulty" example:"easy"`
	Statement  string `json:"statement"`
	Answer     string `json:"answer,omitempty" example:"C"`
}

type ContestSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name" example:"AMC 10A"`
	Year         int    `json:"year" example:"2023"`
	ProblemCount int    `json:"problem_count" example:"25"`
}

type ContestResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name" example:"AMC 10A"`
	Year     int               `json:"year" example:"2023"`
	Problems []ProblemResponse `json:"problems"`
}

func toProblemResponse(p contest.Problem, withAnswer bool) ProblemResponse {
	resp := ProblemResponse{
		ID:         p.ID,
		Number:     p.Number,
		Topic:      p.Topic,
		Difficulty: string(p.Difficulty),
		Statement:  p.Statement,
	}
	if withAnswer {
		resp.Answer = p.Answer
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createContest creates an empty contest.
// @Summary      Create a contest
// @Tags         Contests
// @Accept       json
// @Produce      json
// @Param        body  body      CreateContestRequest  true  "Contest to create"
// @Success      201   {object}  ContestSummaryResponse
// @Failure      400   {object}  map[string]string
// @Router       /contests [post]
func (h *Handler) createContest(w http.ResponseWriter, r *http.Request) {
	var req CreateContestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := contest.New(req.Name, req.Year)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveContest(r.Context(), c); err != nil {
		h.logger.Error("failed to save contest", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save contest")
		return
	}

	respondJSON(w, http.StatusCreated, ContestSummaryResponse{ID: c.ID, Name: c.Name, Year: c.Year})
}

// listContests lists every contest without its problems.
// @Summary      List contests
// @Tags         Contests
// @Produce      json
// @Success      200  {array}   ContestSummaryResponse
// @Router       /contests [get]
func (h *Handler) listContests(w http.ResponseWriter, r *http.Request) {
	contests, err := h.store.ListContests(r.Context())
	if h.handleStoreError(w, err, "contest") {
		return
	}

	resp := make([]ContestSummaryResponse, len(contests))
	for i, c := range contests {
		resp[i] = ContestSummaryResponse{
			ID:           c.ID,
			Name:         c.Name,
			Year:         c.Year,
			ProblemCount: len(c.Problems),
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// getContest returns a contest with its problems and answer key.
// @Summary      Get a contest
// @Tags         Contests
// @Produce      json
// @Param        contestID  path      string  true  "Contest ID"
// @Success      200        {object}  ContestResponse
// @Failure      404        {object}  map[string]string
// @Router       /contests/{contestID} [get]
func (h *Handler) getContest(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.GetContest(r.Context(), r.PathValue("contestID"))
	if h.handleStoreError(w, err, "contest") {
		return
	}

	resp := ContestResponse{
		ID:       c.ID,
		Name:     c.Name,
		Year:     c.Year,
		Problems: make([]ProblemResponse, len(c.Problems)),
	}
	for i, p := range c.Problems {
		resp.Problems[i] = toProblemResponse(p, true)
	}
	respondJSON(w, http.StatusOK, resp)
}

// POST /contests/{contestID}/problems
func (h *Handler) addProblem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contestID := r.PathValue("contestID")

	c, err := h.store.GetContest(ctx, contestID)
	if h.handleStoreError(w, err, "contest") {
		return
	}

	var req AddProblemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	problem, err := c.AddProblem(req.Statement, req.Answer, req.Topic, contest.Difficulty(req.Difficulty))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.AddProblem(ctx, contestID, problem); err != nil {
		h.logger.Error("failed to save problem", "contest_id", contestID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save problem")
		return
	}

	respondJSON(w, http.StatusCreated, toProblemResponse(problem, true))
}
