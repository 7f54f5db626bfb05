package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/domain/contest"
)

const exportVersion = "1.0"

// ── Request / Response types ────────────────────────────────────────────────

type ExportProblem struct {
	Statement  string `json:"statement"`
	Answer     string `json:"answer"`
	Topic      string `json:"topic,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type ExportContest struct {
	Name     string          `json:"name"`
	Year     int             `json:"year"`
	Problems []ExportProblem `json:"problems"`
}

type ExportData struct {
	Version    string          `json:"version"`
	ExportedAt string          `json:"exported_at"`
	Contests   []ExportContest `json:"contests"`
}

type ImportResult struct {
	ContestsCreated int `json:"contests_created"`
	ProblemsCreated int `json:"problems_created"`
	ProblemsSkipped int `json:"problems_skipped"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll dumps every contest with its problems and answer key.
// @Summary      Export contests
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportData
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contests, err := h.store.ListContests(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load contests")
		return
	}

	exportData := ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Contests:   make([]ExportContest, 0, len(contests)),
	}

	for _, c := range contests {
		full, err := h.store.GetContest(ctx, c.ID)
		if err != nil {
			h.logger.Warn("skipping contest in export", "contest_id", c.ID, "error", err)
			continue
		}

		exportContest := ExportContest{
			Name:     full.Name,
			Year:     full.Year,
			Problems: make([]ExportProblem, len(full.Problems)),
		}
		for i, p := range full.Problems {
			exportContest.Problems[i] = ExportProblem{
				Statement:  p.Statement,
				Answer:     p.Answer,
				Topic:      p.Topic,
				Difficulty: string(p.Difficulty),
			}
		}
		exportData.Contests = append(exportData.Contests, exportContest)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=goaime-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// importAll recreates contests from an export document.
// @Summary      Import contests
// @Tags         Export
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Export document"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	result := ImportResult{}

	for _, ec := range importData.Contests {
		c, err := contest.New(ec.Name, ec.Year)
		if err != nil {
			h.logger.Error("invalid contest in import", "name", ec.Name, "error", err)
			continue
		}

		for _, p := range ec.Problems {
			if _, err := c.AddProblem(p.Statement, p.Answer, p.Topic, contest.Difficulty(p.Difficulty)); err != nil {
				h.logger.Error("failed to add problem", "contest", ec.Name, "error", err)
				result.ProblemsSkipped++
			}
		}

		if err := h.store.SaveContest(ctx, c); err != nil {
			h.logger.Error("failed to create contest", "name", ec.Name, "error", err)
			continue
		}
		result.ContestsCreated++
		result.ProblemsCreated += len(c.Problems)
	}

	respondJSON(w, http.StatusCreated, result)
}
