package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ichscheine/goAIME-sub001/internal/domain/user"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateUserRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Grade    int    `json:"grade,omitempty" example:"10"`
}

func (r *CreateUserRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.Grade < 0 || r.Grade > 12 {
		return errors.New("grade must be between 0 and 12")
	}
	return nil
}

type UserResponse struct {
	ID        string    `json:"id" example:"3f1c2a9e-8a4b-4d71-9f0e-1b2c3d4e5f60"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Grade     int       `json:"grade,omitempty" example:"10"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(p *user.Profile) UserResponse {
	return UserResponse{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		Grade:     p.Grade,
		CreatedAt: p.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createUser registers a student.
// @Summary      Create a user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "User to create"
// @Success      201   {object}  UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "username taken"
// @Router       /users [post]
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := user.New(req.Username, req.Email, req.Grade)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.SaveUser(r.Context(), profile), "user") {
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(profile))
}

// listUsers lists every registered user.
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Success      200  {array}   UserResponse
// @Router       /users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.ListUsers(r.Context())
	if h.handleStoreError(w, err, "user") {
		return
	}

	resp := make([]UserResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = toUserResponse(p)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GET /users/{username}
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	profile, err := h.store.GetUserByUsername(r.Context(), r.PathValue("username"))
	if h.handleStoreError(w, err, "user") {
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(profile))
}
