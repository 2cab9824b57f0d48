package handler

import (
	"net/http"

	"github.com/iterary/backend/internal/domain"
)

// UserRequest is the body of POST /api/users.
type UserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateUser handles POST /api/users.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	created, err := s.users.Create(r.Context(), domain.User{Email: req.Email, Name: req.Name})
	if err != nil {
		writeError(w, err, "user not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/users/{userID}.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "userID")
	if err != nil {
		badRequest(w, "invalid user id")
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
