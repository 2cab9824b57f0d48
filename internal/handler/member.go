package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
)

// InviteMemberRequest is the body of POST /api/trips/{tripID}/members.
type InviteMemberRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role,omitempty"`
}

// RespondMemberRequest is the body of PUT /api/trips/{tripID}/members/{userID}.
type RespondMemberRequest struct {
	Status string `json:"status"`
}

// InviteMember handles POST /api/trips/{tripID}/members.
func (s *Server) InviteMember(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	var req InviteMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	member, err := s.members.Invite(r.Context(), domain.TripMember{
		TripID: tripID,
		UserID: req.UserID,
		Role:   domain.MemberRole(req.Role),
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

// ListMembers handles GET /api/trips/{tripID}/members.
func (s *Server) ListMembers(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	members, err := s.members.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, members)
}

// RespondMember handles PUT /api/trips/{tripID}/members/{userID}.
func (s *Server) RespondMember(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		badRequest(w, "invalid user id")
		return
	}

	var req RespondMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	member, err := s.members.Respond(r.Context(), tripID, userID, domain.MemberStatus(req.Status))
	if err != nil {
		writeError(w, err, "membership not found")
		return
	}

	writeJSON(w, http.StatusOK, member)
}

// RemoveMember handles DELETE /api/trips/{tripID}/members/{userID}.
func (s *Server) RemoveMember(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		badRequest(w, "invalid user id")
		return
	}

	if err := s.members.Remove(r.Context(), tripID, userID); err != nil {
		writeError(w, err, "membership not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
