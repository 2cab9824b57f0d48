package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
)

// MessageRequest is the body of POST /api/trips/{tripID}/messages.
type MessageRequest struct {
	SenderID uuid.UUID `json:"sender_id"`
	Type     string    `json:"type,omitempty"`
	Body     string    `json:"body"`
}

// MessageListResponse is the paged reply of GET /api/trips/{tripID}/messages.
type MessageListResponse struct {
	Data       []domain.Message `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// PostMessage handles POST /api/trips/{tripID}/messages.
func (s *Server) PostMessage(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	var req MessageRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	msg, err := s.messages.Post(r.Context(), domain.Message{
		TripID:   tripID,
		SenderID: req.SenderID,
		Type:     domain.MessageType(req.Type),
		Body:     req.Body,
	})
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// ListMessages handles GET /api/trips/{tripID}/messages, newest first.
// Supports ?page= and ?limit= query parameters.
func (s *Server) ListMessages(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	messages, total, err := s.messages.ListByTrip(r.Context(), tripID, params)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, MessageListResponse{
		Data:       messages,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// DeleteMessage handles DELETE /api/trips/{tripID}/messages/{messageID}.
func (s *Server) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	messageID, err := pathUUID(r, "messageID")
	if err != nil {
		badRequest(w, "invalid message id")
		return
	}

	if err := s.messages.Delete(r.Context(), tripID, messageID); err != nil {
		writeError(w, err, "message not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
