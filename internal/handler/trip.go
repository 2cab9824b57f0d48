package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
)

// TripRequest is the body of POST /api/trips and PUT /api/trips/{id}.
// Dates are "2006-01-02" strings; optional fields may be omitted.
type TripRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Destination string    `json:"destination"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	GroupSize   int       `json:"group_size,omitempty"`
	Budget      *float64  `json:"budget,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	Status      string    `json:"status,omitempty"`
	CreatedBy   uuid.UUID `json:"created_by"`
}

// TripListResponse is the paged reply of GET /api/trips.
type TripListResponse struct {
	Data       []domain.Trip `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := requestToTrip(uuid.Nil, req)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /api/trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, TripListResponse{
		Data:       trips,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetTrip handles GET /api/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /api/trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	trip, err := requestToTrip(id, req)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /api/trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a TripRequest body into a domain.Trip.
// The path ID is uuid.Nil on create.
func requestToTrip(id uuid.UUID, req TripRequest) (domain.Trip, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("invalid start_date: %v", err)
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("invalid end_date: %v", err)
	}

	return domain.Trip{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		GroupSize:   req.GroupSize,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Status:      domain.TripStatus(req.Status),
		CreatedBy:   req.CreatedBy,
	}, nil
}

// parseDate parses an optional "2006-01-02" date string.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
