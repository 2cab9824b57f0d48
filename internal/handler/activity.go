package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
)

// ActivityRequest is the body of POST and PUT under /api/trips/{tripID}/activities.
type ActivityRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Status   string   `json:"status,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Address  string   `json:"address,omitempty"`
	URL      string   `json:"url,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Price    string   `json:"price,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

func (req ActivityRequest) toDomain(tripID, activityID uuid.UUID) domain.Activity {
	return domain.Activity{
		ID:       activityID,
		TripID:   tripID,
		Name:     req.Name,
		Category: domain.ActivityCategory(req.Category),
		Status:   domain.ActivityStatus(req.Status),
		Rating:   req.Rating,
		Address:  req.Address,
		URL:      req.URL,
		ImageURL: req.ImageURL,
		Price:    req.Price,
		Notes:    req.Notes,
	}
}

// CreateActivity handles POST /api/trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	created, err := s.activities.Create(r.Context(), req.toDomain(tripID, uuid.Nil))
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListActivities handles GET /api/trips/{tripID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	activities, err := s.activities.ListByTrip(r.Context(), tripID)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, activities)
}

// GetActivity handles GET /api/trips/{tripID}/activities/{activityID}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		badRequest(w, "invalid activity id")
		return
	}

	activity, err := s.activities.GetByID(r.Context(), tripID, activityID)
	if err != nil {
		writeError(w, err, "activity not found")
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

// UpdateActivity handles PUT /api/trips/{tripID}/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		badRequest(w, "invalid activity id")
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	updated, err := s.activities.Update(r.Context(), req.toDomain(tripID, activityID))
	if err != nil {
		writeError(w, err, "activity not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteActivity handles DELETE /api/trips/{tripID}/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	activityID, err := pathUUID(r, "activityID")
	if err != nil {
		badRequest(w, "invalid activity id")
		return
	}

	if err := s.activities.Delete(r.Context(), tripID, activityID); err != nil {
		writeError(w, err, "activity not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
