package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/poi"
)

// PlanTripRequest is the body of POST /api/trip-planner/plan.
type PlanTripRequest struct {
	// Query is a natural-language trip query, e.g. "3 days in Melbourne".
	Query string `json:"query"`
}

// PlanTripResponse is the planner's reply: the parsed city and duration plus
// the fetched activity suggestions.
type PlanTripResponse struct {
	City         string         `json:"city"`
	DurationDays *int           `json:"duration_days,omitempty"`
	Activities   []poi.Activity `json:"activities"`
}

// CityActivitiesResponse is the reply of GET /api/trip-planner/activities/{city}.
type CityActivitiesResponse struct {
	City         string         `json:"city"`
	DurationDays int            `json:"duration_days"`
	Activities   []poi.Activity `json:"activities"`
}

// PlanTrip handles POST /api/trip-planner/plan.
//
// An unparseable query (no city) is a 400 — the caller asked a question the
// parser cannot answer, distinct from the 422s entity validation produces
// and from the 502 a downstream provider failure produces.
func (s *Server) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req PlanTripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "request body is required")
		return
	}

	plan, err := s.planner.PlanTrip(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequest(w, unwrapMessage(err))
			return
		}
		writeError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, PlanTripResponse{
		City:         plan.City,
		DurationDays: plan.DurationDays,
		Activities:   emptyIfNil(plan.Activities),
	})
}

// GetCityActivities handles GET /api/trip-planner/activities/{city}.
// Query parameters: duration_days (default 3), limit (default 10), and
// provider (default "yelp"). The parser is bypassed entirely.
func (s *Server) GetCityActivities(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	durationDays := 3
	if v := queryInt(r, "duration_days"); v != nil {
		durationDays = *v
	}
	limit := 10
	if v := queryInt(r, "limit"); v != nil {
		limit = *v
	}
	provider := r.URL.Query().Get("provider")
	if provider == "" {
		provider = "yelp"
	}

	activities, err := s.planner.CityActivities(r.Context(), city, durationDays, limit, provider)
	if err != nil {
		writeError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, CityActivitiesResponse{
		City:         city,
		DurationDays: durationDays,
		Activities:   emptyIfNil(activities),
	})
}

// emptyIfNil keeps the activities field a JSON array, never null.
func emptyIfNil(activities []poi.Activity) []poi.Activity {
	if activities == nil {
		return []poi.Activity{}
	}
	return activities
}
