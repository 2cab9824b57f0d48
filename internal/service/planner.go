package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/poi"
	"github.com/iterary/backend/internal/tripparse"
)

// ActivityFinder is the multi-provider POI lookup the planner falls back on
// when no explicit provider is requested. Satisfied by *poi.MultiProvider.
type ActivityFinder interface {
	Activities(ctx context.Context, city string, durationDays, limit int) ([]poi.Activity, error)
}

// defaultDurationDays is assumed when a query names a city but no duration.
const defaultDurationDays = 3

// Plan is the outcome of planning a trip from a free-text query.
type Plan struct {
	City         string
	DurationDays *int
	Activities   []poi.Activity
}

// PlannerService turns free-text queries into activity suggestions.
// It is the only consumer of the tripparse package.
type PlannerService struct {
	finder   ActivityFinder
	registry *poi.Registry
	log      *slog.Logger
}

// NewPlannerService constructs a PlannerService.
func NewPlannerService(finder ActivityFinder, registry *poi.Registry, log *slog.Logger) *PlannerService {
	return &PlannerService{finder: finder, registry: registry, log: log}
}

// PlanTrip parses the query and fetches suggestions for the extracted city.
//
// A query with no extractable city is a client error (ErrValidation), never a
// parser failure — Parse itself cannot fail. Downstream provider errors are
// logged in full and surfaced as ErrProviderUnavailable with a summary only.
//
// The suggestion count scales with trip length: two activities per day when
// the duration is known, else a flat 10.
func (s *PlannerService) PlanTrip(ctx context.Context, query string) (Plan, error) {
	parsed := tripparse.Parse(query)
	if parsed.City == "" {
		return Plan{}, fmt.Errorf("service.PlannerService.PlanTrip: %w: could not extract city from query, please specify a city name", domain.ErrValidation)
	}

	limit := tripparse.SuggestionLimit(parsed.DurationDays)
	days := defaultDurationDays
	if parsed.DurationDays != nil {
		days = *parsed.DurationDays
	}

	activities, err := s.finder.Activities(ctx, parsed.City, days, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "activity lookup failed",
			"city", parsed.City,
			"duration_days", days,
			"limit", limit,
			"error", err,
		)
		return Plan{}, fmt.Errorf("service.PlannerService.PlanTrip: %w: failed to fetch activity suggestions", domain.ErrProviderUnavailable)
	}

	return Plan{
		City:         parsed.City,
		DurationDays: parsed.DurationDays,
		Activities:   activities,
	}, nil
}

// CityActivities fetches suggestions for an explicitly named city and
// provider, bypassing the parser entirely.
func (s *PlannerService) CityActivities(ctx context.Context, city string, durationDays, limit int, provider string) ([]poi.Activity, error) {
	if strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("service.PlannerService.CityActivities: %w: city is required", domain.ErrValidation)
	}
	if durationDays < 1 {
		return nil, fmt.Errorf("service.PlannerService.CityActivities: %w: duration_days must be at least 1", domain.ErrValidation)
	}
	if limit < 1 {
		return nil, fmt.Errorf("service.PlannerService.CityActivities: %w: limit must be at least 1", domain.ErrValidation)
	}

	p, err := s.registry.Get(provider)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.CityActivities: %w: unknown provider %q", domain.ErrValidation, provider)
	}

	activities, err := p.Activities(ctx, city, durationDays, limit)
	if err != nil {
		s.log.ErrorContext(ctx, "activity lookup failed",
			"provider", provider,
			"city", city,
			"error", err,
		)
		return nil, fmt.Errorf("service.PlannerService.CityActivities: %w: failed to fetch activities", domain.ErrProviderUnavailable)
	}
	return activities, nil
}
