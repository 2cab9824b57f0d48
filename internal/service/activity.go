package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/repo"
)

// ActivityService implements business logic for itinerary activities.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates and persists an activity under a trip.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	applyActivityDefaults(&activity)
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if _, err := s.trips.GetByID(ctx, activity.TripID); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	created, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns one activity scoped to its trip.
func (s *ActivityService) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	activity, err := s.activities.GetByID(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return activity, nil
}

// ListByTrip returns all activities for a trip.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}

	activities, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}
	return activities, nil
}

// Update validates and updates an existing activity.
func (s *ActivityService) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	applyActivityDefaults(&activity)
	if err := validateActivity(activity); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}

	updated, err := s.activities.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an activity scoped to its trip.
func (s *ActivityService) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	if err := s.activities.Delete(ctx, tripID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

func applyActivityDefaults(a *domain.Activity) {
	if a.Category == "" {
		a.Category = domain.CategoryOther
	}
	if a.Status == "" {
		a.Status = domain.ActivityPlanned
	}
}

func validateActivity(a domain.Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("%w: invalid category %q", domain.ErrValidation, a.Category)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, a.Status)
	}
	if a.Rating != nil && (*a.Rating < 0 || *a.Rating > 10) {
		return fmt.Errorf("%w: rating must be between 0 and 10", domain.ErrValidation)
	}
	return nil
}
