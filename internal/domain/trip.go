// Package domain contains the core data types for the Iterary travel-planning
// backend. This package has zero external dependencies beyond uuid and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus tracks where a trip is in its lifecycle.
type TripStatus string

const (
	TripPlanned   TripStatus = "planned"
	TripOngoing   TripStatus = "ongoing"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// Valid reports whether s is one of the defined trip statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case TripPlanned, TripOngoing, TripCompleted, TripCancelled:
		return true
	}
	return false
}

// Trip is the top-level aggregate of the application. Members, activities,
// expenses, and messages all belong to a trip and are cascade-deleted with it.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Destination string     `json:"destination"`
	StartDate   *time.Time `json:"start_date,omitempty"` // nil when dates are not yet decided
	EndDate     *time.Time `json:"end_date,omitempty"`
	GroupSize   int        `json:"group_size"`
	Budget      *float64   `json:"budget,omitempty"`
	Currency    string     `json:"currency"`
	Status      TripStatus `json:"status"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
