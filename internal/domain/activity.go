package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityCategory classifies an itinerary activity.
// The set mirrors the categories POI providers return, so suggestions can be
// saved to a trip without remapping.
type ActivityCategory string

const (
	CategorySightseeing   ActivityCategory = "sightseeing"
	CategoryRestaurant    ActivityCategory = "restaurant"
	CategoryHotel         ActivityCategory = "hotel"
	CategoryTransport     ActivityCategory = "transport"
	CategoryShopping      ActivityCategory = "shopping"
	CategoryEntertainment ActivityCategory = "entertainment"
	CategoryOutdoor       ActivityCategory = "outdoor"
	CategoryCulture       ActivityCategory = "culture"
	CategoryNightlife     ActivityCategory = "nightlife"
	CategoryBeach         ActivityCategory = "beach"
	CategoryMuseum        ActivityCategory = "museum"
	CategoryPark          ActivityCategory = "park"
	CategoryOther         ActivityCategory = "other"
)

// Valid reports whether c is one of the defined activity categories.
func (c ActivityCategory) Valid() bool {
	switch c {
	case CategorySightseeing, CategoryRestaurant, CategoryHotel,
		CategoryTransport, CategoryShopping, CategoryEntertainment,
		CategoryOutdoor, CategoryCulture, CategoryNightlife, CategoryBeach,
		CategoryMuseum, CategoryPark, CategoryOther:
		return true
	}
	return false
}

// ActivityStatus tracks whether a planned activity is confirmed or done.
type ActivityStatus string

const (
	ActivityPlanned   ActivityStatus = "planned"
	ActivityConfirmed ActivityStatus = "confirmed"
	ActivityCompleted ActivityStatus = "completed"
	ActivityCancelled ActivityStatus = "cancelled"
)

// Valid reports whether s is one of the defined activity statuses.
func (s ActivityStatus) Valid() bool {
	switch s {
	case ActivityPlanned, ActivityConfirmed, ActivityCompleted, ActivityCancelled:
		return true
	}
	return false
}

// Activity is an itinerary item on a trip — typically the persisted form of a
// POI suggestion the group decided to keep. Optional provider metadata
// (rating, address, url) is stored as-is.
type Activity struct {
	ID        uuid.UUID        `json:"id"`
	TripID    uuid.UUID        `json:"trip_id"`
	Name      string           `json:"name"`
	Category  ActivityCategory `json:"category"`
	Status    ActivityStatus   `json:"status"`
	Rating    *float64         `json:"rating,omitempty"`
	Address   string           `json:"address,omitempty"`
	URL       string           `json:"url,omitempty"`
	ImageURL  string           `json:"image_url,omitempty"`
	Price     string           `json:"price,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
