package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered traveller. Authentication is out of scope; users
// exist so that trips, expenses, and messages have an owner to reference.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
