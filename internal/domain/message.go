package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageType distinguishes chat payloads. System messages are generated by
// the backend (e.g. "Alice joined the trip") and have no sender-authored body.
type MessageType string

const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageFile     MessageType = "file"
	MessageLocation MessageType = "location"
	MessageSystem   MessageType = "system"
)

// Valid reports whether t is one of the defined message types.
func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessageImage, MessageFile, MessageLocation, MessageSystem:
		return true
	}
	return false
}

// Message is a single entry in a trip's group chat.
type Message struct {
	ID        uuid.UUID   `json:"id"`
	TripID    uuid.UUID   `json:"trip_id"`
	SenderID  uuid.UUID   `json:"sender_id"`
	Type      MessageType `json:"type"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"created_at"`
}
