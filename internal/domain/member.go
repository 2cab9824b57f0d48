package domain

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole is the permission level of a trip member.
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// Valid reports whether r is one of the defined member roles.
func (r MemberRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// MemberStatus tracks an invitation's state.
type MemberStatus string

const (
	MemberInvited  MemberStatus = "invited"
	MemberAccepted MemberStatus = "accepted"
	MemberDeclined MemberStatus = "declined"
)

// Valid reports whether s is one of the defined member statuses.
func (s MemberStatus) Valid() bool {
	switch s {
	case MemberInvited, MemberAccepted, MemberDeclined:
		return true
	}
	return false
}

// TripMember links a user to a trip. One row per (trip, user) pair.
// JoinedAt is nil until the invitation is accepted.
type TripMember struct {
	ID        uuid.UUID    `json:"id"`
	TripID    uuid.UUID    `json:"trip_id"`
	UserID    uuid.UUID    `json:"user_id"`
	Role      MemberRole   `json:"role"`
	Status    MemberStatus `json:"status"`
	JoinedAt  *time.Time   `json:"joined_at,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
