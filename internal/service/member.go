package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/repo"
)

// MemberService implements business logic for trip membership.
// It holds both trips and members repos because inviting a member requires
// verifying the parent trip exists.
type MemberService struct {
	trips   repo.TripRepo
	members repo.MemberRepo
}

// NewMemberService constructs a MemberService.
func NewMemberService(trips repo.TripRepo, members repo.MemberRepo) *MemberService {
	return &MemberService{trips: trips, members: members}
}

// Invite adds a user to a trip in invited state. Defaults: role member.
// Re-inviting an existing member is idempotent.
func (s *MemberService) Invite(ctx context.Context, member domain.TripMember) (domain.TripMember, error) {
	if member.Role == "" {
		member.Role = domain.RoleMember
	}
	if member.Status == "" {
		member.Status = domain.MemberInvited
	}
	if member.UserID == uuid.Nil {
		return domain.TripMember{}, fmt.Errorf("service.MemberService.Invite: %w: user_id is required", domain.ErrValidation)
	}
	if !member.Role.Valid() {
		return domain.TripMember{}, fmt.Errorf("service.MemberService.Invite: %w: invalid role %q", domain.ErrValidation, member.Role)
	}
	if !member.Status.Valid() {
		return domain.TripMember{}, fmt.Errorf("service.MemberService.Invite: %w: invalid status %q", domain.ErrValidation, member.Status)
	}

	// Parent must exist so a bad trip ID is a 404, not an FK error.
	if _, err := s.trips.GetByID(ctx, member.TripID); err != nil {
		return domain.TripMember{}, fmt.Errorf("service.MemberService.Invite: %w", err)
	}

	added, err := s.members.Add(ctx, member)
	if err != nil {
		return domain.TripMember{}, fmt.Errorf("service.MemberService.Invite: %w", err)
	}
	return added, nil
}

// ListByTrip returns all members of a trip.
func (s *MemberService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripMember, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.MemberService.ListByTrip: %w", err)
	}

	members, err := s.members.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.MemberService.ListByTrip: %w", err)
	}
	return members, nil
}

// Respond records a member's answer to an invitation.
// Only accepted/declined are valid responses — a member cannot transition
// back to invited.
func (s *MemberService) Respond(ctx context.Context, tripID, userID uuid.UUID, status domain.MemberStatus) (domain.TripMember, error) {
	if status != domain.MemberAccepted && status != domain.MemberDeclined {
		return domain.TripMember{}, fmt.Errorf("service.MemberService.Respond: %w: status must be accepted or declined", domain.ErrValidation)
	}

	member, err := s.members.UpdateStatus(ctx, tripID, userID, status)
	if err != nil {
		return domain.TripMember{}, fmt.Errorf("service.MemberService.Respond: %w", err)
	}
	return member, nil
}

// Remove deletes a member from a trip.
func (s *MemberService) Remove(ctx context.Context, tripID, userID uuid.UUID) error {
	if err := s.members.Remove(ctx, tripID, userID); err != nil {
		return fmt.Errorf("service.MemberService.Remove: %w", err)
	}
	return nil
}
