package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/iterary/backend/internal/domain"
	"github.com/iterary/backend/internal/repo"
)

// MessageService implements business logic for trip chat messages.
type MessageService struct {
	trips    repo.TripRepo
	messages repo.MessageRepo
}

// NewMessageService constructs a MessageService.
func NewMessageService(trips repo.TripRepo, messages repo.MessageRepo) *MessageService {
	return &MessageService{trips: trips, messages: messages}
}

// Post validates and persists a message. Defaults to type text.
func (s *MessageService) Post(ctx context.Context, msg domain.Message) (domain.Message, error) {
	if msg.Type == "" {
		msg.Type = domain.MessageText
	}
	if !msg.Type.Valid() {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w: invalid type %q", domain.ErrValidation, msg.Type)
	}
	if msg.SenderID == uuid.Nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w: sender_id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(msg.Body) == "" {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w: body is required", domain.ErrValidation)
	}

	if _, err := s.trips.GetByID(ctx, msg.TripID); err != nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w", err)
	}

	posted, err := s.messages.Create(ctx, msg)
	if err != nil {
		return domain.Message{}, fmt.Errorf("service.MessageService.Post: %w", err)
	}
	return posted, nil
}

// ListByTrip returns one page of a trip's messages, newest first.
func (s *MessageService) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Message, int64, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, 0, fmt.Errorf("service.MessageService.ListByTrip: %w", err)
	}

	messages, total, err := s.messages.ListByTrip(ctx, tripID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.MessageService.ListByTrip: %w", err)
	}
	return messages, total, nil
}

// Delete removes a message scoped to its trip.
func (s *MessageService) Delete(ctx context.Context, tripID, messageID uuid.UUID) error {
	if err := s.messages.Delete(ctx, tripID, messageID); err != nil {
		return fmt.Errorf("service.MessageService.Delete: %w", err)
	}
	return nil
}
