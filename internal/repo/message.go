package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iterary/backend/internal/domain"
)

// MessageRepo defines the persistence operations for trip chat messages.
type MessageRepo interface {
	// Create inserts a message and returns the persisted record.
	Create(ctx context.Context, msg domain.Message) (domain.Message, error)

	// ListByTrip returns one page of messages for a trip, newest first,
	// with the total count for pagination metadata.
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Message, int64, error)

	// Delete removes a message by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no message with that ID exists under that trip.
	Delete(ctx context.Context, tripID, messageID uuid.UUID) error
}

// pgMessageRepo is the Postgres implementation of MessageRepo.
type pgMessageRepo struct {
	db db
}

// NewMessageRepo constructs a MessageRepo backed by the provided db connection.
func NewMessageRepo(db db) MessageRepo {
	return &pgMessageRepo{db: db}
}

func (r *pgMessageRepo) Create(ctx context.Context, m domain.Message) (domain.Message, error) {
	const q = `
		INSERT INTO messages (trip_id, sender_id, type, body)
		VALUES (@trip_id, @sender_id, @type, @body)
		RETURNING id, trip_id, sender_id, type, body, created_at`

	args := pgx.NamedArgs{
		"trip_id":   m.TripID,
		"sender_id": m.SenderID,
		"type":      string(m.Type),
		"body":      m.Body,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanMessage(row)
	if err != nil {
		return domain.Message{}, fmt.Errorf("repo.MessageRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgMessageRepo) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Message, int64, error) {
	const q = `
		SELECT id, trip_id, sender_id, type, body, created_at, count(*) OVER () AS total
		FROM messages
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"trip_id": tripID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.MessageRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	var total int64
	for rows.Next() {
		var (
			m       domain.Message
			msgType string
		)
		if err := rows.Scan(&m.ID, &m.TripID, &m.SenderID, &msgType, &m.Body, &m.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("repo.MessageRepo.ListByTrip: scan: %w", err)
		}
		m.Type = domain.MessageType(msgType)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.MessageRepo.ListByTrip: rows: %w", err)
	}
	return messages, total, nil
}

func (r *pgMessageRepo) Delete(ctx context.Context, tripID, messageID uuid.UUID) error {
	const q = `DELETE FROM messages WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": messageID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.MessageRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MessageRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanMessage maps a single database row into a domain.Message.
func scanMessage(s scanner) (domain.Message, error) {
	var (
		m       domain.Message
		msgType string
	)
	err := s.Scan(&m.ID, &m.TripID, &m.SenderID, &msgType, &m.Body, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Message{}, domain.ErrNotFound
		}
		return domain.Message{}, err
	}
	m.Type = domain.MessageType(msgType)
	return m, nil
}
