package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iterary/backend/internal/domain"
)

// MemberRepo defines the persistence operations for the trip_members join table.
// All operations are scoped by tripID to enforce ownership.
type MemberRepo interface {
	// Add inserts a membership row. Idempotent on the (trip, user) pair —
	// re-inviting an existing member returns the existing row unchanged.
	Add(ctx context.Context, member domain.TripMember) (domain.TripMember, error)

	// ListByTrip returns all members of a trip ordered by created_at.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripMember, error)

	// UpdateStatus sets the invitation status for a member. Accepting stamps
	// joined_at. Returns domain.ErrNotFound if the membership does not exist.
	UpdateStatus(ctx context.Context, tripID, userID uuid.UUID, status domain.MemberStatus) (domain.TripMember, error)

	// Remove deletes a membership row.
	// Returns domain.ErrNotFound if the membership does not exist.
	Remove(ctx context.Context, tripID, userID uuid.UUID) error
}

// pgMemberRepo is the Postgres implementation of MemberRepo.
type pgMemberRepo struct {
	db db
}

// NewMemberRepo constructs a MemberRepo backed by the provided db connection.
func NewMemberRepo(db db) MemberRepo {
	return &pgMemberRepo{db: db}
}

const memberColumns = `id, trip_id, user_id, role, status, joined_at, created_at`

// Add inserts a membership or returns the existing row on conflict.
// The DO UPDATE SET trick forces the RETURNING clause to fire even when the
// conflict handler skips the insert — without it, RETURNING returns nothing
// on DO NOTHING conflicts.
func (r *pgMemberRepo) Add(ctx context.Context, m domain.TripMember) (domain.TripMember, error) {
	const q = `
		INSERT INTO trip_members (trip_id, user_id, role, status)
		VALUES (@trip_id, @user_id, @role, @status)
		ON CONFLICT (trip_id, user_id) DO UPDATE SET trip_id = EXCLUDED.trip_id
		RETURNING ` + memberColumns

	args := pgx.NamedArgs{
		"trip_id": m.TripID,
		"user_id": m.UserID,
		"role":    string(m.Role),
		"status":  string(m.Status),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanMember(row)
	if err != nil {
		return domain.TripMember{}, fmt.Errorf("repo.MemberRepo.Add: %w", err)
	}
	return result, nil
}

func (r *pgMemberRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripMember, error) {
	const q = `SELECT ` + memberColumns + ` FROM trip_members WHERE trip_id = @trip_id ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.MemberRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	members := []domain.TripMember{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.MemberRepo.ListByTrip: scan: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MemberRepo.ListByTrip: rows: %w", err)
	}
	return members, nil
}

// UpdateStatus transitions the invitation state. joined_at is stamped on
// acceptance and cleared again if the member later declines.
func (r *pgMemberRepo) UpdateStatus(ctx context.Context, tripID, userID uuid.UUID, status domain.MemberStatus) (domain.TripMember, error) {
	const q = `
		UPDATE trip_members
		SET status    = @status,
		    joined_at = CASE WHEN @status = 'accepted' THEN now() ELSE NULL END
		WHERE trip_id = @trip_id AND user_id = @user_id
		RETURNING ` + memberColumns

	args := pgx.NamedArgs{"trip_id": tripID, "user_id": userID, "status": string(status)}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanMember(row)
	if err != nil {
		return domain.TripMember{}, fmt.Errorf("repo.MemberRepo.UpdateStatus: %w", err)
	}
	return result, nil
}

func (r *pgMemberRepo) Remove(ctx context.Context, tripID, userID uuid.UUID) error {
	const q = `DELETE FROM trip_members WHERE trip_id = @trip_id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.MemberRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MemberRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

// scanMember maps a single database row into a domain.TripMember.
func scanMember(s scanner) (domain.TripMember, error) {
	var (
		m            domain.TripMember
		role, status string
	)
	err := s.Scan(&m.ID, &m.TripID, &m.UserID, &role, &status, &m.JoinedAt, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripMember{}, domain.ErrNotFound
		}
		return domain.TripMember{}, err
	}
	m.Role = domain.MemberRole(role)
	m.Status = domain.MemberStatus(status)
	return m, nil
}
