package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iterary/backend/internal/domain"
)

// ActivityRepo defines the persistence operations for itinerary Activities.
// All write and single-read operations are scoped by tripID to enforce ownership.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)

	// ListByTrip returns all activities for a trip ordered by created_at.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, trip_id, name, category, status, rating, address,
	url, image_url, price, notes, created_at, updated_at`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (trip_id, name, category, status, rating, address,
			url, image_url, price, notes)
		VALUES (@trip_id, @name, @category, @status, @rating, @address,
			@url, @image_url, @price, @notes)
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"trip_id":   a.TripID,
		"name":      a.Name,
		"category":  string(a.Category),
		"status":    string(a.Status),
		"rating":    a.Rating,
		"address":   a.Address,
		"url":       a.URL,
		"image_url": a.ImageURL,
		"price":     a.Price,
		"notes":     a.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE trip_id = @trip_id ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTrip: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTrip: rows: %w", err)
	}
	return activities, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET name       = @name,
		    category   = @category,
		    status     = @status,
		    rating     = @rating,
		    address    = @address,
		    url        = @url,
		    image_url  = @image_url,
		    price      = @price,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"id":        a.ID,
		"trip_id":   a.TripID,
		"name":      a.Name,
		"category":  string(a.Category),
		"status":    string(a.Status),
		"rating":    a.Rating,
		"address":   a.Address,
		"url":       a.URL,
		"image_url": a.ImageURL,
		"price":     a.Price,
		"notes":     a.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a                domain.Activity
		category, status string
	)
	err := s.Scan(&a.ID, &a.TripID, &a.Name, &category, &status, &a.Rating,
		&a.Address, &a.URL, &a.ImageURL, &a.Price, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	a.Category = domain.ActivityCategory(category)
	a.Status = domain.ActivityStatus(status)
	return a, nil
}
