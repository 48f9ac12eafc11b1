package repository

import (
	"context"
	"fmt"

	"pool-club/internal/data/entity"
	"pool-club/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventRepository interface {
	Create(ctx context.Context, registration *entity.EventRegistration) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.EventRegistration, error)
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func (r *eventRepository) Create(ctx context.Context, registration *entity.EventRegistration) error {
	query := `
		INSERT INTO event_registrations (id, user_id, event_slug, name, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		registration.ID,
		registration.UserID,
		registration.EventSlug,
		registration.Name,
		registration.Email,
		registration.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event registration",
			zap.Error(err),
			zap.String("event_slug", registration.EventSlug),
		)
		return fmt.Errorf("create event registration for %s: %w", registration.EventSlug, err)
	}

	return nil
}

func (r *eventRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.EventRegistration, error) {
	query := `
		SELECT id, user_id, event_slug, name, email, created_at
		FROM event_registrations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find event registrations",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find event registrations for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var registrations []*entity.EventRegistration
	for rows.Next() {
		var registration entity.EventRegistration
		err := rows.Scan(
			&registration.ID,
			&registration.UserID,
			&registration.EventSlug,
			&registration.Name,
			&registration.Email,
			&registration.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan event registration row", zap.Error(err))
			return nil, fmt.Errorf("scan event registration row: %w", err)
		}
		registrations = append(registrations, &registration)
	}

	return registrations, nil
}
