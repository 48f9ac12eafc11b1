package repository

import (
	"context"
	"fmt"

	"pool-club/internal/data/entity"
	"pool-club/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClassRepository interface {
	Create(ctx context.Context, enrollment *entity.ClassEnrollment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassEnrollment, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ClassEnrollment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EnrollmentStatus) error
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

func (r *classRepository) Create(ctx context.Context, enrollment *entity.ClassEnrollment) error {
	query := `
		INSERT INTO class_enrollments (id, user_id, class_slug, class_name, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		enrollment.ID,
		enrollment.UserID,
		enrollment.ClassSlug,
		enrollment.ClassName,
		enrollment.Amount,
		enrollment.Status,
		enrollment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create class enrollment",
			zap.Error(err),
			zap.String("user_id", enrollment.UserID.String()),
			zap.String("class_slug", enrollment.ClassSlug),
		)
		return fmt.Errorf("create class enrollment for user %s: %w", enrollment.UserID.String(), err)
	}

	return nil
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassEnrollment, error) {
	query := `
		SELECT id, user_id, class_slug, class_name, amount, status, created_at
		FROM class_enrollments
		WHERE id = $1
	`

	var enrollment entity.ClassEnrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.ClassSlug,
		&enrollment.ClassName,
		&enrollment.Amount,
		&enrollment.Status,
		&enrollment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find class enrollment",
			zap.Error(err),
			zap.String("enrollment_id", id.String()),
		)
		return nil, fmt.Errorf("find class enrollment %s: %w", id.String(), err)
	}

	return &enrollment, nil
}

func (r *classRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ClassEnrollment, error) {
	query := `
		SELECT id, user_id, class_slug, class_name, amount, status, created_at
		FROM class_enrollments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find class enrollments",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find class enrollments for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var enrollments []*entity.ClassEnrollment
	for rows.Next() {
		var enrollment entity.ClassEnrollment
		err := rows.Scan(
			&enrollment.ID,
			&enrollment.UserID,
			&enrollment.ClassSlug,
			&enrollment.ClassName,
			&enrollment.Amount,
			&enrollment.Status,
			&enrollment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan class enrollment row", zap.Error(err))
			return nil, fmt.Errorf("scan class enrollment row: %w", err)
		}
		enrollments = append(enrollments, &enrollment)
	}

	return enrollments, nil
}

func (r *classRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EnrollmentStatus) error {
	query := `UPDATE class_enrollments SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update class enrollment status",
			zap.Error(err),
			zap.String("enrollment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update class enrollment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class enrollment %s not found", id.String())
	}

	return nil
}
