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

type MembershipRepository interface {
	Create(ctx context.Context, item *entity.MembershipHistoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipHistoryItem, error)
	// FindByUserID returns history items newest purchase first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.MembershipHistoryItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MembershipStatus) error
}

type membershipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMembershipRepository(db database.PgxIface, log *zap.Logger) MembershipRepository {
	return &membershipRepository{
		db:  db,
		log: log.With(zap.String("repository", "membership")),
	}
}

const membershipColumns = `id, user_id, plan_slug, plan_name, purchased_at, expires_at, amount, status, created_at, updated_at`

func (r *membershipRepository) Create(ctx context.Context, item *entity.MembershipHistoryItem) error {
	query := `
		INSERT INTO membership_history (id, user_id, plan_slug, plan_name, purchased_at, expires_at, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.PlanSlug,
		item.PlanName,
		item.PurchasedAt,
		item.ExpiresAt,
		item.Amount,
		item.Status,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create membership history item",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.String("plan_slug", item.PlanSlug),
		)
		return fmt.Errorf("create membership history item for user %s: %w", item.UserID.String(), err)
	}

	return nil
}

func (r *membershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipHistoryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM membership_history WHERE id = $1`, membershipColumns)

	var item entity.MembershipHistoryItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.UserID,
		&item.PlanSlug,
		&item.PlanName,
		&item.PurchasedAt,
		&item.ExpiresAt,
		&item.Amount,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find membership history item",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return nil, fmt.Errorf("find membership history item %s: %w", id.String(), err)
	}

	return &item, nil
}

func (r *membershipRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.MembershipHistoryItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM membership_history
		WHERE user_id = $1
		ORDER BY purchased_at DESC
	`, membershipColumns)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find membership history",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find membership history for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var items []*entity.MembershipHistoryItem
	for rows.Next() {
		var item entity.MembershipHistoryItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.PlanSlug,
			&item.PlanName,
			&item.PurchasedAt,
			&item.ExpiresAt,
			&item.Amount,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan membership history row", zap.Error(err))
			return nil, fmt.Errorf("scan membership history row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *membershipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MembershipStatus) error {
	query := `UPDATE membership_history SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update membership history status",
			zap.Error(err),
			zap.String("item_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update membership history item %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership history item %s not found", id.String())
	}

	return nil
}
