package repository

import (
	"context"
	"fmt"

	"pool-club/internal/data/entity"
	"pool-club/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WalletRepository interface {
	Create(ctx context.Context, txn *entity.WalletTransaction) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WalletTransaction, error)
}

type walletRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWalletRepository(db database.PgxIface, log *zap.Logger) WalletRepository {
	return &walletRepository{
		db:  db,
		log: log.With(zap.String("repository", "wallet")),
	}
}

func (r *walletRepository) Create(ctx context.Context, txn *entity.WalletTransaction) error {
	query := `
		INSERT INTO wallet_transactions (id, user_id, amount, kind, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		txn.ID,
		txn.UserID,
		txn.Amount,
		txn.Kind,
		txn.Description,
		txn.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create wallet transaction",
			zap.Error(err),
			zap.String("user_id", txn.UserID.String()),
			zap.Int64("amount", txn.Amount),
			zap.String("kind", string(txn.Kind)),
		)
		return fmt.Errorf("create wallet transaction for user %s: %w", txn.UserID.String(), err)
	}

	return nil
}

func (r *walletRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WalletTransaction, error) {
	query := `
		SELECT id, user_id, amount, kind, description, created_at
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find wallet transactions",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find wallet transactions for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var txns []*entity.WalletTransaction
	for rows.Next() {
		var txn entity.WalletTransaction
		err := rows.Scan(
			&txn.ID,
			&txn.UserID,
			&txn.Amount,
			&txn.Kind,
			&txn.Description,
			&txn.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan wallet transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan wallet transaction row: %w", err)
		}
		txns = append(txns, &txn)
	}

	return txns, nil
}
