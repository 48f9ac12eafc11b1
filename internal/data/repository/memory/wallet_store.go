package memory

import (
	"context"
	"time"

	"pool-club/internal/data/entity"

	"github.com/google/uuid"
)

type walletStore struct {
	store *Store
}

func (s *walletStore) Create(ctx context.Context, txn *entity.WalletTransaction) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	clone := *txn
	s.store.transactions[txn.ID] = &clone
	return nil
}

func (s *walletStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WalletTransaction, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var txns []*entity.WalletTransaction
	for _, txn := range s.store.transactions {
		if txn.UserID == userID {
			clone := *txn
			txns = append(txns, &clone)
		}
	}

	sortNewestFirst(txns, func(t *entity.WalletTransaction) time.Time { return t.CreatedAt })
	return txns, nil
}
