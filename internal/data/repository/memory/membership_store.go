package memory

import (
	"context"
	"fmt"
	"time"

	"pool-club/internal/data/entity"

	"github.com/google/uuid"
)

type membershipStore struct {
	store *Store
}

func (s *membershipStore) Create(ctx context.Context, item *entity.MembershipHistoryItem) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	clone := *item
	s.store.memberships[item.ID] = &clone
	return nil
}

func (s *membershipStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipHistoryItem, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	item, ok := s.store.memberships[id]
	if !ok {
		return nil, nil
	}
	clone := *item
	return &clone, nil
}

func (s *membershipStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.MembershipHistoryItem, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var items []*entity.MembershipHistoryItem
	for _, item := range s.store.memberships {
		if item.UserID == userID {
			clone := *item
			items = append(items, &clone)
		}
	}

	sortNewestFirst(items, func(i *entity.MembershipHistoryItem) time.Time { return i.PurchasedAt })
	return items, nil
}

func (s *membershipStore) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.MembershipStatus) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	item, ok := s.store.memberships[id]
	if !ok {
		return fmt.Errorf("membership history item %s not found", id.String())
	}

	item.Status = status
	item.UpdatedAt = time.Now()
	return nil
}
