package memory

import (
	"context"
	"fmt"
	"time"

	"pool-club/internal/data/entity"

	"github.com/google/uuid"
)

type userStore struct {
	store *Store
}

func (s *userStore) Create(ctx context.Context, user *entity.User) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, exists := s.store.usersByEmail[email]; exists {
		return fmt.Errorf("create user %s: email already registered", user.Email)
	}

	clone := copyUser(user)
	clone.Email = email
	s.store.users[user.ID] = clone
	s.store.usersByEmail[email] = user.ID
	return nil
}

func (s *userStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	user, ok := s.store.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	id, ok := s.store.usersByEmail[normalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return copyUser(s.store.users[id]), nil
}

func (s *userStore) Update(ctx context.Context, user *entity.User) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	existing, ok := s.store.users[user.ID]
	if !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	clone := copyUser(user)
	clone.Email = normalizeEmail(user.Email)
	// Balance and membership cache are mutated through their own methods.
	clone.WalletBalance = existing.WalletBalance
	clone.MembershipSlug = existing.MembershipSlug
	clone.MembershipName = existing.MembershipName
	clone.MembershipExpires = existing.MembershipExpires

	if clone.Email != existing.Email {
		delete(s.store.usersByEmail, existing.Email)
		s.store.usersByEmail[clone.Email] = user.ID
	}
	s.store.users[user.ID] = clone
	return nil
}

func (s *userStore) CreditBalance(ctx context.Context, id uuid.UUID, amount int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, ok := s.store.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id.String())
	}

	user.WalletBalance += amount
	user.UpdatedAt = time.Now()
	return nil
}

func (s *userStore) DebitBalance(ctx context.Context, id uuid.UUID, amount int64) (bool, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, ok := s.store.users[id]
	if !ok {
		return false, fmt.Errorf("user %s not found", id.String())
	}

	if user.WalletBalance < amount {
		return false, nil
	}

	user.WalletBalance -= amount
	user.UpdatedAt = time.Now()
	return true, nil
}

func (s *userStore) UpdateMembershipCache(ctx context.Context, id uuid.UUID, slug, name *string, expires *time.Time) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, ok := s.store.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id.String())
	}

	user.MembershipSlug = slug
	user.MembershipName = name
	user.MembershipExpires = expires
	user.UpdatedAt = time.Now()
	return nil
}
