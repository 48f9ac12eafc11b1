package memory

import (
	"context"
	"fmt"
	"time"

	"pool-club/internal/data/entity"

	"github.com/google/uuid"
)

type sessionStore struct {
	store *Store
}

func (s *sessionStore) Create(ctx context.Context, session *entity.Session) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	clone := *session
	s.store.sessions[session.Token] = &clone
	return nil
}

func (s *sessionStore) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	session, ok := s.store.sessions[tokenUUID]
	if !ok || session.RevokedAt != nil || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (s *sessionStore) Revoke(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("revoke session: invalid token")
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if session, ok := s.store.sessions[tokenUUID]; ok && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

type classStore struct {
	store *Store
}

func (s *classStore) Create(ctx context.Context, enrollment *entity.ClassEnrollment) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	clone := *enrollment
	s.store.enrollments[enrollment.ID] = &clone
	return nil
}

func (s *classStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClassEnrollment, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	enrollment, ok := s.store.enrollments[id]
	if !ok {
		return nil, nil
	}
	clone := *enrollment
	return &clone, nil
}

func (s *classStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ClassEnrollment, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var enrollments []*entity.ClassEnrollment
	for _, enrollment := range s.store.enrollments {
		if enrollment.UserID == userID {
			clone := *enrollment
			enrollments = append(enrollments, &clone)
		}
	}

	sortNewestFirst(enrollments, func(e *entity.ClassEnrollment) time.Time { return e.CreatedAt })
	return enrollments, nil
}

func (s *classStore) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EnrollmentStatus) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	enrollment, ok := s.store.enrollments[id]
	if !ok {
		return fmt.Errorf("class enrollment %s not found", id.String())
	}

	enrollment.Status = status
	return nil
}

type eventStore struct {
	store *Store
}

func (s *eventStore) Create(ctx context.Context, registration *entity.EventRegistration) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	clone := *registration
	s.store.events[registration.ID] = &clone
	return nil
}

func (s *eventStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.EventRegistration, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var registrations []*entity.EventRegistration
	for _, registration := range s.store.events {
		if registration.UserID == userID {
			clone := *registration
			registrations = append(registrations, &clone)
		}
	}

	sortNewestFirst(registrations, func(r *entity.EventRegistration) time.Time { return r.CreatedAt })
	return registrations, nil
}
