package usecase

import (
	"context"
	"fmt"
	"time"

	"pool-club/internal/data/catalog"
	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"
	"pool-club/internal/dto/request"
	"pool-club/internal/dto/response"
	"pool-club/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	Events() []catalog.Event
	Register(ctx context.Context, userID uuid.UUID, req *request.RegisterEventRequest) (*response.EventRegistrationResponse, error)
	MyRegistrations(ctx context.Context, userID uuid.UUID) ([]response.EventRegistrationResponse, error)
}

type eventService struct {
	repo    *repository.Repository
	catalog *catalog.Catalog
	log     *zap.Logger
}

func NewEventService(repo *repository.Repository, cat *catalog.Catalog, log *zap.Logger) EventService {
	return &eventService{
		repo:    repo,
		catalog: cat,
		log:     log.With(zap.String("service", "event")),
	}
}

func (s *eventService) Events() []catalog.Event {
	return s.catalog.PublishedEvents()
}

// Register appends a registration record. Event registrations are free and
// have no cancellation flow.
func (s *eventService) Register(ctx context.Context, userID uuid.UUID, req *request.RegisterEventRequest) (*response.EventRegistrationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	event := s.catalog.EventBySlug(req.EventSlug)
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", req.EventSlug, ErrNotFound)
	}

	registration := &entity.EventRegistration{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		EventSlug: event.Slug,
		Name:      req.Name,
		Email:     req.Email,
	}

	if err := s.repo.Event.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("register for event: %w", err)
	}

	s.log.Info("Event registration created",
		zap.String("registration_id", registration.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event_slug", event.Slug),
	)

	resp := response.EventRegistrationToResponse(registration)
	return &resp, nil
}

func (s *eventService) MyRegistrations(ctx context.Context, userID uuid.UUID) ([]response.EventRegistrationResponse, error) {
	registrations, err := s.repo.Event.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list event registrations: %w", err)
	}

	resp := []response.EventRegistrationResponse{}
	for _, registration := range registrations {
		resp = append(resp, response.EventRegistrationToResponse(registration))
	}
	return resp, nil
}
