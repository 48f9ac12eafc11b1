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

type ClassService interface {
	Classes() []catalog.Class
	Enroll(ctx context.Context, userID uuid.UUID, req *request.EnrollClassRequest) (*response.EnrollClassResponse, error)
	MyClasses(ctx context.Context, userID uuid.UUID) ([]response.EnrollmentResponse, error)
	CancelEnrollment(ctx context.Context, userID uuid.UUID, enrollmentID string) error
}

type classService struct {
	repo    *repository.Repository
	catalog *catalog.Catalog
	wallet  WalletService
	log     *zap.Logger
}

func NewClassService(repo *repository.Repository, cat *catalog.Catalog, wallet WalletService, log *zap.Logger) ClassService {
	return &classService{
		repo:    repo,
		catalog: cat,
		wallet:  wallet,
		log:     log.With(zap.String("service", "class")),
	}
}

func (s *classService) Classes() []catalog.Class {
	return s.catalog.Classes()
}

func (s *classService) Enroll(ctx context.Context, userID uuid.UUID, req *request.EnrollClassRequest) (*response.EnrollClassResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Enroll class validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	class := s.catalog.ClassBySlug(req.ClassSlug)
	if class == nil {
		return nil, fmt.Errorf("class %s: %w", req.ClassSlug, ErrNotFound)
	}

	existing, err := s.repo.Class.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("enroll class: %w", err)
	}
	for _, enrollment := range existing {
		if enrollment.ClassSlug == class.Slug && enrollment.Status == entity.EnrollmentStatusActive {
			return nil, fmt.Errorf("already enrolled in class %s: %w", class.Slug, ErrConflict)
		}
	}

	newBalance, err := s.wallet.Charge(ctx, userID, class.Price,
		fmt.Sprintf("Class enrollment %s", class.Name))
	if err != nil {
		return nil, err
	}

	enrollment := &entity.ClassEnrollment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		ClassSlug: class.Slug,
		ClassName: class.Name,
		Amount:    class.Price,
		Status:    entity.EnrollmentStatusActive,
	}

	if err := s.repo.Class.Create(ctx, enrollment); err != nil {
		if _, refundErr := s.wallet.Refund(ctx, userID, class.Price, "Refund: enrollment could not be saved"); refundErr != nil {
			s.log.Error("Failed to refund after enrollment create failure",
				zap.Error(refundErr),
				zap.String("user_id", userID.String()),
			)
		}
		return nil, fmt.Errorf("enroll class: %w", err)
	}

	s.log.Info("Class enrollment created",
		zap.String("enrollment_id", enrollment.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("class_slug", class.Slug),
		zap.Int64("amount", class.Price),
	)

	return &response.EnrollClassResponse{
		Enrollment: response.EnrollmentToResponse(enrollment),
		NewBalance: newBalance,
	}, nil
}

func (s *classService) MyClasses(ctx context.Context, userID uuid.UUID) ([]response.EnrollmentResponse, error) {
	enrollments, err := s.repo.Class.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list class enrollments: %w", err)
	}

	resp := []response.EnrollmentResponse{}
	for _, enrollment := range enrollments {
		resp = append(resp, response.EnrollmentToResponse(enrollment))
	}
	return resp, nil
}

// CancelEnrollment flips the enrollment to cancelled. Same policy as
// bookings: no refund.
func (s *classService) CancelEnrollment(ctx context.Context, userID uuid.UUID, enrollmentID string) error {
	id, err := uuid.Parse(enrollmentID)
	if err != nil {
		return fmt.Errorf("enrollment id %s: %w", enrollmentID, ErrValidation)
	}

	enrollment, err := s.repo.Class.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel enrollment: %w", err)
	}
	if enrollment == nil || enrollment.UserID != userID {
		return fmt.Errorf("enrollment %s: %w", enrollmentID, ErrNotFound)
	}
	if enrollment.Status != entity.EnrollmentStatusActive {
		return fmt.Errorf("enrollment %s is %s: %w", enrollmentID, enrollment.Status, ErrNotActive)
	}

	if err := s.repo.Class.UpdateStatus(ctx, id, entity.EnrollmentStatusCancelled); err != nil {
		return fmt.Errorf("cancel enrollment %s: %w", enrollmentID, err)
	}

	s.log.Info("Class enrollment cancelled",
		zap.String("enrollment_id", enrollmentID),
		zap.String("user_id", userID.String()),
	)
	return nil
}
