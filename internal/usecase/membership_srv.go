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

type MembershipService interface {
	Plans() []catalog.Plan
	GetMembership(ctx context.Context, userID uuid.UUID) (*response.MembershipResponse, error)
	Purchase(ctx context.Context, userID uuid.UUID, req *request.PurchaseMembershipRequest) (*response.PurchaseMembershipResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, itemID string) error
	HasActiveMembership(ctx context.Context, userID uuid.UUID) (bool, error)
}

type membershipService struct {
	repo    *repository.Repository
	catalog *catalog.Catalog
	wallet  WalletService
	log     *zap.Logger
}

func NewMembershipService(repo *repository.Repository, cat *catalog.Catalog, wallet WalletService, log *zap.Logger) MembershipService {
	return &membershipService{
		repo:    repo,
		catalog: cat,
		wallet:  wallet,
		log:     log.With(zap.String("service", "membership")),
	}
}

// dateOnly truncates an instant to date precision; membership expiry
// comparisons ignore the time of day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *membershipService) Plans() []catalog.Plan {
	return s.catalog.Plans()
}

func (s *membershipService) GetMembership(ctx context.Context, userID uuid.UUID) (*response.MembershipResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get membership: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), ErrNotFound)
	}

	history, err := s.repo.Membership.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get membership: %w", err)
	}

	resp := &response.MembershipResponse{
		History: []response.MembershipHistoryResponse{},
	}
	for _, item := range history {
		resp.History = append(resp.History, response.MembershipItemToResponse(item))
	}

	active, err := s.HasActiveMembership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active {
		resp.Current = &response.CurrentMembershipResponse{
			PlanSlug:  *user.MembershipSlug,
			PlanName:  *user.MembershipName,
			ExpiresAt: *user.MembershipExpires,
		}
	}

	return resp, nil
}

func (s *membershipService) Purchase(ctx context.Context, userID uuid.UUID, req *request.PurchaseMembershipRequest) (*response.PurchaseMembershipResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Purchase membership validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	plan := s.catalog.PlanBySlug(req.PlanSlug)
	if plan == nil {
		return nil, fmt.Errorf("plan %s: %w", req.PlanSlug, ErrNotFound)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("purchase membership: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), ErrNotFound)
	}

	newBalance, err := s.wallet.Charge(ctx, userID, plan.Price,
		fmt.Sprintf("Membership plan %s", plan.Name))
	if err != nil {
		return nil, err
	}

	item, err := s.activateOrExtend(ctx, user, plan)
	if err != nil {
		// The debit already happened; compensate so no one pays for a
		// membership that was never recorded.
		if _, refundErr := s.wallet.Refund(ctx, userID, plan.Price, "Refund: membership purchase could not be completed"); refundErr != nil {
			s.log.Error("Failed to refund after membership activation failure",
				zap.Error(refundErr),
				zap.String("user_id", userID.String()),
			)
		}
		if cacheErr := s.repo.User.UpdateMembershipCache(ctx, user.ID,
			user.MembershipSlug, user.MembershipName, user.MembershipExpires); cacheErr != nil {
			s.log.Error("Failed to restore membership cache after activation failure",
				zap.Error(cacheErr),
				zap.String("user_id", userID.String()),
			)
		}
		return nil, err
	}

	s.log.Info("Membership purchased",
		zap.String("user_id", userID.String()),
		zap.String("plan_slug", plan.Slug),
		zap.Time("expires_at", item.ExpiresAt),
		zap.Int64("amount", plan.Price),
	)

	return &response.PurchaseMembershipResponse{
		Item:       response.MembershipItemToResponse(item),
		NewBalance: newBalance,
	}, nil
}

// activateOrExtend applies the plan to the user: same still-valid plan
// extends from its current expiry (no gap, no lost days), anything else
// starts from today. Overdue active history items are expired on the way.
func (s *membershipService) activateOrExtend(ctx context.Context, user *entity.User, plan *catalog.Plan) (*entity.MembershipHistoryItem, error) {
	now := time.Now()
	today := dateOnly(now)

	base := today
	if user.MembershipSlug != nil && *user.MembershipSlug == plan.Slug &&
		user.MembershipExpires != nil && !dateOnly(*user.MembershipExpires).Before(today) {
		base = dateOnly(*user.MembershipExpires)
	}
	expires := base.AddDate(0, 0, plan.DurationDays)

	if err := s.repo.User.UpdateMembershipCache(ctx, user.ID, &plan.Slug, &plan.Name, &expires); err != nil {
		return nil, fmt.Errorf("activate membership: %w", err)
	}

	// Lazy expiry over the history, same pattern as bookings.
	history, err := s.repo.Membership.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("activate membership: %w", err)
	}
	for _, existing := range history {
		if existing.Status == entity.MembershipStatusActive && dateOnly(existing.ExpiresAt).Before(today) {
			if err := s.repo.Membership.UpdateStatus(ctx, existing.ID, entity.MembershipStatusExpired); err != nil {
				return nil, fmt.Errorf("expire membership history item: %w", err)
			}
		}
	}

	item := &entity.MembershipHistoryItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      user.ID,
		PlanSlug:    plan.Slug,
		PlanName:    plan.Name,
		PurchasedAt: now,
		ExpiresAt:   expires,
		Amount:      plan.Price,
		Status:      entity.MembershipStatusActive,
	}

	if err := s.repo.Membership.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("record membership purchase: %w", err)
	}

	return item, nil
}

// Cancel is only allowed the same day the item was purchased. The refund is
// issued here, at the orchestration point; the status flip itself never
// touches the ledger.
func (s *membershipService) Cancel(ctx context.Context, userID uuid.UUID, itemID string) error {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return fmt.Errorf("membership item id %s: %w", itemID, ErrValidation)
	}

	item, err := s.repo.Membership.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel membership: %w", err)
	}
	if item == nil || item.UserID != userID {
		return fmt.Errorf("membership item %s: %w", itemID, ErrNotFound)
	}

	if item.Status != entity.MembershipStatusActive {
		return fmt.Errorf("membership item %s is %s: %w", itemID, item.Status, ErrNotActive)
	}

	today := dateOnly(time.Now())
	if !dateOnly(item.PurchasedAt).Equal(today) {
		return fmt.Errorf("membership item %s purchased %s: %w",
			itemID, item.PurchasedAt.Format("2006-01-02"), ErrMembershipWindow)
	}

	if err := s.repo.Membership.UpdateStatus(ctx, id, entity.MembershipStatusCancelled); err != nil {
		return fmt.Errorf("cancel membership item %s: %w", itemID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("cancel membership: %w", err)
	}
	if user != nil && user.MembershipSlug != nil && *user.MembershipSlug == item.PlanSlug &&
		user.MembershipExpires != nil && dateOnly(*user.MembershipExpires).Equal(dateOnly(item.ExpiresAt)) {
		if err := s.repo.User.UpdateMembershipCache(ctx, userID, nil, nil, nil); err != nil {
			return fmt.Errorf("clear membership cache: %w", err)
		}
	}

	if _, err := s.wallet.Refund(ctx, userID, item.Amount,
		fmt.Sprintf("Refund: membership plan %s cancelled", item.PlanName)); err != nil {
		s.log.Error("Failed to refund cancelled membership",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("item_id", itemID),
		)
		return fmt.Errorf("refund cancelled membership %s: %w", itemID, err)
	}

	s.log.Info("Membership cancelled",
		zap.String("user_id", userID.String()),
		zap.String("item_id", itemID),
		zap.String("plan_slug", item.PlanSlug),
		zap.Int64("refund", item.Amount),
	)
	return nil
}

// HasActiveMembership re-derives from history instead of trusting the
// cached fields alone, so a cancelled item cannot leave a stale cache
// looking active.
func (s *membershipService) HasActiveMembership(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check active membership: %w", err)
	}
	if user == nil || user.MembershipSlug == nil || user.MembershipExpires == nil {
		return false, nil
	}

	today := dateOnly(time.Now())
	if dateOnly(*user.MembershipExpires).Before(today) {
		return false, nil
	}

	history, err := s.repo.Membership.FindByUserID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check active membership: %w", err)
	}

	// Newest-first: the first entry for the cached slug is the current one.
	for _, item := range history {
		if item.PlanSlug != *user.MembershipSlug {
			continue
		}
		return item.Status == entity.MembershipStatusActive &&
			!dateOnly(item.ExpiresAt).Before(today), nil
	}

	return false, nil
}
