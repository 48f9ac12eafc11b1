package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"
	"pool-club/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newMembershipFixture() (*repository.Repository, MembershipService, WalletService) {
	repo := newTestRepo()
	log := zap.NewNop()
	wallet := NewWalletService(repo, log)
	membership := NewMembershipService(repo, newTestCatalog(), wallet, log)
	return repo, membership, wallet
}

func TestPurchaseMembership(t *testing.T) {
	repo, membership, _ := newMembershipFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 300000)

	resp, err := membership.Purchase(ctx, userID, &request.PurchaseMembershipRequest{PlanSlug: "monthly"})
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if resp.NewBalance != 200000 {
		t.Errorf("balance = %d, want 200000", resp.NewBalance)
	}

	today := dateOnly(time.Now())
	wantExpiry := today.AddDate(0, 0, 30)
	if !dateOnly(resp.Item.ExpiresAt).Equal(wantExpiry) {
		t.Errorf("expires %v, want %v", resp.Item.ExpiresAt, wantExpiry)
	}

	active, err := membership.HasActiveMembership(ctx, userID)
	if err != nil {
		t.Fatalf("HasActiveMembership: %v", err)
	}
	if !active {
		t.Error("expected active membership after purchase")
	}

	current, err := membership.GetMembership(ctx, userID)
	if err != nil {
		t.Fatalf("GetMembership: %v", err)
	}
	if current.Current == nil || current.Current.PlanSlug != "monthly" {
		t.Errorf("current = %+v, want monthly plan", current.Current)
	}
	if len(current.History) != 1 {
		t.Errorf("history length = %d, want 1", len(current.History))
	}
}

func TestPurchaseExtendsSamePlan(t *testing.T) {
	repo, membership, _ := newMembershipFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 300000)

	if _, err := membership.Purchase(ctx, userID, &request.PurchaseMembershipRequest{PlanSlug: "monthly"}); err != nil {
		t.Fatalf("first Purchase: %v", err)
	}
	resp, err := membership.Purchase(ctx, userID, &request.PurchaseMembershipRequest{PlanSlug: "monthly"})
	if err != nil {
		t.Fatalf("second Purchase: %v", err)
	}

	// The second purchase stacks onto the remaining time, no lost days.
	today := dateOnly(time.Now())
	wantExpiry := today.AddDate(0, 0, 60)
	if !dateOnly(resp.Item.ExpiresAt).Equal(wantExpiry) {
		t.Errorf("expires %v, want %v", resp.Item.ExpiresAt, wantExpiry)
	}
	if resp.NewBalance != 100000 {
		t.Errorf("balance = %d, want 100000", resp.NewBalance)
	}
}

func TestPurchaseDifferentPlanStartsToday(t *testing.T) {
	repo, membership, _ := newMembershipFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 2000000)

	if _, err := membership.Purchase(ctx, userID, &request.PurchaseMembershipRequest{PlanSlug: "monthly"}); err != nil {
		t.Fatalf("Purchase monthly: %v", err)
	}
	resp, err := membership.Purchase(ctx, userID, &request.PurchaseMembershipRequest{PlanSlug: "annual"})
	if err != nil {
		t.Fatalf("Purchase annual: %v", err)
	}

	// Switching plans starts over from today, not from the old expiry.
	today := dateOnly(time.Now())
	wantExpiry := today.AddDate(0, 0, 365)
	if !dateOnly(resp.Item.ExpiresAt).Equal(wantExpiry) {
		t.Errorf("expires %v, want %v", resp.Item.ExpiresAt, wantExpiry)
	}
}

func TestPurchaseUnknownPlan(t *testing.T) {
	repo, membership, _ := newMembershipFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 300000)

	_, err := membership.Purchase(ctx, userID, &request.PurchaseMembershipRequest{PlanSlug: "lifetime"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := mustBalance(t, repo, userID); got != 300000 {
		t.Errorf("balance changed to %d", got)
	}
}

// brokenMembershipRepo fails every Create to exercise the purchase
// compensation path.
type brokenMembershipRepo struct {
	repository.MembershipRepository
}

func (brokenMembershipRepo) Create(ctx context.Context, item *entity.MembershipHistoryItem) error {
	return errors.New("storage unavailable")
}

func TestPurchaseRefundsWhenActivationFails(t *testing.T) {
	repo := newTestRepo()
	repo.Membership = brokenMembershipRepo{repo.Membership}
	log := zap.NewNop()
	wallet := NewWalletService(repo, log)
	membership := NewMembershipService(repo, newTestCatalog(), wallet, log)
	ctx := context.Background()
	userID := newTestUser(t, repo, 300000)

	if _, err := membership.Purchase(ctx, userID, &request.PurchaseMembershipRequest{PlanSlug: "monthly"}); err == nil {
		t.Fatal("expected Purchase to fail when the history item cannot be saved")
	}

	// The charge was compensated, never silently kept.
	if got := mustBalance(t, repo, userID); got != 300000 {
		t.Errorf("balance = %d, want 300000 after compensation", got)
	}

	txns, err := repo.Wallet.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("ledger entries = %d, want charge plus refund", len(txns))
	}

	active, err := membership.HasActiveMembership(ctx, userID)
	if err != nil {
		t.Fatalf("HasActiveMembership: %v", err)
	}
	if active {
		t.Error("membership active after failed purchase")
	}

	user, err := repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		t.Fatalf("find user: %v %v", user, err)
	}
	if user.MembershipSlug != nil {
		t.Errorf("membership cache still set to %s after failed purchase", *user.MembershipSlug)
	}
}

func TestCancelMembershipSameDay(t *testing.T) {
	repo, membership, _ := newMembershipFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 300000)

	resp, err := membership.Purchase(ctx, userID, &request.PurchaseMembershipRequest{PlanSlug: "monthly"})
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	if err := membership.Cancel(ctx, userID, resp.Item.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	// Same-day cancel refunds the full amount.
	if got := mustBalance(t, repo, userID); got != 300000 {
		t.Errorf("balance = %d, want 300000 after refund", got)
	}

	active, err := membership.HasActiveMembership(ctx, userID)
	if err != nil {
		t.Fatalf("HasActiveMembership: %v", err)
	}
	if active {
		t.Error("membership still active after cancel")
	}

	// A cancelled item cannot be cancelled again.
	if err := membership.Cancel(ctx, userID, resp.Item.ID); !errors.Is(err, ErrNotActive) {
		t.Fatalf("expected ErrNotActive, got %v", err)
	}
}

func TestCancelMembershipOutsideWindow(t *testing.T) {
	repo, membership, _ := newMembershipFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 300000)

	// Plant a purchase dated yesterday.
	yesterday := time.Now().AddDate(0, 0, -1)
	item := &entity.MembershipHistoryItem{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: yesterday,
			UpdatedAt: yesterday,
		},
		UserID:      userID,
		PlanSlug:    "monthly",
		PlanName:    "Monthly Membership",
		PurchasedAt: yesterday,
		ExpiresAt:   yesterday.AddDate(0, 0, 30),
		Amount:      100000,
		Status:      entity.MembershipStatusActive,
	}
	if err := repo.Membership.Create(ctx, item); err != nil {
		t.Fatalf("Create history item: %v", err)
	}

	err := membership.Cancel(ctx, userID, item.ID.String())
	if !errors.Is(err, ErrMembershipWindow) {
		t.Fatalf("expected ErrMembershipWindow, got %v", err)
	}

	// No refund was issued.
	if got := mustBalance(t, repo, userID); got != 300000 {
		t.Errorf("balance = %d, want 300000", got)
	}
}

func TestCancelForeignMembership(t *testing.T) {
	repo, membership, _ := newMembershipFixture()
	ctx := context.Background()
	ownerID := newTestUser(t, repo, 300000)
	otherID := newTestUser(t, repo, 300000)

	resp, err := membership.Purchase(ctx, ownerID, &request.PurchaseMembershipRequest{PlanSlug: "monthly"})
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}

	if err := membership.Cancel(ctx, otherID, resp.Item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign item, got %v", err)
	}
}
