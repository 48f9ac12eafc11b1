package usecase

import (
	"context"
	"errors"
	"testing"

	"pool-club/internal/data/repository"
	"pool-club/internal/dto/request"

	"go.uber.org/zap"
)

func newClassFixture() (*repository.Repository, ClassService) {
	repo := newTestRepo()
	log := zap.NewNop()
	wallet := NewWalletService(repo, log)
	return repo, NewClassService(repo, newTestCatalog(), wallet, log)
}

func TestEnrollClass(t *testing.T) {
	repo, class := newClassFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 500000)

	resp, err := class.Enroll(ctx, userID, &request.EnrollClassRequest{ClassSlug: "stroke-clinic"})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if resp.NewBalance != 300000 {
		t.Errorf("balance = %d, want 300000", resp.NewBalance)
	}

	// Enrolling twice in the same class is rejected without a charge.
	_, err = class.Enroll(ctx, userID, &request.EnrollClassRequest{ClassSlug: "stroke-clinic"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if got := mustBalance(t, repo, userID); got != 300000 {
		t.Errorf("balance = %d, want 300000", got)
	}

	mine, err := class.MyClasses(ctx, userID)
	if err != nil {
		t.Fatalf("MyClasses: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(mine))
	}
}

func TestEnrollUnknownClass(t *testing.T) {
	repo, class := newClassFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 500000)

	_, err := class.Enroll(ctx, userID, &request.EnrollClassRequest{ClassSlug: "underwater-basket-weaving"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := mustBalance(t, repo, userID); got != 500000 {
		t.Errorf("balance changed to %d", got)
	}
}

func TestCancelEnrollment(t *testing.T) {
	repo, class := newClassFixture()
	ctx := context.Background()
	userID := newTestUser(t, repo, 500000)

	resp, err := class.Enroll(ctx, userID, &request.EnrollClassRequest{ClassSlug: "stroke-clinic"})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	if err := class.CancelEnrollment(ctx, userID, resp.Enrollment.ID); err != nil {
		t.Fatalf("CancelEnrollment: %v", err)
	}

	// No refund on enrollment cancel.
	if got := mustBalance(t, repo, userID); got != 300000 {
		t.Errorf("balance = %d, want 300000", got)
	}

	// The slot frees up for a fresh enrollment.
	if _, err := class.Enroll(ctx, userID, &request.EnrollClassRequest{ClassSlug: "stroke-clinic"}); err != nil {
		t.Fatalf("Enroll after cancel: %v", err)
	}
}
