package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pool-club/internal/data/catalog"
	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"
	"pool-club/internal/data/repository/memory"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testUserSeq int

func newTestRepo() *repository.Repository {
	return memory.NewRepository(memory.NewStore())
}

func newTestCatalog() *catalog.Catalog {
	return catalog.Load("testdata", zap.NewNop())
}

func newTestUser(t *testing.T, repo *repository.Repository, balance int64) uuid.UUID {
	t.Helper()

	testUserSeq++
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:         fmt.Sprintf("swimmer%d@example.com", testUserSeq),
		PasswordHash:  "x",
		FirstName:     "Test",
		LastName:      "Swimmer",
		Role:          entity.RoleMember,
		IsActive:      true,
		WalletBalance: 0,
	}
	if err := repo.User.Create(context.Background(), user); err != nil {
		t.Fatalf("create test user: %v", err)
	}

	if balance > 0 {
		if err := repo.User.CreditBalance(context.Background(), user.ID, balance); err != nil {
			t.Fatalf("credit test user: %v", err)
		}
	}

	return user.ID
}

func mustBalance(t *testing.T, repo *repository.Repository, userID uuid.UUID) int64 {
	t.Helper()

	user, err := repo.User.FindByID(context.Background(), userID)
	if err != nil || user == nil {
		t.Fatalf("find test user: %v", err)
	}
	return user.WalletBalance
}

// futureSlot returns a date/time pair safely in the future.
func futureSlot(daysAhead int, timeStr string) (string, string) {
	return time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02"), timeStr
}
