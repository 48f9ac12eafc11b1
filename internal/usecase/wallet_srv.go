package usecase

import (
	"context"
	"fmt"
	"time"

	"pool-club/internal/data/entity"
	"pool-club/internal/data/repository"
	"pool-club/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WalletService is the ledger: per-user balance plus an append-only
// transaction log. Charge is the sole gate for every paid action; once it
// returns success the debit is final and only an explicit refund deposit
// can compensate it.
type WalletService interface {
	Deposit(ctx context.Context, userID uuid.UUID, amount int64, description string) (int64, error)
	Charge(ctx context.Context, userID uuid.UUID, amount int64, description string) (int64, error)
	Refund(ctx context.Context, userID uuid.UUID, amount int64, description string) (int64, error)
	GetWallet(ctx context.Context, userID uuid.UUID) (*response.WalletResponse, error)
}

type walletService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWalletService(repo *repository.Repository, log *zap.Logger) WalletService {
	return &walletService{
		repo: repo,
		log:  log.With(zap.String("service", "wallet")),
	}
}

func (s *walletService) Deposit(ctx context.Context, userID uuid.UUID, amount int64, description string) (int64, error) {
	return s.credit(ctx, userID, amount, entity.TransactionDeposit, description)
}

// Refund is a deposit with a distinct kind so the log stays auditable.
func (s *walletService) Refund(ctx context.Context, userID uuid.UUID, amount int64, description string) (int64, error) {
	return s.credit(ctx, userID, amount, entity.TransactionRefund, description)
}

func (s *walletService) credit(ctx context.Context, userID uuid.UUID, amount int64, kind entity.TransactionKind, description string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%s of %d: %w", kind, amount, ErrInvalidAmount)
	}

	if err := s.repo.User.CreditBalance(ctx, userID, amount); err != nil {
		s.log.Error("Failed to credit balance",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("amount", amount),
		)
		return 0, fmt.Errorf("credit wallet: %w", err)
	}

	if err := s.appendTransaction(ctx, userID, amount, kind, description); err != nil {
		return 0, err
	}

	balance, err := s.currentBalance(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.log.Info("Wallet credited",
		zap.String("user_id", userID.String()),
		zap.Int64("amount", amount),
		zap.String("kind", string(kind)),
		zap.Int64("balance", balance),
	)
	return balance, nil
}

func (s *walletService) Charge(ctx context.Context, userID uuid.UUID, amount int64, description string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("charge of %d: %w", amount, ErrInvalidAmount)
	}

	debited, err := s.repo.User.DebitBalance(ctx, userID, amount)
	if err != nil {
		s.log.Error("Failed to debit balance",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("amount", amount),
		)
		return 0, fmt.Errorf("charge wallet: %w", err)
	}
	if !debited {
		return 0, fmt.Errorf("charge of %d: %w", amount, ErrInsufficientFunds)
	}

	// Purchases record the signed (negative) amount.
	if err := s.appendTransaction(ctx, userID, -amount, entity.TransactionPurchase, description); err != nil {
		return 0, err
	}

	balance, err := s.currentBalance(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.log.Info("Wallet charged",
		zap.String("user_id", userID.String()),
		zap.Int64("amount", amount),
		zap.Int64("balance", balance),
	)
	return balance, nil
}

func (s *walletService) GetWallet(ctx context.Context, userID uuid.UUID) (*response.WalletResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID.String(), ErrNotFound)
	}

	txns, err := s.repo.Wallet.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	txnResponses := make([]response.TransactionResponse, len(txns))
	for i, txn := range txns {
		txnResponses[i] = response.TransactionToResponse(txn)
	}

	return &response.WalletResponse{
		Balance:      user.WalletBalance,
		Transactions: txnResponses,
	}, nil
}

func (s *walletService) appendTransaction(ctx context.Context, userID uuid.UUID, amount int64, kind entity.TransactionKind, description string) error {
	txn := &entity.WalletTransaction{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		Amount:      amount,
		Kind:        kind,
		Description: description,
	}

	if err := s.repo.Wallet.Create(ctx, txn); err != nil {
		s.log.Error("Failed to append wallet transaction",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("amount", amount),
		)
		return fmt.Errorf("append wallet transaction: %w", err)
	}

	return nil
}

func (s *walletService) currentBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		return 0, fmt.Errorf("read balance for user %s: %w", userID.String(), err)
	}
	return user.WalletBalance, nil
}
