package entity

import (
	"github.com/google/uuid"
)

type TransactionKind string

const (
	TransactionDeposit  TransactionKind = "deposit"
	TransactionPurchase TransactionKind = "purchase"
	TransactionRefund   TransactionKind = "refund"
)

// WalletTransaction is one immutable ledger entry. Amount is signed:
// purchases are negative, deposits and refunds positive.
type WalletTransaction struct {
	BaseSimple
	UserID      uuid.UUID       `db:"user_id"`
	Amount      int64           `db:"amount"`
	Kind        TransactionKind `db:"kind"`
	Description string          `db:"description"`
}
