package response

import (
	"time"

	"pool-club/internal/data/entity"
)

type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type WalletResponse struct {
	Balance      int64                 `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

type DepositResponse struct {
	NewBalance int64 `json:"new_balance"`
}

func TransactionToResponse(txn *entity.WalletTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		Amount:      txn.Amount,
		Kind:        string(txn.Kind),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
}
