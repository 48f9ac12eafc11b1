package response

import (
	"time"

	"pool-club/internal/data/entity"
)

type CurrentMembershipResponse struct {
	PlanSlug  string    `json:"plan_slug"`
	PlanName  string    `json:"plan_name"`
	ExpiresAt time.Time `json:"expires_at"`
}

type MembershipHistoryResponse struct {
	ID          string    `json:"id"`
	PlanSlug    string    `json:"plan_slug"`
	PlanName    string    `json:"plan_name"`
	PurchasedAt time.Time `json:"purchased_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
}

type MembershipResponse struct {
	Current *CurrentMembershipResponse  `json:"current,omitempty"`
	History []MembershipHistoryResponse `json:"history"`
}

type PurchaseMembershipResponse struct {
	Item       MembershipHistoryResponse `json:"item"`
	NewBalance int64                     `json:"new_balance"`
}

func MembershipItemToResponse(item *entity.MembershipHistoryItem) MembershipHistoryResponse {
	return MembershipHistoryResponse{
		ID:          item.ID.String(),
		PlanSlug:    item.PlanSlug,
		PlanName:    item.PlanName,
		PurchasedAt: item.PurchasedAt,
		ExpiresAt:   item.ExpiresAt,
		Amount:      item.Amount,
		Status:      string(item.Status),
	}
}
