package request

type PurchaseMembershipRequest struct {
	PlanSlug string `json:"plan_slug" validate:"required"`
}
