package request

type EnrollClassRequest struct {
	ClassSlug string `json:"class_slug" validate:"required"`
}
