package request

type RegisterEventRequest struct {
	EventSlug string `json:"event_slug" validate:"required"`
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
}
