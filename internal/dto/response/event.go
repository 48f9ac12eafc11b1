package response

import (
	"time"

	"pool-club/internal/data/entity"
)

type EventRegistrationResponse struct {
	ID           string    `json:"id"`
	EventSlug    string    `json:"event_slug"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

func EventRegistrationToResponse(registration *entity.EventRegistration) EventRegistrationResponse {
	return EventRegistrationResponse{
		ID:           registration.ID.String(),
		EventSlug:    registration.EventSlug,
		Name:         registration.Name,
		Email:        registration.Email,
		RegisteredAt: registration.CreatedAt,
	}
}
