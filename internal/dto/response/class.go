package response

import (
	"time"

	"pool-club/internal/data/entity"
)

type EnrollmentResponse struct {
	ID         string    `json:"id"`
	ClassSlug  string    `json:"class_slug"`
	ClassName  string    `json:"class_name"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type EnrollClassResponse struct {
	Enrollment EnrollmentResponse `json:"enrollment"`
	NewBalance int64              `json:"new_balance"`
}

func EnrollmentToResponse(enrollment *entity.ClassEnrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         enrollment.ID.String(),
		ClassSlug:  enrollment.ClassSlug,
		ClassName:  enrollment.ClassName,
		Amount:     enrollment.Amount,
		Status:     string(enrollment.Status),
		EnrolledAt: enrollment.CreatedAt,
	}
}
