package request

type CreateBookingRequest struct {
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Duration int    `json:"duration" validate:"required,gt=0"`
	Type     string `json:"type" validate:"required,oneof=free_swim lane_training other"`
}
