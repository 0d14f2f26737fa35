package dto

import "salon/internal/domains/review/model"

type SubmitReviewRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Rating    int    `json:"rating"    validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
	Recommend bool   `json:"recommend"`
}

type SubmitReviewResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Review  model.Review `json:"review"`
}
