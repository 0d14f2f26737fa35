package dto

import "salon/internal/domains/timeslot/model"

type SlotsResponse struct {
	Slots []model.TimeSlot `json:"slots"`
}

type CreateSlotRequest struct {
	DayOfWeek string `json:"dayOfWeek" validate:"required,weekday"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime"   validate:"required,clock"`
	Duration  int    `json:"duration"  validate:"required,gte=15,lte=240"`
}

type CreateSlotResponse struct {
	Slot model.TimeSlot `json:"slot"`
}

type ToggleSlotResponse struct {
	Success bool           `json:"success"`
	Slot    model.TimeSlot `json:"slot"`
}

type DeleteSlotResponse struct {
	Success bool `json:"success"`
}
