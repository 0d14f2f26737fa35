package model

const EntityName = "time slot"

type TimeSlot struct {
	ID        string `json:"_id"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
	Available bool   `json:"available"`
}
