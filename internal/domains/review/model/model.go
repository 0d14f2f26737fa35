package model

const EntityName = "review"

type Review struct {
	ID        string `json:"_id"`
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Recommend bool   `json:"recommend"`
	CreatedAt string `json:"createdAt"`
}
