package model

const EntityName = "stylist"

type Stylist struct {
	ID        string  `json:"_id"  validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Specialty string  `json:"specialty"`
	Rating    float64 `json:"rating"`
	Image     string  `json:"image"`
}
