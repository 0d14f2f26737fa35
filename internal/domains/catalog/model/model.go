package model

const (
	EntityNameService = "service"
	EntityNamePackage = "package"
)

type Service struct {
	ID          string  `json:"_id"  validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Image       string  `json:"image"`
}

type Package struct {
	ID          string   `json:"_id"  validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"`
	Services    []string `json:"services"`
	Image       string   `json:"image"`
}
