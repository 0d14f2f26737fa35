package model

const (
	EntityName = "booking"
)

// CustomerInfo is the contact block submitted with a booking. All four
// fields are required before the flow may advance past the details step.
type CustomerInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required"`
}

// Complete reports whether every customer field is non-empty. Validation
// proper (email shape etc.) happens through the validator; this is the
// cheap gate the step logic uses.
func (c CustomerInfo) Complete() bool {
	return c.FirstName != "" && c.LastName != "" && c.Email != "" && c.Phone != ""
}
