package dto

import (
	"salon/internal/domains/booking/model"
	"salon/shared/constant"
	"salon/shared/session"
)

// AvailabilityRequest asks the backend whether a specific (date, time, stylist)
// triple is currently bookable.
type AvailabilityRequest struct {
	Date      string `json:"date"      validate:"required,bookingdate"`
	TimeSlot  string `json:"timeSlot"  validate:"required,clock"`
	StylistID string `json:"stylistId" validate:"required"`
}

// AvailabilityStylist is the optional stylist echo on an availability response.
type AvailabilityStylist struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
}

type AvailabilityResponse struct {
	Available bool                 `json:"available"`
	Reason    string               `json:"reason,omitempty"`
	Stylist   *AvailabilityStylist `json:"stylist,omitempty"`
}

// CreateBookingRequest is the booking-creation payload. Its shape mirrors the
// backend contract exactly: serviceIds is always present (possibly empty),
// packageId is null unless the intent is a package, and totalPrice is zero for
// walk-in appointments no matter what the intent carries.
type CreateBookingRequest struct {
	BookingType  string             `json:"bookingType" validate:"required,oneof=service package appointment"`
	ServiceIDs   []string           `json:"serviceIds"`
	PackageID    *string            `json:"packageId"`
	Date         string             `json:"date"       validate:"required,bookingdate"`
	TimeSlot     string             `json:"timeSlot"   validate:"required,clock"`
	StylistIDs   []string           `json:"stylistIds" validate:"required,min=1"`
	CustomerInfo model.CustomerInfo `json:"customerInfo"`
	TotalPrice   float64            `json:"totalPrice"`
}

// BuildCreateRequest maps a booking intent plus the wizard's selections onto
// the creation payload.
func BuildCreateRequest(intent session.BookingIntent, date, timeSlot, stylistID string, info model.CustomerInfo) CreateBookingRequest {
	req := CreateBookingRequest{
		BookingType:  intent.Type,
		ServiceIDs:   []string{},
		PackageID:    nil,
		Date:         date,
		TimeSlot:     timeSlot,
		StylistIDs:   []string{stylistID},
		CustomerInfo: info,
	}

	switch intent.Type {
	case constant.BookingTypeService:
		req.ServiceIDs = []string{intent.ServiceID}
		req.TotalPrice = intent.Price
	case constant.BookingTypePackage:
		packageID := intent.PackageID
		req.PackageID = &packageID
		req.TotalPrice = intent.Price
	case constant.BookingTypeAppointment:
		req.TotalPrice = 0
	}

	return req
}

// BookingAcknowledgment is consumed only to confirm the booking was created;
// none of its fields feed back into the flow.
type BookingAcknowledgment struct {
	ID      string `json:"_id,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}
