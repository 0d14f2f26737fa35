package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"

	"salon/infras/otel"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/repository"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/session"
	"salon/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, intent session.BookingIntent, date, timeSlot, stylistID string, info model.CustomerInfo) (dto.BookingAcknowledgment, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.CheckAvailability(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return res, fmt.Errorf("failed to check slot availability: %w", err)
	}

	return res, nil
}

// Create maps the booking intent plus the chosen slot onto the creation
// payload and submits it. Availability is the caller's concern; the wizard
// checks it first and never calls Create for an unavailable slot.
func (s *serviceImpl) Create(ctx context.Context, intent session.BookingIntent, date, timeSlot, stylistID string, info model.CustomerInfo) (res dto.BookingAcknowledgment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	req := dto.BuildCreateRequest(intent, date, timeSlot, stylistID, info)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	return res, nil
}
