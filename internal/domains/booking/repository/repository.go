package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"salon/infras/backend"
	"salon/infras/otel"
	"salon/internal/domains/booking/model/dto"
	"salon/shared/constant"
)

type Booking interface {
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingAcknowledgment, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, constant.PathBookingCheck, req, &res, true); err != nil {
		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingAcknowledgment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, constant.PathBookingCreate, req, &res, true); err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	return res, nil
}
