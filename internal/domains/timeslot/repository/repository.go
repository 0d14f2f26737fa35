package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"salon/infras/backend"
	"salon/infras/otel"
	"salon/internal/domains/timeslot/model"
	"salon/internal/domains/timeslot/model/dto"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
)

type TimeSlot interface {
	ForWeekday(ctx context.Context, weekday string) ([]model.TimeSlot, error)
	List(ctx context.Context) ([]model.TimeSlot, error)
	Create(ctx context.Context, req dto.CreateSlotRequest) (model.TimeSlot, error)
	Toggle(ctx context.Context, id string) (model.TimeSlot, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) TimeSlot {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func validateSlots(slots []model.TimeSlot) error {
	for i := range slots {
		if err := validator.ValidateStruct(&slots[i]); err != nil {
			return failure.MalformedResponse(fmt.Errorf("slot at index %d: %w", i, err)) // nolint:wrapcheck
		}
	}

	return nil
}

func (r *repositoryImpl) ForWeekday(ctx context.Context, weekday string) (res []model.TimeSlot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ForWeekday")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{constant.RequestParamDay: []string{weekday}}

	var body dto.SlotsResponse
	if err = r.client.Get(ctx, constant.PathTimeSlots, query, &body, true); err != nil {
		return nil, fmt.Errorf("failed to fetch time slots for %s: %w", weekday, err)
	}

	if err = validateSlots(body.Slots); err != nil {
		return nil, err
	}

	return body.Slots, nil
}

func (r *repositoryImpl) List(ctx context.Context) (res []model.TimeSlot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	var body dto.SlotsResponse
	if err = r.client.Get(ctx, constant.PathTimeSlotsAdmin, nil, &body, true); err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}

	if err = validateSlots(body.Slots); err != nil {
		return nil, err
	}

	return body.Slots, nil
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.CreateSlotRequest) (res model.TimeSlot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	var body dto.CreateSlotResponse
	if err = r.client.Post(ctx, constant.PathTimeSlotsAdmin, req, &body, true); err != nil {
		return res, fmt.Errorf("failed to create time slot: %w", err)
	}

	if err = validator.ValidateStruct(&body.Slot); err != nil {
		return res, failure.MalformedResponse(fmt.Errorf("created slot: %w", err)) // nolint:wrapcheck
	}

	return body.Slot, nil
}

func (r *repositoryImpl) Toggle(ctx context.Context, id string) (res model.TimeSlot, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	var body dto.ToggleSlotResponse
	if err = r.client.Patch(ctx, constant.PathTimeSlotsAdmin+"/"+id+"/toggle", nil, &body, true); err != nil {
		return res, fmt.Errorf("failed to toggle time slot: %w", err)
	}

	if err = validator.ValidateStruct(&body.Slot); err != nil {
		return res, failure.MalformedResponse(fmt.Errorf("toggled slot: %w", err)) // nolint:wrapcheck
	}

	return body.Slot, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	var body dto.DeleteSlotResponse
	if err = r.client.Delete(ctx, constant.PathTimeSlotsAdmin+"/"+id, &body, true); err != nil {
		return fmt.Errorf("failed to delete time slot: %w", err)
	}

	return nil
}
