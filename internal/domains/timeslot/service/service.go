package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=TimeSlot=MockTimeSlotService

import (
	"context"
	"fmt"

	"salon/infras/otel"
	"salon/infras/token"
	"salon/internal/domains/timeslot/model"
	"salon/internal/domains/timeslot/model/dto"
	"salon/internal/domains/timeslot/repository"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/session"
	"salon/shared/validator"

	"github.com/rs/zerolog/log"
)

type TimeSlot interface {
	ForWeekday(ctx context.Context, weekday string) ([]model.TimeSlot, error)
	List(ctx context.Context) ([]model.TimeSlot, error)
	Create(ctx context.Context, req dto.CreateSlotRequest) (model.TimeSlot, error)
	Toggle(ctx context.Context, id string) (model.TimeSlot, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.TimeSlot
	sess      session.Store
	inspector token.Inspector
	otel      otel.Otel
}

func New(repo repository.TimeSlot, sess session.Store, inspector token.Inspector, otel otel.Otel) TimeSlot {
	return &serviceImpl{
		repo:      repo,
		sess:      sess,
		inspector: inspector,
		otel:      otel,
	}
}

func (s *serviceImpl) ForWeekday(ctx context.Context, weekday string) (res []model.TimeSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ForWeekday")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(weekday, "required,weekday"); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.ForWeekday(ctx, weekday)
	if err != nil {
		log.Error().Err(err).Str("weekday", weekday).Msg("failed to get time slots")

		return nil, fmt.Errorf("failed to get time slots: %w", err)
	}

	return res, nil
}

// requireAdmin gates the management operations. The stored role wins; when the
// session predates role tracking the token claims are consulted instead. The
// backend re-checks either way.
func (s *serviceImpl) requireAdmin() error {
	role := s.sess.Role()
	if role == constant.Empty {
		role = s.inspector.Role(s.sess.Token())
	}

	if role != constant.RoleAdmin {
		return failure.Forbidden("admin access required") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) List(ctx context.Context) (res []model.TimeSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireAdmin(); err != nil {
		return nil, err
	}

	res, err = s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list time slots")

		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSlotRequest) (res model.TimeSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireAdmin(); err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create time slot")

		return res, fmt.Errorf("failed to create time slot: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (res model.TimeSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireAdmin(); err != nil {
		return res, err
	}

	if err = validator.ValidateVar(id, "required"); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.Toggle(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to toggle time slot")

		return res, fmt.Errorf("failed to toggle time slot: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireAdmin(); err != nil {
		return err
	}

	if err = validator.ValidateVar(id, "required"); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete time slot")

		return fmt.Errorf("failed to delete time slot: %w", err)
	}

	return nil
}
