package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Review=MockReviewService

import (
	"context"
	"fmt"

	"salon/infras/otel"
	"salon/internal/domains/review/model"
	"salon/internal/domains/review/model/dto"
	"salon/internal/domains/review/repository"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"

	"github.com/rs/zerolog/log"
)

type Review interface {
	Submit(ctx context.Context, req dto.SubmitReviewRequest) (dto.SubmitReviewResponse, error)
	List(ctx context.Context) ([]model.Review, error)
}

type serviceImpl struct {
	repo repository.Review
	otel otel.Otel
}

func New(repo repository.Review, otel otel.Otel) Review {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitReviewRequest) (res dto.SubmitReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.Submit(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("bookingId", req.BookingID).Msg("failed to submit review")

		return res, fmt.Errorf("failed to submit review: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res []model.Review, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reviews")

		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return res, nil
}
