package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"salon/infras/backend"
	"salon/infras/otel"
	"salon/internal/domains/review/model"
	"salon/internal/domains/review/model/dto"
	"salon/shared/constant"
)

type Review interface {
	Submit(ctx context.Context, req dto.SubmitReviewRequest) (dto.SubmitReviewResponse, error)
	List(ctx context.Context) ([]model.Review, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Review {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Submit(ctx context.Context, req dto.SubmitReviewRequest) (res dto.SubmitReviewResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, constant.PathReviews, req, &res, true); err != nil {
		return res, fmt.Errorf("failed to submit review: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) List(ctx context.Context) (res []model.Review, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, constant.PathReviews, nil, &res, false); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return res, nil
}
