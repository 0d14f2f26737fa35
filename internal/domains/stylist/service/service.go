package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Stylist=MockStylistService

import (
	"context"
	"fmt"

	"salon/infras/otel"
	"salon/internal/domains/stylist/model"
	"salon/internal/domains/stylist/repository"
	"salon/shared/constant"

	"github.com/rs/zerolog/log"
)

type Stylist interface {
	GetAll(ctx context.Context) ([]model.Stylist, error)
}

type serviceImpl struct {
	repo repository.Stylist
	otel otel.Otel
}

func New(repo repository.Stylist, otel otel.Otel) Stylist {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Stylist, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stylists")

		return nil, fmt.Errorf("failed to get stylists: %w", err)
	}

	return res, nil
}
