package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"salon/infras/backend"
	"salon/infras/otel"
	"salon/internal/domains/catalog/model"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
)

type Catalog interface {
	GetServices(ctx context.Context, category string) ([]model.Service, error)
	GetPackages(ctx context.Context) ([]model.Package, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Catalog {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetServices(ctx context.Context, category string) (res []model.Service, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	var query url.Values
	if category != constant.Empty {
		query = url.Values{constant.RequestParamCategory: []string{category}}
	}

	if err = r.client.Get(ctx, constant.PathServices, query, &res, false); err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	for i := range res {
		if err = validator.ValidateStruct(&res[i]); err != nil {
			return nil, failure.MalformedResponse(fmt.Errorf("service at index %d: %w", i, err)) // nolint:wrapcheck
		}
	}

	return res, nil
}

func (r *repositoryImpl) GetPackages(ctx context.Context) (res []model.Package, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Get(ctx, constant.PathPackages, nil, &res, false); err != nil {
		return nil, fmt.Errorf("failed to fetch packages: %w", err)
	}

	for i := range res {
		if err = validator.ValidateStruct(&res[i]); err != nil {
			return nil, failure.MalformedResponse(fmt.Errorf("package at index %d: %w", i, err)) // nolint:wrapcheck
		}
	}

	return res, nil
}
