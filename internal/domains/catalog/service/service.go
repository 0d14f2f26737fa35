package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Catalog=MockCatalogService

import (
	"context"
	"fmt"

	"salon/infras/otel"
	"salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/repository"
	"salon/shared/constant"
	"salon/shared/session"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	ListServices(ctx context.Context, category string) ([]model.Service, error)
	ListPackages(ctx context.Context) ([]model.Package, error)
	BeginServiceBooking(ctx context.Context, svc model.Service) (needsLogin bool, err error)
	BeginPackageBooking(ctx context.Context, pkg model.Package) (needsLogin bool, err error)
	BeginAppointment(ctx context.Context) (needsLogin bool, err error)
}

type serviceImpl struct {
	repo repository.Catalog
	sess session.Store
	otel otel.Otel
}

func New(repo repository.Catalog, sess session.Store, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		sess: sess,
		otel: otel,
	}
}

func (s *serviceImpl) ListServices(ctx context.Context, category string) (res []model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetServices(ctx, category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to list services")

		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ListPackages(ctx context.Context) (res []model.Package, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetPackages(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list packages")

		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return res, nil
}

// beginBooking stores the intent regardless of auth state so it survives a
// login round trip. The caller routes to login first when needsLogin is set.
func (s *serviceImpl) beginBooking(intent session.BookingIntent) (bool, error) {
	if err := s.sess.SetIntent(intent); err != nil {
		log.Error().Err(err).Str("bookingType", intent.Type).Msg("failed to store booking intent")

		return false, fmt.Errorf("failed to store booking intent: %w", err)
	}

	return !s.sess.LoggedIn(), nil
}

func (s *serviceImpl) BeginServiceBooking(ctx context.Context, svc model.Service) (needsLogin bool, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BeginServiceBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.beginBooking(session.BookingIntent{
		Type:      constant.BookingTypeService,
		ServiceID: svc.ID,
		Name:      svc.Name,
		Price:     svc.Price,
		Duration:  svc.Duration,
	})
}

func (s *serviceImpl) BeginPackageBooking(ctx context.Context, pkg model.Package) (needsLogin bool, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BeginPackageBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.beginBooking(session.BookingIntent{
		Type:      constant.BookingTypePackage,
		PackageID: pkg.ID,
		Name:      pkg.Name,
		Price:     pkg.Price,
		Duration:  pkg.Duration,
	})
}

func (s *serviceImpl) BeginAppointment(ctx context.Context) (needsLogin bool, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BeginAppointment")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.beginBooking(session.BookingIntent{
		Type: constant.BookingTypeAppointment,
		Name: "Walk-in Appointment",
	})
}
