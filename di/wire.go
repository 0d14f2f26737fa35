//go:build wireinject
// +build wireinject

package di

import (
	"io"

	"salon/config"
	"salon/infras/backend"
	"salon/infras/otel"
	"salon/infras/token"
	"salon/shared/session"
	"salon/transport/callback"
	"salon/transport/cli"

	"github.com/google/wire"

	authRepository "salon/internal/domains/auth/repository"
	authService "salon/internal/domains/auth/service"
	bookingRepository "salon/internal/domains/booking/repository"
	bookingService "salon/internal/domains/booking/service"
	catalogRepository "salon/internal/domains/catalog/repository"
	catalogService "salon/internal/domains/catalog/service"
	reviewRepository "salon/internal/domains/review/repository"
	reviewService "salon/internal/domains/review/service"
	stylistRepository "salon/internal/domains/stylist/repository"
	stylistService "salon/internal/domains/stylist/service"
	timeslotRepository "salon/internal/domains/timeslot/repository"
	timeslotService "salon/internal/domains/timeslot/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	token.New,
	session.New,
	backend.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var stylistDomain = wire.NewSet(
	stylistRepository.New,
	stylistService.New,
)

var timeslotDomain = wire.NewSet(
	timeslotRepository.New,
	timeslotService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	catalogDomain,
	reviewDomain,
	stylistDomain,
	timeslotDomain,
)

var transports = wire.NewSet(
	callback.New,
	cli.New,
)

func InitializeCLI(in io.Reader, out io.Writer) (*cli.CLI, error) {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		transports,
	)

	return &cli.CLI{}, nil
}
