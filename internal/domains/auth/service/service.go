package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"fmt"
	"strings"

	"salon/config"
	"salon/infras/otel"
	"salon/infras/token"
	"salon/internal/domains/auth/model/dto"
	"salon/internal/domains/auth/repository"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/session"
	"salon/shared/validator"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (dto.AuthResponse, error)
	SendOTP(ctx context.Context, req dto.SendOTPRequest) (dto.StatusResponse, error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (dto.StatusResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (dto.StatusResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (dto.StatusResponse, error)
	Logout(ctx context.Context) error
	GoogleAuthURL() string
}

type serviceImpl struct {
	repo      repository.Auth
	sess      session.Store
	inspector token.Inspector
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Auth, sess session.Store, inspector token.Inspector, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		repo:      repo,
		sess:      sess,
		inspector: inspector,
		cfg:       cfg,
		otel:      otel,
	}
}

// storeCredentials persists the issued token. A missing role on the response
// falls back to the token claims and finally to the customer role.
func (s *serviceImpl) storeCredentials(res dto.AuthResponse) error {
	if err := validator.ValidateStruct(&res); err != nil {
		return failure.MalformedResponse(err) // nolint:wrapcheck
	}

	role := res.Role
	if role == constant.Empty {
		role = s.inspector.Role(res.Token)
	}

	if role == constant.Empty {
		role = constant.RoleCustomer
	}

	if err := s.sess.SetToken(res.Token, role); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.Login(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("login failed")

		return res, fmt.Errorf("login failed: %w", err)
	}

	if err = s.storeCredentials(res); err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.Signup(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("signup failed")

		return res, fmt.Errorf("signup failed: %w", err)
	}

	if err = s.storeCredentials(res); err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) SendOTP(ctx context.Context, req dto.SendOTPRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.SendOTP(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to send OTP")

		return res, fmt.Errorf("failed to send OTP: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.VerifyOTP(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to verify OTP")

		return res, fmt.Errorf("failed to verify OTP: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.ResetPassword(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to reset password")

		return res, fmt.Errorf("failed to reset password: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res, err = s.repo.ChangePassword(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to change password")

		return res, fmt.Errorf("failed to change password: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.sess.ClearAuth(); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// GoogleAuthURL points the browser at the backend's OAuth entry. The backend
// redirects back to the local callback listener once Google signs the user in.
func (s *serviceImpl) GoogleAuthURL() string {
	return strings.TrimRight(s.cfg.Backend.BaseURL, "/") + "/" + constant.PathAuthGoogle
}
