package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"salon/infras/backend"
	"salon/infras/otel"
	"salon/internal/domains/auth/model/dto"
	"salon/shared/constant"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Signup(ctx context.Context, req dto.SignupRequest) (dto.AuthResponse, error)
	SendOTP(ctx context.Context, req dto.SendOTPRequest) (dto.StatusResponse, error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (dto.StatusResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (dto.StatusResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (dto.StatusResponse, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Auth {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, constant.PathAuthLogin, req, &res, false); err != nil {
		return res, fmt.Errorf("failed to login: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.AuthResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, constant.PathAuthSignup, req, &res, false); err != nil {
		return res, fmt.Errorf("failed to signup: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) SendOTP(ctx context.Context, req dto.SendOTPRequest) (res dto.StatusResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SendOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, constant.PathAuthSendOTP, req, &res, false); err != nil {
		return res, fmt.Errorf("failed to send OTP: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (res dto.StatusResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".VerifyOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, constant.PathAuthVerifyOTP, req, &res, false); err != nil {
		return res, fmt.Errorf("failed to verify OTP: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (res dto.StatusResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Post(ctx, constant.PathAuthResetPass, req, &res, false); err != nil {
		return res, fmt.Errorf("failed to reset password: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (res dto.StatusResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.client.Put(ctx, constant.PathAuthChangePass, req, &res, true); err != nil {
		return res, fmt.Errorf("failed to change password: %w", err)
	}

	return res, nil
}
