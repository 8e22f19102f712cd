package gateway

import (
	"context"

	"hotel-booking/errors"
	"hotel-booking/rpc"
	"hotel-booking/services/logger"
)

// AuthService lỗi transport khi đăng nhập/đăng ký đều trả về 401
type AuthService struct {
	accounts AccountClient
	logger   logger.Logger
}

func NewAuthService(accounts AccountClient, log logger.Logger) *AuthService {
	return &AuthService{accounts: accounts, logger: log}
}

func (s *AuthService) Login(ctx context.Context, in rpc.LoginRequest) (rpc.RawReply, error) {
	reply, err := s.accounts.Login(ctx, in)
	if err != nil {
		s.logger.Warn("Login thất bại cho %s: %v", in.Email, err)
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid credentials", err)
	}
	return reply, nil
}

func (s *AuthService) Register(ctx context.Context, in rpc.RegisterRequest) (rpc.RawReply, error) {
	reply, err := s.accounts.Register(ctx, in)
	if err != nil {
		s.logger.Warn("Đăng ký thất bại cho %s: %v", in.Email, err)
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Registration failed", err)
	}
	return reply, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, in rpc.RefreshTokenRequest) (rpc.RawReply, error) {
	reply, err := s.accounts.RefreshToken(ctx, in)
	if err != nil {
		s.logger.Warn("Refresh token thất bại: %v", err)
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid refresh token", err)
	}
	return reply, nil
}
