package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/raminfosys/erp-backend-go/internal/domain/auth"
	"github.com/raminfosys/erp-backend-go/internal/domain/user"
	"github.com/raminfosys/erp-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepository user.UserRepository
	jwtService     jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Authenticate implements auth.AuthService.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, req auth.LoginRequest) (user.User, error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	users, err := s.userRepository.List(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to load users: %w", err)
	}

	for _, u := range users {
		if !u.MatchesUsername(username) || u.Password != password {
			continue
		}
		if !u.IsApproved {
			return user.User{}, auth.ErrAccountNotApproved
		}
		return u, nil
	}

	return user.User{}, auth.ErrInvalidCredentials
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := s.Authenticate(ctx, req)
	if err != nil {
		slog.Info("Login rejected", "username", strings.TrimSpace(req.Username), "reason", err)
		return auth.LoginResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("User logged in", "user_id", u.ID, "role", u.Role)
	return auth.LoginResponse{
		User:        u,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
