package auth

import (
	"context"

	"github.com/raminfosys/erp-backend-go/internal/domain/user"
)

type AuthService interface {
	// Authenticate returns the approved user matching username
	// (case-insensitive) and password (exact).
	Authenticate(ctx context.Context, req LoginRequest) (user.User, error)

	// Login authenticates and issues an access token for the session.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
