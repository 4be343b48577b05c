package auth

import (
	"context"
)

type AuthService interface {
	// Register creates a member account and signs it in
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
