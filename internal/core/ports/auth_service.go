package ports

import (
	"context"

	"github.com/certflow/certification-system/internal/core/domain"
)

// TokenClaims are the identity claims carried by a verified session token.
type TokenClaims struct {
	Email string
	Role  string
}

// AuthService implements login and stateless token verification.
type AuthService interface {
	// Login checks credentials against the directory and returns a signed
	// session token valid for the configured TTL.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Verify validates a raw token string and returns its claims.
	Verify(token string) (*TokenClaims, error)
}
