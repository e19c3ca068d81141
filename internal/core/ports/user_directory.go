package ports

import (
	"context"

	"github.com/certflow/certification-system/internal/core/domain"
)

// UserDirectory is the read-only account lookup used by login and the auth guard.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Count() int
}
