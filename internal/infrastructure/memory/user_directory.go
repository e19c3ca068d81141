package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/certflow/certification-system/internal/core/domain"
)

// Account is a seed entry: a plaintext password that gets hashed on load.
type Account struct {
	Email    string
	Password string
	Role     string
}

// UserDirectory is the static in-memory account set. It is immutable after
// construction, so lookups need no locking.
type UserDirectory struct {
	byEmail map[string]domain.User
}

// NewUserDirectory hashes each seed password with bcrypt and builds the
// directory. Passwords are never kept in plaintext beyond this call.
func NewUserDirectory(accounts []Account) (*UserDirectory, error) {
	byEmail := make(map[string]domain.User, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", a.Email, err)
		}
		byEmail[a.Email] = domain.User{
			Email:        a.Email,
			PasswordHash: string(hash),
			Role:         a.Role,
		}
	}
	return &UserDirectory{byEmail: byEmail}, nil
}

func (d *UserDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := d.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := u
	return &clone, nil
}

func (d *UserDirectory) Count() int {
	return len(d.byEmail)
}
