package memory

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/certflow/certification-system/internal/core/domain"
)

func TestUserDirectory_SeedAccounts(t *testing.T) {
	dir, err := NewUserDirectory(SeedAccounts())
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}
	if dir.Count() != 2 {
		t.Fatalf("expected 2 accounts, got %d", dir.Count())
	}

	emp, err := dir.FindByEmail(context.Background(), "employee@testing.com")
	if err != nil {
		t.Fatalf("find employee: %v", err)
	}
	if emp.Role != domain.RoleEmployee {
		t.Fatalf("expected EMPLOYEE, got %s", emp.Role)
	}
	if emp.PasswordHash == "testing99" {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("testing99")) != nil {
		t.Fatalf("stored hash does not match seed password")
	}

	sup, err := dir.FindByEmail(context.Background(), "supervisor@testing.com")
	if err != nil {
		t.Fatalf("find supervisor: %v", err)
	}
	if sup.Role != domain.RoleSupervisor {
		t.Fatalf("expected SUPERVISOR, got %s", sup.Role)
	}
}

func TestUserDirectory_UnknownEmail(t *testing.T) {
	dir, err := NewUserDirectory(SeedAccounts())
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}

	if _, err := dir.FindByEmail(context.Background(), "ghost@testing.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserDirectory_ReturnsClone(t *testing.T) {
	dir, err := NewUserDirectory(SeedAccounts())
	if err != nil {
		t.Fatalf("seed directory: %v", err)
	}

	u, _ := dir.FindByEmail(context.Background(), "employee@testing.com")
	u.Role = domain.RoleSupervisor

	again, _ := dir.FindByEmail(context.Background(), "employee@testing.com")
	if again.Role != domain.RoleEmployee {
		t.Fatalf("directory mutated through returned user")
	}
}
