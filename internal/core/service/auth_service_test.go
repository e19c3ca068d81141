package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/certflow/certification-system/internal/core/domain"
)

type stubDirectory struct {
	users map[string]*domain.User
}

func newStubDirectory(t *testing.T, accounts map[string]string) *stubDirectory {
	t.Helper()
	users := make(map[string]*domain.User, len(accounts))
	for email, password := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		users[email] = &domain.User{Email: email, PasswordHash: string(hash), Role: domain.RoleEmployee}
	}
	return &stubDirectory{users: users}
}

func (d *stubDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := d.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (d *stubDirectory) Count() int { return len(d.users) }

func TestAuthService_Login_Success(t *testing.T) {
	dir := newStubDirectory(t, map[string]string{"employee@testing.com": "testing99"})
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "employee@testing.com", "testing99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "employee@testing.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "employee@testing.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if claims["role"] != user.Role {
		t.Fatalf("expected role %s, got %v", user.Role, claims["role"])
	}
	if claims["jti"] == nil || claims["jti"] == "" {
		t.Fatalf("expected jti claim")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("expected numeric exp claim, got %T", claims["exp"])
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl < 59*time.Minute || ttl > 61*time.Minute {
		t.Fatalf("expected ~1h expiry, got %v", ttl)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	dir := newStubDirectory(t, nil)
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "someone@testing.com", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	dir := newStubDirectory(t, map[string]string{"employee@testing.com": "testing99"})
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "employee@testing.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	dir := newStubDirectory(t, map[string]string{"employee@testing.com": "testing99"})
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	// Unknown accounts are reported exactly like wrong passwords.
	if _, _, err := svc.Login(context.Background(), "ghost@testing.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Verify_RoundTrip(t *testing.T) {
	dir := newStubDirectory(t, map[string]string{"employee@testing.com": "testing99"})
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "employee@testing.com", "testing99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Email != user.Email || claims.Role != user.Role {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Verify_Garbage(t *testing.T) {
	dir := newStubDirectory(t, nil)
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Verify_WrongSecret(t *testing.T) {
	dir := newStubDirectory(t, map[string]string{"employee@testing.com": "testing99"})
	issuer := NewAuthService(dir, "secret-a", time.Hour, zerolog.Nop())
	verifier := NewAuthService(dir, "secret-b", time.Hour, zerolog.Nop())

	token, _, err := issuer.Login(context.Background(), "employee@testing.com", "testing99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	dir := newStubDirectory(t, nil)
	svc := NewAuthService(dir, "secret", time.Hour, zerolog.Nop())

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "employee@testing.com",
		"role":  domain.RoleEmployee,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
