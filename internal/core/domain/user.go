package domain

const (
	RoleEmployee   = "EMPLOYEE"
	RoleSupervisor = "SUPERVISOR"
)

// User models an authenticated actor. The directory is static: accounts are
// seeded at startup and never created or deleted at runtime.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
