package domain

import "errors"

// Status represents the lifecycle state of a certification request.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusSubmitted Status = "Submitted"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
)

// validTransitions defines the allowed state machine transitions.
// Approved and Rejected are terminal.
var validTransitions = map[Status][]Status{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
}

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("authentication token is required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")

	ErrMissingField      = errors.New("description, budget, and expectedDate are required")
	ErrInvalidBudget     = errors.New("budget must be a positive number")
	ErrPastDate          = errors.New("expectedDate cannot be in the past")
	ErrMissingTarget     = errors.New("new status is required")
	ErrRequestNotFound   = errors.New("request not found")
	ErrForbidden         = errors.New("only supervisors can approve or reject requests")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RoleCanSet is the transition authorization policy: it reports whether a user
// with the given role may move a request into the target status. Approval and
// rejection are reserved for supervisors; everything else is open to any
// authenticated user.
func RoleCanSet(role string, target Status) bool {
	if target == StatusApproved || target == StatusRejected {
		return role == RoleSupervisor
	}
	return true
}

// CertificationRequest is the core aggregate root.
type CertificationRequest struct {
	ID           int     `json:"id"`
	Description  string  `json:"description"`
	Budget       float64 `json:"budget"`
	ExpectedDate string  `json:"expectedDate"`
	Status       Status  `json:"status"`
	EmployeeName string  `json:"employeeName"`
}
