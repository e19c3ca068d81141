package ports

import (
	"context"

	"github.com/certflow/certification-system/internal/core/domain"
)

// CreateRequestInput carries the caller-supplied fields for a new request.
// Budget arrives as its raw string form so the service can enforce the
// documented validation order (missing → not a number → not positive).
type CreateRequestInput struct {
	Description  string
	Budget       string
	ExpectedDate string
	// OwnerEmail is the authenticated caller's identity; any employeeName in
	// the request body is ignored.
	OwnerEmail string
}

// TransitionInput carries the parameters for a status transition.
type TransitionInput struct {
	RequestID int
	Target    domain.Status
	Actor     *domain.User
}

// CertificationService defines the use-case operations over certification requests.
type CertificationService interface {
	Create(ctx context.Context, input CreateRequestInput) (*domain.CertificationRequest, error)
	List(ctx context.Context, filter ListFilter) ([]domain.CertificationRequest, error)
	Transition(ctx context.Context, input TransitionInput) (*domain.CertificationRequest, error)
}
