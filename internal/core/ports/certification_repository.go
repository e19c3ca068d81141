package ports

import (
	"context"

	"github.com/certflow/certification-system/internal/core/domain"
)

// SortSpec is a parsed `field:direction` sort instruction.
type SortSpec struct {
	Field      string
	Descending bool
}

// ListFilter carries the typed query parameters for listing certification
// requests. All filters are optional and combined with AND semantics.
type ListFilter struct {
	Statuses     []domain.Status // keep iff status is a member; nil = no filter
	EmployeeName string          // case-insensitive exact match
	MinBudget    *float64        // inclusive lower bound
	MaxBudget    *float64        // inclusive upper bound
	Sort         *SortSpec       // nil = natural insertion order
}

// CertificationRepository defines the volatile store for certification requests.
type CertificationRepository interface {
	// Insert assigns the next sequential id, appends the request, and returns
	// the stored record.
	Insert(ctx context.Context, req *domain.CertificationRequest) (*domain.CertificationRequest, error)
	// FindByID returns the request with the given id or domain.ErrRequestNotFound.
	FindByID(ctx context.Context, id int) (*domain.CertificationRequest, error)
	// List returns a filtered, sorted snapshot of the collection. Mutating the
	// returned slice or its elements never affects the store.
	List(ctx context.Context, filter ListFilter) ([]domain.CertificationRequest, error)
	// UpdateStatus sets the status of the request with the given id and returns
	// the updated record.
	UpdateStatus(ctx context.Context, id int, status domain.Status) (*domain.CertificationRequest, error)
	Count() int
}
