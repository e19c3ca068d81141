package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/certflow/certification-system/internal/core/domain"
	"github.com/certflow/certification-system/internal/core/ports"
)

// CertificationStore is the volatile certification-request store. The whole
// collection lives in process memory and resets on restart. A single mutex
// scopes every operation; List works on a snapshot taken under the lock so
// callers never observe concurrent mutation.
type CertificationStore struct {
	mu       sync.Mutex
	requests []domain.CertificationRequest
	byID     map[int]int // id → index into requests
	nextID   int
}

// NewCertificationStore creates a store pre-populated with the given
// fixtures. The id counter starts one past the highest seeded id.
func NewCertificationStore(seed []domain.CertificationRequest) *CertificationStore {
	s := &CertificationStore{
		requests: make([]domain.CertificationRequest, 0, len(seed)),
		byID:     make(map[int]int, len(seed)),
		nextID:   1,
	}
	for _, r := range seed {
		s.byID[r.ID] = len(s.requests)
		s.requests = append(s.requests, r)
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	return s
}

func (s *CertificationStore) Insert(_ context.Context, req *domain.CertificationRequest) (*domain.CertificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *req
	stored.ID = s.nextID
	s.nextID++

	s.byID[stored.ID] = len(s.requests)
	s.requests = append(s.requests, stored)

	clone := stored
	return &clone, nil
}

func (s *CertificationStore) FindByID(_ context.Context, id int) (*domain.CertificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	clone := s.requests[idx]
	return &clone, nil
}

func (s *CertificationStore) UpdateStatus(_ context.Context, id int, status domain.Status) (*domain.CertificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	s.requests[idx].Status = status
	clone := s.requests[idx]
	return &clone, nil
}

// List filters and sorts a snapshot of the collection. Filters are
// conjunctive; with no sort spec (or one naming an unknown field) the result
// keeps natural insertion order.
func (s *CertificationStore) List(_ context.Context, filter ports.ListFilter) ([]domain.CertificationRequest, error) {
	snapshot := s.snapshot()

	matched := make([]domain.CertificationRequest, 0, len(snapshot))
	for _, r := range snapshot {
		if !matches(r, filter) {
			continue
		}
		matched = append(matched, r)
	}

	if filter.Sort != nil {
		applySort(matched, *filter.Sort)
	}
	return matched, nil
}

func (s *CertificationStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *CertificationStore) snapshot() []domain.CertificationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CertificationRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func matches(r domain.CertificationRequest, f ports.ListFilter) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, st := range f.Statuses {
			if r.Status == st {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.EmployeeName != "" && !strings.EqualFold(r.EmployeeName, f.EmployeeName) {
		return false
	}
	if f.MinBudget != nil && r.Budget < *f.MinBudget {
		return false
	}
	if f.MaxBudget != nil && r.Budget > *f.MaxBudget {
		return false
	}
	return true
}

// applySort orders requests by a single field. Numeric fields compare
// numerically, everything else lexically. An unknown field leaves the order
// untouched; the sort is stable either way.
func applySort(requests []domain.CertificationRequest, spec ports.SortSpec) {
	less, ok := lessFunc(spec.Field)
	if !ok {
		return
	}
	sort.SliceStable(requests, func(i, j int) bool {
		if spec.Descending {
			return less(requests[j], requests[i])
		}
		return less(requests[i], requests[j])
	})
}

func lessFunc(field string) (func(a, b domain.CertificationRequest) bool, bool) {
	switch field {
	case "id":
		return func(a, b domain.CertificationRequest) bool { return a.ID < b.ID }, true
	case "budget":
		return func(a, b domain.CertificationRequest) bool { return a.Budget < b.Budget }, true
	case "description":
		return func(a, b domain.CertificationRequest) bool { return a.Description < b.Description }, true
	case "expectedDate":
		return func(a, b domain.CertificationRequest) bool { return a.ExpectedDate < b.ExpectedDate }, true
	case "status":
		return func(a, b domain.CertificationRequest) bool { return a.Status < b.Status }, true
	case "employeeName":
		return func(a, b domain.CertificationRequest) bool { return a.EmployeeName < b.EmployeeName }, true
	}
	return nil, false
}
