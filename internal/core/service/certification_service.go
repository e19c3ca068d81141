package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/certflow/certification-system/internal/core/domain"
	"github.com/certflow/certification-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// CertificationService implements request creation, listing, and the status
// workflow engine.
type CertificationService struct {
	repo   ports.CertificationRepository
	logger zerolog.Logger
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewCertificationService(repo ports.CertificationRepository, logger zerolog.Logger) *CertificationService {
	return &CertificationService{repo: repo, logger: logger, now: time.Now}
}

// Create validates the input and appends a new Draft request owned by the
// caller. Checks run in a fixed order and the first failure wins:
// missing field, then non-positive or unparsable budget, then past date.
func (s *CertificationService) Create(ctx context.Context, input ports.CreateRequestInput) (*domain.CertificationRequest, error) {
	if input.Description == "" || input.Budget == "" || input.ExpectedDate == "" {
		return nil, domain.ErrMissingField
	}

	budget, err := strconv.ParseFloat(input.Budget, 64)
	if err != nil || budget <= 0 {
		return nil, domain.ErrInvalidBudget
	}

	expected, err := time.ParseInLocation(dateLayout, input.ExpectedDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: expectedDate must be a valid YYYY-MM-DD date", domain.ErrPastDate)
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if expected.Before(today) {
		return nil, domain.ErrPastDate
	}

	created, err := s.repo.Insert(ctx, &domain.CertificationRequest{
		Description:  input.Description,
		Budget:       budget,
		ExpectedDate: input.ExpectedDate,
		Status:       domain.StatusDraft,
		EmployeeName: input.OwnerEmail,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("id", created.ID).
		Str("employee", created.EmployeeName).
		Float64("budget", created.Budget).
		Msg("certification request created")

	return created, nil
}

// List returns a filtered, sorted snapshot of the collection.
func (s *CertificationService) List(ctx context.Context, filter ports.ListFilter) ([]domain.CertificationRequest, error) {
	return s.repo.List(ctx, filter)
}

// Transition moves a request to a target status, enforcing the transition
// authorization policy and the state machine. Failures are checked in a fixed
// order: missing target, unknown request, insufficient role, invalid
// transition. The role policy runs before the transition-table check, so an
// employee attempting to approve gets a 403 even when the transition itself
// would be structurally invalid.
func (s *CertificationService) Transition(ctx context.Context, input ports.TransitionInput) (*domain.CertificationRequest, error) {
	if input.Target == "" {
		return nil, domain.ErrMissingTarget
	}

	req, err := s.repo.FindByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	if !domain.RoleCanSet(input.Actor.Role, input.Target) {
		return nil, domain.ErrForbidden
	}

	if !req.Status.CanTransitionTo(input.Target) {
		return nil, fmt.Errorf("%w: cannot transition from %s to %s", domain.ErrInvalidTransition, req.Status, input.Target)
	}

	updated, err := s.repo.UpdateStatus(ctx, input.RequestID, input.Target)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("id", updated.ID).
		Str("from", string(req.Status)).
		Str("to", string(updated.Status)).
		Str("actor", input.Actor.Email).
		Msg("status transition applied")

	return updated, nil
}
