package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/certflow/certification-system/internal/api/metrics"
	"github.com/certflow/certification-system/internal/api/middleware"
	"github.com/certflow/certification-system/internal/core/domain"
	"github.com/certflow/certification-system/internal/core/ports"
)

// CertificationHandler handles HTTP requests for certification requests.
type CertificationHandler struct {
	service ports.CertificationService
}

func NewCertificationHandler(service ports.CertificationService) *CertificationHandler {
	return &CertificationHandler{service: service}
}

// List handles GET /certifications.
//
// @Summary      List certification requests
// @Tags         certifications
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Comma-separated status names"
// @Param        employeeName  query     string  false  "Case-insensitive owner email"
// @Param        minBudget     query     number  false  "Inclusive lower budget bound"
// @Param        maxBudget     query     number  false  "Inclusive upper budget bound"
// @Param        sortBy        query     string  false  "field:direction, e.g. budget:desc"
// @Success      200           {array}   domain.CertificationRequest
// @Failure      400           {object}  errorResponse
// @Failure      401           {object}  errorResponse
// @Router       /certifications [get]
func (h *CertificationHandler) List(c echo.Context) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	requests, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Create handles POST /certifications.
//
// @Summary      Create a certification request
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCertificationRequest  true  "Request details"
// @Success      201   {object}  domain.CertificationRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /certifications [post]
func (h *CertificationHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domain.ErrMissingToken
	}

	var req createCertificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateRequestInput{
		Description:  req.Description,
		Budget:       req.Budget.String(),
		ExpectedDate: req.ExpectedDate,
		OwnerEmail:   user.Email,
	})
	if err != nil {
		return err
	}

	metrics.RequestsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// UpdateStatus handles PATCH /certifications/:id/status.
//
// @Summary      Transition a request's status
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Request id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  domain.CertificationRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /certifications/{id}/status [patch]
func (h *CertificationHandler) UpdateStatus(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domain.ErrMissingToken
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrRequestNotFound
	}

	updated, err := h.service.Transition(c.Request().Context(), ports.TransitionInput{
		RequestID: id,
		Target:    domain.Status(req.Status),
		Actor:     user,
	})
	if err != nil {
		countTransitionFailure(err)
		return err
	}

	metrics.TransitionsTotal.WithLabelValues(string(updated.Status)).Inc()
	return c.JSON(http.StatusOK, updated)
}

// countTransitionFailure maps a refused transition to its metrics reason.
func countTransitionFailure(err error) {
	var reason string
	switch {
	case errors.Is(err, domain.ErrMissingTarget):
		reason = "missing_target"
	case errors.Is(err, domain.ErrRequestNotFound):
		reason = "not_found"
	case errors.Is(err, domain.ErrForbidden):
		reason = "forbidden"
	case errors.Is(err, domain.ErrInvalidTransition):
		reason = "invalid_transition"
	default:
		return
	}
	metrics.TransitionsRejectedTotal.WithLabelValues(reason).Inc()
}
