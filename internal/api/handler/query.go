package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/certflow/certification-system/internal/core/domain"
	"github.com/certflow/certification-system/internal/core/ports"
)

// parseListFilter converts the stringly-typed query parameters into a typed
// ports.ListFilter at the boundary. Malformed numeric bounds fail fast with a
// 400; an unparsable sortBy is silently ignored, matching the original API.
func parseListFilter(c echo.Context) (ports.ListFilter, error) {
	var filter ports.ListFilter

	if status := c.QueryParam("status"); status != "" {
		for _, s := range strings.Split(status, ",") {
			filter.Statuses = append(filter.Statuses, domain.Status(s))
		}
	}

	filter.EmployeeName = c.QueryParam("employeeName")

	min, err := parseBudgetBound(c.QueryParam("minBudget"), "minBudget")
	if err != nil {
		return ports.ListFilter{}, err
	}
	filter.MinBudget = min

	max, err := parseBudgetBound(c.QueryParam("maxBudget"), "maxBudget")
	if err != nil {
		return ports.ListFilter{}, err
	}
	filter.MaxBudget = max

	filter.Sort = parseSortSpec(c.QueryParam("sortBy"))
	return filter, nil
}

func parseBudgetBound(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return &v, nil
}

// parseSortSpec parses "field:direction". Anything other than exactly two
// non-empty colon-delimited parts yields no sort. A direction of "asc" sorts
// ascending; any other value sorts descending.
func parseSortSpec(raw string) *ports.SortSpec {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil
	}
	return &ports.SortSpec{Field: parts[0], Descending: parts[1] != "asc"}
}
