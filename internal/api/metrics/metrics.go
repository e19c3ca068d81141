// Package metrics defines the custom Prometheus metrics for the certification
// API. It is the single source of truth for metric names, labels, and help
// strings; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "certification"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "missing_fields"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RequestsCreatedTotal counts certification requests created.
var RequestsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of certification requests created.",
	},
)

// TransitionsTotal counts applied status transitions.
// Label:
//   - to: the status the request moved into
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of status transitions applied, by target status.",
	},
	[]string{"to"},
)

// TransitionsRejectedTotal counts refused transitions.
// Label:
//   - reason: "missing_target", "not_found", "forbidden", or "invalid_transition"
var TransitionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_rejected_total",
		Help:      "Total number of status transitions refused, by reason.",
	},
	[]string{"reason"},
)
