// Package metrics defines and registers all custom Prometheus metrics for the
// task API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register themselves with the default registry at init time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskapi"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// LoginsTotal counts successful logins.
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "invalid_credentials" (login) or "invalid_token" (bearer auth)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts.",
	},
	[]string{"reason"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts created tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)

// TasksCompletedTotal counts toggle operations that marked a task completed.
var TasksCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_completed_total",
		Help:      "Total number of tasks toggled to completed.",
	},
)
