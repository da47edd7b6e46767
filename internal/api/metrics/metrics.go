// Package metrics defines and registers all custom Prometheus metrics for the
// task management API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via promauto
// against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskmgmt"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure" (all failure causes are collapsed, same
//     as the HTTP response)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "success", "conflict", or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts requests rejected by the role gate.
// Label:
//   - route: the route pattern that denied access
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected with 403 by role checks.",
	},
	[]string{"route"},
)

// TasksCreatedTotal counts newly created tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)
