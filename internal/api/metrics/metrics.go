// Package metrics defines and registers all custom Prometheus metrics for the
// account service. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import via
// promauto and exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shs"

// ── Login & session metrics ───────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of username/password login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsRevokedTotal counts revoked sessions.
// Label:
//   - reason: "logout" or "account_deleted"
var SessionsRevokedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked, by reason.",
	},
	[]string{"reason"},
)

// SessionPurgesTotal counts background purges run after an account deletion.
// Label:
//   - result: "ok", "error" or "dropped"
var SessionPurgesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_purges_total",
		Help:      "Total number of per-account session purges, by result.",
	},
	[]string{"result"},
)

// ── API metrics ───────────────────────────────────────────────────────────────

// APIErrorsTotal counts error responses rendered by the HTTP error handler.
// Labels:
//   - error_id: the error_id returned to the client
//   - status: the HTTP status code
var APIErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total number of API error responses, by error_id and status.",
	},
	[]string{"error_id", "status"},
)

// AuthzDenialsTotal counts permission-denied responses.
// Label:
//   - route: the matched route path (e.g. "/accounts/:id")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests rejected by the authorization engine, by route.",
	},
	[]string{"route"},
)
