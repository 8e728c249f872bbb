// Package metrics defines and registers all custom Prometheus metrics for the
// user directory. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation; the /metrics endpoint exposes them next to the HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_directory"

// ── Fetch metrics ─────────────────────────────────────────────────────────────

// UsersFetchTotal counts completed users.json fetches.
// Label:
//   - result: "success" or "error"
var UsersFetchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_fetch_total",
		Help:      "Total number of users.json fetches, by result.",
	},
	[]string{"result"},
)

// UsersFetchDuration measures a single GET against users.json.
var UsersFetchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "users_fetch_duration_seconds",
		Help:      "Duration of the users.json request, including body decoding.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// ActionsDispatchedTotal counts actions handed to the store.
// Label:
//   - type: the action type (e.g. "RECEIVED_USERS", "@@INIT")
var ActionsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_actions_dispatched_total",
		Help:      "Total number of actions dispatched into the store, by type.",
	},
	[]string{"type"},
)

// UsersInState is the number of users held by the latest store snapshot.
var UsersInState = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_users",
		Help:      "Number of users in the current store snapshot.",
	},
)

// ── Render metrics ────────────────────────────────────────────────────────────

// RendersTotal counts container renders.
// Label:
//   - view: "user_list" or "placeholder"
var RendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "renders_total",
		Help:      "Total number of container renders, by the view that was chosen.",
	},
	[]string{"view"},
)
