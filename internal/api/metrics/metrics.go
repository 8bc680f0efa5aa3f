// Package metrics defines and registers all custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default registry at package init via
// promauto; the HTTP layer only needs to expose the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// --- Auth metrics ---

// LoginsTotal counts login attempts that passed the credential check stage.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// OTPIssuedTotal counts verification codes issued.
var OTPIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_issued_total",
		Help:      "Total number of verification codes issued.",
	},
)

// OTPVerificationsTotal counts verification attempts.
// Label:
//   - result: "success", "no_challenge", "expired", "email_mismatch", "invalid_code"
var OTPVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "otp_verifications_total",
		Help:      "Total number of code verification attempts, by result.",
	},
	[]string{"result"},
)

// --- Inventory metrics ---

// ItemsWritesTotal counts item mutations.
// Label:
//   - operation: "create", "update", or "delete"
var ItemsWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_writes_total",
		Help:      "Total number of inventory item writes, by operation.",
	},
	[]string{"operation"},
)

// --- Alert pipeline metrics ---

// AlertsNotifiedTotal counts stock alert notifications.
// Labels:
//   - status: "low_stock" or "out_of_stock"
//   - result: "sent" or "error"
var AlertsNotifiedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_notified_total",
		Help:      "Total number of stock alert notifications, by status and result.",
	},
	[]string{"status", "result"},
)

// AlertsDedupTotal counts deduplication decisions for alert notifications.
// Label:
//   - result: "hit" (duplicate, suppressed) or "miss" (new alert, notified)
var AlertsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_dedup_total",
		Help:      "Total number of alert dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// AlertsQueueDepth tracks the current number of stock events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AlertsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alerts_queue_depth",
		Help:      "Current number of stock events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
