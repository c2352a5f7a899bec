// Package metrics defines the storefront's Prometheus counters. HTTP request
// metrics come from the echoprometheus middleware; these cover domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ProductChangesTotal counts admin catalog mutations.
// Label action: "created", "updated" or "deleted".
var ProductChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_changes_total",
		Help:      "Total number of catalog mutations made from the admin console.",
	},
	[]string{"action"},
)

// CustomOrdersTotal counts accepted custom-order submissions.
// Label replayed: "true" when an Idempotency-Key matched an earlier order.
var CustomOrdersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "custom_orders_total",
		Help:      "Total number of custom-order submissions accepted.",
	},
	[]string{"replayed"},
)

// OrderUpdatesTotal counts admin order patches by resulting status.
var OrderUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_updates_total",
		Help:      "Total number of custom-order updates, by resulting status.",
	},
	[]string{"status"},
)

var ContactsReceivedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_received_total",
		Help:      "Total number of contact-form submissions stored.",
	},
)

// AdminLoginsTotal counts admin login attempts.
// Label result: "success" or "failure".
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)
