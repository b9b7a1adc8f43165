// Package metrics defines and registers all custom Prometheus metrics
// for the ecommerce API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecommerce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "empty_username", "not_found", or "bad_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsBoughtTotal counts units sold through the buy endpoint.
// Label:
//   - sku: the product SKU
var ProductsBoughtTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_bought_total",
		Help:      "Total number of units sold, by SKU.",
	},
	[]string{"sku"},
)

// ProductCacheTotal counts product cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (loaded from MongoDB)
var ProductCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_total",
		Help:      "Total number of product cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
