// Package metrics defines the Prometheus instruments for the lending
// lifecycle. They are registered on the default registerer and exposed by the
// ops HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Borrows counts successful borrow operations.
	Borrows = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "library",
		Subsystem: "lending",
		Name:      "borrows_total",
		Help:      "Number of successful borrow operations.",
	})

	// Returns counts successful return operations.
	Returns = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "library",
		Subsystem: "lending",
		Name:      "returns_total",
		Help:      "Number of successful return operations.",
	})

	// OverdueReturns counts returns that came back past their due time.
	OverdueReturns = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "library",
		Subsystem: "lending",
		Name:      "overdue_returns_total",
		Help:      "Number of returns that were overdue and incurred a fine.",
	})

	// FinesAssessed accumulates the total fine amount assessed at return time.
	FinesAssessed = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "library",
		Subsystem: "lending",
		Name:      "fines_assessed_total",
		Help:      "Total currency amount of fines assessed.",
	})

	// FinePayments accumulates the total fine amount paid by users.
	FinePayments = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "library",
		Subsystem: "lending",
		Name:      "fine_payments_total",
		Help:      "Total currency amount of fines paid.",
	})
)
