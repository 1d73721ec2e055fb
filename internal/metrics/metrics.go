// Package metrics exposes the Prometheus instrumentation for the calculator
// endpoints.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalcRequests counts calculator invocations by tool and outcome
	// (ok, rejected, bad_request).
	CalcRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conduit_calc_requests_total",
			Help: "Total number of calculator requests",
		},
		[]string{"tool", "outcome"},
	)

	// ReportsGenerated counts PDF reports rendered.
	ReportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conduit_reports_generated_total",
			Help: "Total number of PDF reports generated",
		},
	)

	// ImportRows counts schedule rows seen by the Excel importer.
	ImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conduit_import_rows_total",
			Help: "Total number of imported schedule rows",
		},
		[]string{"outcome"},
	)
)
