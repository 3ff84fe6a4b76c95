// Package metrics holds the prometheus collectors shared by the ledger services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mdf_ledger"

// Operation results used as the "result" label
const (
	ResultSuccess    = "success"
	ResultValidation = "validation"
	ResultNotFound   = "not_found"
	ResultConflict   = "conflict"
	ResultExhausted  = "resource_exhausted"
	ResultError      = "error"
)

var (
	// LedgerOperations counts ledger operations by operation name and result
	LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total ledger operations by operation and result",
	}, []string{"operation", "result"})

	// LedgerOperationDuration observes ledger operation latency
	LedgerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Ledger operation duration",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"operation"})

	// AuditWrites counts audit records by action type and result ("success" or "error")
	AuditWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_writes_total",
		Help:      "Audit log writes by action type and result",
	}, []string{"action_type", "result"})

	// MigrationsApplied counts migration files applied by this process
	MigrationsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "migrations_applied_total",
		Help:      "Migration files applied",
	})

	// MigrationFailures counts migration files that failed and were rolled back
	MigrationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "migration_failures_total",
		Help:      "Migration files that failed and were rolled back",
	})

	// DriftedContracts is the number of Channel contracts whose allocations did not match
	// the committed total in the latest sweep, labelled by "over" or "under"
	DriftedContracts = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "drifted_contracts",
		Help:      "Channel contracts whose allocations do not match the committed total",
	}, []string{"direction"})

	// SweepDuration observes how long one drift sweep takes
	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Allocation drift sweep duration",
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
	})

	// HTTPRequests counts REST requests by method, route and status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "REST requests by method, route and status",
	}, []string{"method", "route", "status"})
)
