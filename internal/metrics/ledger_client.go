// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/registrarlabs/credchain-backend/internal/model"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "credchain",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger RPC and contract operations.",
	}, []string{"operation", "network", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credchain",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger RPC and contract operations.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"operation", "network", "status"})
)

// LedgerClient tracks metrics for ledger operations. Submission operations
// include the confirmation wait, hence the wide histogram buckets.
type LedgerClient struct {
	network model.Network
}

// NewLedgerClient constructs a metrics collector for ledger calls.
func NewLedgerClient(network model.Network) *LedgerClient {
	if network == "" {
		network = "unknown"
	}
	return &LedgerClient{network: network}
}

// Observe records a single ledger operation outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	ledgerRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
