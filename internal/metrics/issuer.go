package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/registrarlabs/credchain-backend/internal/model"
)

var (
	issuerWorkflowTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "credchain",
		Subsystem: "issuer",
		Name:      "workflows_total",
		Help:      "Count of completed issuance and revocation workflows.",
	}, []string{"workflow", "network", "status"})
	issuerWorkflowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credchain",
		Subsystem: "issuer",
		Name:      "workflow_duration_seconds",
		Help:      "End-to-end duration of issuance workflows, including the confirmation wait.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"workflow", "network", "status"})
)

// Issuer tracks metrics for the issuance workflow.
type Issuer struct {
	network model.Network
}

// NewIssuer constructs an Issuer metrics collector.
func NewIssuer(network model.Network) *Issuer {
	if network == "" {
		network = "unknown"
	}
	return &Issuer{network: network}
}

// ObserveIssue records one issuance workflow outcome.
func (m Issuer) ObserveIssue(err error, started time.Time) {
	m.observe("issue", err, started)
}

// ObserveRevoke records one revocation workflow outcome.
func (m Issuer) ObserveRevoke(err error, started time.Time) {
	m.observe("revoke", err, started)
}

func (m Issuer) observe(workflow string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	issuerWorkflowTotal.WithLabelValues(workflow, string(m.network), status).Inc()
	issuerWorkflowDuration.WithLabelValues(workflow, string(m.network), status).Observe(time.Since(started).Seconds())
}
