package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ipfsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "credchain",
		Subsystem: "ipfs_client",
		Name:      "operations_total",
		Help:      "Count of content store operations.",
	}, []string{"operation", "status"})
	ipfsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credchain",
		Subsystem: "ipfs_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of content store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// IPFSClient tracks metrics for content store operations.
type IPFSClient struct{}

// NewIPFSClient creates an IPFSClient metrics collector.
func NewIPFSClient() *IPFSClient {
	return &IPFSClient{}
}

// Observe records a single content store operation outcome and duration.
func (m IPFSClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ipfsRequestsTotal.WithLabelValues(operation, status).Inc()
	ipfsRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
