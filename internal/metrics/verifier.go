package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/registrarlabs/credchain-backend/internal/model"
)

var (
	verifyByIDTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "credchain",
		Subsystem: "verifier",
		Name:      "verify_by_id_total",
		Help:      "Count of single-token verifications by validity outcome.",
	}, []string{"network", "outcome"})
	verifyByIDDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credchain",
		Subsystem: "verifier",
		Name:      "verify_by_id_duration_seconds",
		Help:      "Duration of single-token verifications.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "outcome"})

	verifyByWalletTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "credchain",
		Subsystem: "verifier",
		Name:      "verify_by_wallet_total",
		Help:      "Count of wallet enumeration verifications.",
	}, []string{"network", "status"})
	verifyByWalletDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credchain",
		Subsystem: "verifier",
		Name:      "verify_by_wallet_duration_seconds",
		Help:      "Duration of wallet enumeration verifications.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	verifyByWalletResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credchain",
		Subsystem: "verifier",
		Name:      "verify_by_wallet_results",
		Help:      "Number of verification records returned per wallet enumeration.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})
)

// Verifier tracks metrics for the verification workflows.
type Verifier struct {
	network model.Network
}

// NewVerifier constructs a Verifier metrics collector.
func NewVerifier(network model.Network) *Verifier {
	if network == "" {
		network = "unknown"
	}
	return &Verifier{network: network}
}

// ObserveVerifyByID records one single-token verification.
func (m Verifier) ObserveVerifyByID(valid bool, started time.Time) {
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	verifyByIDTotal.WithLabelValues(string(m.network), outcome).Inc()
	verifyByIDDuration.WithLabelValues(string(m.network), outcome).Observe(time.Since(started).Seconds())
}

// ObserveVerifyByWallet records one wallet enumeration outcome.
func (m Verifier) ObserveVerifyByWallet(err error, results int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	verifyByWalletTotal.WithLabelValues(string(m.network), status).Inc()
	verifyByWalletDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	verifyByWalletResults.WithLabelValues(string(m.network)).Observe(float64(results))
}
