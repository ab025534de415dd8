// Package metrics exposes the nonce search to Prometheus.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gertjaap/genesis-go/work"
)

var (
	searchCheckpointsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "genesis",
		Subsystem: "search",
		Name:      "checkpoints_total",
		Help:      "Count of hashrate checkpoints reached.",
	}, []string{"algorithm", "network"})

	searchHashesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "genesis",
		Subsystem: "search",
		Name:      "hashes_total",
		Help:      "Count of headers hashed by finished searches.",
	}, []string{"algorithm", "network"})

	searchHashrate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "genesis",
		Subsystem: "search",
		Name:      "hashrate",
		Help:      "Hashes per second over the last checkpoint interval.",
	}, []string{"algorithm", "network"})

	searchNonce = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "genesis",
		Subsystem: "search",
		Name:      "nonce",
		Help:      "Nonce at the last checkpoint, or the winning nonce.",
	}, []string{"algorithm", "network"})

	searchEstimate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "genesis",
		Subsystem: "search",
		Name:      "nonce_space_estimate_seconds",
		Help:      "Time to exhaust the 32-bit nonce space at the current hashrate.",
	}, []string{"algorithm", "network"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "genesis",
		Subsystem: "search",
		Name:      "duration_seconds",
		Help:      "Duration of finished searches.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1s..3d
	}, []string{"algorithm", "network", "status"})
)

// Status is a point-in-time view of the search.
type Status struct {
	Algorithm       string    `json:"algorithm"`
	Network         string    `json:"network,omitempty"`
	StartNonce      uint32    `json:"start_nonce"`
	Nonce           uint32    `json:"nonce"`
	Hashrate        float64   `json:"hashrate_hs"`
	EstimateSeconds float64   `json:"estimate_secs"`
	StartedAt       time.Time `json:"started_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Done            bool      `json:"done"`
	Hash            string    `json:"hash,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// Search records one nonce search. It is a work.ProgressReporter.
type Search struct {
	algorithm string
	network   string
	status    atomic.Pointer[Status]
}

// NewSearch constructs a Search; an empty network is reported as "custom".
func NewSearch(algorithm, network string, startNonce uint32, started time.Time) *Search {
	if network == "" {
		network = "custom"
	}
	s := &Search{algorithm: algorithm, network: network}
	s.status.Store(&Status{
		Algorithm:  algorithm,
		Network:    network,
		StartNonce: startNonce,
		Nonce:      startNonce,
		StartedAt:  started,
		UpdatedAt:  started,
	})
	searchNonce.WithLabelValues(algorithm, network).Set(float64(startNonce))
	return s
}

// ReportProgress records a hashrate checkpoint.
func (s *Search) ReportProgress(p work.Progress) {
	searchCheckpointsTotal.WithLabelValues(s.algorithm, s.network).Inc()
	searchHashrate.WithLabelValues(s.algorithm, s.network).Set(p.Hashrate)
	searchNonce.WithLabelValues(s.algorithm, s.network).Set(float64(p.Nonce))
	searchEstimate.WithLabelValues(s.algorithm, s.network).Set(p.Estimate.Seconds())

	s.update(func(st *Status) {
		st.Nonce = p.Nonce
		st.Hashrate = p.Hashrate
		st.EstimateSeconds = p.Estimate.Seconds()
		st.UpdatedAt = p.At
	})
}

// ObserveResult records how the search ended.
func (s *Search) ObserveResult(out *work.Outcome, err error, finished time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	started := s.Status().StartedAt
	searchDuration.WithLabelValues(s.algorithm, s.network, status).Observe(finished.Sub(started).Seconds())

	s.update(func(st *Status) {
		st.Done = true
		st.UpdatedAt = finished
		if err != nil {
			st.Error = err.Error()
			return
		}
		st.Nonce = out.Nonce
		st.Hash = out.Hash
	})
	if err == nil {
		searchHashesTotal.WithLabelValues(s.algorithm, s.network).Add(float64(out.Hashes))
		searchNonce.WithLabelValues(s.algorithm, s.network).Set(float64(out.Nonce))
	}
}

// Status returns a copy of the latest state.
func (s *Search) Status() Status {
	return *s.status.Load()
}

// update is only called from the search goroutine, so load-modify-store is
// enough.
func (s *Search) update(fn func(*Status)) {
	next := *s.status.Load()
	fn(&next)
	s.status.Store(&next)
}
