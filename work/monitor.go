package work

import (
	"fmt"
	"math"
	"time"

	"github.com/gertjaap/genesis-go/logging"
)

const (
	checkpointInterval = 1_000_000
	nonceSpace         = float64(1 << 32)
	minElapsed         = time.Nanosecond
)

// Progress is reported every checkpointInterval nonces.
type Progress struct {
	Nonce uint32
	// Hashrate in hashes per second over the last checkpoint interval.
	Hashrate float64
	// Estimate is how long the whole 32-bit nonce space takes at Hashrate.
	Estimate time.Duration
	At       time.Time
}

type MonitorOption func(*HashrateMonitor)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MonitorOption {
	return func(m *HashrateMonitor) {
		m.now = now
	}
}

// HashrateMonitor measures the search speed. It only reads the nonce it is given.
type HashrateMonitor struct {
	now        func() time.Time
	checkpoint time.Time
	reporters  []ProgressReporter
}

func NewHashrateMonitor(reporters []ProgressReporter, opts ...MonitorOption) *HashrateMonitor {
	m := &HashrateMonitor{
		now:       time.Now,
		reporters: reporters,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.checkpoint = m.now()
	return m
}

// Checkpoint is the time of the last report, or of construction.
func (m *HashrateMonitor) Checkpoint() time.Time {
	return m.checkpoint
}

// Observe reports progress when nonce%1000000 == 999999 and tells whether it did.
func (m *HashrateMonitor) Observe(nonce uint32) bool {
	if nonce%checkpointInterval != checkpointInterval-1 {
		return false
	}

	now := m.now()
	elapsed := now.Sub(m.checkpoint)
	if elapsed < minElapsed {
		elapsed = minElapsed
	}
	hashrate := checkpointInterval / elapsed.Seconds()

	p := Progress{
		Nonce:    nonce,
		Hashrate: hashrate,
		Estimate: estimate(hashrate),
		At:       now,
	}
	for _, r := range m.reporters {
		r.ReportProgress(p)
	}
	m.checkpoint = now
	return true
}

func estimate(hashrate float64) time.Duration {
	seconds := nonceSpace / hashrate
	if seconds >= float64(math.MaxInt64)/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}

// ConsoleReporter keeps a single progress line updated on the terminal.
type ConsoleReporter struct{}

func (ConsoleReporter) ReportProgress(p Progress) {
	logging.Progressf("%d hash/s, estimate: %.1f h", int64(math.Round(p.Hashrate)), p.Estimate.Hours())
}

func FormatHashrate(hr float64) string {
	switch {
	case hr > 1e9:
		return fmt.Sprintf("%.2f GH/s", hr/1e9)
	case hr > 1e6:
		return fmt.Sprintf("%.2f MH/s", hr/1e6)
	case hr > 1e3:
		return fmt.Sprintf("%.2f kH/s", hr/1e3)
	default:
		return fmt.Sprintf("%.2f H/s", hr)
	}
}

func FormatDuration(d time.Duration) string {
	sec := d.Seconds()
	switch {
	case sec > 86400:
		return fmt.Sprintf("%.2f days", sec/86400)
	case sec > 3600:
		return fmt.Sprintf("%.2f hours", sec/3600)
	case sec > 60:
		return fmt.Sprintf("%.2f minutes", sec/60)
	default:
		return fmt.Sprintf("%.2f seconds", sec)
	}
}
