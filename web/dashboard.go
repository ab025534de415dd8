package web

import (
	"encoding/json"
	"errors"
	"math"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gertjaap/genesis-go/logging"
	"github.com/gertjaap/genesis-go/metrics"
)

// StatusSource is satisfied by *metrics.Search.
type StatusSource interface {
	Status() metrics.Status
}

type status struct {
	metrics.Status
	GoRoutines int    `json:"go_routines"`
	Elapsed    string `json:"elapsed"`
	// NonceSpace is the share of the 32-bit nonce space searched, in percent.
	NonceSpace float64 `json:"nonce_space_percent"`
}

// NewDashboard returns a trivial JSON status page at "/".
func NewDashboard(src StatusSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		st := src.Status()
		s := status{
			Status:     st,
			GoRoutines: runtime.NumGoroutine(),
			Elapsed:    st.UpdatedAt.Sub(st.StartedAt).Round(time.Second).String(),
			NonceSpace: nonceSpacePercent(st),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s)
	})
}

func nonceSpacePercent(st metrics.Status) float64 {
	done := float64(st.Nonce-st.StartNonce) / float64(1<<32) * 100
	return math.Round(done*1e4) / 1e4
}

// NewMux serves the dashboard at "/" and Prometheus metrics at "/metrics".
func NewMux(src StatusSource) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", NewDashboard(src))
	return mux
}

// Serve binds addr before returning, so a busy port is reported to the
// caller, then serves h in the background. The returned server's Addr is the
// bound address.
func Serve(addr string, h http.Handler) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Addr:              ln.Addr().String(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Errorf("status server stopped: %v", err)
		}
	}()
	logging.Infof("Status page on http://%s/ (metrics on /metrics)", srv.Addr)
	return srv, nil
}
