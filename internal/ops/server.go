// Package ops exposes the operational HTTP server: Prometheus metrics and
// pprof profiling endpoints. It carries no domain functionality and runs
// alongside the console shell when enabled.
package ops

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"library/internal/config"
)

// Options holds configuration for the ops HTTP server.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":9090".
	Addr string
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application
// configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Ops.Addr,
		MetricsPath:       cfg.Ops.MetricsPath,
		ReadHeaderTimeout: cfg.Ops.ReadHeaderTimeout,
	}
}

// NewServer wires up and returns a configured *http.Server serving the
// metrics endpoint and the pprof handlers.
func NewServer(opts Options) *http.Server {
	mux := http.NewServeMux()

	mux.Handle(opts.MetricsPath, promhttp.Handler())

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           mux,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}
}
