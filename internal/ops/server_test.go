package ops_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"library/internal/config"
	"library/internal/ops"

	// register the lending instruments on the default registerer
	_ "library/pkg/metrics"
)

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Ops.Addr = ":9191"
	cfg.Ops.MetricsPath = "/metrics"
	cfg.Ops.ReadHeaderTimeout = 10 * time.Second

	opts := ops.NewOptions(cfg)
	require.Equal(t, ":9191", opts.Addr)
	require.Equal(t, "/metrics", opts.MetricsPath)
	require.Equal(t, 10*time.Second, opts.ReadHeaderTimeout)
}

func TestServerServesMetrics(t *testing.T) {
	srv := ops.NewServer(ops.Options{Addr: ":0", MetricsPath: "/metrics"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "library_lending_borrows_total")
}

func TestServerServesPprofIndex(t *testing.T) {
	srv := ops.NewServer(ops.Options{Addr: ":0", MetricsPath: "/metrics"})

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
