package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the scrape path
const DefaultEndpoint = "/metrics"

// Server manages the Prometheus metrics HTTP server
type Server struct {
	registry *prometheus.Registry
	mux      *http.ServeMux
	endpoint string
}

// NewServer registers runtime collectors plus extra and mounts the scrape handler
func NewServer(extra ...prometheus.Collector) (*Server, error) {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extra {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	mux := http.NewServeMux()
	mux.Handle(DefaultEndpoint, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &Server{registry: registry, mux: mux, endpoint: DefaultEndpoint}, nil
}

// Registry exposes the underlying registry for gathering in tests and tools
func (m *Server) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler
func (m *Server) Handler() http.Handler {
	return m.mux
}

// ListenAndServe serves metrics on addr until ctx is cancelled
func (m *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logrus.Infof("metrics: serving prometheus metrics at (%s%s)", addr, m.endpoint)

	select {
	case <-ctx.Done():
		logrus.Info("metrics: shutting down metrics server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics listen %s: %w", addr, err)
	}
}
