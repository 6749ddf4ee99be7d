// Package devserver serves the site during development: live page
// rendering, a metrics endpoint, and file-watch driven browser reload.
package devserver

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-ui/weft/internal/config"
	"github.com/weft-ui/weft/internal/site"
)

// Server is the development HTTP server.
type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
	reload   *Reloader
	tracer   trace.Tracer
	mux      *chi.Mux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithRegistry sets the Prometheus registry, so tests can use an
// isolated one.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// New creates a dev server for the site described by cfg.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		log:      slog.Default(),
		registry: prometheus.NewRegistry(),
		tracer:   otel.Tracer("github.com/weft-ui/weft/internal/devserver"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics = newMetrics(s.registry)
	s.reload = newReloader(s.log, s.metrics)

	s.mux = chi.NewRouter()
	s.mux.Use(s.logRequests)
	s.mux.Get("/healthz", s.handleHealthz)
	s.mux.Get("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP)
	s.mux.Get("/_weft/reload", s.reload.HandleWebSocket)
	s.mux.Get("/*", s.handlePage)
	return s
}

// ServeHTTP makes the server usable under httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, watching source dirs for changes
// and broadcasting reloads.
func (s *Server) Run(ctx context.Context) error {
	watcher, err := NewWatcher(s.cfg.Build.WatchDirs, s.cfg.Build.Ignore, s.log, func(path string) {
		s.log.Info("change detected", "path", path)
		s.reload.NotifyChanged(path)
	})
	if err != nil {
		return err
	}
	defer watcher.Close()
	go watcher.Run(ctx)

	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dev server listening", "addr", s.cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.reload.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}

	page, ok := site.PageByPath(path)
	if !ok {
		s.metrics.pagesServed.WithLabelValues(path, "404").Inc()
		http.NotFound(w, r)
		return
	}

	_, span := s.tracer.Start(r.Context(), "site.RenderPage",
		trace.WithAttributes(
			attribute.String("page.name", page.Name),
			attribute.String("page.path", page.Path),
		))
	defer span.End()

	start := time.Now()
	html, err := site.RenderPage(page)
	s.metrics.renderSeconds.WithLabelValues(page.Path).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		s.metrics.pagesServed.WithLabelValues(page.Path, "500").Inc()
		s.log.Error("page render failed", "page", page.Name, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	// Live-reload client goes just before </body>.
	html = strings.Replace(html, "</body>", reloadScript+"\n</body>", 1)

	s.metrics.pagesServed.WithLabelValues(page.Path, "200").Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// logRequests logs each request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the reload WebSocket upgrade through the logging wrapper.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("devserver: response writer does not support hijacking")
	}
	return h.Hijack()
}
