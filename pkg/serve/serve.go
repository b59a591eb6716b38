// Package serve exposes a site over HTTP, rendering pages per request.
//
// Published sites are static files and need no server from this module;
// serve exists for embedding a site into a Go process, where pages can
// reflect live data:
//
//	s := site.New()
//	s.MustRegister("/", home)
//
//	handler := serve.New(s, serve.Config{Metrics: true})
//	http.ListenAndServe(":8080", handler)
//
// Every registered page becomes a GET route. Rendering happens on each
// request, so changes visible to the page functions show up without a
// rebuild.
package serve

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/markout-dev/markout/pkg/render"
	"github.com/markout-dev/markout/pkg/site"
)

// Config configures a Handler.
type Config struct {
	// Logger receives request and render logs. Default: slog.Default().
	Logger *slog.Logger

	// Static is a directory served at StaticPrefix. Empty disables
	// static serving.
	Static string

	// StaticPrefix is the URL prefix for static files.
	// Default: "/assets/".
	StaticPrefix string

	// NotFound renders the 404 page. Default: plain-text not found.
	NotFound site.PageFunc

	// Metrics enables Prometheus instrumentation and the /metrics
	// endpoint.
	Metrics bool

	// MetricsOptions customize the metric registration, for example
	// WithRegistry in tests.
	MetricsOptions []MetricsOption

	// Tracing enables an OpenTelemetry span per page render. The
	// tracer comes from the global provider; configure that in main().
	Tracing bool

	// TracerName overrides the tracer name. Default: "markout".
	TracerName string
}

// Handler serves a site's pages. It implements http.Handler.
type Handler struct {
	site    *site.Site
	logger  *slog.Logger
	mux     *chi.Mux
	metrics *metrics
	tracer  trace.Tracer
}

// New builds a handler with one GET route per page registered on s.
// Pages registered after New are not routed.
func New(s *site.Site, cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		site:   s,
		logger: logger,
		mux:    chi.NewRouter(),
		tracer: tracerFor(cfg),
	}
	if cfg.Metrics {
		h.metrics = enableMetrics(cfg.MetricsOptions...)
		h.mux.Handle("/metrics", metricsHandler(cfg.MetricsOptions...))
	}

	for _, path := range s.Paths() {
		h.mux.Get(path, h.page(path))
	}

	if cfg.Static != "" {
		prefix := cfg.StaticPrefix
		if prefix == "" {
			prefix = "/assets/"
		}
		if !strings.HasPrefix(prefix, "/") {
			prefix = "/" + prefix
		}
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		h.mux.Handle(prefix+"*", staticHandler(prefix, cfg.Static))
		registerStaticAssets(s, cfg.Static, prefix)
	}

	h.mux.NotFound(h.notFound(cfg.NotFound))

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// page returns the handler for one registered path.
func (h *Handler) page(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var span trace.Span
		if h.tracer != nil {
			_, span = h.tracer.Start(r.Context(), "markout "+path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attribute.String("markout.path", path)),
			)
			defer span.End()
		}

		html, err := h.site.Render(path)

		if h.metrics != nil {
			h.metrics.renderDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
		}

		if err != nil {
			if h.metrics != nil {
				h.metrics.pagesRendered.WithLabelValues(path, "error").Inc()
				h.metrics.renderErrors.WithLabelValues(path).Inc()
			}
			if span != nil {
				recordSpan(span, http.StatusInternalServerError, 0, err)
			}
			h.logger.Error("page render failed", "path", path, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		if h.metrics != nil {
			h.metrics.pagesRendered.WithLabelValues(path, "success").Inc()
			h.metrics.renderBytes.Observe(float64(len(html)))
		}
		if span != nil {
			recordSpan(span, http.StatusOK, len(html), nil)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)

		h.logger.Debug("page served",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(start),
		)
	}
}

// notFound returns the 404 handler, rendering fn when provided.
func (h *Handler) notFound(fn site.PageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if fn == nil {
			http.NotFound(w, r)
			return
		}

		var buf bytes.Buffer
		if err := render.Render(&buf, fn()); err != nil {
			h.logger.Error("not-found page render failed", "error", err)
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		buf.WriteTo(w)
	}
}

// registerStaticAssets maps each static file to its served URL in the
// site's manifest, so site.Asset("app.css") resolves to
// "/assets/app.css" when files are served straight from disk. Names
// already in the manifest win; a build manifest loaded by the caller
// stays authoritative.
func registerStaticAssets(s *site.Site, dir, prefix string) {
	m := s.Manifest()
	mount := strings.Trim(prefix, "/")

	filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return nil
		}
		name := filepath.ToSlash(rel)
		if !m.Has(name) {
			m.Set(name, path.Join(mount, name))
		}
		return nil
	})
}

// metricsHandler serves the metrics endpoint. A custom registry that is
// also a Gatherer (prometheus.NewRegistry) is served directly.
func metricsHandler(opts ...MetricsOption) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if g, ok := config.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}
