// Package web serves the demos over HTTP: a landing page, a JSON API and
// Prometheus metrics. Requests do not share state, except for the theme
// preference.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ezrec/abacus/config"
	"github.com/ezrec/abacus/theme"
	"github.com/ezrec/abacus/translate"
)

var f = translate.From

var ErrNoStore = errors.New(f("theme store is not configured"))

//go:embed static/index.html
var static embed.FS

var landing = template.Must(template.ParseFS(static, "static/index.html"))

const SHUTDOWN_TIMEOUT = 5 * time.Second

// Server of the demo API.
type Server struct {
	Config *config.Config
	Pref   *theme.Preference // Optional.
	Log    *zap.Logger
	Now    func() time.Time

	metrics *metrics
}

// New creates a server. log may be nil.
func New(cfg *config.Config, pref *theme.Preference, log *zap.Logger) (srv *Server) {
	if log == nil {
		log = zap.NewNop()
	}

	srv = &Server{
		Config:  cfg,
		Pref:    pref,
		Log:     log,
		Now:     time.Now,
		metrics: newMetrics(),
	}
	return
}

// Registry holds the server's metrics.
func (srv *Server) Registry() *prometheus.Registry {
	return srv.metrics.registry
}

// Handler routes every endpoint.
func (srv *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logger(srv.Log))
	router.Use(srv.metrics.middleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: srv.Config.Server.Origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/", srv.index)
	router.Get("/health", srv.health)
	router.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(srv.metrics.registry, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Post("/calc", srv.calc)
		r.Post("/abacus/decimal", srv.decimal)
		r.Post("/classifier", srv.classify)
		r.Get("/theme", srv.getTheme)
		r.Post("/theme/toggle", srv.toggleTheme)
	})

	return router
}

// ListenAndServe until ctx is done, then shut down gracefully.
func (srv *Server) ListenAndServe(ctx context.Context) (err error) {
	hs := &http.Server{
		Addr:              srv.Config.Server.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	failed := make(chan error, 1)
	go func() {
		srv.Log.Info("listening", zap.String("addr", hs.Addr))
		failed <- hs.ListenAndServe()
	}()

	select {
	case err = <-failed:
		return
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	err = hs.Shutdown(shutdown)
	if err == nil {
		srv.Log.Info("stopped")
	}
	return
}

func (srv *Server) currentTheme() theme.Theme {
	if srv.Pref == nil {
		return theme.DEFAULT
	}

	t, err := srv.Pref.Load()
	if err != nil {
		srv.Log.Warn("theme", zap.Error(err))
		return theme.DEFAULT
	}
	return t
}

func (srv *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := landing.Execute(w, struct {
		Theme theme.Theme
		Bits  int
	}{
		Theme: srv.currentTheme(),
		Bits:  srv.Config.Bits,
	})
	if err != nil {
		srv.Log.Error("landing page", zap.Error(err))
	}
}

func (srv *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
