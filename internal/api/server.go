package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/docnav/internal/catalog"
	"github.com/dgallion1/docnav/internal/config"
	"github.com/dgallion1/docnav/internal/metrics"
	"github.com/dgallion1/docnav/internal/navigation"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for docnav.
type Server struct {
	router    chi.Router
	catalog   *catalog.Catalog
	navigator navigation.Navigator
	metrics   *metrics.Recorder
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cat *catalog.Catalog, nav navigation.Navigator, rec *metrics.Recorder, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		catalog:   cat,
		navigator: nav,
		metrics:   rec,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Get("/docs/overview", s.handleOverview)
	r.Get("/docs/*", s.handleOverview)
	r.Post("/docs/switch", s.handleSwitchVersion)

	r.Route("/api", func(r chi.Router) {
		r.Get("/rewrite", s.handleRewrite)
		r.Get("/versions", s.handleVersions)
		r.Get("/overview", s.handleOverviewJSON)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
