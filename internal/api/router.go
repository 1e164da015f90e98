package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rankworks/criterium/internal/config"
	"github.com/rankworks/criterium/internal/mailer"
	"github.com/rankworks/criterium/internal/observability"
	"github.com/rankworks/criterium/internal/report"
)

func NewRouter(results *report.Store, mail mailer.Client, metrics *observability.Metrics, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RequestsPerMinute))

	validate := NewValidateHandler()
	analyze := NewAnalyzeHandler(results, mail, metrics, logger)
	download := NewDownloadHandler(results, metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/validate", validate.Validate)
		r.With(MaxUploadBytes(cfg.Server.MaxUploadBytes)).Post("/analyze", analyze.Analyze)
		r.Get("/download/{filename}", download.Download)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
