package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rankworks/criterium/internal/observability"
	"github.com/rankworks/criterium/internal/report"
)

type DownloadHandler struct {
	results *report.Store
	metrics *observability.Metrics
}

func NewDownloadHandler(results *report.Store, metrics *observability.Metrics) *DownloadHandler {
	return &DownloadHandler{results: results, metrics: metrics}
}

// Download serves a previously produced result file.
// GET /api/v1/download/{filename}
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	data, err := h.results.Read(filename)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "File not found"})
		return
	}

	h.metrics.DownloadsTotal.Inc()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
