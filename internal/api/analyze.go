package api

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/rankworks/criterium/internal/mailer"
	"github.com/rankworks/criterium/internal/observability"
	"github.com/rankworks/criterium/internal/report"
	"github.com/rankworks/criterium/internal/tabular"
	"github.com/rankworks/criterium/internal/topsis"
)

type AnalyzeHandler struct {
	results *report.Store
	mailer  mailer.Client
	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewAnalyzeHandler(results *report.Store, mail mailer.Client, metrics *observability.Metrics, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{results: results, mailer: mail, metrics: metrics, logger: logger}
}

// RankedEntry is the compact per-alternative view used by the ranking
// display.
type RankedEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
}

type AnalyzeResponse struct {
	Success          bool             `json:"success"`
	Message          string           `json:"message,omitempty"`
	Error            string           `json:"error,omitempty"`
	Results          []RankedEntry    `json:"results,omitempty"`
	FullData         []map[string]any `json:"full_data,omitempty"`
	Columns          []string         `json:"columns,omitempty"`
	DownloadFilename string           `json:"download_filename,omitempty"`
	EmailSent        bool             `json:"email_sent"`
}

// Analyze runs a full TOPSIS analysis over an uploaded file.
// POST /api/v1/analyze (multipart: file, email, weights, impacts)
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, AnalyzeResponse{
				Error: "File too large. Maximum size: " + strconv.FormatInt(maxErr.Limit, 10) + " bytes",
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: "invalid multipart form"})
		return
	}

	email := r.FormValue("email")
	weightsStr := r.FormValue("weights")
	impactsStr := r.FormValue("impacts")
	if email == "" || weightsStr == "" || impactsStr == "" {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: "Missing required fields"})
		return
	}
	if !mailer.ValidAddress(email) {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: "Invalid email format"})
		return
	}

	weights, err := tabular.ParseWeights(weightsStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: "Weights error: " + err.Error()})
		return
	}
	impacts, err := tabular.ParseImpacts(impactsStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: "Impacts error: " + err.Error()})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: "No file uploaded"})
		return
	}
	defer file.Close()

	format, err := tabular.DetectFormat(header.Filename)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: "File type not supported"})
		return
	}

	table, err := tabular.Decode(file, format)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: "Error converting file: " + err.Error()})
		return
	}

	res, err := topsis.Rank(table, weights, impacts)
	if err != nil {
		h.metrics.ValidationFailures.WithLabelValues(validationReason(err)).Inc()
		h.metrics.AnalysesTotal.WithLabelValues(string(format), "rejected").Inc()
		writeJSON(w, http.StatusBadRequest, AnalyzeResponse{Error: err.Error()})
		return
	}

	resultCSV := report.RenderCSV(res)
	filename := report.NewResultName()
	if err := h.results.Save(filename, []byte(resultCSV)); err != nil {
		h.logger.Error("failed to save result file", "error", err)
		writeJSON(w, http.StatusInternalServerError, AnalyzeResponse{Error: "failed to save result"})
		return
	}

	ranked := make([]RankedEntry, len(res.Rows))
	for i, row := range res.Rows {
		ranked[i] = RankedEntry{Name: row.Cells[0], Score: round(row.Score, 4), Rank: row.Rank}
	}

	emailSent := h.sendResult(r, email, table, weights, impactsStr, ranked, filename, resultCSV)

	h.metrics.AnalysesTotal.WithLabelValues(string(format), "success").Inc()
	h.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Success:          true,
		Message:          "Analysis completed successfully!",
		Results:          ranked,
		FullData:         fullData(res),
		Columns:          res.Columns,
		DownloadFilename: filename,
		EmailSent:        emailSent,
	})
}

// sendResult e-mails the summary with the CSV attached. Delivery problems
// are reported in the response and metrics, never as a request failure.
func (h *AnalyzeHandler) sendResult(r *http.Request, email string, table topsis.Table, weights []float64, impactsStr string, ranked []RankedEntry, filename, resultCSV string) bool {
	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}
	entries := make([]mailer.SummaryEntry, len(top))
	for i, e := range top {
		entries[i] = mailer.SummaryEntry{Rank: e.Rank, Name: e.Name, Score: e.Score}
	}

	body, err := mailer.RenderSummary(mailer.Summary{
		Criteria:     table.CriterionCount(),
		Alternatives: len(table.Rows),
		Weights:      mailer.FormatWeights(weights),
		Impacts:      impactsStr,
		Top:          entries,
	})
	if err != nil {
		h.logger.Error("failed to render email body", "error", err)
		h.metrics.EmailsSent.WithLabelValues("failed").Inc()
		return false
	}

	err = h.mailer.Send(r.Context(), mailer.Message{
		To:             email,
		Subject:        "TOPSIS Analysis Results",
		HTMLBody:       body,
		AttachmentName: filename,
		AttachmentData: []byte(resultCSV),
	})
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		h.logger.Warn("email not configured, skipping delivery")
		h.metrics.EmailsSent.WithLabelValues("not_configured").Inc()
		return false
	case err != nil:
		h.logger.Error("failed to send result email", "error", err, "recipient", email)
		h.metrics.EmailsSent.WithLabelValues("failed").Inc()
		return false
	default:
		h.metrics.EmailsSent.WithLabelValues("sent").Inc()
		return true
	}
}

// fullData converts each result row to a record keyed by column name,
// numeric where the cell parses, with the score at six decimals.
func fullData(res *topsis.Result) []map[string]any {
	out := make([]map[string]any, len(res.Rows))
	for i, row := range res.Rows {
		rec := make(map[string]any, len(res.Columns))
		for j, col := range res.Columns[:len(res.Columns)-2] {
			cell := ""
			if j < len(row.Cells) {
				cell = row.Cells[j]
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				rec[col] = v
			} else {
				rec[col] = cell
			}
		}
		rec["Topsis Score"] = round(row.Score, 6)
		rec["Rank"] = row.Rank
		out[i] = rec
	}
	return out
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

func validationReason(err error) string {
	switch {
	case errors.Is(err, topsis.ErrTooFewColumns):
		return "too_few_columns"
	case errors.Is(err, topsis.ErrNumericIdentifier):
		return "numeric_identifier"
	case errors.Is(err, topsis.ErrWeightCountMismatch):
		return "weight_count_mismatch"
	case errors.Is(err, topsis.ErrNonPositiveWeight):
		return "non_positive_weight"
	case errors.Is(err, topsis.ErrImpactCountMismatch):
		return "impact_count_mismatch"
	case errors.Is(err, topsis.ErrInvalidImpact):
		return "invalid_impact"
	case errors.Is(err, topsis.ErrNonNumericCriterion):
		return "non_numeric_criterion"
	case errors.Is(err, topsis.ErrNonPositiveCriterion):
		return "non_positive_criterion"
	default:
		return "invalid_input"
	}
}
