package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rankworks/criterium/internal/config"
	"github.com/rankworks/criterium/internal/mailer"
	"github.com/rankworks/criterium/internal/observability"
	"github.com/rankworks/criterium/internal/report"
)

// Mocks
type mockMailer struct {
	sent []mailer.Message
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func setupTestRouter(t *testing.T, mc mailer.Client) (http.Handler, *report.Store) {
	t.Helper()
	results, err := report.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	cfg := &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 1 << 20, RequestsPerMinute: 120},
	}
	return NewRouter(results, mc, metrics, cfg, logger), results
}

const sampleCSV = "Model,C1,C2,C3\nA,10,20,30\nB,15,25,35\nC,20,30,40\n"

func analyzeRequest(t *testing.T, fields map[string]string, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.WriteString(fw, content); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest("POST", "/api/v1/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestValidateEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t, &mockMailer{})

	body := `{"email":"user@example.com","weights":"1,1,1","impacts":"+,+,-"}`
	req := httptest.NewRequest("POST", "/api/v1/validate", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp ValidateResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Valid {
		t.Errorf("expected valid, got errors: %v", resp.Errors)
	}
}

func TestValidateEndpointFieldErrors(t *testing.T) {
	router, _ := setupTestRouter(t, &mockMailer{})

	body := `{"email":"not-an-email","weights":"1,-2","impacts":"+,?"}`
	req := httptest.NewRequest("POST", "/api/v1/validate", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp ValidateResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Valid {
		t.Fatal("expected invalid")
	}
	for _, field := range []string{"email", "weights", "impacts"} {
		if resp.Errors[field] == "" {
			t.Errorf("expected error for %q, got %v", field, resp.Errors)
		}
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	mm := &mockMailer{}
	router, results := setupTestRouter(t, mm)

	req := analyzeRequest(t, map[string]string{
		"email":   "user@example.com",
		"weights": "1,1,1",
		"impacts": "+,+,+",
	}, "data.csv", sampleCSV)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp AnalyzeResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 ranked rows, got %d", len(resp.Results))
	}
	if resp.Results[0].Name != "C" || resp.Results[0].Rank != 1 || resp.Results[0].Score != 1 {
		t.Errorf("unexpected best row: %+v", resp.Results[0])
	}
	if resp.Results[2].Name != "A" || resp.Results[2].Score != 0 {
		t.Errorf("unexpected worst row: %+v", resp.Results[2])
	}
	if !report.ValidName(resp.DownloadFilename) {
		t.Errorf("bad download filename: %q", resp.DownloadFilename)
	}
	if !resp.EmailSent {
		t.Error("expected email_sent true")
	}
	if len(mm.sent) != 1 || mm.sent[0].To != "user@example.com" {
		t.Fatalf("expected one email to user, got %+v", mm.sent)
	}
	if mm.sent[0].AttachmentName != resp.DownloadFilename {
		t.Errorf("attachment %q != download filename %q", mm.sent[0].AttachmentName, resp.DownloadFilename)
	}
	if !strings.Contains(mm.sent[0].HTMLBody, "1, 1, 1") {
		t.Error("email body missing formatted weights")
	}

	// Result file is retrievable afterwards.
	if _, err := results.Read(resp.DownloadFilename); err != nil {
		t.Errorf("saved result not readable: %v", err)
	}
}

func TestAnalyzeValidationFailure(t *testing.T) {
	router, _ := setupTestRouter(t, &mockMailer{})

	bad := "Model,C1,C2\nA,0,20\nB,15,25\n"
	req := analyzeRequest(t, map[string]string{
		"email":   "user@example.com",
		"weights": "1,1",
		"impacts": "+,+",
	}, "data.csv", bad)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp AnalyzeResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if !strings.Contains(resp.Error, "positive") {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}

func TestAnalyzeMissingFields(t *testing.T) {
	router, _ := setupTestRouter(t, &mockMailer{})

	req := analyzeRequest(t, map[string]string{"email": "user@example.com"}, "data.csv", sampleCSV)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeUnsupportedExtension(t *testing.T) {
	router, _ := setupTestRouter(t, &mockMailer{})

	req := analyzeRequest(t, map[string]string{
		"email":   "user@example.com",
		"weights": "1,1,1",
		"impacts": "+,+,+",
	}, "data.xls", sampleCSV)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp AnalyzeResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Error != "File type not supported" {
		t.Errorf("unexpected error: %q", resp.Error)
	}
}

func TestAnalyzeEmailFailureStillSucceeds(t *testing.T) {
	router, _ := setupTestRouter(t, &mockMailer{err: io.ErrClosedPipe})

	req := analyzeRequest(t, map[string]string{
		"email":   "user@example.com",
		"weights": "1,1,1",
		"impacts": "+,+,+",
	}, "data.csv", sampleCSV)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp AnalyzeResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Success || resp.EmailSent {
		t.Errorf("expected success with email_sent=false, got %+v", resp)
	}
}

func TestAnalyzeUploadTooLarge(t *testing.T) {
	results, err := report.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	cfg := &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 64, RequestsPerMinute: 120},
	}
	router := NewRouter(results, &mockMailer{}, metrics, cfg, logger)

	req := analyzeRequest(t, map[string]string{
		"email":   "user@example.com",
		"weights": "1,1,1",
		"impacts": "+,+,+",
	}, "data.csv", sampleCSV)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestDownload(t *testing.T) {
	router, results := setupTestRouter(t, &mockMailer{})

	name := report.NewResultName()
	if err := results.Save(name, []byte("a,b\n1,2\n")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/download/"+name, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("unexpected content type %q", got)
	}
	if w.Body.String() != "a,b\n1,2\n" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestDownloadNotFound(t *testing.T) {
	router, _ := setupTestRouter(t, &mockMailer{})

	for _, name := range []string{report.NewResultName(), "..%2Fsecrets.csv", "notes.txt"} {
		req := httptest.NewRequest("GET", "/api/v1/download/"+name, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("download %q: expected 404, got %d", name, w.Code)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := NewMetricsRouter()
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
