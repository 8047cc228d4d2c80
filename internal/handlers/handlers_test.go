package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinical-dss-server/internal/config"
	"clinical-dss-server/internal/engine"
	"clinical-dss-server/internal/middleware"
	"clinical-dss-server/internal/riskscores"
	"clinical-dss-server/internal/routes"
	"clinical-dss-server/internal/vitals"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	model, err := engine.LoadModel("../engine/testdata/model.json")
	if err != nil {
		t.Fatalf("loading test model: %v", err)
	}

	cfg := &config.Config{
		ModelPath: "../engine/testdata/model.json",
		Engine:    config.EngineConfig{MaxQueryLength: 5000},
	}
	eng := engine.NewEngine(engine.DefaultConfig(), model, nil)
	analyzer := vitals.NewAnalyzer(nil)
	calc := riskscores.NewCalculator(nil)

	router := gin.New()
	routes.SetupRoutes(router, eng, analyzer, calc, cfg, zap.NewNop())
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response envelope: %v (%s)", err, w.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decoding payload: %v (%s)", err, envelope.Data)
	}
}

func TestDiagnoseEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/diagnosis",
		`{"query": "crushing chest pain radiating to left arm with sweating and shortness of breath"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result engine.DiagnosticResult
	decodeData(t, w, &result)
	if result.TopDiagnosis != "Heart attack" {
		t.Errorf("top diagnosis = %q, want Heart attack", result.TopDiagnosis)
	}
	if !result.IsCritical {
		t.Error("expected critical flag")
	}
}

type diagnoseResponse struct {
	engine.DiagnosticResult
	VitalsAnalysis *vitals.Analysis `json:"vitalsAnalysis"`
}

func TestDiagnoseEndpointMergesVitals(t *testing.T) {
	router := newTestRouter(t)

	// Critical vitals trump a reassuring differential.
	w := postJSON(t, router, "/api/v1/diagnosis",
		`{"query": "cough and heartburn", "vitals": {"spo2Percent": 80}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var escalated diagnoseResponse
	decodeData(t, w, &escalated)
	if escalated.VitalsAnalysis == nil {
		t.Fatal("expected vitals analysis attached to the result")
	}
	if !escalated.IsCritical {
		t.Error("critical vitals should escalate the result to critical")
	}
	if escalated.UrgencyScore != 10 {
		t.Errorf("urgency score = %d, want 10", escalated.UrgencyScore)
	}
	if len(escalated.Warnings) == 0 || !strings.Contains(escalated.Warnings[0], "CRITICAL VITAL SIGNS") {
		t.Errorf("warnings = %v, want critical-vitals warning first", escalated.Warnings)
	}

	// Unremarkable vitals are attached without escalating.
	w = postJSON(t, router, "/api/v1/diagnosis",
		`{"query": "cough and heartburn", "vitals": {"heartRateBpm": 72}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var calm diagnoseResponse
	decodeData(t, w, &calm)
	if calm.VitalsAnalysis == nil {
		t.Fatal("expected vitals analysis attached to the result")
	}
	if calm.IsCritical || calm.UrgencyScore == 10 {
		t.Errorf("normal vitals should not escalate: critical=%v urgency=%d", calm.IsCritical, calm.UrgencyScore)
	}

	// No vitals block means no analysis in the response.
	w = postJSON(t, router, "/api/v1/diagnosis", `{"query": "cough and heartburn"}`)
	var plain diagnoseResponse
	decodeData(t, w, &plain)
	if plain.VitalsAnalysis != nil {
		t.Errorf("unexpected vitals analysis: %+v", plain.VitalsAnalysis)
	}
}

func TestDiagnoseEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	// Missing query field fails binding.
	w := postJSON(t, router, "/api/v1/diagnosis", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty body: status = %d, want 400", w.Code)
	}

	// A query with no clinical content is unprocessable, not a server error.
	w = postJSON(t, router, "/api/v1/diagnosis", `{"query": "hello there"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("non-clinical query: status = %d, want 422 (%s)", w.Code, w.Body.String())
	}
}

func TestVitalsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/vitals/analyze", `{"temperatureC": 40.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var analysis vitals.Analysis
	decodeData(t, w, &analysis)
	if analysis.Severity != vitals.StatusCritical {
		t.Errorf("severity = %q, want critical", analysis.Severity)
	}
	if len(analysis.RedFlags) != 1 || analysis.RedFlags[0].Condition != "Hyperthermia" {
		t.Errorf("red flags = %+v", analysis.RedFlags)
	}
}

func TestVitalsEndpointRejectsEmptySnapshot(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/vitals/analyze", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 (%s)", w.Code, w.Body.String())
	}
}

func TestRiskScoreEndpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path      string
		body      string
		wantScore int
	}{
		{"/api/v1/risk-scores/qsofa", `{"systolicBp": 85, "respiratoryRate": 24, "gcsScore": 15}`, 2},
		{"/api/v1/risk-scores/gcs", `{"eyeOpening": 4, "verbalResponse": 5, "motorResponse": 6}`, 15},
		{"/api/v1/risk-scores/cha2ds2vasc", `{"age": 80, "sex": "F", "hasStrokeTia": true}`, 5},
		{"/api/v1/risk-scores/curb65", `{"confusion": true, "ureaMmolL": 9.0, "respiratoryRate": 32, "systolicBp": 85, "diastolicBp": 55, "age": 70}`, 5},
		{"/api/v1/risk-scores/meld", `{"creatinineMgdl": 1.0, "bilirubinMgdl": 1.0, "inr": 1.0}`, 6},
		{"/api/v1/risk-scores/nihss", `{"facialPalsy": 1, "dysarthria": 1}`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := postJSON(t, router, tt.path, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			var result riskscores.ScoreResult
			decodeData(t, w, &result)
			if result.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", result.Score, tt.wantScore)
			}
		})
	}
}

func TestStatusEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"status":"UP"`)) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestModelReloadEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/model/reload", ``)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a generated request ID header")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(middleware.RequestIDHeader); got != "trace-123" {
		t.Errorf("request ID = %q, want trace-123", got)
	}
}
