package handlers

import (
	"fmt"

	"clinical-dss-server/internal/config"
	"clinical-dss-server/internal/engine"
	"clinical-dss-server/internal/utils"
	"clinical-dss-server/internal/vitals"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DiagnosisHandler handles diagnostic inference requests.
type DiagnosisHandler struct {
	Engine   *engine.Engine
	Analyzer *vitals.Analyzer
	Cfg      *config.Config
	Log      *zap.Logger
}

// NewDiagnosisHandler creates a new DiagnosisHandler.
func NewDiagnosisHandler(eng *engine.Engine, analyzer *vitals.Analyzer, cfg *config.Config, log *zap.Logger) *DiagnosisHandler {
	return &DiagnosisHandler{Engine: eng, Analyzer: analyzer, Cfg: cfg, Log: log}
}

// DiagnoseRequest represents the request body for a diagnosis. Vitals are
// optional; when supplied they are analyzed alongside the query and can
// escalate the result.
type DiagnoseRequest struct {
	Query      string           `json:"query" binding:"required"`
	ReturnFull bool             `json:"returnFull"`
	Vitals     *vitals.Snapshot `json:"vitals,omitempty"`
}

// DiagnoseResponse is the diagnostic result with the optional vital-signs
// analysis attached.
type DiagnoseResponse struct {
	*engine.DiagnosticResult
	VitalsAnalysis *vitals.Analysis `json:"vitalsAnalysis,omitempty"`
}

// Diagnose handles running the diagnostic pipeline over a free-text
// symptom description, merging in a vital-signs assessment when one is
// provided.
func (h *DiagnosisHandler) Diagnose(c *gin.Context) {
	var req DiagnoseRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	query := utils.SanitizeQuery(req.Query, h.Cfg.Engine.MaxQueryLength)
	if query == "" {
		utils.BadRequest(c, "Query must contain symptom text")
		return
	}

	result := h.Engine.Diagnose(query, req.ReturnFull)
	if !result.Success {
		// No recognizable symptoms is a client problem, not a server one.
		utils.UnprocessableEntity(c, result.Error)
		return
	}

	response := DiagnoseResponse{DiagnosticResult: result}
	if req.Vitals != nil && !req.Vitals.IsEmpty() {
		analysis := h.Analyzer.Analyze(*req.Vitals)
		response.VitalsAnalysis = &analysis
		h.escalateOnCriticalVitals(result, &analysis)
	}

	utils.Success(c, "Diagnosis completed", response)
}

// escalateOnCriticalVitals overrides the symptom-derived urgency when the
// vital signs carry critical or emergency red flags. The flags trump any
// reassuring differential.
func (h *DiagnosisHandler) escalateOnCriticalVitals(result *engine.DiagnosticResult, analysis *vitals.Analysis) {
	criticalFlags := 0
	for _, flag := range analysis.RedFlags {
		if flag.Level == vitals.AlertCritical || flag.Level == vitals.AlertEmergency {
			criticalFlags++
		}
	}
	if criticalFlags == 0 {
		return
	}

	result.IsCritical = true
	result.UrgencyScore = 10
	result.Warnings = append([]string{
		fmt.Sprintf("CRITICAL VITAL SIGNS: %d emergency alert(s)", criticalFlags),
	}, result.Warnings...)

	h.Log.Warn("diagnosis escalated by critical vitals",
		zap.String("topDiagnosis", result.TopDiagnosis),
		zap.Int("criticalFlags", criticalFlags))
}

// ReloadModel handles swapping in a freshly loaded model without downtime.
func (h *DiagnosisHandler) ReloadModel(c *gin.Context) {
	model, err := engine.LoadModel(h.Cfg.ModelPath)
	if err != nil {
		h.Log.Error("model reload failed", zap.String("path", h.Cfg.ModelPath), zap.Error(err))
		utils.InternalServerError(c, "Failed to reload model: "+err.Error())
		return
	}

	h.Engine.ReloadModel(model)
	h.Log.Info("model reloaded", zap.String("path", h.Cfg.ModelPath), zap.Int("diseases", len(model.Diseases())))
	utils.Success(c, "Model reloaded successfully", gin.H{
		"diseases": len(model.Diseases()),
	})
}
