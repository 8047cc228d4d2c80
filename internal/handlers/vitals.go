package handlers

import (
	"clinical-dss-server/internal/utils"
	"clinical-dss-server/internal/vitals"

	"github.com/gin-gonic/gin"
)

// VitalsHandler handles vital-signs analysis requests.
type VitalsHandler struct {
	Analyzer *vitals.Analyzer
}

// NewVitalsHandler creates a new VitalsHandler.
func NewVitalsHandler(analyzer *vitals.Analyzer) *VitalsHandler {
	return &VitalsHandler{Analyzer: analyzer}
}

// Analyze handles assessing a vital-signs snapshot against reference
// ranges, red-flag thresholds, SIRS and NEWS.
func (h *VitalsHandler) Analyze(c *gin.Context) {
	var snapshot vitals.Snapshot
	if !utils.BindAndValidate(c, &snapshot) {
		return
	}

	if snapshot.IsEmpty() {
		utils.BadRequest(c, "At least one vital sign measurement is required")
		return
	}

	analysis := h.Analyzer.Analyze(snapshot)
	utils.Success(c, "Vital signs analyzed", analysis)
}
