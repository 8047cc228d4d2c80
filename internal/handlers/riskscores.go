package handlers

import (
	"clinical-dss-server/internal/riskscores"
	"clinical-dss-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// RiskScoreHandler handles clinical risk-score calculation requests.
type RiskScoreHandler struct {
	Calc *riskscores.Calculator
}

// NewRiskScoreHandler creates a new RiskScoreHandler.
func NewRiskScoreHandler(calc *riskscores.Calculator) *RiskScoreHandler {
	return &RiskScoreHandler{Calc: calc}
}

// QSOFA handles a qSOFA sepsis screen.
func (h *RiskScoreHandler) QSOFA(c *gin.Context) {
	var in riskscores.QSOFAInput
	if !utils.BindAndValidate(c, &in) {
		return
	}
	utils.Success(c, "qSOFA calculated", h.Calc.CalculateQSOFA(in))
}

// NIHSS handles a stroke severity score.
func (h *RiskScoreHandler) NIHSS(c *gin.Context) {
	var in riskscores.NIHSSInput
	if !utils.BindAndValidate(c, &in) {
		return
	}
	utils.Success(c, "NIHSS calculated", h.Calc.CalculateNIHSS(in))
}

// CHA2DS2VASc handles an atrial-fibrillation stroke risk score.
func (h *RiskScoreHandler) CHA2DS2VASc(c *gin.Context) {
	var in riskscores.CHA2DS2VAScInput
	if !utils.BindAndValidate(c, &in) {
		return
	}
	utils.Success(c, "CHA2DS2-VASc calculated", h.Calc.CalculateCHA2DS2VASc(in))
}

// CURB65 handles a pneumonia severity score.
func (h *RiskScoreHandler) CURB65(c *gin.Context) {
	var in riskscores.CURB65Input
	if !utils.BindAndValidate(c, &in) {
		return
	}
	utils.Success(c, "CURB-65 calculated", h.Calc.CalculateCURB65(in))
}

// MELD handles an end-stage liver disease score.
func (h *RiskScoreHandler) MELD(c *gin.Context) {
	var in riskscores.MELDInput
	if !utils.BindAndValidate(c, &in) {
		return
	}
	utils.Success(c, "MELD calculated", h.Calc.CalculateMELD(in))
}

// GCS handles a Glasgow Coma Scale total.
func (h *RiskScoreHandler) GCS(c *gin.Context) {
	var in riskscores.GCSInput
	if !utils.BindAndValidate(c, &in) {
		return
	}
	utils.Success(c, "GCS calculated", h.Calc.CalculateGCS(in))
}
