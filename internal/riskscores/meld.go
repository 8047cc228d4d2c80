package riskscores

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// MELDInput carries the liver-disease lab values. MELD requires all three
// labs; any missing value makes the score incalculable.
type MELDInput struct {
	CreatinineMgdl *float64 `json:"creatinineMgdl,omitempty"`
	BilirubinMgdl  *float64 `json:"bilirubinMgdl,omitempty"`
	INR            *float64 `json:"inr,omitempty"`
	DialysisTwice  bool     `json:"dialysisTwice"`
}

// CalculateMELD computes the Model for End-stage Liver Disease score. Lab
// values are floored at 1.0, creatinine is forced to 4.0 after two dialysis
// sessions in the past week, and the result is clamped to [6,40]. A
// non-finite intermediate degrades to a zero-score result instead of
// propagating.
func (c *Calculator) CalculateMELD(in MELDInput) ScoreResult {
	var missing []string
	if in.CreatinineMgdl == nil {
		missing = append(missing, "creatinine")
	}
	if in.BilirubinMgdl == nil {
		missing = append(missing, "bilirubin")
	}
	if in.INR == nil {
		missing = append(missing, "INR")
	}
	if len(missing) > 0 {
		return ScoreResult{
			Score:           0,
			MaxScore:        40,
			RiskLevel:       RiskLow,
			Interpretation:  "Cannot calculate - missing required lab values",
			Recommendations: []string{fmt.Sprintf("Obtain: %s", strings.Join(missing, ", "))},
			MissingData:     missing,
		}
	}

	creat := math.Max(1.0, *in.CreatinineMgdl)
	bili := math.Max(1.0, *in.BilirubinMgdl)
	inr := math.Max(1.0, *in.INR)
	if in.DialysisTwice {
		creat = 4.0
	}

	raw := 10 * (0.957*math.Log(creat) + 0.378*math.Log(bili) + 1.120*math.Log(inr) + 0.643)
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		c.log.Error("MELD calculation error", zap.Float64("raw", raw))
		return ScoreResult{
			Score:           0,
			MaxScore:        40,
			RiskLevel:       RiskLow,
			Interpretation:  "Calculation error - check lab values",
			Recommendations: []string{"Invalid lab values for MELD calculation"},
		}
	}

	score := int(math.Round(raw))
	if score < 6 {
		score = 6
	}
	if score > 40 {
		score = 40
	}

	var level RiskLevel
	var interpretation string
	switch {
	case score < 10:
		level = RiskLow
		interpretation = fmt.Sprintf("MELD %d: 1.9%% 90-day mortality", score)
	case score < 20:
		level = RiskModerate
		interpretation = fmt.Sprintf("MELD %d: ~6%% 90-day mortality", score)
	case score < 30:
		level = RiskHigh
		interpretation = fmt.Sprintf("MELD %d: ~20%% 90-day mortality", score)
	case score < 40:
		level = RiskVeryHigh
		interpretation = fmt.Sprintf("MELD %d: ~53%% 90-day mortality", score)
	default:
		level = RiskCritical
		interpretation = fmt.Sprintf("MELD %d: >70%% 90-day mortality", score)
	}

	var recs []string
	if score >= 15 {
		recs = append(recs,
			"High MELD score - transplant evaluation indicated",
			"Hepatology/transplant surgery consultation")
	}
	if score >= 30 {
		recs = append(recs,
			"Critical MELD score - urgent transplant consideration",
			"ICU-level monitoring may be required")
	}
	recs = append(recs, "Recalculate MELD regularly (weekly-monthly depending on score)")

	dialysis := "No"
	if in.DialysisTwice {
		dialysis = "Yes (creatinine set to 4.0)"
	}
	details := map[string]string{
		"Creatinine": fmt.Sprintf("%.2f mg/dL", *in.CreatinineMgdl),
		"Bilirubin":  fmt.Sprintf("%.2f mg/dL", *in.BilirubinMgdl),
		"INR":        fmt.Sprintf("%.2f", *in.INR),
		"Dialysis":   dialysis,
	}

	c.log.Info("MELD calculated", zap.Int("score", score), zap.String("riskLevel", string(level)))

	return ScoreResult{
		Score:           score,
		MaxScore:        40,
		RiskLevel:       level,
		Interpretation:  interpretation,
		Recommendations: recs,
		MissingData:     []string{},
		ScoreDetails:    details,
	}
}
