package riskscores

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// QSOFAInput carries the quick-SOFA inputs. A nil field means the
// measurement was not taken.
type QSOFAInput struct {
	SystolicBP      *int `json:"systolicBp,omitempty"`
	RespiratoryRate *int `json:"respiratoryRate,omitempty"`
	GCSScore        *int `json:"gcsScore,omitempty"`
}

// CalculateQSOFA scores sepsis risk: one point each for respiratory rate
// >=22, altered mentation (GCS <15) and systolic BP <=100.
func (c *Calculator) CalculateQSOFA(in QSOFAInput) ScoreResult {
	score := 0
	var missing []string
	details := make(map[string]string)

	if in.RespiratoryRate != nil {
		if *in.RespiratoryRate >= 22 {
			score++
			details["respiratory_rate"] = fmt.Sprintf("%d >=22 (+1)", *in.RespiratoryRate)
		} else {
			details["respiratory_rate"] = fmt.Sprintf("%d <22 (0)", *in.RespiratoryRate)
		}
	} else {
		missing = append(missing, "respiratory_rate")
	}

	if in.GCSScore != nil {
		if *in.GCSScore < 15 {
			score++
			details["mentation"] = fmt.Sprintf("GCS %d <15 (+1)", *in.GCSScore)
		} else {
			details["mentation"] = fmt.Sprintf("GCS %d =15 (0)", *in.GCSScore)
		}
	} else {
		missing = append(missing, "gcs_score")
	}

	if in.SystolicBP != nil {
		if *in.SystolicBP <= 100 {
			score++
			details["systolic_bp"] = fmt.Sprintf("%d <=100 (+1)", *in.SystolicBP)
		} else {
			details["systolic_bp"] = fmt.Sprintf("%d >100 (0)", *in.SystolicBP)
		}
	} else {
		missing = append(missing, "systolic_bp")
	}

	var level RiskLevel
	var interpretation string
	switch {
	case score >= 2:
		level = RiskHigh
		interpretation = "High risk for poor outcomes. Sepsis workup indicated."
	case score == 1:
		level = RiskModerate
		interpretation = "Moderate risk. Consider sepsis evaluation."
	default:
		level = RiskLow
		interpretation = "Low risk for sepsis-related adverse outcomes."
	}

	var recs []string
	switch {
	case score >= 2:
		recs = append(recs,
			"qSOFA >=2: High risk for sepsis",
			"Obtain blood cultures before antibiotics",
			"Start broad-spectrum antibiotics within 1 hour",
			"Measure lactate level",
			"Consider ICU consultation")
	case score == 1:
		recs = append(recs,
			"Monitor closely for sepsis progression",
			"Reassess qSOFA with each vital signs check",
			"Consider infection workup")
	}
	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Incomplete data (%s) - obtain for accurate assessment", strings.Join(missing, ", ")))
	}

	c.log.Info("qSOFA calculated", zap.Int("score", score), zap.String("riskLevel", string(level)))

	return ScoreResult{
		Score:           score,
		MaxScore:        3,
		RiskLevel:       level,
		Interpretation:  interpretation,
		Recommendations: recs,
		MissingData:     missing,
		ScoreDetails:    details,
	}
}
