package riskscores

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// GCSInput carries the three Glasgow Coma Scale components.
type GCSInput struct {
	EyeOpening     *int `json:"eyeOpening,omitempty"`     // 1-4
	VerbalResponse *int `json:"verbalResponse,omitempty"` // 1-5
	MotorResponse  *int `json:"motorResponse,omitempty"`  // 1-6
}

// CalculateGCS sums the coma-scale components. All three are required for a
// meaningful total; a partial assessment yields a zero-score result.
func (c *Calculator) CalculateGCS(in GCSInput) ScoreResult {
	score := 0
	var missing []string

	if in.EyeOpening != nil {
		score += *in.EyeOpening
	} else {
		missing = append(missing, "eye_opening")
	}
	if in.VerbalResponse != nil {
		score += *in.VerbalResponse
	} else {
		missing = append(missing, "verbal_response")
	}
	if in.MotorResponse != nil {
		score += *in.MotorResponse
	} else {
		missing = append(missing, "motor_response")
	}

	if len(missing) > 0 {
		return ScoreResult{
			Score:           0,
			MaxScore:        15,
			RiskLevel:       RiskLow,
			Interpretation:  "Incomplete GCS assessment",
			Recommendations: []string{fmt.Sprintf("Assess: %s", strings.Join(missing, ", "))},
			MissingData:     missing,
		}
	}

	var level RiskLevel
	var interpretation string
	switch {
	case score >= 13:
		level = RiskLow
		interpretation = fmt.Sprintf("GCS %d: Mild impairment", score)
	case score >= 9:
		level = RiskModerate
		interpretation = fmt.Sprintf("GCS %d: Moderate impairment", score)
	default:
		level = RiskCritical
		interpretation = fmt.Sprintf("GCS %d: Severe impairment", score)
	}

	var recs []string
	switch {
	case score <= 8:
		recs = append(recs,
			"GCS <=8: Consider airway protection (intubation)",
			"CT head STAT",
			"Neurosurgery/neurology consultation",
			"ICU admission")
	case score <= 12:
		recs = append(recs,
			"Moderate impairment - close monitoring required",
			"Frequent neuro checks (q1-2h)")
	}

	details := map[string]string{
		"Eye Opening":     fmt.Sprintf("%d/4", *in.EyeOpening),
		"Verbal Response": fmt.Sprintf("%d/5", *in.VerbalResponse),
		"Motor Response":  fmt.Sprintf("%d/6", *in.MotorResponse),
	}

	c.log.Info("GCS calculated", zap.Int("score", score), zap.String("interpretation", interpretation))

	return ScoreResult{
		Score:           score,
		MaxScore:        15,
		RiskLevel:       level,
		Interpretation:  interpretation,
		Recommendations: recs,
		MissingData:     missing,
		ScoreDetails:    details,
	}
}
