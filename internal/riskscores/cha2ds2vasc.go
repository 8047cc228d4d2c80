package riskscores

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CHA2DS2VAScInput carries the atrial-fibrillation stroke-risk factors.
type CHA2DS2VAScInput struct {
	Age                *int   `json:"age,omitempty"`
	Sex                string `json:"sex,omitempty"` // "M" or "F"
	HasCHF             bool   `json:"hasChf"`
	HasHypertension    bool   `json:"hasHypertension"`
	HasDiabetes        bool   `json:"hasDiabetes"`
	HasStrokeTIA       bool   `json:"hasStrokeTia"`
	HasVascularDisease bool   `json:"hasVascularDisease"`
}

// CalculateCHA2DS2VASc scores annual stroke risk in atrial fibrillation.
func (c *Calculator) CalculateCHA2DS2VASc(in CHA2DS2VAScInput) ScoreResult {
	score := 0
	var missing []string
	details := make(map[string]string)

	if in.HasCHF {
		score++
		details["CHF"] = "+1"
	}
	if in.HasHypertension {
		score++
		details["Hypertension"] = "+1"
	}

	if in.Age != nil {
		switch {
		case *in.Age >= 75:
			score += 2
			details["Age"] = fmt.Sprintf("%d years (+2)", *in.Age)
		case *in.Age >= 65:
			score++
			details["Age"] = fmt.Sprintf("%d years (+1)", *in.Age)
		default:
			details["Age"] = fmt.Sprintf("%d years (0)", *in.Age)
		}
	} else {
		missing = append(missing, "age")
	}

	if in.HasDiabetes {
		score++
		details["Diabetes"] = "+1"
	}
	if in.HasStrokeTIA {
		score += 2
		details["Stroke/TIA"] = "+2"
	}
	if in.HasVascularDisease {
		score++
		details["Vascular Disease"] = "+1"
	}

	female := strings.EqualFold(in.Sex, "F")
	if in.Sex != "" {
		if female {
			score++
			details["Sex"] = "Female (+1)"
		} else {
			details["Sex"] = "Male (0)"
		}
	} else {
		missing = append(missing, "sex")
	}

	var level RiskLevel
	var interpretation string
	switch {
	case score == 0:
		level = RiskLow
		interpretation = "Low risk (0.2% annual stroke risk)"
	case score == 1:
		level = RiskLow
		interpretation = "Low-moderate risk (0.6% annual stroke risk)"
	case score <= 3:
		level = RiskModerate
		interpretation = fmt.Sprintf("Moderate risk (%s annual stroke risk)", []string{"2.2%", "2.2%", "3.2%"}[score-2])
	case score <= 5:
		level = RiskHigh
		interpretation = fmt.Sprintf("High risk (%s annual stroke risk)", []string{"4.8%", "7.2%"}[score-4])
	default:
		level = RiskVeryHigh
		interpretation = "Very high risk (>9% annual stroke risk)"
	}

	var recs []string
	switch {
	case score >= 2:
		recs = append(recs,
			"Anticoagulation recommended (unless contraindicated)",
			"Options: Warfarin (INR 2-3) or DOAC (apixaban, rivaroxaban, etc.)")
	case score == 1:
		if female {
			recs = append(recs, "Consider anticoagulation vs. aspirin (shared decision making)")
		} else {
			recs = append(recs, "Anticoagulation recommended for most patients")
		}
	default:
		recs = append(recs, "Low risk - anticoagulation generally not recommended")
	}
	recs = append(recs, "Reassess score annually and with status changes")
	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Missing data: %s", strings.Join(missing, ", ")))
	}

	c.log.Info("CHA2DS2-VASc calculated", zap.Int("score", score), zap.String("riskLevel", string(level)))

	return ScoreResult{
		Score:           score,
		MaxScore:        9,
		RiskLevel:       level,
		Interpretation:  interpretation,
		Recommendations: recs,
		MissingData:     missing,
		ScoreDetails:    details,
	}
}
