package riskscores

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CURB65Input carries the pneumonia-severity inputs.
type CURB65Input struct {
	Confusion       bool     `json:"confusion"`
	UreaMmolL       *float64 `json:"ureaMmolL,omitempty"`
	RespiratoryRate *int     `json:"respiratoryRate,omitempty"`
	SystolicBP      *int     `json:"systolicBp,omitempty"`
	DiastolicBP     *int     `json:"diastolicBp,omitempty"`
	Age             *int     `json:"age,omitempty"`
}

// CalculateCURB65 scores community-acquired pneumonia severity. The blood
// pressure criterion needs both pressures; either pressure missing marks
// the criterion as missing.
func (c *Calculator) CalculateCURB65(in CURB65Input) ScoreResult {
	score := 0
	var missing []string
	details := make(map[string]string)

	if in.Confusion {
		score++
		details["Confusion"] = "Present (+1)"
	} else {
		details["Confusion"] = "Absent (0)"
	}

	if in.UreaMmolL != nil {
		if *in.UreaMmolL > 7 {
			score++
			details["Urea"] = fmt.Sprintf("%.1f mmol/L >7 (+1)", *in.UreaMmolL)
		} else {
			details["Urea"] = fmt.Sprintf("%.1f mmol/L <=7 (0)", *in.UreaMmolL)
		}
	} else {
		missing = append(missing, "urea")
	}

	if in.RespiratoryRate != nil {
		if *in.RespiratoryRate >= 30 {
			score++
			details["Respiratory Rate"] = fmt.Sprintf("%d >=30 (+1)", *in.RespiratoryRate)
		} else {
			details["Respiratory Rate"] = fmt.Sprintf("%d <30 (0)", *in.RespiratoryRate)
		}
	} else {
		missing = append(missing, "respiratory_rate")
	}

	if in.SystolicBP != nil && in.DiastolicBP != nil {
		if *in.SystolicBP < 90 || *in.DiastolicBP <= 60 {
			score++
			details["Blood Pressure"] = fmt.Sprintf("%d/%d (+1)", *in.SystolicBP, *in.DiastolicBP)
		} else {
			details["Blood Pressure"] = fmt.Sprintf("%d/%d (0)", *in.SystolicBP, *in.DiastolicBP)
		}
	} else {
		missing = append(missing, "blood_pressure")
	}

	if in.Age != nil {
		if *in.Age >= 65 {
			score++
			details["Age"] = fmt.Sprintf("%d years >=65 (+1)", *in.Age)
		} else {
			details["Age"] = fmt.Sprintf("%d years <65 (0)", *in.Age)
		}
	} else {
		missing = append(missing, "age")
	}

	var level RiskLevel
	var interpretation string
	switch {
	case score <= 1:
		level = RiskLow
		interpretation = "Low severity - suitable for outpatient treatment"
	case score == 2:
		level = RiskModerate
		interpretation = "Moderate severity - consider hospitalization"
	default:
		level = RiskHigh
		interpretation = fmt.Sprintf("High severity (score %d) - hospitalize, consider ICU", score)
	}

	var recs []string
	switch {
	case score <= 1:
		recs = append(recs,
			"Low risk - outpatient treatment appropriate",
			"Oral antibiotics (e.g., amoxicillin, doxycycline, or macrolide)",
			"Close follow-up in 48-72 hours")
	case score == 2:
		recs = append(recs,
			"Moderate risk - hospitalization vs. close outpatient monitoring",
			"Consider additional risk factors and social circumstances")
	default:
		recs = append(recs,
			"High risk - hospitalize immediately",
			"IV antibiotics (e.g., ceftriaxone + azithromycin)",
			"Chest X-ray, blood cultures, CBC, BMP")
		if score >= 4 {
			recs = append(recs, "Consider ICU admission")
		}
	}
	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Missing: %s - obtain for complete score", strings.Join(missing, ", ")))
	}

	c.log.Info("CURB-65 calculated", zap.Int("score", score), zap.String("riskLevel", string(level)))

	return ScoreResult{
		Score:           score,
		MaxScore:        5,
		RiskLevel:       level,
		Interpretation:  interpretation,
		Recommendations: recs,
		MissingData:     missing,
		ScoreDetails:    details,
	}
}
