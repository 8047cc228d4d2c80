package riskscores

import (
	"fmt"

	"go.uber.org/zap"
)

// NIHSSInput carries the 14 NIH Stroke Scale exam items. Nil items were not
// assessed.
type NIHSSInput struct {
	LOCQuestions  *int `json:"locQuestions,omitempty"`  // 0-2
	LOCCommands   *int `json:"locCommands,omitempty"`   // 0-2
	Gaze          *int `json:"gaze,omitempty"`          // 0-2
	VisualFields  *int `json:"visualFields,omitempty"`  // 0-3
	FacialPalsy   *int `json:"facialPalsy,omitempty"`   // 0-3
	MotorLeftArm  *int `json:"motorLeftArm,omitempty"`  // 0-4
	MotorRightArm *int `json:"motorRightArm,omitempty"` // 0-4
	MotorLeftLeg  *int `json:"motorLeftLeg,omitempty"`  // 0-4
	MotorRightLeg *int `json:"motorRightLeg,omitempty"` // 0-4
	Ataxia        *int `json:"ataxia,omitempty"`        // 0-2
	Sensory       *int `json:"sensory,omitempty"`       // 0-2
	Language      *int `json:"language,omitempty"`      // 0-3
	Dysarthria    *int `json:"dysarthria,omitempty"`    // 0-2
	Extinction    *int `json:"extinction,omitempty"`    // 0-2
}

// CalculateNIHSS sums the assessed stroke-scale items; unassessed items are
// recorded as missing rather than scored as zero.
func (c *Calculator) CalculateNIHSS(in NIHSSInput) ScoreResult {
	components := []struct {
		name  string
		value *int
	}{
		{"LOC Questions", in.LOCQuestions},
		{"LOC Commands", in.LOCCommands},
		{"Gaze", in.Gaze},
		{"Visual Fields", in.VisualFields},
		{"Facial Palsy", in.FacialPalsy},
		{"Motor Left Arm", in.MotorLeftArm},
		{"Motor Right Arm", in.MotorRightArm},
		{"Motor Left Leg", in.MotorLeftLeg},
		{"Motor Right Leg", in.MotorRightLeg},
		{"Ataxia", in.Ataxia},
		{"Sensory", in.Sensory},
		{"Language", in.Language},
		{"Dysarthria", in.Dysarthria},
		{"Extinction/Inattention", in.Extinction},
	}

	score := 0
	var missing []string
	details := make(map[string]string)
	for _, comp := range components {
		if comp.value != nil {
			score += *comp.value
			details[comp.name] = fmt.Sprintf("%d", *comp.value)
		} else {
			missing = append(missing, comp.name)
		}
	}

	var level RiskLevel
	var interpretation string
	switch {
	case score == 0:
		level = RiskMinimal
		interpretation = "No stroke symptoms detected"
	case score <= 4:
		level = RiskLow
		interpretation = "Minor stroke"
	case score <= 15:
		level = RiskModerate
		interpretation = "Moderate stroke"
	case score <= 20:
		level = RiskHigh
		interpretation = "Moderate to severe stroke"
	default:
		level = RiskVeryHigh
		interpretation = "Severe stroke"
	}

	var recs []string
	if score > 0 {
		recs = append(recs,
			"Stroke detected - activate stroke protocol",
			"CT head STAT (rule out hemorrhage)",
			"Check time of symptom onset (thrombolysis window)")
		if score >= 16 {
			recs = append(recs,
				"Consider thrombectomy evaluation",
				"Neurology/stroke team consultation STAT")
		}
		if score <= 4 {
			recs = append(recs, "May be candidate for outpatient management if stable")
		}
	}
	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Incomplete NIHSS (%d items missing) - complete exam for accurate score", len(missing)))
	}

	c.log.Info("NIHSS calculated", zap.Int("score", score), zap.String("interpretation", interpretation))

	return ScoreResult{
		Score:           score,
		MaxScore:        42,
		RiskLevel:       level,
		Interpretation:  interpretation,
		Recommendations: recs,
		MissingData:     missing,
		ScoreDetails:    details,
	}
}
