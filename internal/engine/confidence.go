package engine

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// CalculateConfidence derives a scalar confidence and its level from the
// posterior distribution and the asserted symptom count. It weighs the top
// probability, the gap between the top two candidates and the amount of
// symptom evidence, then penalizes sparse input.
func (e *Engine) CalculateConfidence(posteriors map[string]float64, nSymptoms int) (float64, string) {
	if len(posteriors) == 0 {
		return 0.0, ConfidenceVeryLow
	}

	probs := make([]float64, 0, len(posteriors))
	for _, p := range posteriors {
		probs = append(probs, p)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(probs)))

	probFactor := probs[0] * 0.4

	var gapFactor float64
	if len(probs) > 1 {
		gapFactor = math.Min((probs[0]-probs[1])/0.3, 1.0) * 0.3
	} else {
		// A lone surviving candidate counts as the maximum separation.
		gapFactor = 0.3
	}

	symptomFactor := math.Min(float64(nSymptoms)/5.0, 1.0) * 0.3

	confidence := math.Min(probFactor+gapFactor+symptomFactor, 1.0)

	if nSymptoms < e.cfg.MinSymptomsForConfidence {
		confidence *= e.cfg.SymptomPenaltyFactor
		e.log.Debug("applied symptom penalty",
			zap.Int("symptoms", nSymptoms),
			zap.Int("min", e.cfg.MinSymptomsForConfidence))
	}

	var level string
	switch {
	case confidence >= e.cfg.ConfidenceThresholdHigh:
		level = ConfidenceHigh
	case confidence >= e.cfg.ConfidenceThresholdModerate:
		level = ConfidenceModerate
	case confidence >= e.cfg.ConfidenceThresholdLow:
		level = ConfidenceLow
	default:
		level = ConfidenceVeryLow
	}

	return round4(confidence), level
}

// AssessUrgency classifies the top diagnosis against the critical and urgent
// condition sets and derives the 0-10 urgency score. Critical implies
// urgent.
func (e *Engine) AssessUrgency(disease string, confidence float64) (isUrgent, isCritical bool, urgencyScore int) {
	isCritical = e.critical[disease]
	isUrgent = e.urgent[disease] || isCritical

	switch {
	case isCritical:
		urgencyScore = clampScore(int(math.Round(9*confidence)), 8, 10)
		e.criticalDetections.Add(1)
		e.log.Warn("critical condition detected", zap.String("disease", disease))
	case isUrgent:
		urgencyScore = clampScore(int(math.Round(7*confidence)), 6, 10)
		e.log.Info("urgent condition detected", zap.String("disease", disease))
	default:
		urgencyScore = clampScore(int(math.Round(3*confidence)), 0, 10)
	}
	return isUrgent, isCritical, urgencyScore
}

func clampScore(v, floor, ceil int) int {
	if v < floor {
		return floor
	}
	if v > ceil {
		return ceil
	}
	return v
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
