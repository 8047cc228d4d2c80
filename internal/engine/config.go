package engine

// Config holds the engine's tunable parameters. The boost and penalty
// magnitudes are empirically chosen, so they are configuration rather than
// invariants.
type Config struct {
	ConfidenceThresholdHigh     float64
	ConfidenceThresholdModerate float64
	ConfidenceThresholdLow      float64
	MinProbabilityThreshold     float64
	UnknownSymptomPenalty       float64
	SymptomPenaltyFactor        float64
	MinSymptomsForConfidence    int
	NegationWindowChars         int
	LocationBoost               float64
	EnablePatternMatching       bool
	EnableLocationDetection     bool
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		ConfidenceThresholdHigh:     0.75,
		ConfidenceThresholdModerate: 0.55,
		ConfidenceThresholdLow:      0.35,
		MinProbabilityThreshold:     0.0001,
		UnknownSymptomPenalty:       0.05,
		SymptomPenaltyFactor:        0.75,
		MinSymptomsForConfidence:    3,
		NegationWindowChars:         60,
		LocationBoost:               1.5,
		EnablePatternMatching:       true,
		EnableLocationDetection:     true,
	}
}
