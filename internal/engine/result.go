package engine

import "time"

// Confidence levels, ordered weakest to strongest.
const (
	ConfidenceVeryLow  = "VERY LOW"
	ConfidenceLow      = "LOW"
	ConfidenceModerate = "MODERATE"
	ConfidenceHigh     = "HIGH"
)

// SymptomScore is one supporting symptom with its likelihood contribution.
type SymptomScore struct {
	Symptom string  `json:"symptom"`
	Score   float64 `json:"score"`
}

// DifferentialItem is one ranked entry of the differential diagnosis.
type DifferentialItem struct {
	Rank               int            `json:"rank"`
	Disease            string         `json:"disease"`
	Probability        float64        `json:"probability"`
	Confidence         string         `json:"confidence"`
	SupportingSymptoms []string       `json:"supportingSymptoms"`
	SymptomMatchScores []SymptomScore `json:"symptomMatchScores,omitempty"`
}

// PatternMatch records a clinical pattern that fired during inference.
type PatternMatch struct {
	Pattern    string   `json:"pattern"`
	Disease    string   `json:"disease"`
	Boost      float64  `json:"boost"`
	Confidence float64  `json:"confidence"`
	Symptoms   []string `json:"symptoms"`
	Keywords   []string `json:"keywords"`
}

// DebugInfo carries the optional inference trace.
type DebugInfo struct {
	PatternsMatched   int            `json:"patternsMatched"`
	PatternDetails    []PatternMatch `json:"patternDetails"`
	LocationsDetected []string       `json:"locationsDetected"`
}

// DiagnosticResult is the complete outcome of one diagnose call. It is
// constructed fresh per call and never mutated after return.
type DiagnosticResult struct {
	Success          bool               `json:"success"`
	Query            string             `json:"query"`
	SymptomsDetected int                `json:"symptomsDetected"`
	Symptoms         []string           `json:"symptoms"`
	Confidence       float64            `json:"confidence"`
	ConfidenceLevel  string             `json:"confidenceLevel"`
	Differential     []DifferentialItem `json:"differentialDiagnosis"`
	TopDiagnosis     string             `json:"topDiagnosis"`
	TopProbability   float64            `json:"topProbability"`
	Recommendations  []string           `json:"recommendations"`
	IsUrgent         bool               `json:"isUrgent"`
	IsCritical       bool               `json:"isCritical"`
	UrgencyScore     int                `json:"urgencyScore"`
	Warnings         []string           `json:"warnings"`
	Timestamp        time.Time          `json:"timestamp"`
	ProcessingTimeMs float64            `json:"processingTimeMs"`
	Error            string             `json:"error,omitempty"`
	Debug            *DebugInfo         `json:"debug,omitempty"`
}
