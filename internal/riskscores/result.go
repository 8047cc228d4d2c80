// Package riskscores implements deterministic clinical risk-score
// calculators (qSOFA, NIHSS, CHA2DS2-VASc, CURB-65, MELD, GCS). Each
// calculator is a pure function of optional named inputs: absent inputs are
// skipped and recorded as missing, except where a score requires all inputs
// to be meaningful.
package riskscores

import "go.uber.org/zap"

// RiskLevel categorizes a numeric score.
type RiskLevel string

const (
	RiskMinimal  RiskLevel = "minimal"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
	RiskCritical RiskLevel = "critical"
)

// ScoreResult is the outcome of one risk-score calculation.
type ScoreResult struct {
	Score           int               `json:"score"`
	MaxScore        int               `json:"maxScore"`
	RiskLevel       RiskLevel         `json:"riskLevel"`
	Interpretation  string            `json:"interpretation"`
	Recommendations []string          `json:"recommendations"`
	MissingData     []string          `json:"missingData"`
	ScoreDetails    map[string]string `json:"scoreDetails,omitempty"`
}

// Calculator holds the shared logger for the score calculators. All methods
// are stateless and safe for concurrent use.
type Calculator struct {
	log *zap.Logger
}

// NewCalculator constructs a risk-score calculator.
func NewCalculator(log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{log: log}
}
