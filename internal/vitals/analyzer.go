package vitals

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Snapshot is one set of vital-sign measurements. A nil field means "not
// assessed", never zero.
type Snapshot struct {
	TemperatureC     *float64 `json:"temperatureC,omitempty"`
	HeartRateBPM     *int     `json:"heartRateBpm,omitempty"`
	RespiratoryRate  *int     `json:"respiratoryRateBpm,omitempty"`
	SystolicBP       *int     `json:"systolicBpMmhg,omitempty"`
	DiastolicBP      *int     `json:"diastolicBpMmhg,omitempty"`
	SpO2Percent      *int     `json:"spo2Percent,omitempty"`
	GCSScore         *int     `json:"gcsScore,omitempty"`
	PainScore        *int     `json:"painScore,omitempty"`
	BloodGlucoseMgdl *float64 `json:"bloodGlucoseMgdl,omitempty"`
	AgeYears         *int     `json:"ageYears,omitempty"`
}

// IsEmpty reports whether no measurement was supplied at all.
func (s *Snapshot) IsEmpty() bool {
	return s.TemperatureC == nil && s.HeartRateBPM == nil && s.RespiratoryRate == nil &&
		s.SystolicBP == nil && s.DiastolicBP == nil && s.SpO2Percent == nil &&
		s.GCSScore == nil && s.PainScore == nil && s.BloodGlucoseMgdl == nil
}

// IsComplete reports whether the core vitals were all measured.
func (s *Snapshot) IsComplete() bool {
	return s.TemperatureC != nil && s.HeartRateBPM != nil && s.RespiratoryRate != nil &&
		s.SystolicBP != nil && s.SpO2Percent != nil
}

// RedFlag is a discrete severity-leveled alert triggered by an absolute
// vital-sign threshold.
type RedFlag struct {
	Level              AlertLevel `json:"level"`
	Title              string     `json:"title"`
	Message            string     `json:"message"`
	Condition          string     `json:"condition"`
	VitalSignsInvolved []string   `json:"vitalSignsInvolved"`
	RecommendedActions []string   `json:"recommendedActions"`
	TimeCritical       bool       `json:"timeCritical"`
	EscalationRequired bool       `json:"escalationRequired"`
}

// Analysis is the complete outcome of one vital-signs assessment.
type Analysis struct {
	Statuses        map[string]Status `json:"statuses"`
	RedFlags        []RedFlag         `json:"redFlags"`
	SIRSCriteriaMet int               `json:"sirsCriteriaMet"`
	SIRSPositive    bool              `json:"sirsPositive"`
	NEWSScore       int               `json:"newsScore"`
	Severity        Status            `json:"severity"`
	Recommendations []string          `json:"recommendations"`
	Timestamp       time.Time         `json:"timestamp"`
}

// Analyzer assesses vital-sign snapshots against age-adjusted reference
// ranges and absolute red-flag thresholds. Safe for concurrent use.
type Analyzer struct {
	log *zap.Logger

	totalAnalyses  atomic.Int64
	criticalAlerts atomic.Int64
}

// NewAnalyzer constructs a vital-signs analyzer.
func NewAnalyzer(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{log: log}
}

// Analyze classifies every supplied vital, detects red flags, computes SIRS
// and the early-warning composite, and derives the overall severity.
func (a *Analyzer) Analyze(snapshot Snapshot) Analysis {
	a.totalAnalyses.Add(1)
	group := ageGroupFor(snapshot.AgeYears)

	statuses := make(map[string]Status)
	if snapshot.TemperatureC != nil {
		statuses["temperature"] = classify(*snapshot.TemperatureC, "temperature", group)
	}
	if snapshot.HeartRateBPM != nil {
		statuses["heart_rate"] = classify(float64(*snapshot.HeartRateBPM), "heart_rate", group)
	}
	if snapshot.RespiratoryRate != nil {
		statuses["respiratory_rate"] = classify(float64(*snapshot.RespiratoryRate), "respiratory_rate", group)
	}
	if snapshot.SystolicBP != nil {
		statuses["systolic_bp"] = classify(float64(*snapshot.SystolicBP), "systolic_bp", group)
	}
	if snapshot.DiastolicBP != nil {
		statuses["diastolic_bp"] = classify(float64(*snapshot.DiastolicBP), "diastolic_bp", group)
	}
	if snapshot.SpO2Percent != nil {
		statuses["spo2"] = classify(float64(*snapshot.SpO2Percent), "spo2", AgeAll)
	}
	if snapshot.GCSScore != nil {
		statuses["gcs"] = classify(float64(*snapshot.GCSScore), "gcs", AgeAll)
	}

	redFlags := a.detectRedFlags(snapshot)
	sirsMet, sirsPositive := calculateSIRS(snapshot)
	newsScore := calculateNEWS(snapshot)

	severity := StatusNormal
	for _, s := range statuses {
		if statusRank(s) > statusRank(severity) {
			severity = s
		}
	}

	var recommendations []string
	if len(redFlags) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d critical alert(s) - immediate attention required", len(redFlags)))
	}
	if sirsPositive {
		recommendations = append(recommendations,
			fmt.Sprintf("SIRS criteria met (%d/4) - assess for sepsis", sirsMet))
	}
	switch {
	case newsScore >= 7:
		recommendations = append(recommendations,
			fmt.Sprintf("High early-warning score (%d) - urgent medical review required", newsScore))
	case newsScore >= 5:
		recommendations = append(recommendations,
			fmt.Sprintf("Medium early-warning score (%d) - increased monitoring frequency", newsScore))
	}
	if !snapshot.IsComplete() {
		recommendations = append(recommendations,
			"Incomplete vital signs - obtain missing measurements")
	}

	a.log.Info("vital signs analyzed",
		zap.String("severity", string(severity)),
		zap.Int("redFlags", len(redFlags)),
		zap.Int("newsScore", newsScore))

	return Analysis{
		Statuses:        statuses,
		RedFlags:        redFlags,
		SIRSCriteriaMet: sirsMet,
		SIRSPositive:    sirsPositive,
		NEWSScore:       newsScore,
		Severity:        severity,
		Recommendations: recommendations,
		Timestamp:       time.Now().UTC(),
	}
}

// Statistics reports analyzer counters for monitoring.
func (a *Analyzer) Statistics() map[string]any {
	return map[string]any{
		"totalAnalyses":  a.totalAnalyses.Load(),
		"criticalAlerts": a.criticalAlerts.Load(),
	}
}

func statusRank(s Status) int {
	switch s {
	case StatusCritical:
		return 3
	case StatusAbnormal:
		return 2
	case StatusBorderline:
		return 1
	default:
		return 0
	}
}

// calculateSIRS counts the vital-sign SIRS criteria. The WBC criterion
// needs lab data, so at most 3 of the clinically-defined 4 are assessed;
// two or more is SIRS-positive.
func calculateSIRS(s Snapshot) (int, bool) {
	met := 0
	if s.TemperatureC != nil && (*s.TemperatureC > 38.0 || *s.TemperatureC < 36.0) {
		met++
	}
	if s.HeartRateBPM != nil && *s.HeartRateBPM > 90 {
		met++
	}
	if s.RespiratoryRate != nil && *s.RespiratoryRate > 20 {
		met++
	}
	return met, met >= 2
}

// calculateNEWS sums banded point contributions per vital, NEWS-style, plus
// a fixed 3 points for any depressed level of consciousness.
func calculateNEWS(s Snapshot) int {
	score := 0

	if s.RespiratoryRate != nil {
		switch rr := *s.RespiratoryRate; {
		case rr <= 8:
			score += 3
		case rr <= 11:
			score += 1
		case rr <= 20:
		case rr <= 24:
			score += 2
		default:
			score += 3
		}
	}
	if s.SpO2Percent != nil {
		switch spo2 := *s.SpO2Percent; {
		case spo2 <= 91:
			score += 3
		case spo2 <= 93:
			score += 2
		case spo2 <= 95:
			score += 1
		}
	}
	if s.SystolicBP != nil {
		switch sbp := *s.SystolicBP; {
		case sbp <= 90:
			score += 3
		case sbp <= 100:
			score += 2
		case sbp <= 110:
			score += 1
		case sbp <= 219:
		default:
			score += 3
		}
	}
	if s.HeartRateBPM != nil {
		switch hr := *s.HeartRateBPM; {
		case hr <= 40:
			score += 3
		case hr <= 50:
			score += 1
		case hr <= 90:
		case hr <= 110:
			score += 1
		case hr <= 130:
			score += 2
		default:
			score += 3
		}
	}
	if s.TemperatureC != nil {
		switch temp := *s.TemperatureC; {
		case temp <= 35.0:
			score += 3
		case temp <= 36.0:
			score += 1
		case temp <= 38.0:
		case temp <= 39.0:
			score += 1
		default:
			score += 2
		}
	}
	if s.GCSScore != nil && *s.GCSScore < 15 {
		score += 3
	}

	return score
}
