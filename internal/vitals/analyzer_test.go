package vitals

import (
	"strings"
	"testing"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestAnalyzeCriticalHyperthermia(t *testing.T) {
	a := NewAnalyzer(nil)

	analysis := a.Analyze(Snapshot{TemperatureC: fp(40.5)})

	if analysis.Statuses["temperature"] != StatusCritical {
		t.Errorf("temperature status = %q, want %q", analysis.Statuses["temperature"], StatusCritical)
	}
	if analysis.Severity != StatusCritical {
		t.Errorf("severity = %q, want %q", analysis.Severity, StatusCritical)
	}
	if len(analysis.RedFlags) != 1 {
		t.Fatalf("red flags = %d, want 1 (%+v)", len(analysis.RedFlags), analysis.RedFlags)
	}
	flag := analysis.RedFlags[0]
	if flag.Condition != "Hyperthermia" || !flag.TimeCritical || !flag.EscalationRequired {
		t.Errorf("unexpected flag %+v", flag)
	}
	if flag.Level != AlertEmergency {
		t.Errorf("alert level = %q, want %q", flag.Level, AlertEmergency)
	}
}

func TestAnalyzeNormalVitals(t *testing.T) {
	a := NewAnalyzer(nil)

	analysis := a.Analyze(Snapshot{
		HeartRateBPM:    ip(72),
		RespiratoryRate: ip(16),
		SystolicBP:      ip(120),
		DiastolicBP:     ip(80),
	})

	if analysis.Severity != StatusNormal {
		t.Errorf("severity = %q, want %q (statuses %v)", analysis.Severity, StatusNormal, analysis.Statuses)
	}
	if len(analysis.RedFlags) != 0 {
		t.Errorf("unexpected red flags: %+v", analysis.RedFlags)
	}
	if analysis.SIRSPositive {
		t.Error("SIRS should not be positive for normal vitals")
	}
	if analysis.NEWSScore != 0 {
		t.Errorf("NEWS = %d, want 0", analysis.NEWSScore)
	}
}

func TestSIRSCriteria(t *testing.T) {
	tests := []struct {
		name         string
		snapshot     Snapshot
		wantMet      int
		wantPositive bool
	}{
		{
			name:         "three criteria",
			snapshot:     Snapshot{TemperatureC: fp(38.5), HeartRateBPM: ip(95), RespiratoryRate: ip(22)},
			wantMet:      3,
			wantPositive: true,
		},
		{
			name:         "hypothermic counts",
			snapshot:     Snapshot{TemperatureC: fp(35.5), HeartRateBPM: ip(95)},
			wantMet:      2,
			wantPositive: true,
		},
		{
			name:         "single criterion",
			snapshot:     Snapshot{HeartRateBPM: ip(95)},
			wantMet:      1,
			wantPositive: false,
		},
		{
			name:         "boundary values do not count",
			snapshot:     Snapshot{TemperatureC: fp(38.0), HeartRateBPM: ip(90), RespiratoryRate: ip(20)},
			wantMet:      0,
			wantPositive: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			met, positive := calculateSIRS(tt.snapshot)
			if met != tt.wantMet || positive != tt.wantPositive {
				t.Errorf("calculateSIRS = (%d, %v), want (%d, %v)", met, positive, tt.wantMet, tt.wantPositive)
			}
		})
	}
}

func TestNEWSScoring(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		want     int
	}{
		{
			name:     "all normal",
			snapshot: Snapshot{RespiratoryRate: ip(16), SpO2Percent: ip(98), SystolicBP: ip(120), HeartRateBPM: ip(72), TemperatureC: fp(37.0), GCSScore: ip(15)},
			want:     0,
		},
		{
			name:     "moderately deranged",
			snapshot: Snapshot{RespiratoryRate: ip(22), HeartRateBPM: ip(95), TemperatureC: fp(38.5)},
			want:     4,
		},
		{
			name:     "severely deranged",
			snapshot: Snapshot{RespiratoryRate: ip(28), SpO2Percent: ip(90), SystolicBP: ip(85), HeartRateBPM: ip(135), TemperatureC: fp(34.5), GCSScore: ip(12)},
			want:     18,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateNEWS(tt.snapshot); got != tt.want {
				t.Errorf("calculateNEWS = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnalyzeHighNEWSRecommendation(t *testing.T) {
	a := NewAnalyzer(nil)

	analysis := a.Analyze(Snapshot{
		RespiratoryRate: ip(28),
		SpO2Percent:     ip(90),
		SystolicBP:      ip(85),
		HeartRateBPM:    ip(135),
		TemperatureC:    fp(34.5),
		GCSScore:        ip(12),
	})

	if analysis.NEWSScore < 7 {
		t.Fatalf("NEWS = %d, want >= 7", analysis.NEWSScore)
	}
	found := false
	for _, rec := range analysis.Recommendations {
		if strings.Contains(rec, "urgent medical review") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected urgent-review recommendation, got %v", analysis.Recommendations)
	}
}

func TestAgeAdjustedClassification(t *testing.T) {
	a := NewAnalyzer(nil)

	// 150 bpm crosses the adult critical bound but only the child abnormal
	// band.
	adult := a.Analyze(Snapshot{HeartRateBPM: ip(150), AgeYears: ip(40)})
	if adult.Statuses["heart_rate"] != StatusCritical {
		t.Errorf("adult heart_rate = %q, want %q", adult.Statuses["heart_rate"], StatusCritical)
	}

	child := a.Analyze(Snapshot{HeartRateBPM: ip(150), AgeYears: ip(8)})
	if child.Statuses["heart_rate"] != StatusAbnormal {
		t.Errorf("child heart_rate = %q, want %q", child.Statuses["heart_rate"], StatusAbnormal)
	}
}

func TestAgeGroupFor(t *testing.T) {
	tests := []struct {
		age  *int
		want AgeGroup
	}{
		{nil, AgeAdult},
		{ip(0), AgeInfant},
		{ip(5), AgeChild},
		{ip(30), AgeAdult},
		{ip(65), AgeElderly},
	}
	for _, tt := range tests {
		if got := ageGroupFor(tt.age); got != tt.want {
			t.Errorf("ageGroupFor(%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}

func TestHypertensiveEmergencyNeedsBothPressures(t *testing.T) {
	a := NewAnalyzer(nil)

	both := a.Analyze(Snapshot{SystolicBP: ip(190), DiastolicBP: ip(125)})
	if !hasCondition(both.RedFlags, "Hypertensive Emergency") {
		t.Errorf("expected hypertensive emergency flag, got %+v", both.RedFlags)
	}

	systolicOnly := a.Analyze(Snapshot{SystolicBP: ip(190), DiastolicBP: ip(95)})
	if hasCondition(systolicOnly.RedFlags, "Hypertensive Emergency") {
		t.Errorf("isolated systolic elevation should not flag an emergency: %+v", systolicOnly.RedFlags)
	}
}

func TestIncompleteVitalsRecommendation(t *testing.T) {
	a := NewAnalyzer(nil)

	analysis := a.Analyze(Snapshot{HeartRateBPM: ip(80)})
	found := false
	for _, rec := range analysis.Recommendations {
		if strings.Contains(rec, "Incomplete vital signs") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected incomplete-vitals recommendation, got %v", analysis.Recommendations)
	}
}

func TestStatisticsTrackCriticalAlerts(t *testing.T) {
	a := NewAnalyzer(nil)

	a.Analyze(Snapshot{TemperatureC: fp(41.0)})
	a.Analyze(Snapshot{HeartRateBPM: ip(80)})

	stats := a.Statistics()
	if got := stats["totalAnalyses"].(int64); got != 2 {
		t.Errorf("totalAnalyses = %d, want 2", got)
	}
	if got := stats["criticalAlerts"].(int64); got != 1 {
		t.Errorf("criticalAlerts = %d, want 1", got)
	}
}

func hasCondition(flags []RedFlag, condition string) bool {
	for _, f := range flags {
		if f.Condition == condition {
			return true
		}
	}
	return false
}
