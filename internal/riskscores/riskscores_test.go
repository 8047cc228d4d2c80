package riskscores

import (
	"strings"
	"testing"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func TestCalculateQSOFA(t *testing.T) {
	c := NewCalculator(nil)

	tests := []struct {
		name      string
		in        QSOFAInput
		wantScore int
		wantLevel RiskLevel
	}{
		{
			name:      "two criteria is high risk",
			in:        QSOFAInput{SystolicBP: ip(85), RespiratoryRate: ip(24), GCSScore: ip(15)},
			wantScore: 2,
			wantLevel: RiskHigh,
		},
		{
			name:      "one criterion",
			in:        QSOFAInput{SystolicBP: ip(120), RespiratoryRate: ip(24), GCSScore: ip(15)},
			wantScore: 1,
			wantLevel: RiskModerate,
		},
		{
			name:      "no criteria",
			in:        QSOFAInput{SystolicBP: ip(120), RespiratoryRate: ip(16), GCSScore: ip(15)},
			wantScore: 0,
			wantLevel: RiskLow,
		},
		{
			name:      "boundary values",
			in:        QSOFAInput{SystolicBP: ip(100), RespiratoryRate: ip(22), GCSScore: ip(14)},
			wantScore: 3,
			wantLevel: RiskHigh,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CalculateQSOFA(tt.in)
			if got.Score != tt.wantScore || got.RiskLevel != tt.wantLevel {
				t.Errorf("score=%d level=%q, want score=%d level=%q", got.Score, got.RiskLevel, tt.wantScore, tt.wantLevel)
			}
			if got.MaxScore != 3 {
				t.Errorf("max score = %d, want 3", got.MaxScore)
			}
		})
	}
}

func TestCalculateQSOFAMissingData(t *testing.T) {
	c := NewCalculator(nil)
	got := c.CalculateQSOFA(QSOFAInput{RespiratoryRate: ip(24)})
	if len(got.MissingData) != 2 {
		t.Errorf("missing = %v, want 2 entries", got.MissingData)
	}
}

func TestCalculateNIHSS(t *testing.T) {
	c := NewCalculator(nil)

	zero := 0
	full := NIHSSInput{
		LOCQuestions: &zero, LOCCommands: &zero, Gaze: &zero, VisualFields: &zero,
		FacialPalsy: &zero, MotorLeftArm: &zero, MotorRightArm: &zero,
		MotorLeftLeg: &zero, MotorRightLeg: &zero, Ataxia: &zero, Sensory: &zero,
		Language: &zero, Dysarthria: &zero, Extinction: &zero,
	}
	got := c.CalculateNIHSS(full)
	if got.Score != 0 || got.RiskLevel != RiskMinimal {
		t.Errorf("all-zero exam: score=%d level=%q, want 0/%q", got.Score, got.RiskLevel, RiskMinimal)
	}
	if len(got.MissingData) != 0 {
		t.Errorf("unexpected missing items: %v", got.MissingData)
	}

	severe := NIHSSInput{
		LOCQuestions: ip(2), Gaze: ip(2), VisualFields: ip(3),
		MotorLeftArm: ip(4), MotorLeftLeg: ip(4), Language: ip(3),
		FacialPalsy: ip(3),
	}
	got = c.CalculateNIHSS(severe)
	if got.Score != 21 || got.RiskLevel != RiskVeryHigh {
		t.Errorf("severe exam: score=%d level=%q, want 21/%q", got.Score, got.RiskLevel, RiskVeryHigh)
	}
	if len(got.MissingData) != 7 {
		t.Errorf("missing items = %d, want 7", len(got.MissingData))
	}

	minor := NIHSSInput{FacialPalsy: ip(1), Dysarthria: ip(1)}
	got = c.CalculateNIHSS(minor)
	if got.Score != 2 || got.RiskLevel != RiskLow {
		t.Errorf("minor exam: score=%d level=%q, want 2/%q", got.Score, got.RiskLevel, RiskLow)
	}
}

func TestCalculateCHA2DS2VASc(t *testing.T) {
	c := NewCalculator(nil)

	tests := []struct {
		name      string
		in        CHA2DS2VAScInput
		wantScore int
		wantLevel RiskLevel
	}{
		{
			name:      "maximum",
			in:        CHA2DS2VAScInput{Age: ip(80), Sex: "F", HasCHF: true, HasHypertension: true, HasDiabetes: true, HasStrokeTIA: true, HasVascularDisease: true},
			wantScore: 9,
			wantLevel: RiskVeryHigh,
		},
		{
			name:      "young healthy male",
			in:        CHA2DS2VAScInput{Age: ip(40), Sex: "M"},
			wantScore: 0,
			wantLevel: RiskLow,
		},
		{
			name:      "age 65 to 74 scores one",
			in:        CHA2DS2VAScInput{Age: ip(70), Sex: "M"},
			wantScore: 1,
			wantLevel: RiskLow,
		},
		{
			name:      "prior stroke scores two",
			in:        CHA2DS2VAScInput{Age: ip(50), Sex: "M", HasStrokeTIA: true},
			wantScore: 2,
			wantLevel: RiskModerate,
		},
		{
			name:      "lowercase female accepted",
			in:        CHA2DS2VAScInput{Age: ip(50), Sex: "f"},
			wantScore: 1,
			wantLevel: RiskLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CalculateCHA2DS2VASc(tt.in)
			if got.Score != tt.wantScore || got.RiskLevel != tt.wantLevel {
				t.Errorf("score=%d level=%q, want score=%d level=%q", got.Score, got.RiskLevel, tt.wantScore, tt.wantLevel)
			}
		})
	}
}

func TestCalculateCURB65(t *testing.T) {
	c := NewCalculator(nil)

	got := c.CalculateCURB65(CURB65Input{
		Confusion:       true,
		UreaMmolL:       fp(8.5),
		RespiratoryRate: ip(32),
		SystolicBP:      ip(85),
		DiastolicBP:     ip(55),
		Age:             ip(70),
	})
	if got.Score != 5 || got.RiskLevel != RiskHigh {
		t.Errorf("score=%d level=%q, want 5/%q", got.Score, got.RiskLevel, RiskHigh)
	}
	found := false
	for _, rec := range got.Recommendations {
		if strings.Contains(rec, "ICU") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ICU recommendation at score 5, got %v", got.Recommendations)
	}

	got = c.CalculateCURB65(CURB65Input{
		UreaMmolL:       fp(5.0),
		RespiratoryRate: ip(18),
		SystolicBP:      ip(120),
		DiastolicBP:     ip(80),
		Age:             ip(40),
	})
	if got.Score != 0 || got.RiskLevel != RiskLow {
		t.Errorf("score=%d level=%q, want 0/%q", got.Score, got.RiskLevel, RiskLow)
	}
}

func TestCalculateCURB65MissingBloodPressure(t *testing.T) {
	c := NewCalculator(nil)
	got := c.CalculateCURB65(CURB65Input{SystolicBP: ip(85), Age: ip(70)})
	found := false
	for _, m := range got.MissingData {
		if m == "blood_pressure" {
			found = true
		}
	}
	if !found {
		t.Errorf("an isolated systolic reading should mark blood_pressure missing: %v", got.MissingData)
	}
}

func TestCalculateMELD(t *testing.T) {
	c := NewCalculator(nil)

	// All labs at the 1.0 floor collapse the formula to the constant term.
	got := c.CalculateMELD(MELDInput{CreatinineMgdl: fp(1.0), BilirubinMgdl: fp(1.0), INR: fp(1.0)})
	if got.Score != 6 {
		t.Errorf("floor labs: score = %d, want 6", got.Score)
	}
	if got.RiskLevel != RiskLow {
		t.Errorf("floor labs: level = %q, want %q", got.RiskLevel, RiskLow)
	}

	// Sub-1.0 labs are floored, giving the same result.
	floored := c.CalculateMELD(MELDInput{CreatinineMgdl: fp(0.5), BilirubinMgdl: fp(0.8), INR: fp(0.9)})
	if floored.Score != got.Score {
		t.Errorf("sub-floor labs: score = %d, want %d", floored.Score, got.Score)
	}

	severe := c.CalculateMELD(MELDInput{CreatinineMgdl: fp(3.0), BilirubinMgdl: fp(10.0), INR: fp(2.5)})
	if severe.Score <= got.Score {
		t.Errorf("deranged labs should outscore floor labs: %d <= %d", severe.Score, got.Score)
	}
	if severe.Score > 40 {
		t.Errorf("score %d exceeds 40 cap", severe.Score)
	}

	dialysis := c.CalculateMELD(MELDInput{CreatinineMgdl: fp(1.0), BilirubinMgdl: fp(2.0), INR: fp(1.5), DialysisTwice: true})
	noDialysis := c.CalculateMELD(MELDInput{CreatinineMgdl: fp(1.0), BilirubinMgdl: fp(2.0), INR: fp(1.5)})
	if dialysis.Score <= noDialysis.Score {
		t.Errorf("dialysis should raise the score: %d <= %d", dialysis.Score, noDialysis.Score)
	}
}

func TestCalculateMELDMissingLabs(t *testing.T) {
	c := NewCalculator(nil)
	got := c.CalculateMELD(MELDInput{CreatinineMgdl: fp(1.2)})
	if got.Score != 0 {
		t.Errorf("score = %d, want 0 for incomplete labs", got.Score)
	}
	if !strings.Contains(got.Interpretation, "missing required lab values") {
		t.Errorf("interpretation = %q", got.Interpretation)
	}
	if len(got.MissingData) != 2 {
		t.Errorf("missing = %v, want bilirubin and INR", got.MissingData)
	}
}

func TestCalculateGCS(t *testing.T) {
	c := NewCalculator(nil)

	tests := []struct {
		name      string
		in        GCSInput
		wantScore int
		wantLevel RiskLevel
	}{
		{
			name:      "fully alert",
			in:        GCSInput{EyeOpening: ip(4), VerbalResponse: ip(5), MotorResponse: ip(6)},
			wantScore: 15,
			wantLevel: RiskLow,
		},
		{
			name:      "moderate impairment",
			in:        GCSInput{EyeOpening: ip(3), VerbalResponse: ip(3), MotorResponse: ip(4)},
			wantScore: 10,
			wantLevel: RiskModerate,
		},
		{
			name:      "severe impairment",
			in:        GCSInput{EyeOpening: ip(1), VerbalResponse: ip(2), MotorResponse: ip(3)},
			wantScore: 6,
			wantLevel: RiskCritical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CalculateGCS(tt.in)
			if got.Score != tt.wantScore || got.RiskLevel != tt.wantLevel {
				t.Errorf("score=%d level=%q, want score=%d level=%q", got.Score, got.RiskLevel, tt.wantScore, tt.wantLevel)
			}
			if got.MaxScore != 15 {
				t.Errorf("max score = %d, want 15", got.MaxScore)
			}
		})
	}
}

func TestCalculateGCSIncomplete(t *testing.T) {
	c := NewCalculator(nil)
	got := c.CalculateGCS(GCSInput{EyeOpening: ip(4)})
	if got.Score != 0 {
		t.Errorf("score = %d, want 0 for partial assessment", got.Score)
	}
	if got.Interpretation != "Incomplete GCS assessment" {
		t.Errorf("interpretation = %q", got.Interpretation)
	}
	if len(got.MissingData) != 2 {
		t.Errorf("missing = %v, want verbal and motor", got.MissingData)
	}
}
