package vitals

// Status is the classification of a single vital sign reading.
type Status string

const (
	StatusNormal     Status = "normal"
	StatusBorderline Status = "borderline"
	StatusAbnormal   Status = "abnormal"
	StatusCritical   Status = "critical"
)

// AlertLevel is the severity of a red-flag alert.
type AlertLevel string

const (
	AlertInfo      AlertLevel = "info"
	AlertWarning   AlertLevel = "warning"
	AlertUrgent    AlertLevel = "urgent"
	AlertCritical  AlertLevel = "critical"
	AlertEmergency AlertLevel = "emergency"
)

// AgeGroup buckets patients for reference-range selection.
type AgeGroup string

const (
	AgeInfant  AgeGroup = "infant"
	AgeChild   AgeGroup = "child"
	AgeAdult   AgeGroup = "adult"
	AgeElderly AgeGroup = "elderly"
	AgeAll     AgeGroup = "all"
)

// Range holds the classification thresholds of one vital for one age group.
// A nil bound means that side of the range is unbounded.
type Range struct {
	LowCritical  *float64
	Low          *float64
	High         *float64
	HighCritical *float64
}

func f(v float64) *float64 { return &v }

// vitalRanges is the age-adjusted reference table. Vitals without pediatric
// rows fall back to the "all" entry.
var vitalRanges = map[string]map[AgeGroup]Range{
	"temperature": {
		AgeAdult:   {LowCritical: f(35.0), Low: f(36.1), High: f(37.8), HighCritical: f(40.0)},
		AgeElderly: {LowCritical: f(35.0), Low: f(36.1), High: f(37.8), HighCritical: f(40.0)},
		AgeChild:   {LowCritical: f(35.5), Low: f(36.5), High: f(37.5), HighCritical: f(39.5)},
		AgeInfant:  {LowCritical: f(36.0), Low: f(36.5), High: f(37.5), HighCritical: f(38.5)},
	},
	"heart_rate": {
		AgeAdult:   {LowCritical: f(40), Low: f(60), High: f(100), HighCritical: f(140)},
		AgeElderly: {LowCritical: f(40), Low: f(50), High: f(100), HighCritical: f(120)},
		AgeChild:   {LowCritical: f(50), Low: f(70), High: f(120), HighCritical: f(160)},
		AgeInfant:  {LowCritical: f(80), Low: f(100), High: f(160), HighCritical: f(200)},
	},
	"respiratory_rate": {
		AgeAdult:   {LowCritical: f(8), Low: f(12), High: f(20), HighCritical: f(30)},
		AgeElderly: {LowCritical: f(8), Low: f(12), High: f(20), HighCritical: f(28)},
		AgeChild:   {LowCritical: f(12), Low: f(15), High: f(30), HighCritical: f(40)},
		AgeInfant:  {LowCritical: f(20), Low: f(30), High: f(50), HighCritical: f(60)},
	},
	"systolic_bp": {
		AgeAdult:   {LowCritical: f(70), Low: f(90), High: f(140), HighCritical: f(180)},
		AgeElderly: {LowCritical: f(80), Low: f(100), High: f(150), HighCritical: f(180)},
		AgeChild:   {LowCritical: f(60), Low: f(80), High: f(120), HighCritical: f(140)},
	},
	"diastolic_bp": {
		AgeAdult:   {LowCritical: f(40), Low: f(60), High: f(90), HighCritical: f(120)},
		AgeElderly: {LowCritical: f(50), Low: f(60), High: f(90), HighCritical: f(110)},
		AgeChild:   {LowCritical: f(35), Low: f(50), High: f(80), HighCritical: f(100)},
	},
	"spo2": {
		AgeAll: {LowCritical: f(85), Low: f(92), High: f(100)},
	},
	"gcs": {
		AgeAll: {LowCritical: f(8), Low: f(13), High: f(15)},
	},
}

// ageGroupFor buckets an age in years; unknown ages default to adult.
func ageGroupFor(ageYears *int) AgeGroup {
	if ageYears == nil {
		return AgeAdult
	}
	switch {
	case *ageYears < 1:
		return AgeInfant
	case *ageYears < 12:
		return AgeChild
	case *ageYears >= 65:
		return AgeElderly
	default:
		return AgeAdult
	}
}

// classify places a reading against its reference range. Borderline means
// within 10% of the low or high boundary without crossing it.
func classify(value float64, vitalName string, group AgeGroup) Status {
	ranges, ok := vitalRanges[vitalName]
	if !ok {
		return StatusNormal
	}
	r, ok := ranges[group]
	if !ok {
		r, ok = ranges[AgeAll]
		if !ok {
			return StatusNormal
		}
	}

	if r.LowCritical != nil && value < *r.LowCritical {
		return StatusCritical
	}
	if r.HighCritical != nil && value > *r.HighCritical {
		return StatusCritical
	}
	if r.Low != nil && value < *r.Low {
		return StatusAbnormal
	}
	if r.High != nil && value > *r.High {
		return StatusAbnormal
	}

	if r.Low != nil && value < *r.Low*1.1 {
		return StatusBorderline
	}
	if r.High != nil && value > *r.High*0.9 {
		return StatusBorderline
	}
	return StatusNormal
}
