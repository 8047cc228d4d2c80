package catalog

// ClinicalPattern is a named multi-symptom presentation that boosts a target
// disease when enough of its required symptoms and keywords are present.
type ClinicalPattern struct {
	Name        string
	Symptoms    []string
	Keywords    []string
	Disease     string
	Boost       float64
	MinSymptoms int
	MinKeywords int
	Description string
}

// ClinicalPatterns lists the recognized critical presentations, in the order
// they are evaluated.
var ClinicalPatterns = []ClinicalPattern{
	{
		Name:        "appendicitis_classic",
		Symptoms:    []string{"abdominal_pain_rlq", "vomiting", "loss_of_appetite"},
		Keywords:    []string{"rlq", "right lower quadrant", "mcburney", "migrated", "periumbilical", "rebound", "guarding", "right iliac fossa"},
		Disease:     "Appendicitis",
		Boost:       3.0,
		MinSymptoms: 2,
		MinKeywords: 1,
		Description: "Classic appendicitis presentation with RLQ pain",
	},
	{
		Name:        "appendicitis_migrating",
		Symptoms:    []string{"abdominal_pain", "migrating_pain"},
		Keywords:    []string{"periumbilical", "moved to rlq", "migrated", "started around belly button"},
		Disease:     "Appendicitis",
		Boost:       2.5,
		MinSymptoms: 2,
		MinKeywords: 1,
		Description: "Appendicitis with characteristic pain migration",
	},
	{
		Name:        "meningitis_classic",
		Symptoms:    []string{"severe_headache", "high_fever", "stiff_neck"},
		Keywords:    []string{"photophobia", "nuchal", "severe headache", "worsening", "worst headache", "confusion", "altered mental"},
		Disease:     "Meningitis",
		Boost:       3.0,
		MinSymptoms: 2,
		MinKeywords: 1,
		Description: "Classic meningitis triad with nuchal rigidity",
	},
	{
		Name:        "mi_classic",
		Symptoms:    []string{"chest_pain", "sweating", "breathlessness"},
		Keywords:    []string{"radiating", "arm", "jaw", "sudden onset", "crushing", "pressure", "left arm", "diaphoresis", "nausea"},
		Disease:     "Heart attack",
		Boost:       3.0,
		MinSymptoms: 2,
		MinKeywords: 1,
		Description: "Classic MI presentation with radiation",
	},
}
