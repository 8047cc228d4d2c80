package engine

import "fmt"

// emergencyProtocols are disease-specific actions appended for critical
// diagnoses.
var emergencyProtocols = map[string]string{
	"Heart attack":          "STAT: ECG, Troponin I/T, CK-MB - Activate cardiac catheterization lab",
	"Stroke":                "STAT: CT head, neurological assessment - Activate stroke team (time window critical)",
	"Sepsis":                "STAT: Blood cultures x2, lactate, CBC, BMP - Start broad spectrum antibiotics within 1 hour",
	"Meningitis":            "STAT: Lumbar puncture, blood cultures, CT head if indicated - Start empiric antibiotics immediately",
	"Pulmonary Embolism":    "STAT: CT pulmonary angiography, D-dimer, ABG - Consider thrombolytics",
	"Anaphylaxis":           "STAT: IM Epinephrine 0.3mg, establish IV access, continuous monitoring",
	"Aortic Dissection":     "STAT: CT angiography, cardiothoracic surgery consult - BP control critical",
	"Diabetic Ketoacidosis": "STAT: BMP, VBG, beta-hydroxybutyrate - Start insulin drip and IVF",
	"Acute Pancreatitis":    "STAT: Lipase, LFTs, imaging - Aggressive IVF resuscitation",
}

// urgentWorkups are disease-specific workup orders for urgent diagnoses.
var urgentWorkups = map[string]string{
	"Pneumonia":            "Order: Chest X-ray, CBC with differential, sputum culture, consider blood cultures",
	"Appendicitis":         "Surgical consultation stat, CBC with differential, CT abdomen/pelvis with contrast",
	"Cholecystitis":        "RUQ ultrasound, CBC, LFTs, lipase - Surgical consultation",
	"Pyelonephritis":       "Urinalysis with culture, CBC, BMP, renal ultrasound - Start empiric antibiotics",
	"Deep Vein Thrombosis": "Venous duplex ultrasound, D-dimer, Wells score - Consider anticoagulation",
	"Cellulitis":           "Blood cultures if systemic symptoms, consider imaging - Start antibiotics",
}

// generateRecommendations builds the recommendation list for a completed
// diagnosis, keyed by the urgency class, the confidence and the amount of
// symptom evidence.
func (e *Engine) generateRecommendations(topDisease string, confidence float64, nSymptoms int, isUrgent, isCritical bool) []string {
	var recs []string

	switch {
	case isCritical:
		recs = append(recs, fmt.Sprintf("CRITICAL: %s - IMMEDIATE emergency evaluation required", topDisease))
		if protocol, ok := emergencyProtocols[topDisease]; ok {
			recs = append(recs, protocol)
		} else {
			recs = append(recs, "Call emergency services immediately - initiate emergency protocols")
		}
	case isUrgent:
		recs = append(recs, fmt.Sprintf("URGENT: %s requires prompt evaluation within 24 hours", topDisease))
		if workup, ok := urgentWorkups[topDisease]; ok {
			recs = append(recs, workup)
		}
	}

	if confidence < 0.6 {
		recs = append(recs,
			"Moderate confidence - comprehensive diagnostic workup strongly recommended",
			"Consider specialist consultation for definitive diagnosis")
	}

	if nSymptoms < 3 {
		recs = append(recs,
			"Limited symptom data - detailed history and physical examination essential",
			"Consider systematic review of systems to identify additional symptoms")
	}

	recs = append(recs,
		"Clinical correlation required - use professional medical judgment",
		"Order confirmatory tests based on differential diagnosis and clinical context",
		"Review evidence-based guidelines for current management protocols")

	return recs
}

// generateWarnings flags critical conditions appearing anywhere in the top
// of the differential, low overall confidence and ambiguous distributions.
func (e *Engine) generateWarnings(differential []DifferentialItem, confidence float64) []string {
	var warnings []string

	for i, item := range differential {
		if i >= 5 {
			break
		}
		if e.critical[item.Disease] && item.Probability > 0.03 {
			warnings = append(warnings, fmt.Sprintf(
				"%s at %.1f%% (Rank #%d) - MUST be ruled out with appropriate testing",
				item.Disease, item.Probability*100, i+1))
		}
	}

	if confidence < 0.5 {
		warnings = append(warnings,
			"Low diagnostic confidence - specialist consultation strongly recommended",
			"Consider additional testing to narrow differential diagnosis")
	}

	highProbCount := 0
	for _, item := range differential {
		if item.Probability > 0.15 {
			highProbCount++
		}
	}
	if highProbCount >= 3 {
		warnings = append(warnings, fmt.Sprintf(
			"Multiple possible diagnoses (%d) with similar probabilities - comprehensive evaluation needed",
			highProbCount))
	}

	if len(differential) >= 2 {
		gap := differential[0].Probability - differential[1].Probability
		if gap < 0.05 && gap > -0.05 {
			warnings = append(warnings,
				"Top diagnoses very close in probability - additional clinical data needed for differentiation")
		}
	}

	return warnings
}
