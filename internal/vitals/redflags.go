package vitals

import "fmt"

// redFlagRule pairs an absolute-threshold condition with the alert it emits.
// These thresholds are independent of the range classification and may fire
// even when the status is merely abnormal.
type redFlagRule struct {
	applies        func(Snapshot) bool
	build          func(Snapshot) RedFlag
	countsCritical bool
}

var redFlagRules = []redFlagRule{
	{
		applies:        func(s Snapshot) bool { return s.TemperatureC != nil && *s.TemperatureC >= 40.0 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "CRITICAL HYPERTHERMIA",
				Message:   fmt.Sprintf("Temperature %.1f°C - Immediate cooling measures required", *s.TemperatureC),
				Condition: "Hyperthermia",
				VitalSignsInvolved: []string{"temperature"},
				RecommendedActions: []string{
					"Immediate cooling measures (ice packs, cooling blanket)",
					"Check for heat stroke, infection, drug reaction",
					"Monitor for seizures",
					"Consider ICU transfer",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.TemperatureC != nil && *s.TemperatureC <= 35.0 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "CRITICAL HYPOTHERMIA",
				Message:   fmt.Sprintf("Temperature %.1f°C - Warming required", *s.TemperatureC),
				Condition: "Hypothermia",
				VitalSignsInvolved: []string{"temperature"},
				RecommendedActions: []string{
					"Active warming measures",
					"Warmed IV fluids",
					"Cardiac monitoring (risk of arrhythmia)",
					"Consider ICU",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.HeartRateBPM != nil && *s.HeartRateBPM <= 40 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "SEVERE BRADYCARDIA",
				Message:   fmt.Sprintf("Heart rate %d bpm - Risk of cardiac arrest", *s.HeartRateBPM),
				Condition: "Bradycardia",
				VitalSignsInvolved: []string{"heart_rate"},
				RecommendedActions: []string{
					"Continuous cardiac monitoring",
					"12-lead ECG immediately",
					"Check medications (beta-blockers, etc.)",
					"Prepare atropine/pacing",
					"ACLS team notification",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.HeartRateBPM != nil && *s.HeartRateBPM >= 140 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertCritical,
				Title:     "SEVERE TACHYCARDIA",
				Message:   fmt.Sprintf("Heart rate %d bpm - Assess for shock/arrhythmia", *s.HeartRateBPM),
				Condition: "Tachycardia",
				VitalSignsInvolved: []string{"heart_rate"},
				RecommendedActions: []string{
					"12-lead ECG",
					"Assess for shock (septic, hypovolemic, cardiogenic)",
					"Check for arrhythmia (SVT, AF, VT)",
					"Fluid status assessment",
					"Consider cardiology consult",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.SystolicBP != nil && *s.SystolicBP <= 70 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			diastolic := "?"
			if s.DiastolicBP != nil {
				diastolic = fmt.Sprintf("%d", *s.DiastolicBP)
			}
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "SEVERE HYPOTENSION / SHOCK",
				Message:   fmt.Sprintf("BP %d/%s - SHOCK PROTOCOL", *s.SystolicBP, diastolic),
				Condition: "Hypotensive Shock",
				VitalSignsInvolved: []string{"blood_pressure"},
				RecommendedActions: []string{
					"Initiate shock protocol immediately",
					"Fluid resuscitation (consider pressors)",
					"Identify shock type (septic/cardiogenic/hypovolemic)",
					"Blood cultures before antibiotics",
					"ICU notification",
					"Activate rapid response team",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		// Hypertensive emergency needs both pressures elevated.
		applies: func(s Snapshot) bool {
			return s.SystolicBP != nil && *s.SystolicBP >= 180 &&
				s.DiastolicBP != nil && *s.DiastolicBP >= 120
		},
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "HYPERTENSIVE EMERGENCY",
				Message:   fmt.Sprintf("BP %d/%d - Risk of end-organ damage", *s.SystolicBP, *s.DiastolicBP),
				Condition: "Hypertensive Emergency",
				VitalSignsInvolved: []string{"blood_pressure"},
				RecommendedActions: []string{
					"Assess for end-organ damage (stroke, MI, renal failure)",
					"Continuous BP monitoring",
					"IV antihypertensives (nicardipine, labetalol)",
					"Neuro exam, cardiac markers, renal function",
					"ICU admission likely required",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.SpO2Percent != nil && *s.SpO2Percent <= 85 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "CRITICAL HYPOXEMIA",
				Message:   fmt.Sprintf("SpO2 %d%% - Immediate oxygen/airway management", *s.SpO2Percent),
				Condition: "Severe Hypoxemia",
				VitalSignsInvolved: []string{"spo2"},
				RecommendedActions: []string{
					"High-flow oxygen immediately (non-rebreather mask)",
					"Assess airway patency",
					"Consider intubation if worsening",
					"Chest X-ray STAT",
					"ABG analysis",
					"Respiratory therapy consult",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.RespiratoryRate != nil && *s.RespiratoryRate <= 8 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "SEVERE BRADYPNEA",
				Message:   fmt.Sprintf("Respiratory rate %d - Risk of respiratory arrest", *s.RespiratoryRate),
				Condition: "Bradypnea",
				VitalSignsInvolved: []string{"respiratory_rate"},
				RecommendedActions: []string{
					"Assess airway immediately",
					"Check for narcotic overdose (naloxone if suspected)",
					"Prepare for airway management",
					"Consider ICU/intubation",
					"Continuous monitoring",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.RespiratoryRate != nil && *s.RespiratoryRate >= 30 },
		countsCritical: false,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertCritical,
				Title:     "SEVERE TACHYPNEA",
				Message:   fmt.Sprintf("Respiratory rate %d - Respiratory distress", *s.RespiratoryRate),
				Condition: "Tachypnea",
				VitalSignsInvolved: []string{"respiratory_rate"},
				RecommendedActions: []string{
					"Assess work of breathing",
					"Oxygen supplementation",
					"Check for pneumonia, PE, pulmonary edema",
					"Consider CPAP/BiPAP",
					"Respiratory therapy consult",
				},
				TimeCritical:       true,
				EscalationRequired: false,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.GCSScore != nil && *s.GCSScore <= 8 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "SEVERELY ALTERED MENTAL STATUS",
				Message:   fmt.Sprintf("GCS %d - Consider airway protection", *s.GCSScore),
				Condition: "Altered Mental Status",
				VitalSignsInvolved: []string{"gcs"},
				RecommendedActions: []string{
					"Protect airway (GCS <=8 = intubation threshold)",
					"CT head STAT",
					"Check glucose immediately",
					"Toxicology screen",
					"Neurology consult",
					"ICU admission",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.BloodGlucoseMgdl != nil && *s.BloodGlucoseMgdl >= 400 },
		countsCritical: false,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertCritical,
				Title:     "SEVERE HYPERGLYCEMIA",
				Message:   fmt.Sprintf("Blood glucose %.0f mg/dL - Risk of DKA/HHS", *s.BloodGlucoseMgdl),
				Condition: "Hyperglycemia",
				VitalSignsInvolved: []string{"blood_glucose"},
				RecommendedActions: []string{
					"Check for DKA (BMP, VBG, ketones, anion gap)",
					"Start insulin drip if DKA confirmed",
					"Aggressive IV fluid resuscitation",
					"Potassium monitoring",
					"Endocrinology consult",
				},
				TimeCritical:       true,
				EscalationRequired: false,
			}
		},
	},
	{
		applies:        func(s Snapshot) bool { return s.BloodGlucoseMgdl != nil && *s.BloodGlucoseMgdl <= 50 },
		countsCritical: true,
		build: func(s Snapshot) RedFlag {
			return RedFlag{
				Level:     AlertEmergency,
				Title:     "SEVERE HYPOGLYCEMIA",
				Message:   fmt.Sprintf("Blood glucose %.0f mg/dL - Immediate treatment required", *s.BloodGlucoseMgdl),
				Condition: "Hypoglycemia",
				VitalSignsInvolved: []string{"blood_glucose"},
				RecommendedActions: []string{
					"D50 IV push immediately (if conscious: PO glucose)",
					"Continuous glucose monitoring",
					"Check insulin/sulfonylurea levels",
					"Assess for altered mental status",
					"Prevent recurrence",
				},
				TimeCritical:       true,
				EscalationRequired: true,
			}
		},
	},
}

// detectRedFlags runs the absolute-threshold battery in rule order.
func (a *Analyzer) detectRedFlags(s Snapshot) []RedFlag {
	var flags []RedFlag
	for _, rule := range redFlagRules {
		if !rule.applies(s) {
			continue
		}
		flags = append(flags, rule.build(s))
		if rule.countsCritical {
			a.criticalAlerts.Add(1)
		}
	}
	return flags
}
