package catalog

// LocationDiseaseMap maps anatomical-location phrases to the diseases they
// make more likely. Matching diseases receive a flat multiplicative boost
// during inference.
var LocationDiseaseMap = map[string][]string{
	"right lower quadrant": {"Appendicitis", "Urinary tract infection", "Pyelonephritis"},
	"rlq":                  {"Appendicitis", "Urinary tract infection", "Pyelonephritis"},
	"mcburney":             {"Appendicitis"},
	"right iliac fossa":    {"Appendicitis"},
	"right upper quadrant": {"Cholecystitis", "Hepatitis B", "Hepatitis C", "Chronic cholestasis"},
	"ruq":                  {"Cholecystitis", "Hepatitis B", "Hepatitis C", "Chronic cholestasis"},
	"epigastric":           {"GERD", "Peptic ulcer diseae", "Gastroenteritis", "Acute Pancreatitis"},
	"epigastrium":          {"GERD", "Peptic ulcer diseae", "Gastroenteritis", "Acute Pancreatitis"},
	"left upper quadrant":  {"Gastroenteritis", "Peptic ulcer diseae"},
	"luq":                  {"Gastroenteritis", "Peptic ulcer diseae"},
	"left lower quadrant":  {"Diverticulitis", "Urinary tract infection"},
	"llq":                  {"Diverticulitis", "Urinary tract infection"},
	"periumbilical":        {"Gastroenteritis", "Appendicitis", "Bowel Obstruction"},
	"around umbilicus":     {"Gastroenteritis", "Appendicitis", "Bowel Obstruction"},
	"retrosternal":         {"Heart attack", "GERD", "Aortic Dissection"},
	"substernal":           {"Heart attack", "GERD", "Aortic Dissection"},
	"flank":                {"Pyelonephritis", "Renal Failure", "Acute Kidney Injury"},
	"costovertebral angle": {"Pyelonephritis", "Renal Failure"},
}

// LocationSymptomMap maps detected anatomical phrases to the quadrant
// symptom code they imply, asserted on top of the extracted symptom set.
var LocationSymptomMap = map[string]string{
	"right lower quadrant": "abdominal_pain_rlq",
	"rlq":                  "abdominal_pain_rlq",
	"right upper quadrant": "abdominal_pain_ruq",
	"ruq":                  "abdominal_pain_ruq",
	"left lower quadrant":  "abdominal_pain_llq",
	"llq":                  "abdominal_pain_llq",
	"epigastric":           "epigastric_pain",
	"epigastrium":          "epigastric_pain",
}

// CriticalConditions are diagnoses demanding immediate emergency evaluation.
var CriticalConditions = map[string]bool{
	"Heart attack":                 true,
	"Stroke":                       true,
	"Sepsis":                       true,
	"Pulmonary Embolism":           true,
	"Acute liver failure":          true,
	"Paralysis (brain hemorrhage)": true,
	"Meningitis":                   true,
	"Aortic Dissection":            true,
	"Anaphylaxis":                  true,
	"Diabetic Ketoacidosis":        true,
	"Acute Pancreatitis":           true,
	"Bowel Obstruction":            true,
}

// UrgentConditions are diagnoses requiring prompt evaluation within 24 hours.
// Critical conditions imply urgent; the two sets are disjoint.
var UrgentConditions = map[string]bool{
	"Pneumonia":            true,
	"Appendicitis":         true,
	"Tuberculosis":         true,
	"Typhoid":              true,
	"Malaria":              true,
	"Dengue":               true,
	"Cholecystitis":        true,
	"Diverticulitis":       true,
	"Pyelonephritis":       true,
	"Cellulitis":           true,
	"Deep Vein Thrombosis": true,
	"Renal Failure":        true,
	"Acute Kidney Injury":  true,
	"Endocarditis":         true,
}
