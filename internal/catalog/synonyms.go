package catalog

// MedicalSynonyms maps free-text phrases (lowercase) to canonical symptom
// codes. Many phrases map to the same code; lookups are whole-word and
// case-insensitive on the caller's side.
var MedicalSynonyms = map[string]string{
	// Chest pain
	"chest pain":           "chest_pain",
	"chest discomfort":     "chest_pain",
	"chest pressure":       "chest_pain",
	"chest tightness":      "chest_pain",
	"chest heaviness":      "chest_pain",
	"crushing chest pain":  "chest_pain",
	"squeezing chest pain": "chest_pain",
	"stabbing chest pain":  "chest_pain",
	"sharp chest pain":     "chest_pain",
	"dull chest pain":      "chest_pain",
	"burning chest pain":   "chest_pain",
	"precordial pain":      "chest_pain",
	"retrosternal pain":    "chest_pain",
	"substernal pain":      "chest_pain",
	"angina":               "chest_pain",
	"angina pectoris":      "chest_pain",
	"cardiac pain":         "chest_pain",
	"heart pain":           "chest_pain",
	"pain in chest":        "chest_pain",
	"chest ache":           "chest_pain",
	"chest hurts":          "chest_pain",
	"crushing pressure":    "chest_pain",
	"pressure in chest":    "chest_pain",
	"tight chest":          "chest_pain",
	"heavy chest":          "chest_pain",

	// Pain radiation
	"radiating to arm":      "chest_pain_radiating",
	"radiating to left arm": "chest_pain_radiating",
	"radiating to jaw":      "chest_pain_radiating",
	"radiating to neck":     "chest_pain_radiating",
	"radiating to shoulder": "chest_pain_radiating",
	"pain radiating":        "chest_pain_radiating",
	"pain spreading":        "chest_pain_radiating",
	"pain going to arm":     "chest_pain_radiating",
	"pain shoots to arm":    "chest_pain_radiating",

	// Sweating
	"sweating":             "sweating",
	"diaphoresis":          "sweating",
	"perspiration":         "sweating",
	"profuse sweating":     "sweating",
	"excessive sweating":   "sweating",
	"cold sweat":           "sweating",
	"cold sweats":          "sweating",
	"clammy":               "sweating",
	"sweaty":               "sweating",
	"drenched in sweat":    "sweating",
	"breaking out in sweat": "sweating",
	"soaked in sweat":      "sweating",
	"dripping sweat":       "sweating",

	// Breathlessness
	"breathlessness":       "breathlessness",
	"shortness of breath":  "breathlessness",
	"short of breath":      "breathlessness",
	"sob":                  "breathlessness",
	"dyspnea":              "breathlessness",
	"difficulty breathing": "breathlessness",
	"labored breathing":    "breathlessness",
	"hard to breathe":      "breathlessness",
	"cant breathe":         "breathlessness",
	"cannot breathe":       "breathlessness",
	"trouble breathing":    "breathlessness",
	"breathing problems":   "breathlessness",
	"gasping for air":      "breathlessness",
	"air hunger":           "breathlessness",
	"suffocating":          "breathlessness",
	"winded":               "breathlessness",
	"out of breath":        "breathlessness",
	"respiratory distress": "breathlessness",

	// Palpitations / heart rate
	"palpitations":        "palpitations",
	"heart racing":        "palpitations",
	"racing heart":        "palpitations",
	"rapid heartbeat":     "palpitations",
	"fast heartbeat":      "palpitations",
	"heart pounding":      "palpitations",
	"pounding heart":      "palpitations",
	"fluttering heart":    "palpitations",
	"irregular heartbeat": "irregular_heartbeat",
	"skipped beats":       "irregular_heartbeat",
	"tachycardia":         "tachycardia",
	"fast heart rate":     "tachycardia",
	"rapid pulse":         "tachycardia",
	"elevated heart rate": "tachycardia",
	"bradycardia":         "bradycardia",
	"slow heart rate":     "bradycardia",
	"slow pulse":          "bradycardia",

	// Blood pressure
	"hypotension":            "hypotension",
	"low blood pressure":     "hypotension",
	"low bp":                 "hypotension",
	"bp drop":                "hypotension",
	"blood pressure dropped": "hypotension",

	// Headache
	"headache":             "headache",
	"head pain":            "headache",
	"head ache":            "headache",
	"cephalalgia":          "headache",
	"pain in head":         "headache",
	"head hurts":           "headache",
	"head pounding":        "headache",
	"pounding headache":    "headache",
	"throbbing headache":   "headache",
	"migraine":             "headache",
	"severe headache":      "severe_headache",
	"worst headache":       "severe_headache",
	"thunderclap headache": "severe_headache",
	"intense headache":     "severe_headache",
	"terrible headache":    "severe_headache",
	"splitting headache":   "severe_headache",

	// Neck stiffness
	"stiff neck":      "stiff_neck",
	"neck stiffness":  "stiff_neck",
	"nuchal rigidity": "stiff_neck",
	"rigid neck":      "stiff_neck",
	"cant move neck":  "stiff_neck",
	"neck pain":       "stiff_neck",
	"neck is stiff":   "stiff_neck",

	// Photophobia
	"photophobia":         "photophobia",
	"light sensitivity":   "photophobia",
	"sensitive to light":  "photophobia",
	"light hurts eyes":    "photophobia",
	"cant tolerate light": "photophobia",
	"bothered by light":   "photophobia",

	// Confusion / altered mental status
	"confusion":             "confusion",
	"confused":              "confusion",
	"disorientation":        "altered_mental_status",
	"disoriented":           "altered_mental_status",
	"altered mental status": "altered_mental_status",
	"altered consciousness": "altered_mental_status",
	"altered sensorium":     "altered_mental_status",
	"mental changes":        "altered_mental_status",
	"not thinking clearly":  "confusion",
	"foggy mind":            "confusion",
	"cant think straight":   "confusion",
	"loss of consciousness": "altered_mental_status",
	"passed out":            "altered_mental_status",
	"fainted":               "altered_mental_status",
	"syncope":               "dizziness",
	"blacked out":           "altered_mental_status",

	// Stroke symptoms
	"facial droop":                "facial_droop",
	"face drooping":               "facial_droop",
	"droopy face":                 "facial_droop",
	"facial asymmetry":            "facial_droop",
	"one side of face drooping":   "facial_droop",
	"facial paralysis":            "facial_droop",
	"bells palsy":                 "facial_droop",
	"weakness one side":           "sudden_weakness_one_side",
	"one sided weakness":          "sudden_weakness_one_side",
	"weak on one side":            "sudden_weakness_one_side",
	"hemiparesis":                 "sudden_weakness_one_side",
	"hemiplegia":                  "sudden_weakness_one_side",
	"right sided weakness":        "sudden_weakness_one_side",
	"left sided weakness":         "sudden_weakness_one_side",
	"arm weakness":                "sudden_weakness_one_side",
	"leg weakness":                "sudden_weakness_one_side",
	"cant move arm":               "sudden_weakness_one_side",
	"cant move leg":               "sudden_weakness_one_side",
	"slurred speech":              "slurred_speech",
	"speech difficulty":           "slurred_speech",
	"trouble speaking":            "slurred_speech",
	"cant speak clearly":          "slurred_speech",
	"aphasia":                     "slurred_speech",
	"dysarthria":                  "slurred_speech",
	"garbled speech":              "slurred_speech",
	"unclear speech":              "slurred_speech",

	// Dizziness
	"dizziness":        "dizziness",
	"dizzy":            "dizziness",
	"lightheaded":      "dizziness",
	"light headed":     "dizziness",
	"vertigo":          "dizziness",
	"spinning":         "dizziness",
	"room spinning":    "dizziness",
	"unsteady":         "dizziness",
	"balance problems": "dizziness",

	// Vision
	"vision changes":  "vision_changes",
	"vision problems": "vision_changes",
	"blurred vision":  "vision_changes",
	"blurry vision":   "vision_changes",
	"double vision":   "vision_changes",
	"diplopia":        "vision_changes",
	"vision loss":     "vision_loss",
	"cant see":        "vision_loss",
	"blind":           "vision_loss",
	"blindness":       "vision_loss",
	"lost vision":     "vision_loss",

	// Numbness / tingling
	"numbness":          "numbness_tingling",
	"tingling":          "numbness_tingling",
	"pins and needles":  "numbness_tingling",
	"paresthesia":       "numbness_tingling",
	"numb":              "numbness_tingling",
	"loss of sensation": "numbness_tingling",
	"no feeling":        "numbness_tingling",

	// Cough / sputum
	"cough":               "cough",
	"coughing":            "cough",
	"productive cough":    "cough",
	"wet cough":           "cough",
	"dry cough":           "cough",
	"persistent cough":    "cough",
	"chronic cough":       "cough",
	"hacking cough":       "cough",
	"sputum":              "phlegm",
	"phlegm":              "phlegm",
	"mucus":               "phlegm",
	"bloody sputum":       "blood_in_sputum",
	"blood in sputum":     "blood_in_sputum",
	"hemoptysis":          "blood_in_sputum",
	"coughing blood":      "blood_in_sputum",
	"coughing up blood":   "blood_in_sputum",
	"blood tinged sputum": "blood_in_sputum",
	"rusty sputum":        "blood_in_sputum",

	// Breathing sounds / rate
	"wheezing":            "wheezing",
	"wheeze":              "wheezing",
	"whistling breathing": "wheezing",
	"stridor":             "stridor",
	"noisy breathing":     "stridor",
	"tachypnea":           "tachypnea",
	"rapid breathing":     "tachypnea",
	"fast breathing":      "tachypnea",
	"breathing fast":      "tachypnea",
	"hyperventilation":    "tachypnea",

	// Abdominal pain
	"abdominal pain":  "abdominal_pain",
	"stomach pain":    "abdominal_pain",
	"belly pain":      "abdominal_pain",
	"tummy pain":      "abdominal_pain",
	"stomach ache":    "abdominal_pain",
	"stomach hurts":   "abdominal_pain",
	"belly hurts":     "abdominal_pain",
	"pain in stomach": "abdominal_pain",
	"pain in abdomen": "abdominal_pain",

	// Abdominal quadrants
	"right lower quadrant": "abdominal_pain_rlq",
	"rlq":                  "abdominal_pain_rlq",
	"rlq pain":             "abdominal_pain_rlq",
	"right iliac fossa":    "abdominal_pain_rlq",
	"right lower abdomen":  "abdominal_pain_rlq",
	"lower right abdomen":  "abdominal_pain_rlq",
	"mcburney point":       "abdominal_pain_rlq",
	"mcburneys point":      "abdominal_pain_rlq",
	"right upper quadrant": "abdominal_pain_ruq",
	"ruq":                  "abdominal_pain_ruq",
	"ruq pain":             "abdominal_pain_ruq",
	"right upper abdomen":  "abdominal_pain_ruq",
	"upper right abdomen":  "abdominal_pain_ruq",
	"left lower quadrant":  "abdominal_pain_llq",
	"llq":                  "abdominal_pain_llq",
	"llq pain":             "abdominal_pain_llq",
	"left lower abdomen":   "abdominal_pain_llq",
	"lower left abdomen":   "abdominal_pain_llq",
	"left upper quadrant":  "abdominal_pain_luq",
	"luq":                  "abdominal_pain_luq",
	"luq pain":             "abdominal_pain_luq",
	"left upper abdomen":   "abdominal_pain_luq",
	"upper left abdomen":   "abdominal_pain_luq",
	"epigastric":           "epigastric_pain",
	"epigastric pain":      "epigastric_pain",
	"upper abdominal pain": "epigastric_pain",
	"upper stomach pain":   "epigastric_pain",
	"pain above stomach":   "epigastric_pain",
	"periumbilical":        "abdominal_pain",
	"periumbilical pain":   "abdominal_pain",
	"around belly button":  "abdominal_pain",
	"around umbilicus":     "abdominal_pain",
	"near belly button":    "abdominal_pain",
	"around navel":         "abdominal_pain",

	// Peritoneal signs
	"rebound tenderness": "rebound_tenderness",
	"rebound":            "rebound_tenderness",
	"rebound pain":       "rebound_tenderness",
	"guarding":           "guarding",
	"abdominal guarding": "guarding",
	"rigid abdomen":      "guarding",
	"tense abdomen":      "guarding",
	"murphy sign":        "murphy_sign",
	"murphy's sign":      "murphy_sign",
	"murphys sign":       "murphy_sign",
	"migrating pain":     "migrating_pain",
	"pain migration":     "migrating_pain",
	"pain moved":         "migrating_pain",
	"pain shifted":       "migrating_pain",
	"pain started":       "migrating_pain",
	"pain began":         "migrating_pain",
	"radiating to back":  "pain_radiating_to_back",
	"back radiation":     "pain_radiating_to_back",
	"pain to back":       "pain_radiating_to_back",
	"pain in back":       "pain_radiating_to_back",

	// Nausea / vomiting
	"nausea":           "nausea",
	"nauseous":         "nausea",
	"nauseated":        "nausea",
	"feeling sick":     "nausea",
	"queasy":           "nausea",
	"sick to stomach":  "nausea",
	"vomiting":         "vomiting",
	"vomit":            "vomiting",
	"throwing up":      "vomiting",
	"emesis":           "vomiting",
	"vomited":          "vomiting",
	"puking":           "vomiting",
	"retching":         "vomiting",
	"hematemesis":      "vomiting",
	"bloody vomit":     "vomiting",
	"vomiting blood":   "vomiting",
	"coffee ground":    "vomiting",

	// Appetite
	"loss of appetite":   "loss_of_appetite",
	"no appetite":        "loss_of_appetite",
	"decreased appetite": "loss_of_appetite",
	"not hungry":         "loss_of_appetite",
	"cant eat":           "loss_of_appetite",
	"dont want to eat":   "loss_of_appetite",
	"anorexia":           "loss_of_appetite",

	// Bowel
	"diarrhea":             "diarrhea",
	"loose stools":         "diarrhea",
	"watery stools":        "diarrhea",
	"constipation":         "constipation",
	"cant poop":            "constipation",
	"bloody stool":         "bloody_stool",
	"blood in stool":       "bloody_stool",
	"melena":               "bloody_stool",
	"black stool":          "bloody_stool",
	"tarry stool":          "bloody_stool",
	"hematochezia":         "bloody_stool",
	"bright red blood":     "bloody_stool",
	"rectal bleeding":      "bloody_stool",
	"abdominal distention": "abdominal_distention",
	"bloating":             "abdominal_distention",
	"bloated":              "abdominal_distention",
	"distended abdomen":    "abdominal_distention",
	"swollen belly":        "abdominal_distention",

	// Fever
	"high fever":           "high_fever",
	"fever":                "high_fever",
	"febrile":              "high_fever",
	"pyrexia":              "high_fever",
	"elevated temperature": "high_fever",
	"temperature":          "high_fever",
	"hot":                  "high_fever",
	"burning up":           "high_fever",
	"feverish":             "high_fever",
	"hyperthermia":         "high_fever",
	"low grade fever":      "mild_fever",
	"mild fever":           "mild_fever",
	"slight fever":         "mild_fever",

	// Fatigue
	"fatigue":      "fatigue",
	"tired":        "fatigue",
	"tiredness":    "fatigue",
	"exhaustion":   "fatigue",
	"exhausted":    "fatigue",
	"weakness":     "fatigue",
	"weak":         "fatigue",
	"malaise":      "fatigue",
	"lethargy":     "fatigue",
	"lethargic":    "fatigue",
	"asthenia":     "fatigue",
	"no energy":    "fatigue",
	"low energy":   "fatigue",
	"feeling weak": "fatigue",
	"run down":     "fatigue",

	// Weight
	"weight loss":               "weight_loss",
	"losing weight":             "weight_loss",
	"lost weight":               "weight_loss",
	"unintentional weight loss": "weight_loss",
	"cachexia":                  "weight_loss",
	"wasting":                   "weight_loss",

	// Musculoskeletal
	"joint pain":     "joint_pain",
	"arthralgia":     "joint_pain",
	"joints hurt":    "joint_pain",
	"painful joints": "joint_pain",
	"aching joints":  "joint_pain",
	"muscle pain":    "joint_pain",
	"myalgia":        "joint_pain",
	"muscles hurt":   "joint_pain",
	"muscle aches":   "joint_pain",
	"body aches":     "joint_pain",
	"body pain":      "joint_pain",

	// Legs
	"leg swelling":    "leg_swelling",
	"swollen leg":     "leg_swelling",
	"leg edema":       "leg_swelling",
	"edema":           "leg_swelling",
	"puffy legs":      "leg_swelling",
	"leg pain":        "leg_pain",
	"calf pain":       "calf_pain",
	"calf tenderness": "calf_pain",
	"pain in calf":    "calf_pain",

	// Skin
	"rash":          "skin_rash",
	"skin rash":     "skin_rash",
	"spots":         "skin_rash",
	"red spots":     "skin_rash",
	"skin eruption": "skin_rash",
	"itching":       "itching",
	"itchy":         "itching",
	"pruritus":      "itching",
	"scratching":    "itching",
	"erythema":      "erythema",
	"redness":       "erythema",
	"red skin":      "erythema",
	"skin redness":  "erythema",
	"warmth":        "skin_warmth",
	"warm to touch": "skin_warmth",
	"hot skin":      "skin_warmth",
	"urticaria":     "urticaria",
	"hives":         "urticaria",
	"welts":         "urticaria",

	// Renal / urinary
	"flank pain":                      "flank_pain",
	"side pain":                       "flank_pain",
	"pain in side":                    "flank_pain",
	"costovertebral angle tenderness": "flank_pain",
	"cvat":                            "flank_pain",
	"decreased urine":                 "decreased_urine_output",
	"oliguria":                        "decreased_urine_output",
	"anuria":                          "decreased_urine_output",
	"no urine":                        "decreased_urine_output",
	"not urinating":                   "decreased_urine_output",
	"low urine output":                "decreased_urine_output",
	"frequent urination":              "polyuria",
	"polyuria":                        "polyuria",
	"excessive urination":             "polyuria",
	"urinating a lot":                 "polyuria",
	"peeing a lot":                    "polyuria",

	// Metabolic
	"excessive thirst":   "excessive_hunger",
	"polydipsia":         "excessive_hunger",
	"very thirsty":       "excessive_hunger",
	"always thirsty":     "excessive_hunger",
	"increased thirst":   "excessive_hunger",
	"excessive hunger":   "excessive_hunger",
	"polyphagia":         "excessive_hunger",
	"always hungry":      "excessive_hunger",
	"increased hunger":   "excessive_hunger",
	"increased appetite": "excessive_hunger",
}

// Abbreviations maps common clinical shorthand to canonical symptom codes.
// These are folded into the symptom lookup alongside MedicalSynonyms.
var Abbreviations = map[string]string{
	"cp":       "chest_pain",
	"n/v":      "nausea",
	"n&v":      "nausea",
	"abd pain": "abdominal_pain",
	"ha":       "headache",
	"temp":     "high_fever",
	"wt loss":  "weight_loss",
	"loc":      "altered_mental_status",
	"ams":      "altered_mental_status",
}
