package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"clinical-dss-server/internal/catalog"
)

// Engine is the clinical inference core. It is safe for concurrent use: the
// model is immutable and swapped atomically on reload, and every diagnose
// call works on its own data.
type Engine struct {
	cfg   Config
	log   *zap.Logger
	model atomic.Pointer[Model]

	critical map[string]bool
	urgent   map[string]bool

	totalDiagnoses     atomic.Int64
	criticalDetections atomic.Int64
}

// NewEngine constructs an engine around a validated model.
func NewEngine(cfg Config, model *Model, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		cfg:      cfg,
		log:      log,
		critical: catalog.CriticalConditions,
		urgent:   catalog.UrgentConditions,
	}
	e.model.Store(model)
	log.Info("diagnostic engine initialized",
		zap.Int("symptoms", len(model.SymptomToDisease)),
		zap.Int("diseases", len(model.diseases)),
		zap.Int("criticalConditions", len(e.critical)),
		zap.Bool("patternMatching", cfg.EnablePatternMatching),
		zap.Bool("locationDetection", cfg.EnableLocationDetection))
	return e
}

// ReloadModel swaps in a new model. Readers see either the old or the new
// complete table, never a partial one.
func (e *Engine) ReloadModel(model *Model) {
	e.model.Store(model)
	e.log.Info("model reloaded",
		zap.Int("symptoms", len(model.SymptomToDisease)),
		zap.Int("diseases", len(model.diseases)))
}

// Diagnose runs the full pipeline: symptom extraction, posterior
// computation, confidence and urgency scoring, and assembly of the ranked
// differential. Every code path returns a well-formed result; validation
// and no-signal conditions surface as failure results, never as panics.
func (e *Engine) Diagnose(query string, returnFull bool) *DiagnosticResult {
	start := time.Now()
	e.totalDiagnoses.Add(1)

	fail := func(msg string, symptoms map[string]bool, recs []string) *DiagnosticResult {
		r := &DiagnosticResult{
			Success:          false,
			Query:            query,
			Error:            msg,
			Recommendations:  recs,
			ConfidenceLevel:  ConfidenceVeryLow,
			Timestamp:        time.Now().UTC(),
			ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		}
		if symptoms != nil {
			r.SymptomsDetected = len(symptoms)
			r.Symptoms = sortedKeys(symptoms)
		}
		return r
	}

	symptoms, err := e.ExtractSymptoms(query)
	if err != nil {
		e.log.Error("validation error", zap.Error(err))
		return fail(err.Error(), nil, nil)
	}

	normalized := normalizeText(query)
	locations := e.detectLocations(normalized)
	assertLocationSymptoms(symptoms, locations)
	matches := e.matchPatterns(symptoms, normalized)

	if len(symptoms) == 0 {
		e.log.Warn("no symptoms detected in query")
		return fail("No symptoms detected in query", nil, []string{
			"Include specific symptoms: fever, cough, chest pain, headache, etc.",
			"Use medical terminology or common clinical descriptions",
			`Example: "Patient presents with chest pain, sweating, and shortness of breath"`,
		})
	}

	posteriors, err := e.posteriors(symptoms, matches, locations)
	if err != nil || len(posteriors) == 0 {
		e.log.Warn("unable to generate differential diagnosis")
		return fail("Unable to generate diagnosis from detected symptoms", symptoms, nil)
	}

	nSymptoms := len(symptoms)
	confidence, confLevel := e.CalculateConfidence(posteriors, nSymptoms)

	ranked := e.rank(posteriors)
	if !returnFull && len(ranked) > 10 {
		ranked = ranked[:10]
	}
	topDisease := ranked[0].disease
	topProb := ranked[0].prob

	isUrgent, isCritical, urgencyScore := e.AssessUrgency(topDisease, confidence)

	differential := make([]DifferentialItem, 0, len(ranked))
	for i, c := range ranked {
		supporting := e.supportingSymptoms(c.disease, symptoms)

		var tier string
		switch {
		case c.prob >= 0.5:
			tier = ConfidenceHigh
		case c.prob >= 0.2:
			tier = ConfidenceModerate
		default:
			tier = ConfidenceLow
		}

		names := make([]string, 0, 5)
		scores := make([]SymptomScore, 0, 3)
		for j, s := range supporting {
			if j < 5 {
				names = append(names, s.Symptom)
			}
			if j < 3 {
				scores = append(scores, SymptomScore{Symptom: s.Symptom, Score: round4(s.Score)})
			}
		}

		differential = append(differential, DifferentialItem{
			Rank:               i + 1,
			Disease:            c.disease,
			Probability:        round4(c.prob),
			Confidence:         tier,
			SupportingSymptoms: names,
			SymptomMatchScores: scores,
		})
	}

	recommendations := e.generateRecommendations(topDisease, confidence, nSymptoms, isUrgent, isCritical)
	warnings := e.generateWarnings(differential, confidence)

	var debug *DebugInfo
	if len(matches) > 0 || len(locations) > 0 {
		debug = &DebugInfo{
			PatternsMatched:   len(matches),
			PatternDetails:    matches,
			LocationsDetected: locations,
		}
	}

	e.log.Info("diagnosis completed",
		zap.String("topDiagnosis", topDisease),
		zap.String("confidenceLevel", confLevel),
		zap.Duration("elapsed", time.Since(start)))

	return &DiagnosticResult{
		Success:          true,
		Query:            query,
		SymptomsDetected: nSymptoms,
		Symptoms:         sortedKeys(symptoms),
		Confidence:       confidence,
		ConfidenceLevel:  confLevel,
		Differential:     differential,
		TopDiagnosis:     topDisease,
		TopProbability:   round4(topProb),
		Recommendations:  recommendations,
		IsUrgent:         isUrgent,
		IsCritical:       isCritical,
		UrgencyScore:     urgencyScore,
		Warnings:         warnings,
		Timestamp:        time.Now().UTC(),
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		Debug:            debug,
	}
}

type candidate struct {
	disease string
	prob    float64
	order   int
}

// rank sorts candidates by descending probability, breaking ties by model
// order so equal probabilities rank deterministically.
func (e *Engine) rank(posteriors map[string]float64) []candidate {
	model := e.model.Load()
	orderOf := make(map[string]int, len(model.diseases))
	for i, d := range model.diseases {
		orderOf[d] = i
	}

	ranked := make([]candidate, 0, len(posteriors))
	for disease, prob := range posteriors {
		ranked = append(ranked, candidate{disease: disease, prob: prob, order: orderOf[disease]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].prob != ranked[j].prob {
			return ranked[i].prob > ranked[j].prob
		}
		return ranked[i].order < ranked[j].order
	})
	return ranked
}

// supportingSymptoms returns the asserted symptoms that support a diagnosis,
// as display names sorted by descending likelihood.
func (e *Engine) supportingSymptoms(disease string, symptoms map[string]bool) []SymptomScore {
	model := e.model.Load()

	var supporting []SymptomScore
	for _, symptom := range sortedKeys(symptoms) {
		if p := model.likelihood(symptom, disease); p > 0 {
			supporting = append(supporting, SymptomScore{
				Symptom: model.displayName(symptom),
				Score:   p,
			})
		}
	}
	sort.SliceStable(supporting, func(i, j int) bool {
		return supporting[i].Score > supporting[j].Score
	})
	return supporting
}

// Statistics reports engine counters and model dimensions for monitoring.
func (e *Engine) Statistics() map[string]any {
	model := e.model.Load()
	return map[string]any{
		"totalDiagnoses":     e.totalDiagnoses.Load(),
		"criticalDetections": e.criticalDetections.Load(),
		"diseasesAvailable":  len(model.diseases),
		"symptomsTracked":    len(model.SymptomToDisease),
		"clinicalPatterns":   len(catalog.ClinicalPatterns),
		"medicalSynonyms":    len(catalog.MedicalSynonyms),
		"patternMatching":    e.cfg.EnablePatternMatching,
		"locationDetection":  e.cfg.EnableLocationDetection,
	}
}
