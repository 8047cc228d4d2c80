package engine

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"clinical-dss-server/internal/catalog"
)

// ComputePosteriors runs the naive-Bayes pass over the asserted symptom set,
// applies pattern and location boosts against the original text, then
// renormalizes and drops diseases below the minimum-probability threshold.
func (e *Engine) ComputePosteriors(symptoms map[string]bool, text string) (map[string]float64, error) {
	normalized := normalizeText(text)
	matches := e.matchPatterns(symptoms, normalized)
	locations := e.detectLocations(normalized)
	return e.posteriors(symptoms, matches, locations)
}

// posteriors performs the multiplicative pass and boost application over a
// precomputed set of pattern matches and detected locations.
func (e *Engine) posteriors(symptoms map[string]bool, matches []PatternMatch, locations []string) (map[string]float64, error) {
	if len(symptoms) == 0 {
		return nil, fmt.Errorf("symptoms must be a non-empty set")
	}

	model := e.model.Load()

	asserted := make([]string, 0, len(symptoms))
	for s, present := range symptoms {
		if present {
			asserted = append(asserted, s)
		}
	}
	sort.Strings(asserted)

	posteriors := make(map[string]float64)
	for _, disease := range model.diseases {
		prob := model.Priors[disease]
		if prob <= 0 {
			continue
		}
		for _, symptom := range asserted {
			if p := model.likelihood(symptom, disease); p > 0 {
				prob *= p
			} else {
				// Symptom not associated with this disease: penalized but
				// not impossible.
				prob *= e.cfg.UnknownSymptomPenalty
			}
		}
		if prob > 0 {
			posteriors[disease] = prob
		}
	}

	e.applyBoosts(posteriors, matches, locations)

	var total float64
	for _, p := range posteriors {
		total += p
	}
	if total > 0 {
		for disease, p := range posteriors {
			posteriors[disease] = p / total
		}
	}

	for disease, p := range posteriors {
		if p < e.cfg.MinProbabilityThreshold {
			delete(posteriors, disease)
		}
	}

	e.log.Debug("computed posteriors",
		zap.Int("candidates", len(posteriors)),
		zap.Int("diseases", len(model.diseases)))
	return posteriors, nil
}

// applyBoosts multiplies pattern and location boosts into the candidate set.
// A pattern's effective boost scales with its match confidence; locations
// apply a flat factor to every associated candidate.
func (e *Engine) applyBoosts(posteriors map[string]float64, matches []PatternMatch, locations []string) {
	for _, m := range matches {
		if _, ok := posteriors[m.Disease]; !ok {
			continue
		}
		effective := 1.0 + (m.Boost-1.0)*m.Confidence
		posteriors[m.Disease] *= effective
		e.log.Debug("applied pattern boost",
			zap.String("disease", m.Disease),
			zap.Float64("boost", effective))
	}

	for _, loc := range locations {
		for _, disease := range catalog.LocationDiseaseMap[loc] {
			if _, ok := posteriors[disease]; ok {
				posteriors[disease] *= e.cfg.LocationBoost
			}
		}
	}
}

// sortedKeys returns a map's keys in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
