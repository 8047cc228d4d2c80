package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"clinical-dss-server/internal/catalog"
)

// negationTokens are the single-word negation markers checked as whole
// tokens inside the window preceding a match.
var negationTokens = map[string]bool{
	"no":       true,
	"not":      true,
	"denies":   true,
	"without":  true,
	"absent":   true,
	"negative": true,
	"r/o":      true,
}

// normalizeText lowercases the input, converts light punctuation to spaces
// and collapses whitespace runs.
func normalizeText(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.NewReplacer(",", " ", ";", " ", ":", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// ExtractSymptoms scans clinical text for catalog phrases and returns the
// set of asserted canonical symptom codes. A matched phrase is suppressed
// when a negation marker appears as a whole token within the preceding
// window. The result is a set: phrases mapping to the same code are
// idempotent.
func (e *Engine) ExtractSymptoms(text string) (map[string]bool, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text input must be a non-empty string")
	}

	normalized := normalizeText(text)
	model := e.model.Load()
	detected := make(map[string]bool)

	for _, entry := range model.lookup {
		loc := entry.re.FindStringIndex(normalized)
		if loc == nil {
			continue
		}

		if e.isNegated(normalized, loc[0]) {
			e.log.Debug("negated symptom",
				zap.String("symptom", entry.code),
				zap.String("variant", entry.variant))
			continue
		}

		if !detected[entry.code] {
			e.log.Debug("detected symptom",
				zap.String("symptom", entry.code),
				zap.String("variant", entry.variant))
		}
		detected[entry.code] = true
	}

	return detected, nil
}

// isNegated reports whether a negation marker precedes the match at start
// within the configured window.
func (e *Engine) isNegated(text string, start int) bool {
	windowStart := start - e.cfg.NegationWindowChars
	if windowStart < 0 {
		windowStart = 0
	}
	tokens := strings.Fields(text[windowStart:start])
	for i, tok := range tokens {
		if negationTokens[tok] {
			return true
		}
		if tok == "ruled" && i+1 < len(tokens) && tokens[i+1] == "out" {
			return true
		}
	}
	return false
}

// detectLocations finds anatomical-location phrases in normalized text and
// returns the matched phrases in catalog order.
func (e *Engine) detectLocations(normalized string) []string {
	if !e.cfg.EnableLocationDetection {
		return nil
	}
	var found []string
	for _, phrase := range locationPhrases {
		if strings.Contains(normalized, phrase) {
			found = append(found, phrase)
		}
	}
	return found
}

// assertLocationSymptoms adds the quadrant symptom codes implied by detected
// anatomical phrases.
func assertLocationSymptoms(symptoms map[string]bool, locations []string) {
	for _, loc := range locations {
		if code, ok := catalog.LocationSymptomMap[loc]; ok {
			symptoms[code] = true
		}
	}
}

// matchPatterns evaluates each clinical pattern against the asserted symptom
// set and the normalized text. A pattern fires when both its symptom-count
// and keyword-count minimums are met; its confidence is the average of the
// two match ratios.
func (e *Engine) matchPatterns(symptoms map[string]bool, normalized string) []PatternMatch {
	if !e.cfg.EnablePatternMatching {
		return nil
	}

	var matches []PatternMatch
	for _, p := range catalog.ClinicalPatterns {
		var symptomsPresent []string
		for _, s := range p.Symptoms {
			if symptoms[s] {
				symptomsPresent = append(symptomsPresent, s)
			}
		}
		var keywordsPresent []string
		for _, k := range p.Keywords {
			if strings.Contains(normalized, k) {
				keywordsPresent = append(keywordsPresent, k)
			}
		}

		if len(symptomsPresent) < p.MinSymptoms || len(keywordsPresent) < p.MinKeywords {
			continue
		}

		confidence := float64(len(symptomsPresent))/float64(len(p.Symptoms))*0.5 +
			float64(len(keywordsPresent))/float64(len(p.Keywords))*0.5
		if confidence > 1.0 {
			confidence = 1.0
		}

		matches = append(matches, PatternMatch{
			Pattern:    p.Name,
			Disease:    p.Disease,
			Boost:      p.Boost,
			Confidence: confidence,
			Symptoms:   symptomsPresent,
			Keywords:   keywordsPresent,
		})
		e.log.Info("matched clinical pattern",
			zap.String("pattern", p.Name),
			zap.String("disease", p.Disease),
			zap.Float64("confidence", confidence))
	}
	return matches
}

// locationPhrases is the catalog's location keys in deterministic order.
var locationPhrases = sortedKeys(catalog.LocationDiseaseMap)
