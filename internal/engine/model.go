package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"

	"clinical-dss-server/internal/catalog"
)

// Model is the trained disease/symptom probability table. It is immutable
// after construction; the engine swaps whole instances on reload.
type Model struct {
	SymptomToDisease map[string]map[string]float64 `json:"symptom_to_disease"`
	Priors           map[string]float64            `json:"priors"`
	SymptomMappings  map[string][]string           `json:"symptom_mappings"`

	// diseases preserves the key order of the priors object in the source
	// document, used as the stable tie-break when ranking.
	diseases []string
	lookup   []lookupEntry
}

// lookupEntry is one catalog phrase compiled for whole-word matching.
type lookupEntry struct {
	variant string
	code    string
	re      *regexp.Regexp
}

// LoadModel reads and validates a trained model document from disk.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file %s: %w", path, err)
	}
	m, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("parsing model file %s: %w", path, err)
	}
	return m, nil
}

// ParseModel parses and validates a trained model document. The document
// must carry non-empty symptom_to_disease and priors objects, and every
// disease referenced by a likelihood map must appear in priors.
func ParseModel(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid model JSON: %w", err)
	}

	if len(m.SymptomToDisease) == 0 {
		return nil, fmt.Errorf("model missing required component: symptom_to_disease")
	}
	if len(m.Priors) == 0 {
		return nil, fmt.Errorf("model missing required component: priors")
	}
	for symptom, likelihoods := range m.SymptomToDisease {
		for disease := range likelihoods {
			if _, ok := m.Priors[disease]; !ok {
				return nil, fmt.Errorf("model inconsistent: disease %q under symptom %q has no prior", disease, symptom)
			}
		}
	}

	diseases, err := priorKeyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("reading priors key order: %w", err)
	}
	m.diseases = diseases
	m.lookup = buildSymptomLookup(m.SymptomMappings)
	return &m, nil
}

// Diseases returns the disease names in model order.
func (m *Model) Diseases() []string {
	return m.diseases
}

// likelihood returns P(symptom|disease), or 0 when the pair is untracked.
func (m *Model) likelihood(symptom, disease string) float64 {
	return m.SymptomToDisease[symptom][disease]
}

// displayName returns the first alias for a symptom code, falling back to
// the code itself.
func (m *Model) displayName(symptom string) string {
	if aliases := m.SymptomMappings[symptom]; len(aliases) > 0 {
		return aliases[0]
	}
	return symptom
}

// buildSymptomLookup folds the model's alias table, the synonym catalog and
// the abbreviation table into a single phrase list, sorted by phrase so that
// extraction order is deterministic.
func buildSymptomLookup(mappings map[string][]string) []lookupEntry {
	merged := make(map[string]string)
	for code, aliases := range mappings {
		for _, alias := range aliases {
			merged[normalizeText(alias)] = code
		}
	}
	for phrase, code := range catalog.MedicalSynonyms {
		merged[phrase] = code
	}
	for phrase, code := range catalog.Abbreviations {
		merged[phrase] = code
	}

	variants := make([]string, 0, len(merged))
	for v := range merged {
		variants = append(variants, v)
	}
	sort.Strings(variants)

	lookup := make([]lookupEntry, 0, len(variants))
	for _, v := range variants {
		lookup = append(lookup, lookupEntry{
			variant: v,
			code:    merged[v],
			re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(v) + `\b`),
		})
	}
	return lookup
}

// priorKeyOrder extracts the key order of the top-level priors object.
// encoding/json maps are unordered, so the ranking tie-break needs the
// document order read separately.
func priorKeyOrder(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("model document is not a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		if key != "priors" {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}

		open, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := open.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("priors is not a JSON object")
		}
		var order []string
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, _ := nameTok.(string)
			order = append(order, name)
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
		return order, nil
	}
	return nil, fmt.Errorf("priors object not found")
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	if d == '{' || d == '[' {
		for dec.More() {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
		// Closing delimiter.
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	return nil
}
