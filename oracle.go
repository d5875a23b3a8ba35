package mikser

import "strings"

// Interpretation is a single morphological reading of a surface form.
type Interpretation struct {
	// Form is the surface form as it appears in text.
	Form string
	// Lemma is the dictionary base form. Morfeusz-style dictionaries may
	// append a ":"-delimited disambiguation suffix (e.g. "zamek:s1").
	Lemma string
	// Tag is the colon-delimited morphological tag, e.g. "subst:sg:gen:m2".
	Tag string
}

// Oracle is the morphological analysis and generation service the mixer
// consumes. Analyze returns the readings of a token in ranking order;
// Generate returns the surface forms of lemma matching tag, best first.
// Both may return empty results for unknown words.
//
// The mixer calls the Oracle concurrently exactly as often as its own
// callers do; implementations that are not safe for concurrent use must
// be serialized by the embedding layer.
type Oracle interface {
	Analyze(token string) ([]Interpretation, error)
	Generate(lemma, tag string) ([]string, error)
}

// NounAnalysis is the noun reading of a word token, if it has one.
type NounAnalysis struct {
	IsNoun   bool
	Lemma    string
	Tag      string
	Features MorphFeatures
}

// CleanLemma strips the ":"-delimited disambiguation suffix from a lemma
// or generated form: "zamek:s1" → "zamek".
func CleanLemma(lemma string) string {
	if i := strings.IndexByte(lemma, ':'); i >= 0 {
		return lemma[:i]
	}
	return lemma
}

// analyzeNoun returns the first noun reading the oracle ranks for token.
// Oracle failure is treated as "not a noun".
func analyzeNoun(o Oracle, token string) NounAnalysis {
	readings, err := o.Analyze(token)
	if err != nil {
		return NounAnalysis{}
	}
	for _, in := range readings {
		f := ParseTag(in.Tag)
		if !f.IsNoun() {
			continue
		}
		return NounAnalysis{
			IsNoun:   true,
			Lemma:    CleanLemma(in.Lemma),
			Tag:      in.Tag,
			Features: f,
		}
	}
	return NounAnalysis{}
}
