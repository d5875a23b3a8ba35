// Package mikser rewrites Polish text by probabilistically replacing its
// nouns with inflected forms of nouns harvested from a second, "donor" text.
// Each replaced word keeps its original grammatical slot (the donor lemma is
// inflected with the recipient token's own tag) and its original leading
// casing; whitespace, punctuation and digits pass through untouched.
//
// All randomness is drawn from a generator seeded deterministically from the
// inputs, so identical (recipient, donor, strength) triples always produce
// identical output, across processes and runs.
package mikser

import (
	"math"
	"math/rand"
	"strings"
)

// Mixer ties the substitution engine to a morphological Oracle.
//
// A Mixer holds no per-call state: Mix and MixSafe are safe for concurrent
// use exactly when the Oracle's Analyze and Generate are. A Lexicon is
// read-only after load and therefore safe; oracles wrapping a non-reentrant
// engine must be serialized by the embedding layer.
type Mixer struct {
	oracle Oracle
}

// NewMixer returns a Mixer backed by o, which is typically created once per
// process and shared by every call.
func NewMixer(o Oracle) *Mixer {
	return &Mixer{oracle: o}
}

// Mix rewrites recipient, replacing each noun token with probability
// strength by a donor noun inflected into that token's slot. It is total:
// any (text, text, number) triple yields a result without error. Strength
// is clamped to [0,1] before seeding; an empty recipient yields "", and a
// donor without nouns leaves the recipient unchanged.
func (m *Mixer) Mix(recipient, donor string, strength float64) string {
	return m.mix(recipient, donor, strength, false)
}

// MixSafe is Mix under the stricter substitution policy: only nominative
// nouns are replaced, pronoun-like lemmas are skipped, and so is any noun
// directly after a preposition that governs a non-nominative complement.
func (m *Mixer) MixSafe(recipient, donor string, strength float64) string {
	return m.mix(recipient, donor, strength, true)
}

func clampStrength(s float64) float64 {
	switch {
	case math.IsNaN(s) || s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// mix walks the recipient tokens left to right. Per noun token that passes
// the active policy's guards it consumes exactly one decision draw, plus
// one pool-index draw when the decision falls at or below strength. The
// decision draw is consumed even when the token is kept, so the whole
// output is a pure function of the seed and the token stream. Draw value 0
// still substitutes at strength 0; that boundary is inherent in comparing
// a half-open [0,1) draw against the threshold.
func (m *Mixer) mix(recipient, donor string, strength float64, safe bool) string {
	strength = clampStrength(strength)

	tokens := Tokenize(recipient)
	if len(tokens) == 0 {
		return ""
	}
	pool := donorLemmas(m.oracle, donor)
	if len(pool) == 0 {
		return recipient
	}

	rng := rand.New(rand.NewSource(Seed(recipient, donor, strength)))

	var out strings.Builder
	out.Grow(len(recipient))
	prevWord := ""
	for _, t := range tokens {
		if t.Kind != Word {
			out.WriteString(t.Text)
			continue
		}
		repl := t.Text
		a := analyzeNoun(m.oracle, t.Text)
		if a.IsNoun && (!safe || safeGuards(a, prevWord)) && rng.Float64() <= strength {
			lemma := pool[rng.Intn(len(pool))]
			repl = matchCasing(t.Text, generateForm(m.oracle, lemma, a.Tag))
		}
		out.WriteString(repl)
		prevWord = t.Text
	}
	return out.String()
}
