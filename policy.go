package mikser

import "strings"

// stopLemmas are indefinite/interrogative pronoun-like lemmas that analyze
// as substantives but read badly when swapped for a donor noun. Matched
// case-folded against the cleaned lemma.
var stopLemmas = map[string]bool{
	"co":         true,
	"cokolwiek":  true,
	"coś":        true,
	"kto":        true,
	"ktokolwiek": true,
	"ktoś":       true,
	"nic":        true,
	"nikt":       true,
	"to":         true,
	"wszystko":   true,
}

// riskyPrepositions typically govern a non-nominative complement. A noun
// directly after one is usually not in the slot its first reading claims,
// so safe mode refuses to touch it. Matched case-folded against the
// preceding word token.
var riskyPrepositions = map[string]bool{
	"bez":    true,
	"dla":    true,
	"do":     true,
	"koło":   true,
	"ku":     true,
	"między": true,
	"mimo":   true,
	"na":     true,
	"nad":    true,
	"o":      true,
	"obok":   true,
	"od":     true,
	"po":     true,
	"pod":    true,
	"przed":  true,
	"przez":  true,
	"przy":   true,
	"u":      true,
	"w":      true,
	"we":     true,
	"wśród":  true,
	"z":      true,
	"za":     true,
	"ze":     true,
}

// safeGuards reports whether a noun token passes the safe-mode guards:
// nominative case, lemma not stoplisted, and the preceding word token
// (empty when there is none) not a risky preposition. Guard checks never
// touch the seeded generator, so a rejected token consumes no draws.
func safeGuards(a NounAnalysis, prevWord string) bool {
	if a.Features.Case != Nominative {
		return false
	}
	if stopLemmas[strings.ToLower(a.Lemma)] {
		return false
	}
	if prevWord != "" && riskyPrepositions[strings.ToLower(prevWord)] {
		return false
	}
	return true
}
