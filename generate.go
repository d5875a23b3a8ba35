package mikser

import (
	"strings"
	"unicode"
)

// generateForm asks the oracle for a surface form of lemma in the slot
// described by tag. The tag is always the recipient token's own tag, never
// the donor's, so the replacement inherits the original slot's case, number
// and gender. When the oracle fails or returns nothing, the bare lemma is
// returned instead; generation never surfaces an error.
func generateForm(o Oracle, lemma, tag string) string {
	forms, err := o.Generate(lemma, tag)
	if err != nil || len(forms) == 0 {
		return lemma
	}
	if f := CleanLemma(forms[0]); f != "" {
		return f
	}
	return lemma
}

// matchCasing reapplies src's leading-letter casing to dst: when src starts
// with an uppercase rune, dst is capitalized (first rune upper, the rest
// lowered); otherwise dst is returned as generated.
func matchCasing(src, dst string) string {
	sr := []rune(src)
	if len(sr) == 0 || !unicode.IsUpper(sr[0]) {
		return dst
	}
	dr := []rune(dst)
	if len(dr) == 0 {
		return dst
	}
	return string(unicode.ToUpper(dr[0])) + strings.ToLower(string(dr[1:]))
}
