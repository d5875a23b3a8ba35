package mikser

// donorLemmas harvests the noun lemmas of text, in token order.
// Duplicates are kept: donor selection is uniform over the pool, so a lemma
// occurring twice in the donor is twice as likely to be drawn.
func donorLemmas(o Oracle, text string) []string {
	var pool []string
	for _, t := range Tokenize(text) {
		if t.Kind != Word {
			continue
		}
		if a := analyzeNoun(o, t.Text); a.IsNoun && a.Lemma != "" {
			pool = append(pool, a.Lemma)
		}
	}
	return pool
}
