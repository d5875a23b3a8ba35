package mikser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Lexicon is a file-backed Oracle: a finite dictionary of
// (surface form, lemma, tag) rows loaded once at startup.
//
// File format: one row per line, tab-separated
//
//	form<TAB>lemma<TAB>tag
//
// Blank lines and lines starting with "#" are skipped. Rows keep file
// order, so Analyze and Generate return candidates in dictionary order.
//
// A Lexicon is read-only after loading and safe for concurrent use.
type Lexicon struct {
	// byForm maps lowercased surface form → readings in file order.
	byForm map[string][]Interpretation

	// byLemma maps lowercased cleaned lemma → rows in file order.
	byLemma map[string][]Interpretation
}

// NewLexicon loads a lexicon file from path.
func NewLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	lex, err := ReadLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// ReadLexicon parses lexicon rows from r.
func ReadLexicon(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{
		byForm:  make(map[string][]Interpretation),
		byLemma: make(map[string][]Interpretation),
	}
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 tab-separated fields, got %d", lineNum, len(fields))
		}
		in := Interpretation{Form: fields[0], Lemma: fields[1], Tag: fields[2]}
		formKey := strings.ToLower(in.Form)
		lex.byForm[formKey] = append(lex.byForm[formKey], in)
		lemmaKey := strings.ToLower(CleanLemma(in.Lemma))
		lex.byLemma[lemmaKey] = append(lex.byLemma[lemmaKey], in)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return lex, nil
}

// Entries returns the number of rows loaded.
func (l *Lexicon) Entries() int {
	n := 0
	for _, ins := range l.byForm {
		n += len(ins)
	}
	return n
}

// Analyze returns the dictionary readings of token, in file order. Lookup
// is case-insensitive, so sentence-initial capitals still resolve.
func (l *Lexicon) Analyze(token string) ([]Interpretation, error) {
	return l.byForm[strings.ToLower(token)], nil
}

// Generate returns the surface forms of lemma whose tag equals tag
// exactly, in file order. The lemma may carry a disambiguation suffix;
// it is cleaned before lookup.
func (l *Lexicon) Generate(lemma, tag string) ([]string, error) {
	var forms []string
	for _, in := range l.byLemma[strings.ToLower(CleanLemma(lemma))] {
		if in.Tag == tag {
			forms = append(forms, in.Form)
		}
	}
	return forms, nil
}
