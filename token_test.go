package mikser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Kot pije mleko.",
		"  \t\nzażółć gęślą jaźń  ",
		"ul. Krótka 12/3, 00-950 Warszawa!",
		"a,b--c...d",
		"ĄĆĘŁŃÓŚŹŻąćęłńóśźż",
		"mixed латиница 漢字 text",
		"1234567890",
		"\r\n\r\n",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize(in) {
			b.WriteString(tok.Text)
		}
		if got := b.String(); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"", nil},
		{"Kot pije", []Token{
			{"Kot", Word},
			{" ", Whitespace},
			{"pije", Word},
		}},
		{"gęś 12.", []Token{
			{"gęś", Word},
			{" ", Whitespace},
			{"12", Digits},
			{".", Other},
		}},
		// each non-class character is its own token, never a run
		{"--", []Token{
			{"-", Other},
			{"-", Other},
		}},
		{"a,b", []Token{
			{"a", Word},
			{",", Other},
			{"b", Word},
		}},
		// maximal runs never span two classes
		{"rok2024", []Token{
			{"rok", Word},
			{"2024", Digits},
		}},
		{" \t\n", []Token{
			{" \t\n", Whitespace},
		}},
		// non-Polish letters are not word runes
		{"łza λ", []Token{
			{"łza", Word},
			{" ", Whitespace},
			{"λ", Other},
		}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
