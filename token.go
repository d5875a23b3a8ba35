package mikser

import (
	"strings"
	"unicode"
)

// TokenKind classifies a token span.
type TokenKind int

const (
	// Whitespace is a run of Unicode whitespace.
	Whitespace TokenKind = iota
	// Word is a run of letters (ASCII plus Polish diacritics).
	Word
	// Digits is a run of ASCII digits.
	Digits
	// Other is a single character that fits none of the above.
	Other
)

// Token is a contiguous span of the original text.
// Concatenating the Text of all tokens of a text, in order, reproduces
// that text exactly.
type Token struct {
	Text string
	Kind TokenKind
}

// polishLetters are the diacritic letters of the Polish alphabet, both cases.
// Word tokens consist of these plus ASCII letters; everything else
// (including letters from other scripts) falls through to Other.
const polishLetters = "ĄĆĘŁŃÓŚŹŻąćęłńóśźż"

func isWordRune(r rune) bool {
	if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
		return true
	}
	return strings.ContainsRune(polishLetters, r)
}

func classify(r rune) TokenKind {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case isWordRune(r):
		return Word
	case '0' <= r && r <= '9':
		return Digits
	}
	return Other
}

// Tokenize splits text into maximal runs of whitespace, letters and digits;
// any other character becomes a single-character token. No token spans two
// character classes.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	var tokens []Token
	runes := []rune(text)
	for i := 0; i < len(runes); {
		kind := classify(runes[i])
		j := i + 1
		if kind != Other {
			for j < len(runes) && classify(runes[j]) == kind {
				j++
			}
		}
		tokens = append(tokens, Token{Text: string(runes[i:j]), Kind: kind})
		i = j
	}
	return tokens
}
