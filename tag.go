package mikser

import "strings"

// Number is the grammatical number segment of a morphological tag.
type Number string

const (
	Singular Number = "sg"
	Plural   Number = "pl"
)

// Case is the grammatical case segment of a morphological tag.
type Case string

const (
	Nominative   Case = "nom"
	Genitive     Case = "gen"
	Dative       Case = "dat"
	Accusative   Case = "acc"
	Instrumental Case = "inst"
	Locative     Case = "loc"
	Vocative     Case = "voc"
)

// Gender is the grammatical gender segment of a morphological tag.
type Gender string

const (
	MasculinePersonal  Gender = "m1"
	MasculineAnimate   Gender = "m2"
	MasculineInanimate Gender = "m3"
	Feminine           Gender = "f"
	Neuter             Gender = "n"
)

// MorphFeatures is the decoded feature record of a morphological tag.
// Fields other than POS are empty when the tag does not carry them.
type MorphFeatures struct {
	POS    string
	Number Number
	Case   Case
	Gender Gender
}

// posNoun is the part-of-speech segment marking a substantive.
const posNoun = "subst"

// IsNoun reports whether the features describe a substantive.
func (f MorphFeatures) IsNoun() bool {
	return f.POS == posNoun
}

// ParseTag decodes a colon-delimited tag like "subst:sg:gen:m2" into a
// feature record. The first segment is the part-of-speech; the remaining
// segments are matched, in any order, against the known number, case and
// gender values, first match per category winning. Unrecognized segments
// are skipped, so ParseTag never fails.
func ParseTag(tag string) MorphFeatures {
	parts := strings.Split(tag, ":")
	f := MorphFeatures{POS: parts[0]}
	for _, p := range parts[1:] {
		switch p {
		case "sg", "pl":
			if f.Number == "" {
				f.Number = Number(p)
			}
		case "nom", "gen", "dat", "acc", "inst", "loc", "voc":
			if f.Case == "" {
				f.Case = Case(p)
			}
		case "m1", "m2", "m3", "f", "n":
			if f.Gender == "" {
				f.Gender = Gender(p)
			}
		}
	}
	return f
}
