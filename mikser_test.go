package mikser

import (
	"errors"
	"testing"
)

// donorAllPies yields a pool whose every lemma is "pies", so substitution
// results do not depend on which pool index is drawn.
const donorAllPies = "Pies szczeka na psa."

func newTestMixer(t *testing.T) *Mixer {
	t.Helper()
	lex, err := NewLexicon(lexiconPath)
	if err != nil {
		t.Fatalf("NewLexicon(%q): %v", lexiconPath, err)
	}
	return NewMixer(lex)
}

func TestMixExample(t *testing.T) {
	m := newTestMixer(t)

	// "Kot" is nominative: replaced by a donor noun inflected with Kot's
	// own tag, capitalization preserved. "mleko" ranks as accusative here;
	// the donor lemma has no neuter accusative form, so the bare lemma is
	// the fallback. Whitespace and the trailing period pass through.
	got := m.Mix("Kot pije mleko.", donorAllPies, 1.0)
	if want := "Pies pije pies."; got != want {
		t.Errorf("Mix = %q, want %q", got, want)
	}

	// safe mode refuses the non-nominative "mleko"
	got = m.MixSafe("Kot pije mleko.", donorAllPies, 1.0)
	if want := "Pies pije mleko."; got != want {
		t.Errorf("MixSafe = %q, want %q", got, want)
	}
}

func TestMixDeterminism(t *testing.T) {
	m := newTestMixer(t)
	recipient := "Kot pije mleko, a ryba płynie do domu."
	donor := "Pies i ryba na wodę."
	first := m.Mix(recipient, donor, 0.5)
	for i := 0; i < 5; i++ {
		if got := m.Mix(recipient, donor, 0.5); got != first {
			t.Fatalf("call %d differed: %q vs %q", i, got, first)
		}
	}
}

func TestMixEmptyRecipient(t *testing.T) {
	m := newTestMixer(t)
	for _, s := range []float64{0, 0.5, 1} {
		if got := m.Mix("", donorAllPies, s); got != "" {
			t.Errorf("Mix(\"\", donor, %v) = %q, want \"\"", s, got)
		}
	}
}

func TestMixEmptyDonorPool(t *testing.T) {
	m := newTestMixer(t)
	recipient := "Kot pije mleko."
	for _, donor := range []string{"", "szczeka i płynie", "!!! 123"} {
		if got := m.Mix(recipient, donor, 1.0); got != recipient {
			t.Errorf("Mix with donor %q = %q, want recipient unchanged", donor, got)
		}
	}
}

func TestMixStrengthZero(t *testing.T) {
	// a substitution at strength 0 needs the decision draw to be exactly 0,
	// which no seed in this table produces
	m := newTestMixer(t)
	recipients := []string{"Kot pije mleko.", "dom", "Ryba i kot."}
	for _, r := range recipients {
		if got := m.Mix(r, donorAllPies, 0); got != r {
			t.Errorf("Mix(%q, donor, 0) = %q, want unchanged", r, got)
		}
	}
}

func TestMixClampsStrength(t *testing.T) {
	m := newTestMixer(t)
	r := "Kot pije mleko."
	if got, want := m.Mix(r, donorAllPies, -3), m.Mix(r, donorAllPies, 0); got != want {
		t.Errorf("strength -3 gave %q, clamped 0 gave %q", got, want)
	}
	if got, want := m.Mix(r, donorAllPies, 7), m.Mix(r, donorAllPies, 1); got != want {
		t.Errorf("strength 7 gave %q, clamped 1 gave %q", got, want)
	}
}

func TestMixCasing(t *testing.T) {
	m := newTestMixer(t)
	if got, want := m.Mix("kot pije mleko.", donorAllPies, 1.0), "pies pije pies."; got != want {
		t.Errorf("lowercase recipient: got %q, want %q", got, want)
	}
	if got, want := m.Mix("KOT", donorAllPies, 1.0), "Pies"; got != want {
		// capitalize semantics: first rune upper, the rest lowered
		t.Errorf("all-caps recipient: got %q, want %q", got, want)
	}
}

func TestMixLemmaSuffixCleaning(t *testing.T) {
	m := newTestMixer(t)
	// donor lemma "zamek:s1" enters the pool cleaned, and on generation the
	// matching row's surface form comes back without a suffix either
	if got, want := m.Mix("dom", "zamek", 1.0), "zamek"; got != want {
		t.Errorf("Mix = %q, want %q", got, want)
	}
}

func TestMixSafePrepositionGuard(t *testing.T) {
	m := newTestMixer(t)
	// "kot" is nominative but follows a case-governing preposition
	if got, want := m.MixSafe("na kot", donorAllPies, 1.0), "na kot"; got != want {
		t.Errorf("MixSafe = %q, want %q", got, want)
	}
	// the unrestricted policy substitutes it
	if got, want := m.Mix("na kot", donorAllPies, 1.0), "na pies"; got != want {
		t.Errorf("Mix = %q, want %q", got, want)
	}
}

func TestMixSafeStoplist(t *testing.T) {
	m := newTestMixer(t)
	if got, want := m.MixSafe("Wszystko płynie.", donorAllPies, 1.0), "Wszystko płynie."; got != want {
		t.Errorf("MixSafe = %q, want %q", got, want)
	}
	if got, want := m.Mix("Wszystko płynie.", donorAllPies, 1.0), "Pies płynie."; got != want {
		t.Errorf("Mix = %q, want %q", got, want)
	}
}

func TestMixSafeNonNominative(t *testing.T) {
	m := newTestMixer(t)
	// "psa" ranks as genitive, so safe mode keeps it at any strength
	if got, want := m.MixSafe("psa", donorAllPies, 1.0), "psa"; got != want {
		t.Errorf("MixSafe = %q, want %q", got, want)
	}
}

// failingOracle wraps a working oracle and fails selected calls.
type failingOracle struct {
	inner       Oracle
	failAnalyze bool
	failGen     bool
}

func (f *failingOracle) Analyze(token string) ([]Interpretation, error) {
	if f.failAnalyze {
		return nil, errors.New("analyzer down")
	}
	return f.inner.Analyze(token)
}

func (f *failingOracle) Generate(lemma, tag string) ([]string, error) {
	if f.failGen {
		return nil, errors.New("generator down")
	}
	return f.inner.Generate(lemma, tag)
}

func TestMixAnalyzeFailure(t *testing.T) {
	lex, err := NewLexicon(lexiconPath)
	if err != nil {
		t.Fatal(err)
	}
	m := NewMixer(&failingOracle{inner: lex, failAnalyze: true})
	recipient := "Kot pije mleko."
	if got := m.Mix(recipient, donorAllPies, 1.0); got != recipient {
		t.Errorf("Mix with failing analyzer = %q, want recipient unchanged", got)
	}
}

func TestMixGenerateFailure(t *testing.T) {
	lex, err := NewLexicon(lexiconPath)
	if err != nil {
		t.Fatal(err)
	}
	m := NewMixer(&failingOracle{inner: lex, failGen: true})
	// generation failure falls back to the bare donor lemma, casing applied
	if got, want := m.Mix("Kot", donorAllPies, 1.0), "Pies"; got != want {
		t.Errorf("Mix with failing generator = %q, want %q", got, want)
	}
}

func TestMatchCasing(t *testing.T) {
	tests := []struct {
		src, dst, want string
	}{
		{"Kot", "pies", "Pies"},
		{"kot", "pies", "pies"},
		{"KOT", "PIES", "Pies"},
		{"Ćma", "żaba", "Żaba"},
		{"kot", "", ""},
		{"", "pies", "pies"},
	}
	for _, tt := range tests {
		if got := matchCasing(tt.src, tt.dst); got != tt.want {
			t.Errorf("matchCasing(%q, %q) = %q, want %q", tt.src, tt.dst, got, tt.want)
		}
	}
}
