package entity

import (
	"errors"
	"testing"
	"time"
)

func validParts() LanguageParts {
	return LanguageParts{
		Name: "  Velari ",
		Phonotactics: PhonotacticProfile{
			Consonants: []string{"p", "t", "k"},
			Vowels:     []string{"a", "i"},
		},
		Lexicon: []LexiconEntry{{Conlang: "vala", English: "sunlight"}},
		Grammar: GrammarProfile{OptionalPartsOfSpeech: []PartOfSpeech{PartOfSpeechArticle}},
	}
}

func TestNewLanguageProfileDefaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	parts := validParts()
	parts.Stress = StressSettings{Pattern: StressPenultimate, Custom: &CustomStressPattern{FootSize: 2}}

	profile := NewLanguageProfile(parts, now)

	if profile.ID == "" {
		t.Fatalf("expected identifier to be assigned")
	}
	if profile.Name != "Velari" {
		t.Fatalf("expected trimmed name, got %q", profile.Name)
	}
	if profile.Grammar.WordOrder != WordOrderSVO {
		t.Fatalf("expected default word order SVO, got %s", profile.Grammar.WordOrder)
	}
	if profile.Stress.Custom != nil {
		t.Fatalf("expected custom pattern to be dropped for penultimate stress")
	}
	if !profile.CreatedAt.Equal(now) || !profile.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %v %v", profile.CreatedAt, profile.UpdatedAt)
	}
	if err := profile.Validate(); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}

	parts.Phonotactics.Consonants[0] = "b"
	parts.Lexicon[0].Conlang = "changed"
	if profile.Phonotactics.Consonants[0] != "p" || profile.Lexicon[0].Conlang != "vala" {
		t.Fatalf("profile must not share slices with its inputs")
	}
}

func TestLanguageProfileDisplayName(t *testing.T) {
	cases := []struct {
		name    string
		profile *LanguageProfile
		want    string
	}{
		{name: "user name wins", profile: &LanguageProfile{Name: "Velari", GeneratedName: "Aralanion"}, want: "Velari"},
		{name: "generated fallback", profile: &LanguageProfile{GeneratedName: "Aralanion"}, want: "Aralanion"},
		{name: "unnamed", profile: &LanguageProfile{}, want: UnnamedLanguage},
		{name: "nil profile", profile: nil, want: UnnamedLanguage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.profile.DisplayName(); got != tc.want {
				t.Fatalf("DisplayName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLanguageProfileValidate(t *testing.T) {
	base := NewLanguageProfile(validParts(), time.Now())

	cases := []struct {
		name   string
		mutate func(p *LanguageProfile)
		want   error
	}{
		{name: "no consonants", mutate: func(p *LanguageProfile) { p.Phonotactics.Consonants = nil }, want: ErrNoConsonants},
		{name: "no vowels", mutate: func(p *LanguageProfile) { p.Phonotactics.Vowels = nil }, want: ErrNoVowels},
		{name: "bad id", mutate: func(p *LanguageProfile) { p.ID = "not-a-uuid" }, want: ErrInvalidLanguageID},
		{name: "unknown stress", mutate: func(p *LanguageProfile) { p.Stress.Pattern = "weird" }, want: ErrInvalidStressPattern},
		{
			name: "custom without parameters",
			mutate: func(p *LanguageProfile) {
				p.Stress = StressSettings{Pattern: StressCustomFoot}
			},
			want: ErrMissingCustomPattern,
		},
		{
			name: "foot size out of range",
			mutate: func(p *LanguageProfile) {
				p.Stress = StressSettings{Pattern: StressCustomFoot, Custom: &CustomStressPattern{FootSize: 4, StressedSyllableInFoot: 1}}
			},
			want: ErrInvalidFootSize,
		},
		{
			name: "stressed syllable beyond foot",
			mutate: func(p *LanguageProfile) {
				p.Stress = StressSettings{Pattern: StressCustomFoot, Custom: &CustomStressPattern{FootSize: 2, StressedSyllableInFoot: 3}}
			},
			want: ErrInvalidStressedSyllable,
		},
		{name: "unknown word order", mutate: func(p *LanguageProfile) { p.Grammar.WordOrder = "XYZ" }, want: ErrInvalidWordOrder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base.Clone()
			tc.mutate(p)
			err := p.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidationErrorsAreClassified(t *testing.T) {
	err := PhonotacticProfile{}.Validate()
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %T", err)
	}
	if IsValidation(ErrLanguageNotFound) {
		t.Fatalf("not found must not be classified as validation")
	}
	if got := err.Error(); got != "phonotactics.consonants: select at least one consonant for the language" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCustomStressPatternBoundaries(t *testing.T) {
	for _, size := range []int{2, 3} {
		for stressed := 1; stressed <= size; stressed++ {
			c := CustomStressPattern{FootSize: size, StressedSyllableInFoot: stressed, FootDirection: FootLeftToRight, MainStressPosition: MainStressLeftMost}
			if err := c.Validate(); err != nil {
				t.Fatalf("size %d stressed %d: unexpected error %v", size, stressed, err)
			}
		}
	}
	if err := DefaultCustomStressPattern().Validate(); err != nil {
		t.Fatalf("default pattern should validate: %v", err)
	}
	if err := (CustomStressPattern{FootSize: 3, StressedSyllableInFoot: 0}).Validate(); !errors.Is(err, ErrInvalidStressedSyllable) {
		t.Fatalf("expected stressed syllable error, got %v", err)
	}
}

func TestLanguageProfileClone(t *testing.T) {
	parts := validParts()
	parts.Stress = StressSettings{Pattern: StressCustomFoot, Custom: &CustomStressPattern{FootSize: 3, StressedSyllableInFoot: 2}}
	original := NewLanguageProfile(parts, time.Now())

	cp := original.Clone()
	cp.Stress.Custom.FootSize = 2
	cp.Lexicon[0].English = "moonlight"
	cp.Grammar.OptionalPartsOfSpeech[0] = PartOfSpeechNumeral

	if original.Stress.Custom.FootSize != 3 {
		t.Fatalf("clone shares custom stress pattern")
	}
	if original.Lexicon[0].English != "sunlight" {
		t.Fatalf("clone shares lexicon")
	}
	if original.Grammar.OptionalPartsOfSpeech[0] != PartOfSpeechArticle {
		t.Fatalf("clone shares optional parts of speech")
	}
}

func TestParseEnumerations(t *testing.T) {
	if order, ok := ParseWordOrder("Subject-Object-Verb"); ok {
		t.Fatalf("unexpected match %s", order)
	}
	if order, ok := ParseWordOrder("subject-directobject-verb"); !ok || order != WordOrderSOV {
		t.Fatalf("expected SOV from label, got %s %v", order, ok)
	}
	if order, ok := ParseWordOrder(" vso "); !ok || order != WordOrderVSO {
		t.Fatalf("expected VSO from code, got %s %v", order, ok)
	}
	if pattern, ok := ParseStressPattern("Custom Foot-Based Pattern"); !ok || pattern != StressCustomFoot {
		t.Fatalf("expected custom-foot, got %s %v", pattern, ok)
	}
	if pos, ok := ParsePartOfSpeech("Noun"); !ok || pos != PartOfSpeechNoun {
		t.Fatalf("expected noun, got %s %v", pos, ok)
	}
	if _, ok := ParsePartOfSpeech("gerund"); ok {
		t.Fatalf("gerund is not a supported part of speech")
	}
	if len(AllWordOrders()) != 14 || len(AllStressPatterns()) != 8 || len(AllPartsOfSpeech()) != 14 {
		t.Fatalf("unexpected enumeration sizes")
	}
}

func TestNewGrammarProfile(t *testing.T) {
	g := NewGrammarProfile("bogus", []PartOfSpeech{PartOfSpeechArticle, "gerund", PartOfSpeechArticle, PartOfSpeechNumeral}, "  verb-final  ")
	if g.WordOrder != DefaultWordOrder {
		t.Fatalf("expected default order, got %s", g.WordOrder)
	}
	if len(g.OptionalPartsOfSpeech) != 2 || g.OptionalPartsOfSpeech[1] != PartOfSpeechNumeral {
		t.Fatalf("unexpected optional parts %v", g.OptionalPartsOfSpeech)
	}
	if g.Notes != "verb-final" {
		t.Fatalf("expected trimmed notes, got %q", g.Notes)
	}
}
