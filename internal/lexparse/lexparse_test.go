package lexparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/conlang/internal/entity"
)

func TestParseLexiconLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want entity.LexiconEntry
	}{
		{
			name: "conlang with part of speech",
			line: "vala : noun",
			want: entity.LexiconEntry{Conlang: "vala", PartOfSpeech: "noun"},
		},
		{
			name: "full form",
			line: "sunlight : noun = vala (ˈva.la)",
			want: entity.LexiconEntry{Conlang: "vala", PartOfSpeech: "noun", English: "sunlight", IPA: "ˈva.la"},
		},
		{
			name: "bare conlang",
			line: "  lisa  ",
			want: entity.LexiconEntry{Conlang: "lisa"},
		},
		{
			name: "english without part of speech",
			line: "speak = reni",
			want: entity.LexiconEntry{Conlang: "reni", English: "speak"},
		},
		{
			name: "ipa spans first open to last close",
			line: "clear = lisa (ˈli.(s)a)",
			want: entity.LexiconEntry{Conlang: "lisa", English: "clear", IPA: "ˈli.(s)a"},
		},
		{
			name: "closing before opening keeps whole right side",
			line: "odd = ka) (",
			want: entity.LexiconEntry{Conlang: "ka) (", English: "odd"},
		},
		{
			name: "only the first separator splits",
			line: "a : b : c = d = e",
			want: entity.LexiconEntry{Conlang: "d = e", PartOfSpeech: "b : c", English: "a"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseLexiconLine(tc.line)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLexiconLineSkipsBlankAndComments(t *testing.T) {
	for _, line := range []string{"", "   ", "# a comment", "   #indented comment"} {
		_, ok := ParseLexiconLine(line)
		assert.False(t, ok, "line %q should be skipped", line)
	}
}

func TestParseLexiconPreservesOrder(t *testing.T) {
	text := "# seed words\nsunlight : noun = vala (ˈva.la)\n\nreni : verb\r\n  clear = lisa\n"
	entries := ParseLexicon(text)
	require.Len(t, entries, 3)
	assert.Equal(t, "vala", entries[0].Conlang)
	assert.Equal(t, "reni", entries[1].Conlang)
	assert.Equal(t, "verb", entries[1].PartOfSpeech)
	assert.Equal(t, "lisa", entries[2].Conlang)
	assert.Equal(t, "clear", entries[2].English)
}

func TestParseLexiconIsIdempotent(t *testing.T) {
	text := "sunlight : noun = vala (ˈva.la)\nreni : verb\n# skip\nlisa"
	first := ParseLexicon(text)
	second := ParseLexicon(text)
	assert.Equal(t, first, second)
}

func TestParseAffixes(t *testing.T) {
	text := "-la = diminutive suffix\nre- : again\n-ar\nmix = a : b\n# comment"
	got := ParseAffixes(text)
	assert.Equal(t, []entity.AffixDefinition{
		{Label: "-la", Description: "diminutive suffix"},
		{Label: "re-", Description: "again"},
		{Label: "-ar"},
		{Label: "mix", Description: "a : b"},
	}, got)
}

func TestParseDerivedWords(t *testing.T) {
	text := "vala -> valaran = place of sunlight\nreni -> reniala\nlisara = clarity\nsolo\n-> orphan = no base"
	got := ParseDerivedWords(text)
	assert.Equal(t, []entity.DerivedWordDefinition{
		{Base: "vala", DerivedForm: "valaran", Gloss: "place of sunlight"},
		{Base: "reni", DerivedForm: "reniala"},
		{Base: "lisara", DerivedForm: "lisara", Gloss: "clarity"},
		{Base: "solo", DerivedForm: "solo"},
		{Base: "orphan", DerivedForm: "orphan", Gloss: "no base"},
	}, got)
}

func TestParseIllegalSequences(t *testing.T) {
	got := ParseIllegalSequences("  tl \n\n# no\nŋh\n")
	assert.Equal(t, []string{"tl", "ŋh"}, got)
	assert.Empty(t, ParseIllegalSequences("\n \n"))
}

func TestFormatLexiconRoundTrip(t *testing.T) {
	entries := []entity.LexiconEntry{
		{Conlang: "vala", PartOfSpeech: "noun", English: "sunlight", IPA: "ˈva.la"},
		{Conlang: "reni", PartOfSpeech: "verb"},
		{Conlang: "lisa", English: "clear"},
		{Conlang: "sa", IPA: "sa"},
		{Conlang: "ka", PartOfSpeech: "particle", IPA: "ka"},
		{Conlang: "mo"},
	}
	text := FormatLexicon(entries)
	assert.Equal(t, entries, ParseLexicon(text))
}

func TestFormatLexiconSkipsEmptyEntries(t *testing.T) {
	assert.Equal(t, "", FormatLexicon([]entity.LexiconEntry{{}, {PartOfSpeech: "noun"}}))
}

func TestFormatAffixesAndDerivedRoundTrip(t *testing.T) {
	affixes := []entity.AffixDefinition{{Label: "-la", Description: "diminutive"}, {Label: "-ar"}}
	assert.Equal(t, affixes, ParseAffixes(FormatAffixes(affixes)))

	derived := []entity.DerivedWordDefinition{
		{Base: "vala", DerivedForm: "valaran", Gloss: "place of sunlight"},
		{Base: "lisara", DerivedForm: "lisara"},
	}
	assert.Equal(t, derived, ParseDerivedWords(FormatDerivedWords(derived)))
}

func TestHintsParseAsTheirOwnFormat(t *testing.T) {
	assert.Equal(t, []entity.LexiconEntry{{English: "english", PartOfSpeech: "pos", Conlang: "conlang", IPA: "ipa"}}, ParseLexicon(LexiconHint))
	assert.Equal(t, []entity.AffixDefinition{{Label: "-affix", Description: "meaning"}}, ParseAffixes(AffixHint))
	assert.Equal(t, []entity.DerivedWordDefinition{{Base: "base", DerivedForm: "derived", Gloss: "gloss"}}, ParseDerivedWords(DerivedWordHint))

	// Sequences are split on newlines only.
	assert.Contains(t, IllegalSequenceHint, "per line")
	assert.Equal(t, []string{"tl", "s r"}, ParseIllegalSequences("tl\ns r"))
}
