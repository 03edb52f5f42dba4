package profiledoc

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/eslsoft/conlang/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draftYAML = `name: Sindar
consonants: [p, t, k]
vowels:
  - a
  - i
stress_pattern: custom-foot
custom_stress:
  foot_size: 3
  foot_direction: right
  stressed_syllable_in_foot: 2
  main_stress_position: left-most
lexicon: |
  sun : noun = vala (ˈva.la)
word_order: VSO
optional_parts_of_speech: [article]
`

func TestDecodeDraftYAML(t *testing.T) {
	draft, err := DecodeDraft(strings.NewReader(draftYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Sindar", draft.Name)
	assert.Equal(t, []string{"p", "t", "k"}, draft.Consonants)
	assert.Equal(t, []string{"a", "i"}, draft.Vowels)
	require.NotNil(t, draft.CustomStress)
	assert.Equal(t, entity.CustomStressPattern{
		FootSize:               3,
		FootDirection:          entity.FootRightToLeft,
		StressedSyllableInFoot: 2,
		MainStressPosition:     entity.MainStressLeftMost,
	}, *draft.CustomStress)
	assert.Equal(t, "sun : noun = vala (ˈva.la)\n", draft.Lexicon)
	assert.Equal(t, []string{"article"}, draft.OptionalPartsOfSpeech)
}

func TestDecodeDraftRejectsUnknownFields(t *testing.T) {
	_, err := DecodeDraft(strings.NewReader(`{"consonants":["p"],"colour":"red"}`), FormatJSON)
	assert.Error(t, err)

	_, err = DecodeDraft(strings.NewReader("consonants: [p]\ncolour: red\n"), FormatYAML)
	assert.Error(t, err)
}

func TestProfileRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	custom := entity.DefaultCustomStressPattern()
	profile := entity.NewLanguageProfile(entity.LanguageParts{
		Name:         "Sindar",
		Phonotactics: entity.PhonotacticProfile{Consonants: []string{"p", "t"}, Vowels: []string{"a"}, OnsetClusters: []string{"pt"}},
		Stress:       entity.StressSettings{Pattern: entity.StressCustomFoot, Custom: &custom},
		Lexicon:      []entity.LexiconEntry{{Conlang: "vala", PartOfSpeech: "noun", English: "sun", IPA: "ˈva.la"}},
		Affixes:      []entity.AffixDefinition{{Label: "-la", Description: "diminutive"}},
		DerivedWords: []entity.DerivedWordDefinition{{Base: "vala", DerivedForm: "valan", Gloss: "sunny"}},
		Grammar:      entity.NewGrammarProfile(entity.WordOrderVSO, []entity.PartOfSpeech{entity.PartOfSpeechArticle}, "# Syntax"),
	}, now)

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeProfile(&buf, profile, format))

			got, err := DecodeProfile(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, profile.ID, got.ID)
			assert.Equal(t, profile.Phonotactics, got.Phonotactics)
			assert.Equal(t, profile.Stress, got.Stress)
			assert.Equal(t, profile.Lexicon, got.Lexicon)
			assert.Equal(t, profile.Affixes, got.Affixes)
			assert.Equal(t, profile.DerivedWords, got.DerivedWords)
			assert.Equal(t, profile.Grammar, got.Grammar)
			assert.True(t, profile.CreatedAt.Equal(got.CreatedAt))
			assert.NoError(t, got.Validate())
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "lang.yaml", want: FormatYAML},
		{path: "dir/lang.YML", want: FormatYAML},
		{path: "lang.json", want: FormatJSON},
		{path: "lang.toml", wantErr: true},
		{path: "lang", wantErr: true},
	}
	for _, tc := range cases {
		got, err := FormatFromPath(tc.path)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tc.path)
			continue
		}
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
}

func TestSummary(t *testing.T) {
	custom := entity.CustomStressPattern{FootSize: 3, FootDirection: entity.FootRightToLeft, StressedSyllableInFoot: 2, MainStressPosition: entity.MainStressLeftMost}
	profile := entity.NewLanguageProfile(entity.LanguageParts{
		GeneratedName: "Belrinion",
		Tagline:       "Speech of the northern woods",
		Phonotactics:  entity.PhonotacticProfile{Consonants: []string{"k", "p", "t"}, Vowels: []string{"a", "i"}},
		Stress:        entity.StressSettings{Pattern: entity.StressCustomFoot, Custom: &custom},
		Lexicon:       []entity.LexiconEntry{{Conlang: "vala"}, {Conlang: "reni"}},
		Grammar:       entity.NewGrammarProfile(entity.WordOrderSOV, nil, "# One\n# Two"),
	}, time.Now())

	out := Summary(profile)
	assert.Contains(t, out, "Language: Belrinion\n")
	assert.Contains(t, out, "Tagline: Speech of the northern woods\n")
	assert.Contains(t, out, "Consonants (3): k p t\n")
	assert.Contains(t, out, "Stress: Custom Foot-Based Pattern (foot size 3, Right to Left, stressed syllable 2, Left-most foot)\n")
	assert.Contains(t, out, "Word order: Subject-DirectObject-Verb\n")
	assert.Contains(t, out, "Lexicon entries: 2\n")
	assert.Contains(t, out, "Grammar notes: 2 lines\n")
	assert.NotContains(t, out, "Onset clusters")
	assert.NotContains(t, out, "Optional parts of speech")
}
