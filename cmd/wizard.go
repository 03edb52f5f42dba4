/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/lexparse"
	"github.com/eslsoft/conlang/internal/phonology"
	"github.com/samber/lo"
)

// IPA symbols offered by the inventory step, grouped by manner.
var (
	ipaConsonants = [][]string{
		{"p", "b", "p̪", "b̪", "t̪", "d̪", "t", "d", "ʈ", "ɖ", "c", "ɟ", "k", "ɡ", "q", "ɢ", "ʔ"},
		{"m", "ɱ", "n̪", "n", "ɳ", "ɲ", "ŋ", "ɴ"},
		{"ʙ", "r", "ʀ", "ⱱ", "ɾ", "ɽ"},
		{"ɸ", "β", "f", "v", "θ", "ð", "s", "z", "ʃ", "ʒ", "ʂ", "ʐ", "ç", "ʝ", "x", "ɣ", "χ", "ʁ", "ħ", "ʕ", "h", "ɦ", "ɬ", "ɮ"},
		{"ʋ", "ɹ", "ɻ", "j", "ɰ", "l", "ɭ", "ʎ", "ʟ"},
		{"ʘ", "ǀ", "ǃ", "ǁ", "ǂ", "ɓ", "ɗ", "ʄ", "ɠ", "ʛ", "pʼ", "tʼ", "kʼ", "qʼ", "sʼ"},
		{"ʍ", "w", "ɥ", "ʜ", "ʢ", "ʡ", "ɧ"},
	}
	ipaVowels = []string{
		"i", "y", "ɨ", "ʉ", "ɯ", "u", "ɪ", "ʏ", "ʊ", "e", "ø", "ɘ", "ɵ", "ɤ", "o",
		"ə", "ɚ", "ɛ", "œ", "ɜ", "ɞ", "ʌ", "ɔ", "æ", "ɐ", "a", "ɶ", "ɑ", "ɒ",
		"ɝ", "ɞ˞", "ᵻ", "ᵿ",
	}
)

// runWizard collects a draft through a sequence of terminal forms.
// Cluster choices depend on the consonants picked, so the steps run one after another.
func runWizard() (*entity.LanguageDraft, error) {
	draft := &entity.LanguageDraft{}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Language name").Description("Leave blank to generate one").Value(&draft.Name),
			huh.NewInput().Title("Tagline").Value(&draft.Tagline),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Consonants").
				Options(huh.NewOptions(lo.Flatten(ipaConsonants)...)...).
				Validate(requireSome("consonant")).
				Value(&draft.Consonants),
			huh.NewMultiSelect[string]().
				Title("Vowels").
				Options(huh.NewOptions(ipaVowels...)...).
				Validate(requireSome("vowel")).
				Value(&draft.Vowels),
		),
	).Run()
	if err != nil {
		return nil, err
	}

	clusters := phonology.PositionOptions(draft.Consonants)
	if len(clusters) > 0 {
		err = huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Onset clusters").Options(huh.NewOptions(clusters...)...).Value(&draft.OnsetClusters),
			huh.NewMultiSelect[string]().Title("Medial clusters").Options(huh.NewOptions(clusters...)...).Value(&draft.MedialClusters),
			huh.NewMultiSelect[string]().Title("Coda clusters").Options(huh.NewOptions(clusters...)...).Value(&draft.CodaClusters),
		)).Run()
		if err != nil {
			return nil, err
		}
	}

	draft.StressPattern = string(entity.StressNoFixed)
	draft.WordOrder = string(entity.WordOrderSVO)
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Illegal sequences").Description(lexparse.IllegalSequenceHint).Value(&draft.IllegalSequences),
			huh.NewSelect[string]().
				Title("Stress pattern").
				Options(lo.Map(entity.AllStressPatterns(), func(p entity.StressPattern, _ int) huh.Option[string] {
					return huh.NewOption(p.String(), string(p))
				})...).
				Value(&draft.StressPattern),
		),
	).Run()
	if err != nil {
		return nil, err
	}

	if draft.StressPattern == string(entity.StressCustomFoot) {
		custom, err := askCustomStress()
		if err != nil {
			return nil, err
		}
		draft.CustomStress = custom
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Lexicon").Description(lexparse.LexiconHint).Value(&draft.Lexicon),
			huh.NewText().Title("Affixes").Description(lexparse.AffixHint).Value(&draft.Affixes),
			huh.NewText().Title("Derived words").Description(lexparse.DerivedWordHint).Value(&draft.DerivedWords),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Word order").
				Options(lo.Map(entity.AllWordOrders(), func(o entity.WordOrder, _ int) huh.Option[string] {
					return huh.NewOption(o.String(), string(o))
				})...).
				Value(&draft.WordOrder),
			huh.NewMultiSelect[string]().
				Title("Optional parts of speech").
				Options(lo.Map(entity.AllPartsOfSpeech(), func(p entity.PartOfSpeech, _ int) huh.Option[string] {
					return huh.NewOption(p.String(), string(p))
				})...).
				Value(&draft.OptionalPartsOfSpeech),
			huh.NewText().Title("Grammar notes").Value(&draft.GrammarNotes),
		),
	).Run()
	if err != nil {
		return nil, err
	}
	return draft, nil
}

func askCustomStress() (*entity.CustomStressPattern, error) {
	defaults := entity.DefaultCustomStressPattern()
	var (
		footSize  = strconv.Itoa(defaults.FootSize)
		stressed  = strconv.Itoa(defaults.StressedSyllableInFoot)
		direction = string(defaults.FootDirection)
		main      = string(defaults.MainStressPosition)
	)

	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Foot size").Options(huh.NewOptions("2", "3")...).Value(&footSize),
		huh.NewSelect[string]().Title("Foot direction").Options(
			huh.NewOption(entity.FootLeftToRight.String(), string(entity.FootLeftToRight)),
			huh.NewOption(entity.FootRightToLeft.String(), string(entity.FootRightToLeft)),
		).Value(&direction),
		huh.NewSelect[string]().Title("Stressed syllable in foot").Options(huh.NewOptions("1", "2", "3")...).Value(&stressed),
		huh.NewSelect[string]().Title("Main stress").Options(
			huh.NewOption(entity.MainStressLeftMost.String(), string(entity.MainStressLeftMost)),
			huh.NewOption(entity.MainStressRightMost.String(), string(entity.MainStressRightMost)),
		).Value(&main),
	)).Run()
	if err != nil {
		return nil, err
	}

	size, _ := strconv.Atoi(footSize)
	syllable, _ := strconv.Atoi(stressed)
	custom := &entity.CustomStressPattern{
		FootSize:               size,
		FootDirection:          entity.FootDirection(direction),
		StressedSyllableInFoot: syllable,
		MainStressPosition:     entity.MainStressPosition(main),
	}
	if err := custom.Validate(); err != nil {
		return nil, fmt.Errorf("custom stress: %w", err)
	}
	return custom, nil
}

func requireSome(what string) func([]string) error {
	return func(selected []string) error {
		if len(selected) == 0 {
			return errors.New("select at least one " + what)
		}
		return nil
	}
}
