package profiledoc

import (
	"fmt"
	"strings"

	"github.com/eslsoft/conlang/internal/entity"
	"github.com/samber/lo"
)

// Summary renders the overview printed after a profile is created or shown.
func Summary(p *entity.LanguageProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", p.DisplayName())
	if p.Tagline != "" {
		fmt.Fprintf(&b, "Tagline: %s\n", p.Tagline)
	}
	fmt.Fprintf(&b, "ID: %s\n", p.ID)

	ph := p.Phonotactics
	writeList(&b, "Consonants", ph.Consonants)
	writeList(&b, "Vowels", ph.Vowels)
	writeList(&b, "Onset clusters", ph.OnsetClusters)
	writeList(&b, "Medial clusters", ph.MedialClusters)
	writeList(&b, "Coda clusters", ph.CodaClusters)
	writeList(&b, "Illegal sequences", ph.IllegalSequences)

	fmt.Fprintf(&b, "Stress: %s\n", stressLine(p.Stress))
	fmt.Fprintf(&b, "Word order: %s\n", p.Grammar.WordOrder)
	writeList(&b, "Optional parts of speech", lo.Map(p.Grammar.OptionalPartsOfSpeech, func(pos entity.PartOfSpeech, _ int) string {
		return pos.String()
	}))

	fmt.Fprintf(&b, "Lexicon entries: %d\n", len(p.Lexicon))
	fmt.Fprintf(&b, "Affixes: %d\n", len(p.Affixes))
	fmt.Fprintf(&b, "Derived words: %d\n", len(p.DerivedWords))
	if p.Grammar.Notes != "" {
		fmt.Fprintf(&b, "Grammar notes: %d lines\n", strings.Count(p.Grammar.Notes, "\n")+1)
	}
	return b.String()
}

func stressLine(s entity.StressSettings) string {
	if s.Pattern != entity.StressCustomFoot || s.Custom == nil {
		return s.Pattern.String()
	}
	c := s.Custom
	return fmt.Sprintf("%s (foot size %d, %s, stressed syllable %d, %s)",
		s.Pattern, c.FootSize, c.FootDirection, c.StressedSyllableInFoot, c.MainStressPosition)
}

// writeList skips empty lists.
func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s (%d): %s\n", label, len(items), strings.Join(items, " "))
}
