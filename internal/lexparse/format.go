package lexparse

import (
	"strings"

	"github.com/eslsoft/conlang/internal/entity"
)

// FormatLexicon renders entries in the shape ParseLexicon reads back.
// Entries with no content at all are skipped.
func FormatLexicon(entries []entity.LexiconEntry) string {
	var b strings.Builder
	for _, e := range entries {
		line := FormatLexiconEntry(e)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatLexiconEntry renders one entry without a trailing newline.
func FormatLexiconEntry(e entity.LexiconEntry) string {
	if e.English == "" && e.IPA == "" {
		if e.Conlang == "" {
			return ""
		}
		return joinNonEmpty(e.Conlang, " : ", e.PartOfSpeech)
	}
	left := joinNonEmpty(e.English, " : ", e.PartOfSpeech)
	if e.English == "" && e.PartOfSpeech != "" {
		left = ": " + e.PartOfSpeech
	}
	right := e.Conlang
	if e.IPA != "" {
		right = strings.TrimSpace(e.Conlang + " (" + e.IPA + ")")
	}
	return strings.TrimSpace(left + " = " + right)
}

// FormatAffixes renders affixes as "label = description" lines.
func FormatAffixes(affixes []entity.AffixDefinition) string {
	var b strings.Builder
	for _, a := range affixes {
		if a.Label == "" {
			continue
		}
		line := joinNonEmpty(a.Label, " = ", a.Description)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatDerivedWords renders "base -> derived = gloss" lines.
func FormatDerivedWords(derived []entity.DerivedWordDefinition) string {
	var b strings.Builder
	for _, d := range derived {
		if d.DerivedForm == "" {
			continue
		}
		line := d.DerivedForm
		if d.Base != "" && d.Base != d.DerivedForm {
			line = d.Base + " -> " + d.DerivedForm
		}
		b.WriteString(joinNonEmpty(line, " = ", d.Gloss))
		b.WriteByte('\n')
	}
	return b.String()
}

func joinNonEmpty(head, sep, tail string) string {
	switch {
	case head == "":
		return tail
	case tail == "":
		return head
	default:
		return head + sep + tail
	}
}
