// Package lexparse reads the line-oriented text blocks typed into the language
// wizard: seed lexicon, affixes, derived words and illegal sequences.
//
// Every parser trims each line, skips blank lines and lines starting with '#',
// and returns results in input order. Parsers never fail; a line that does not
// match the richer shapes degrades to its simplest reading.
package lexparse

import (
	"strings"

	"github.com/eslsoft/conlang/internal/entity"
)

// Input hints shown next to each text block. Each one parses as an example
// of its own format.
const (
	LexiconHint         = "english : pos = conlang (ipa)"
	AffixHint           = "-affix : meaning"
	DerivedWordHint     = "base -> derived = gloss"
	IllegalSequenceHint = "One sequence per line"
)

// ParseLexicon parses seed-vocabulary lines of the forms
//
//	english : pos = conlang (ipa)
//	english = conlang
//	conlang : pos
//	conlang
func ParseLexicon(text string) []entity.LexiconEntry {
	var entries []entity.LexiconEntry
	for _, line := range contentLines(text) {
		if entry, ok := ParseLexiconLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// ParseLexiconLine parses a single lexicon line. It reports false for lines
// that are blank or comments.
func ParseLexiconLine(raw string) (entity.LexiconEntry, bool) {
	line := strings.TrimSpace(raw)
	if skipLine(line) {
		return entity.LexiconEntry{}, false
	}

	var entry entity.LexiconEntry
	left, right, ok := cut(line, "=")
	if !ok {
		entry.Conlang, entry.PartOfSpeech, _ = cut(line, ":")
		return entry, true
	}

	entry.English, entry.PartOfSpeech, _ = cut(left, ":")
	entry.Conlang = right
	start := strings.Index(right, "(")
	end := strings.LastIndex(right, ")")
	if start >= 0 && end > start {
		entry.IPA = strings.TrimSpace(right[start+1 : end])
		entry.Conlang = strings.TrimSpace(right[:start])
	}
	return entry, true
}

// ParseAffixes parses "label = description", "label : description" or a bare label.
// '=' takes precedence over ':' when both appear.
func ParseAffixes(text string) []entity.AffixDefinition {
	var affixes []entity.AffixDefinition
	for _, line := range contentLines(text) {
		label, description, ok := cut(line, "=")
		if !ok {
			label, description, _ = cut(line, ":")
		}
		affixes = append(affixes, entity.AffixDefinition{Label: label, Description: description})
	}
	return affixes
}

// ParseDerivedWords parses "base -> derived = gloss". Both the arrow and the
// gloss are optional; a missing base is filled with the derived form.
func ParseDerivedWords(text string) []entity.DerivedWordDefinition {
	var derived []entity.DerivedWordDefinition
	for _, line := range contentLines(text) {
		base := ""
		form := line
		if b, rest, ok := cut(line, "->"); ok {
			base, form = b, rest
		}
		form, gloss, _ := cut(form, "=")
		if base == "" {
			base = form
		}
		derived = append(derived, entity.DerivedWordDefinition{Base: base, DerivedForm: form, Gloss: gloss})
	}
	return derived
}

// ParseIllegalSequences returns the trimmed non-empty lines. Comment lines are
// kept out like everywhere else.
func ParseIllegalSequences(text string) []string {
	return contentLines(text)
}

func contentLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if skipLine(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func skipLine(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// cut splits s around the first sep and trims both halves. Without sep,
// before holds the whole trimmed string.
func cut(s, sep string) (before, after string, found bool) {
	before, after, found = strings.Cut(s, sep)
	return strings.TrimSpace(before), strings.TrimSpace(after), found
}
