package entity

import "strings"

// PartOfSpeech is a closed set of lexical categories offered by the wizard and the dictionary.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechArticle      PartOfSpeech = "article"
	PartOfSpeechNumeral      PartOfSpeech = "numeral"
	PartOfSpeechParticle     PartOfSpeech = "particle"
	PartOfSpeechAuxiliary    PartOfSpeech = "auxiliary"
	PartOfSpeechDeterminer   PartOfSpeech = "determiner"
	PartOfSpeechPostposition PartOfSpeech = "postposition"
)

var partsOfSpeech = []PartOfSpeech{
	PartOfSpeechNoun,
	PartOfSpeechVerb,
	PartOfSpeechAdjective,
	PartOfSpeechAdverb,
	PartOfSpeechPronoun,
	PartOfSpeechPreposition,
	PartOfSpeechConjunction,
	PartOfSpeechInterjection,
	PartOfSpeechArticle,
	PartOfSpeechNumeral,
	PartOfSpeechParticle,
	PartOfSpeechAuxiliary,
	PartOfSpeechDeterminer,
	PartOfSpeechPostposition,
}

// AllPartsOfSpeech returns the parts of speech in display order.
func AllPartsOfSpeech() []PartOfSpeech {
	return append([]PartOfSpeech(nil), partsOfSpeech...)
}

// posMarkers maps dictionary-style abbreviations onto parts of speech.
// Longer markers come first so "vt" wins over "v" in a prefix match.
var posMarkers = []struct {
	marker string
	pos    PartOfSpeech
}{
	{"interj", PartOfSpeechInterjection},
	{"prep", PartOfSpeechPreposition},
	{"pron", PartOfSpeechPronoun},
	{"conj", PartOfSpeechConjunction},
	{"noun", PartOfSpeechNoun},
	{"verb", PartOfSpeechVerb},
	{"adj", PartOfSpeechAdjective},
	{"adv", PartOfSpeechAdverb},
	{"art", PartOfSpeechArticle},
	{"aux", PartOfSpeechAuxiliary},
	{"det", PartOfSpeechDeterminer},
	{"num", PartOfSpeechNumeral},
	{"int", PartOfSpeechInterjection},
	{"part", PartOfSpeechParticle},
	{"post", PartOfSpeechPostposition},
	{"vt", PartOfSpeechVerb},
	{"vi", PartOfSpeechVerb},
	{"n", PartOfSpeechNoun},
	{"v", PartOfSpeechVerb},
}

// ParsePartOfSpeech matches a full label ("adjective") or a marker ("adj",
// "vt.") case-insensitively.
func ParsePartOfSpeech(label string) (PartOfSpeech, bool) {
	needle := strings.ToLower(strings.TrimSpace(label))
	for _, pos := range partsOfSpeech {
		if string(pos) == needle {
			return pos, true
		}
	}
	needle = strings.TrimSuffix(needle, ".")
	for _, m := range posMarkers {
		if m.marker == needle {
			return m.pos, true
		}
	}
	return "", false
}

// SplitPartOfSpeech splits a leading marker such as "vt." or "adj " off line.
// Without a marker the part of speech is empty and the line is returned trimmed.
func SplitPartOfSpeech(line string) (PartOfSpeech, string) {
	s := strings.TrimSpace(line)
	lower := strings.ToLower(s)
	for _, m := range posMarkers {
		if !strings.HasPrefix(lower, m.marker) {
			continue
		}
		rest := s[len(m.marker):]
		if rest == "" {
			// A bare marker is a word, not a marker.
			break
		}
		if next := rest[0]; next != '.' && next != ' ' && next != '\t' {
			continue
		}
		return m.pos, strings.TrimSpace(strings.TrimPrefix(rest, "."))
	}
	return "", s
}

func (p PartOfSpeech) String() string { return string(p) }

// Valid reports whether p is one of the known parts of speech.
func (p PartOfSpeech) Valid() bool {
	for _, pos := range partsOfSpeech {
		if pos == p {
			return true
		}
	}
	return false
}

// WordOrder describes the canonical ordering of clause constituents.
type WordOrder string

const (
	WordOrderSOV    WordOrder = "SOV"
	WordOrderSVO    WordOrder = "SVO"
	WordOrderVSO    WordOrder = "VSO"
	WordOrderVOS    WordOrder = "VOS"
	WordOrderOVS    WordOrder = "OVS"
	WordOrderOSV    WordOrder = "OSV"
	WordOrderSVDOIO WordOrder = "S_V_DO_IO"
	WordOrderSVIODO WordOrder = "S_V_IO_DO"
	WordOrderSIODOV WordOrder = "S_IO_DO_V"
	WordOrderSDOIOV WordOrder = "S_DO_IO_V"
	WordOrderVSIODO WordOrder = "V_S_IO_DO"
	WordOrderVSDOIO WordOrder = "V_S_DO_IO"
	WordOrderSIOVDO WordOrder = "S_IO_V_DO"
	WordOrderIOSVDO WordOrder = "IO_S_V_DO"
)

// DefaultWordOrder is preselected by the wizard.
const DefaultWordOrder = WordOrderSVO

var wordOrderLabels = []struct {
	order WordOrder
	label string
}{
	{WordOrderSOV, "Subject-DirectObject-Verb"},
	{WordOrderSVO, "Subject-Verb-DirectObject"},
	{WordOrderVSO, "Verb-Subject-DirectObject"},
	{WordOrderVOS, "Verb-DirectObject-Subject"},
	{WordOrderOVS, "DirectObject-Verb-Subject"},
	{WordOrderOSV, "DirectObject-Subject-Verb"},
	{WordOrderSVDOIO, "Subject-Verb-DirectObject-IndirectObject"},
	{WordOrderSVIODO, "Subject-Verb-IndirectObject-DirectObject"},
	{WordOrderSIODOV, "Subject-IndirectObject-DirectObject-Verb"},
	{WordOrderSDOIOV, "Subject-DirectObject-IndirectObject-Verb"},
	{WordOrderVSIODO, "Verb-Subject-IndirectObject-DirectObject"},
	{WordOrderVSDOIO, "Verb-Subject-DirectObject-IndirectObject"},
	{WordOrderSIOVDO, "Subject-IndirectObject-Verb-DirectObject"},
	{WordOrderIOSVDO, "IndirectObject-Subject-Verb-DirectObject"},
}

// AllWordOrders returns every supported word order.
func AllWordOrders() []WordOrder {
	out := make([]WordOrder, 0, len(wordOrderLabels))
	for _, item := range wordOrderLabels {
		out = append(out, item.order)
	}
	return out
}

// ParseWordOrder accepts either the code ("SVO") or the display label.
func ParseWordOrder(value string) (WordOrder, bool) {
	value = strings.TrimSpace(value)
	for _, item := range wordOrderLabels {
		if strings.EqualFold(string(item.order), value) || strings.EqualFold(item.label, value) {
			return item.order, true
		}
	}
	return "", false
}

// String returns the display label.
func (o WordOrder) String() string {
	for _, item := range wordOrderLabels {
		if item.order == o {
			return item.label
		}
	}
	return string(o)
}

func (o WordOrder) Valid() bool {
	for _, item := range wordOrderLabels {
		if item.order == o {
			return true
		}
	}
	return false
}

// GrammarProfile captures sentence-level preferences collected by the wizard.
type GrammarProfile struct {
	WordOrder             WordOrder      `json:"word_order" yaml:"word_order"`
	OptionalPartsOfSpeech []PartOfSpeech `json:"optional_parts_of_speech,omitempty" yaml:"optional_parts_of_speech,omitempty"`
	Notes                 string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewGrammarProfile keeps only known parts of speech, in input order without repeats.
func NewGrammarProfile(order WordOrder, optional []PartOfSpeech, notes string) GrammarProfile {
	if !order.Valid() {
		order = DefaultWordOrder
	}
	seen := make(map[PartOfSpeech]struct{}, len(optional))
	kept := make([]PartOfSpeech, 0, len(optional))
	for _, pos := range optional {
		if !pos.Valid() {
			continue
		}
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}
		kept = append(kept, pos)
	}
	return GrammarProfile{
		WordOrder:             order,
		OptionalPartsOfSpeech: kept,
		Notes:                 strings.TrimSpace(notes),
	}
}
