package phonology

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HistorySize is how many conversions a Converter remembers.
const HistorySize = 10

// DefaultMapping is the starting orthography for Latin letters.
func DefaultMapping() map[rune]string {
	return map[rune]string{
		'a': "a", 'e': "e", 'i': "i", 'o': "o", 'u': "u",
		'y': "j", 'c': "k", 'q': "k", 'x': "ks", 'j': "ʒ",
		'g': "ɡ", 'h': "h", 'l': "l", 'm': "m", 'n': "n",
		'r': "ɾ", 's': "s", 'z': "z", 't': "t", 'd': "d",
		'p': "p", 'b': "b", 'f': "f", 'v': "v", 'k': "k",
		'w': "w",
	}
}

// Conversion is one remembered source/IPA pair.
type Conversion struct {
	Source string
	IPA    string
}

func (c Conversion) String() string { return c.Source + " → " + c.IPA }

// Converter transliterates text character by character.
// A Converter is not safe for concurrent use.
type Converter struct {
	mapping map[rune]string
	history []Conversion
}

// ConverterOption customises a Converter.
type ConverterOption func(*Converter)

// WithMapping overrides or extends individual entries of the default mapping.
// Keys are matched against lower-cased input.
func WithMapping(overrides map[rune]string) ConverterOption {
	return func(c *Converter) {
		for k, v := range overrides {
			c.mapping[unicode.ToLower(k)] = v
		}
	}
}

// NewConverter builds a converter over DefaultMapping.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{mapping: DefaultMapping()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transliterates text and records the conversion in the history.
// Blank input yields "" and is not recorded.
func (c *Converter) Convert(text string) string {
	source := strings.TrimSpace(text)
	if source == "" {
		return ""
	}
	ipa := c.Transliterate(source)
	c.remember(Conversion{Source: source, IPA: ipa})
	return ipa
}

// Transliterate converts without touching the history. Unmapped characters
// pass through unchanged and an upper-case source letter capitalises its
// mapped value.
func (c *Converter) Transliterate(text string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, r := range text {
		value, ok := c.mapping[unicode.ToLower(r)]
		if !ok {
			value = string(r)
		}
		if unicode.IsUpper(r) && value != "" {
			value = title.String(value)
		}
		b.WriteString(value)
	}
	return b.String()
}

// History returns the remembered conversions, most recent first.
func (c *Converter) History() []Conversion {
	return append([]Conversion(nil), c.history...)
}

// ClearHistory forgets all conversions.
func (c *Converter) ClearHistory() {
	c.history = nil
}

func (c *Converter) remember(conv Conversion) {
	c.history = append([]Conversion{conv}, c.history...)
	if len(c.history) > HistorySize {
		c.history = c.history[:HistorySize]
	}
}
