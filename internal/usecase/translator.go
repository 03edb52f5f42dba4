package usecase

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eslsoft/conlang/internal/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// asciiPunctuation is peeled off token edges before lookup.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// TranslationEntry is one row of the translator's working lexicon.
type TranslationEntry struct {
	Source string
	Target string
	Notes  string
}

// Translator performs whole-word lexicon substitution.
type Translator struct {
	entries []TranslationEntry
}

// DefaultTranslationLexicon is used until a profile lexicon is loaded.
func DefaultTranslationLexicon() []TranslationEntry {
	return []TranslationEntry{
		{Source: "sunlight", Target: "vala", Notes: "Matches dictionary entry"},
		{Source: "speak", Target: "reni", Notes: "Verb form; needs conjugation rules"},
		{Source: "clear", Target: "lisa", Notes: "Adjective meaning crisp/clear"},
		{Source: "the", Target: "sa", Notes: "Definite article placeholder"},
	}
}

func NewTranslator() *Translator {
	return &Translator{entries: DefaultTranslationLexicon()}
}

// LoadLexicon replaces the working lexicon with a profile's entries.
func (t *Translator) LoadLexicon(_ context.Context, _ string, entries []entity.LexiconEntry) error {
	rows := make([]TranslationEntry, 0, len(entries))
	for _, e := range entries {
		source := e.English
		if source == "" {
			source = e.Conlang
		}
		var notes []string
		if e.PartOfSpeech != "" {
			notes = append(notes, e.PartOfSpeech)
		}
		if e.IPA != "" {
			notes = append(notes, e.IPA)
		}
		note := strings.Join(notes, ", ")
		if note == "" {
			note = "From profile"
		}
		rows = append(rows, TranslationEntry{Source: source, Target: e.Conlang, Notes: note})
	}
	t.entries = rows
	return nil
}

// Lexicon returns a copy of the working lexicon.
func (t *Translator) Lexicon() []TranslationEntry {
	return append([]TranslationEntry(nil), t.entries...)
}

// Translate substitutes every known word of text. Unknown words pass through.
func (t *Translator) Translate(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", entity.ErrEmptyText
	}
	lookup := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		if e.Source == "" {
			continue
		}
		lookup[strings.ToLower(e.Source)] = e.Target
	}

	tokens := strings.Fields(text)
	for i, token := range tokens {
		tokens[i] = translateToken(token, lookup)
	}
	return strings.Join(tokens, " "), nil
}

func translateToken(token string, lookup map[string]string) string {
	start, end := 0, len(token)
	for start < end && strings.IndexByte(asciiPunctuation, token[start]) >= 0 {
		start++
	}
	for end > start && strings.IndexByte(asciiPunctuation, token[end-1]) >= 0 {
		end--
	}
	core := token[start:end]
	if core == "" {
		return token
	}

	out, ok := lookup[strings.ToLower(core)]
	if !ok {
		out = core
	}
	if first, _ := utf8.DecodeRuneInString(core); unicode.IsUpper(first) {
		out = capitalize(out)
	}
	return token[:start] + out + token[end:]
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(s[size:])
}
