package entity

import (
	"strings"
	"time"
)

// DictionaryEntry is one row of a language's working dictionary.
type DictionaryEntry struct {
	ID           string
	LanguageID   string
	Word         string
	IPA          string
	PartOfSpeech PartOfSpeech
	Definition   string
	CreatedAt    time.Time
}

// Normalize trims user input and applies defaults before persistence.
func (e *DictionaryEntry) Normalize(now time.Time) {
	e.Word = strings.TrimSpace(e.Word)
	e.IPA = strings.TrimSpace(e.IPA)
	e.Definition = strings.TrimSpace(e.Definition)
	if pos, ok := ParsePartOfSpeech(string(e.PartOfSpeech)); ok {
		e.PartOfSpeech = pos
	} else {
		e.PartOfSpeech = PartOfSpeechNoun
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
}

// Complete reports whether word, IPA and definition are all present.
func (e DictionaryEntry) Complete() bool {
	return strings.TrimSpace(e.Word) != "" &&
		strings.TrimSpace(e.IPA) != "" &&
		strings.TrimSpace(e.Definition) != ""
}

// Key is the case-insensitive identity of the entry within its language.
func (e DictionaryEntry) Key() string {
	return NormalizeWordToken(e.Word)
}

// DictionaryEntryFromLexicon maps a seed-lexicon row onto a dictionary row.
func DictionaryEntryFromLexicon(languageID string, lex LexiconEntry) DictionaryEntry {
	return DictionaryEntry{
		LanguageID:   languageID,
		Word:         lex.Conlang,
		IPA:          lex.IPA,
		PartOfSpeech: PartOfSpeech(lex.PartOfSpeech),
		Definition:   lex.English,
	}
}

// SampleDictionaryEntries are offered to fresh dictionaries.
func SampleDictionaryEntries() []DictionaryEntry {
	return []DictionaryEntry{
		{Word: "vala", IPA: "ˈva.la", PartOfSpeech: PartOfSpeechNoun, Definition: "sunlight; literal light from the sky"},
		{Word: "reni", IPA: "ˈre.ni", PartOfSpeech: PartOfSpeechVerb, Definition: "to speak with emphasis; to proclaim"},
	}
}
