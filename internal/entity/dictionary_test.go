package entity

import (
	"testing"
	"time"
)

func TestDictionaryEntryNormalize(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	e := DictionaryEntry{Word: "  Vala ", IPA: " ˈva.la ", Definition: " light ", PartOfSpeech: "Verb"}
	e.Normalize(now)

	if e.Word != "Vala" || e.IPA != "ˈva.la" || e.Definition != "light" {
		t.Fatalf("expected trimmed fields, got %+v", e)
	}
	if e.PartOfSpeech != PartOfSpeechVerb {
		t.Fatalf("expected verb, got %s", e.PartOfSpeech)
	}
	if !e.CreatedAt.Equal(now) {
		t.Fatalf("expected CreatedAt to default to now")
	}

	unknown := DictionaryEntry{Word: "x", PartOfSpeech: ""}
	unknown.Normalize(now)
	if unknown.PartOfSpeech != PartOfSpeechNoun {
		t.Fatalf("expected noun default, got %s", unknown.PartOfSpeech)
	}
}

func TestDictionaryEntryNormalizeResolvesMarkers(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	for in, want := range map[PartOfSpeech]PartOfSpeech{
		"adj":   PartOfSpeechAdjective,
		"Adv.":  PartOfSpeechAdverb,
		"v.":    PartOfSpeechVerb,
		"prep":  PartOfSpeechPreposition,
		"n":     PartOfSpeechNoun,
		"stone": PartOfSpeechNoun,
	} {
		e := DictionaryEntry{Word: "x", PartOfSpeech: in}
		e.Normalize(now)
		if e.PartOfSpeech != want {
			t.Fatalf("%q -> got %s want %s", in, e.PartOfSpeech, want)
		}
	}
}

func TestParsePartOfSpeechMarkers(t *testing.T) {
	cases := map[string]PartOfSpeech{
		"verb":  PartOfSpeechVerb,
		"Noun":  PartOfSpeechNoun,
		"vt.":   PartOfSpeechVerb,
		"vt":    PartOfSpeechVerb,
		"adj":   PartOfSpeechAdjective,
		"n":     PartOfSpeechNoun,
		"prep":  PartOfSpeechPreposition,
		"other": "",
		"adjx":  "",
	}
	for in, want := range cases {
		got, ok := ParsePartOfSpeech(in)
		if got != want || ok != (want != "") {
			t.Fatalf("%q -> got (%q,%v) want %q", in, got, ok, want)
		}
	}
}

func TestSplitPartOfSpeech(t *testing.T) {
	cases := []struct {
		in   string
		pos  PartOfSpeech
		rest string
	}{
		{"vt. do sth", PartOfSpeechVerb, "do sth"},
		{"v change", PartOfSpeechVerb, "change"},
		{"Adj. big", PartOfSpeechAdjective, "big"}, // case-insensitive
		{"noun something", PartOfSpeechNoun, "something"},
		{"adv. quickly", PartOfSpeechAdverb, "quickly"},
		{"interj. alas", PartOfSpeechInterjection, "alas"},
		{"n.\tlight", PartOfSpeechNoun, "light"},
		{"nothing here", "", "nothing here"},
		{"no marker line", "", "no marker line"},
		{"adv", "", "adv"},
	}
	for _, c := range cases {
		p, r := SplitPartOfSpeech(c.in)
		if p != c.pos || r != c.rest {
			t.Fatalf("%q -> got (%q,%q) want (%q,%q)", c.in, p, r, c.pos, c.rest)
		}
	}
}

func TestDictionaryEntryKeyIsCaseInsensitive(t *testing.T) {
	a := DictionaryEntry{Word: "VALA"}
	b := DictionaryEntry{Word: " vala"}
	if a.Key() != b.Key() {
		t.Fatalf("expected equal keys, got %q and %q", a.Key(), b.Key())
	}
	composed := DictionaryEntry{Word: "\u00e9"}
	decomposed := DictionaryEntry{Word: "e\u0301"}
	if composed.Key() != decomposed.Key() {
		t.Fatalf("expected composed and decomposed forms to share a key")
	}
}

func TestDictionaryEntryComplete(t *testing.T) {
	if (DictionaryEntry{Word: "vala", IPA: " ", Definition: "light"}).Complete() {
		t.Fatalf("blank IPA must be incomplete")
	}
	if !(DictionaryEntry{Word: "vala", IPA: "va", Definition: "light"}).Complete() {
		t.Fatalf("expected complete entry")
	}
}

func TestDictionaryEntryFromLexicon(t *testing.T) {
	e := DictionaryEntryFromLexicon("lang", LexiconEntry{Conlang: "vala", PartOfSpeech: "noun", English: "sunlight", IPA: "ˈva.la"})
	if e.LanguageID != "lang" || e.Word != "vala" || e.Definition != "sunlight" || e.IPA != "ˈva.la" || e.PartOfSpeech != PartOfSpeechNoun {
		t.Fatalf("unexpected mapping %+v", e)
	}
}
