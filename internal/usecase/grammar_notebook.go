package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/conlang/internal/entity"
)

var grammarTemplateOrder = []string{"Phonology", "Morphology", "Syntax", "Semantics"}

var grammarTemplates = map[string]string{
	"Phonology":  "# Phonology\n- Consonants: \n- Vowels: \n- Phonotactics:\n",
	"Morphology": "# Morphology\n- Noun cases: \n- Verb conjugations: \n- Derivational patterns:\n",
	"Syntax":     "# Syntax\n- Word order: \n- Clause structure: \n- Questions and negation:\n",
	"Semantics":  "# Semantics\n- Key semantic domains: \n- Metaphors and idioms:\n",
}

// GrammarTemplateNames lists the section scaffolds in menu order.
func GrammarTemplateNames() []string {
	return append([]string(nil), grammarTemplateOrder...)
}

// GrammarTemplate returns the scaffold text for name, matched case-insensitively.
func GrammarTemplate(name string) (string, bool) {
	for _, key := range grammarTemplateOrder {
		if strings.EqualFold(key, strings.TrimSpace(name)) {
			return grammarTemplates[key], true
		}
	}
	return "", false
}

// GrammarNotebook holds free-form grammar notes with heading navigation.
type GrammarNotebook struct {
	text string
}

func NewGrammarNotebook() *GrammarNotebook {
	return &GrammarNotebook{}
}

func (n *GrammarNotebook) LoadGrammarNotes(_ context.Context, notes string) error {
	n.text = notes
	return nil
}

func (n *GrammarNotebook) Text() string { return n.text }

// InsertTemplate appends the named template followed by a blank line.
func (n *GrammarNotebook) InsertTemplate(name string) error {
	tmpl, ok := GrammarTemplate(name)
	if !ok {
		return entity.ErrUnknownTemplate
	}
	n.text += tmpl + "\n"
	return nil
}

// Outline lists headings: lines starting with '#', without the leading marks.
func (n *GrammarNotebook) Outline() []string {
	var headings []string
	for _, line := range strings.Split(n.text, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "#") {
			headings = append(headings, headingText(stripped))
		}
	}
	return headings
}

// FindSection returns the zero-based line index of heading, or -1.
func (n *GrammarNotebook) FindSection(heading string) int {
	for i, line := range strings.Split(n.text, "\n") {
		if headingText(line) == heading {
			return i
		}
	}
	return -1
}

func headingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "# "))
}
