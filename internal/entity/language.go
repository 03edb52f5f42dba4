package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnnamedLanguage is shown when neither a user name nor a generated name exists.
const UnnamedLanguage = "Unnamed Language"

// LexiconEntry is a single seed-vocabulary item.
type LexiconEntry struct {
	Conlang      string `json:"conlang" yaml:"conlang"`
	PartOfSpeech string `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
	English      string `json:"english,omitempty" yaml:"english,omitempty"`
	IPA          string `json:"ipa,omitempty" yaml:"ipa,omitempty"`
}

// AffixDefinition describes one affix, e.g. "-la" as a diminutive suffix.
type AffixDefinition struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DerivedWordDefinition links a base lexeme to a derived surface form.
type DerivedWordDefinition struct {
	Base        string `json:"base" yaml:"base"`
	DerivedForm string `json:"derived_form" yaml:"derived_form"`
	Gloss       string `json:"gloss,omitempty" yaml:"gloss,omitempty"`
}

// LanguageProfile aggregates everything the creation wizard collects.
type LanguageProfile struct {
	ID            string                  `json:"id" yaml:"id"`
	Name          string                  `json:"name,omitempty" yaml:"name,omitempty"`
	GeneratedName string                  `json:"generated_name,omitempty" yaml:"generated_name,omitempty"`
	Tagline       string                  `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Phonotactics  PhonotacticProfile      `json:"phonotactics" yaml:"phonotactics"`
	Stress        StressSettings          `json:"stress" yaml:"stress"`
	Lexicon       []LexiconEntry          `json:"lexicon,omitempty" yaml:"lexicon,omitempty"`
	Affixes       []AffixDefinition       `json:"affixes,omitempty" yaml:"affixes,omitempty"`
	DerivedWords  []DerivedWordDefinition `json:"derived_words,omitempty" yaml:"derived_words,omitempty"`
	Grammar       GrammarProfile          `json:"grammar" yaml:"grammar"`
	CreatedAt     time.Time               `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at" yaml:"updated_at"`
}

// LanguageParts are the collected sections handed to NewLanguageProfile.
type LanguageParts struct {
	Name          string
	GeneratedName string
	Tagline       string
	Phonotactics  PhonotacticProfile
	Stress        StressSettings
	Lexicon       []LexiconEntry
	Affixes       []AffixDefinition
	DerivedWords  []DerivedWordDefinition
	Grammar       GrammarProfile
}

// NewLanguageProfile assigns a fresh identifier and takes ownership of copies of parts.
func NewLanguageProfile(parts LanguageParts, now time.Time) *LanguageProfile {
	stress := parts.Stress
	if stress.Custom != nil {
		custom := *stress.Custom
		stress.Custom = &custom
	}
	stress.Normalize()

	grammar := parts.Grammar
	if grammar.WordOrder == "" {
		grammar.WordOrder = DefaultWordOrder
	}
	grammar.OptionalPartsOfSpeech = append([]PartOfSpeech(nil), grammar.OptionalPartsOfSpeech...)

	return &LanguageProfile{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(parts.Name),
		GeneratedName: strings.TrimSpace(parts.GeneratedName),
		Tagline:       strings.TrimSpace(parts.Tagline),
		Phonotactics:  parts.Phonotactics.clone(),
		Stress:        stress,
		Lexicon:       append([]LexiconEntry{}, parts.Lexicon...),
		Affixes:       append([]AffixDefinition{}, parts.Affixes...),
		DerivedWords:  append([]DerivedWordDefinition{}, parts.DerivedWords...),
		Grammar:       grammar,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DisplayName prefers the user-given name, then the generated one.
func (l *LanguageProfile) DisplayName() string {
	if l == nil {
		return UnnamedLanguage
	}
	if l.Name != "" {
		return l.Name
	}
	if l.GeneratedName != "" {
		return l.GeneratedName
	}
	return UnnamedLanguage
}

// Validate runs the checks that gate profile creation.
func (l *LanguageProfile) Validate() error {
	if l == nil {
		return ErrLanguageNotFound
	}
	if _, err := uuid.Parse(l.ID); err != nil {
		return ErrInvalidLanguageID
	}
	if err := l.Phonotactics.Validate(); err != nil {
		return err
	}
	if err := l.Stress.Validate(); err != nil {
		return err
	}
	if !l.Grammar.WordOrder.Valid() {
		return &ValidationError{Field: "grammar.word_order", Err: ErrInvalidWordOrder}
	}
	return nil
}

// Clone returns a deep copy that shares no slices with l.
func (l *LanguageProfile) Clone() *LanguageProfile {
	if l == nil {
		return nil
	}
	cp := *l
	cp.Phonotactics = l.Phonotactics.clone()
	if l.Stress.Custom != nil {
		custom := *l.Stress.Custom
		cp.Stress.Custom = &custom
	}
	cp.Lexicon = append([]LexiconEntry(nil), l.Lexicon...)
	cp.Affixes = append([]AffixDefinition(nil), l.Affixes...)
	cp.DerivedWords = append([]DerivedWordDefinition(nil), l.DerivedWords...)
	cp.Grammar.OptionalPartsOfSpeech = append([]PartOfSpeech(nil), l.Grammar.OptionalPartsOfSpeech...)
	return &cp
}

// LanguageSummary is the lightweight row shown when listing stored languages.
type LanguageSummary struct {
	ID          string
	DisplayName string
	LexiconSize int
	WordOrder   WordOrder
	StressLabel string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summarize projects the profile into a listing row.
func (l *LanguageProfile) Summarize() LanguageSummary {
	return LanguageSummary{
		ID:          l.ID,
		DisplayName: l.DisplayName(),
		LexiconSize: len(l.Lexicon),
		WordOrder:   l.Grammar.WordOrder,
		StressLabel: l.Stress.Pattern.String(),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
