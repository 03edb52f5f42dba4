package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/eslsoft/conlang/internal/entity"
)

// LexiconLoader is implemented by panels that show a profile's seed lexicon.
type LexiconLoader interface {
	LoadLexicon(ctx context.Context, languageID string, entries []entity.LexiconEntry) error
}

// GrammarNotesLoader is implemented by panels that show a profile's grammar notes.
type GrammarNotesLoader interface {
	LoadGrammarNotes(ctx context.Context, notes string) error
}

// Workspace fans an opened profile out to its panels.
type Workspace struct {
	lexiconSinks []LexiconLoader
	grammarSinks []GrammarNotesLoader
	current      *entity.LanguageProfile
}

// NewWorkspace sorts panels into lexicon and grammar sinks once, by the
// capabilities they implement. A panel may land in both lists.
func NewWorkspace(panels ...any) *Workspace {
	w := &Workspace{}
	for _, p := range panels {
		if l, ok := p.(LexiconLoader); ok {
			w.lexiconSinks = append(w.lexiconSinks, l)
		}
		if g, ok := p.(GrammarNotesLoader); ok {
			w.grammarSinks = append(w.grammarSinks, g)
		}
	}
	return w
}

// Open pushes profile's lexicon and grammar notes into every panel.
func (w *Workspace) Open(ctx context.Context, profile *entity.LanguageProfile) error {
	if profile == nil {
		return entity.ErrLanguageNotFound
	}
	var errs []error
	for _, sink := range w.lexiconSinks {
		if err := sink.LoadLexicon(ctx, profile.ID, profile.Lexicon); err != nil {
			errs = append(errs, fmt.Errorf("load lexicon: %w", err))
		}
	}
	for _, sink := range w.grammarSinks {
		if err := sink.LoadGrammarNotes(ctx, profile.Grammar.Notes); err != nil {
			errs = append(errs, fmt.Errorf("load grammar notes: %w", err))
		}
	}
	w.current = profile
	return errors.Join(errs...)
}

// Current returns the most recently opened profile, or nil.
func (w *Workspace) Current() *entity.LanguageProfile { return w.current }
