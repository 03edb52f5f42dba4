package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/repository"
	"github.com/samber/lo"
)

// DictionaryUsecase manages the working dictionary attached to each language.
type DictionaryUsecase interface {
	AddEntry(ctx context.Context, entry *entity.DictionaryEntry) (*entity.DictionaryEntry, error)
	RemoveEntries(ctx context.Context, languageID string, words []string) (int64, error)
	Search(ctx context.Context, languageID, keyword string) ([]*entity.DictionaryEntry, error)
	Filter(ctx context.Context, languageID, filter, orderBy string) ([]*entity.DictionaryEntry, error)
	List(ctx context.Context, query *repository.ListDictionaryQuery) ([]*entity.DictionaryEntry, int64, error)
	LoadLexicon(ctx context.Context, languageID string, entries []entity.LexiconEntry) error
	SeedSamples(ctx context.Context, languageID string) (int, error)
}

type dictionaryUsecase struct {
	repo  repository.DictionaryRepository
	clock func() time.Time
}

func NewDictionaryUsecase(repo repository.DictionaryRepository) DictionaryUsecase {
	return newDictionaryUsecase(repo, time.Now)
}

func newDictionaryUsecase(repo repository.DictionaryRepository, clock func() time.Time) *dictionaryUsecase {
	if clock == nil {
		clock = time.Now
	}
	return &dictionaryUsecase{repo: repo, clock: clock}
}

func (u *dictionaryUsecase) AddEntry(ctx context.Context, entry *entity.DictionaryEntry) (*entity.DictionaryEntry, error) {
	if entry == nil {
		return nil, errors.New("dictionary entry required")
	}
	if strings.TrimSpace(entry.LanguageID) == "" {
		return nil, entity.ErrInvalidLanguageID
	}
	if !entry.Complete() {
		return nil, entity.ErrIncompleteDictionaryEntry
	}
	rec := *entry
	rec.ID = ""
	rec.Normalize(u.clock().UTC())

	existing, err := u.repo.FindByWord(ctx, rec.LanguageID, rec.Word)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateDictionaryEntry
	}
	return u.repo.Create(ctx, &rec)
}

// RemoveEntries deletes the selected words. An empty selection is rejected without touching the store.
func (u *dictionaryUsecase) RemoveEntries(ctx context.Context, languageID string, words []string) (int64, error) {
	selected := lo.Compact(lo.Map(words, func(w string, _ int) string { return strings.TrimSpace(w) }))
	if len(selected) == 0 {
		return 0, entity.ErrNoSelection
	}
	removed, err := u.repo.DeleteByWords(ctx, languageID, selected)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, entity.ErrDictionaryEntryNotFound
	}
	return removed, nil
}

// Search matches keyword case-insensitively against word and definition. A blank keyword lists everything.
func (u *dictionaryUsecase) Search(ctx context.Context, languageID, keyword string) ([]*entity.DictionaryEntry, error) {
	items, _, err := u.repo.List(ctx, &repository.ListDictionaryQuery{
		LanguageID: languageID,
		Keyword:    strings.TrimSpace(keyword),
	})
	return items, err
}

func (u *dictionaryUsecase) Filter(ctx context.Context, languageID, filter, orderBy string) ([]*entity.DictionaryEntry, error) {
	items, _, err := u.repo.List(ctx, &repository.ListDictionaryQuery{
		LanguageID:  languageID,
		FilterOrder: repository.FilterOrder{Filter: filter, OrderBy: orderBy},
	})
	return items, err
}

func (u *dictionaryUsecase) List(ctx context.Context, query *repository.ListDictionaryQuery) ([]*entity.DictionaryEntry, int64, error) {
	return u.repo.List(ctx, query)
}

// LoadLexicon replaces the dictionary with the rows of a profile's seed lexicon.
func (u *dictionaryUsecase) LoadLexicon(ctx context.Context, languageID string, entries []entity.LexiconEntry) error {
	if strings.TrimSpace(languageID) == "" {
		return entity.ErrInvalidLanguageID
	}
	now := u.clock().UTC()
	rows := make([]*entity.DictionaryEntry, 0, len(entries))
	for i, lex := range entries {
		rec := entity.DictionaryEntryFromLexicon(languageID, lex)
		// Keep lexicon order stable when rows share a timestamp.
		rec.Normalize(now.Add(time.Duration(i) * time.Microsecond))
		rows = append(rows, &rec)
	}
	return u.repo.ReplaceAll(ctx, languageID, rows)
}

// SeedSamples adds the starter entries, skipping words already present.
func (u *dictionaryUsecase) SeedSamples(ctx context.Context, languageID string) (int, error) {
	added := 0
	for _, sample := range entity.SampleDictionaryEntries() {
		sample.LanguageID = languageID
		if _, err := u.AddEntry(ctx, &sample); err != nil {
			if errors.Is(err, entity.ErrDuplicateDictionaryEntry) {
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}
