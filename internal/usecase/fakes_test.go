package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/repository"
)

type fakeLanguageRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.LanguageProfile
	saves int
}

func newFakeLanguageRepo() *fakeLanguageRepo {
	return &fakeLanguageRepo{items: make(map[string]*entity.LanguageProfile)}
}

func (r *fakeLanguageRepo) Save(ctx context.Context, profile *entity.LanguageProfile) (*entity.LanguageProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.items[profile.ID] = profile.Clone()
	return profile.Clone(), nil
}

func (r *fakeLanguageRepo) Get(ctx context.Context, id string) (*entity.LanguageProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, entity.ErrLanguageNotFound
	}
	return p.Clone(), nil
}

func (r *fakeLanguageRepo) FindByName(ctx context.Context, name string) (*entity.LanguageProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if strings.EqualFold(p.DisplayName(), name) {
			return p.Clone(), nil
		}
	}
	return nil, nil
}

func (r *fakeLanguageRepo) List(ctx context.Context, query *repository.ListLanguageQuery) ([]*entity.LanguageSummary, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.LanguageSummary
	for _, p := range r.items {
		s := p.Summarize()
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, int64(len(out)), nil
}

func (r *fakeLanguageRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return entity.ErrLanguageNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeDictionaryRepo struct {
	mu      sync.RWMutex
	seq     int
	entries []*entity.DictionaryEntry
	deletes int
	lastQ   *repository.ListDictionaryQuery
}

func (r *fakeDictionaryRepo) Create(ctx context.Context, entry *entity.DictionaryEntry) (*entity.DictionaryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.LanguageID == entry.LanguageID && e.Key() == entry.Key() {
			return nil, entity.ErrDuplicateDictionaryEntry
		}
	}
	r.seq++
	rec := *entry
	rec.ID = strings.Repeat("x", r.seq)
	r.entries = append(r.entries, &rec)
	out := rec
	return &out, nil
}

func (r *fakeDictionaryRepo) FindByWord(ctx context.Context, languageID, word string) (*entity.DictionaryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key := entity.NormalizeWordToken(word)
	for _, e := range r.entries {
		if e.LanguageID == languageID && e.Key() == key {
			out := *e
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeDictionaryRepo) List(ctx context.Context, query *repository.ListDictionaryQuery) ([]*entity.DictionaryEntry, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.lastQ = query
	kw := strings.ToLower(query.Keyword)
	var out []*entity.DictionaryEntry
	for _, e := range r.entries {
		if e.LanguageID != query.LanguageID {
			continue
		}
		if kw != "" && !strings.Contains(strings.ToLower(e.Word), kw) && !strings.Contains(strings.ToLower(e.Definition), kw) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeDictionaryRepo) DeleteByWords(ctx context.Context, languageID string, words []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	keys := make(map[string]struct{}, len(words))
	for _, w := range words {
		keys[entity.NormalizeWordToken(w)] = struct{}{}
	}
	var kept []*entity.DictionaryEntry
	var removed int64
	for _, e := range r.entries {
		if _, ok := keys[e.Key()]; ok && e.LanguageID == languageID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, nil
}

func (r *fakeDictionaryRepo) ReplaceAll(ctx context.Context, languageID string, entries []*entity.DictionaryEntry) error {
	r.mu.Lock()
	var kept []*entity.DictionaryEntry
	for _, e := range r.entries {
		if e.LanguageID != languageID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	r.mu.Unlock()
	for _, e := range entries {
		if _, err := r.Create(ctx, e); err != nil && err != entity.ErrDuplicateDictionaryEntry {
			return err
		}
	}
	return nil
}

type fixedName string

func (n fixedName) Generate() string { return string(n) }
