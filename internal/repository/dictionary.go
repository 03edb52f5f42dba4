package repository

import (
	"context"

	"github.com/eslsoft/conlang/internal/entity"
)

type ListDictionaryQuery struct {
	Pagination
	FilterOrder
	LanguageID string
	// Keyword matches word or definition, case-insensitively.
	Keyword string
}

// DictionaryRepository defines data access for a language's dictionary entries.
type DictionaryRepository interface {
	Create(ctx context.Context, entry *entity.DictionaryEntry) (*entity.DictionaryEntry, error)
	FindByWord(ctx context.Context, languageID, word string) (*entity.DictionaryEntry, error)
	List(ctx context.Context, query *ListDictionaryQuery) ([]*entity.DictionaryEntry, int64, error)
	DeleteByWords(ctx context.Context, languageID string, words []string) (int64, error)
	ReplaceAll(ctx context.Context, languageID string, entries []*entity.DictionaryEntry) error
}
