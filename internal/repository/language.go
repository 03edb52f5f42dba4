package repository

import (
	"context"

	"github.com/eslsoft/conlang/internal/entity"
)

type ListLanguageQuery struct {
	Pagination
	Keyword string
}

// LanguageRepository persists language profiles.
type LanguageRepository interface {
	// Save inserts the profile or replaces the stored copy with the same ID.
	Save(ctx context.Context, profile *entity.LanguageProfile) (*entity.LanguageProfile, error)
	Get(ctx context.Context, id string) (*entity.LanguageProfile, error)
	// FindByName matches the display name case-insensitively. Returns nil, nil when absent.
	FindByName(ctx context.Context, name string) (*entity.LanguageProfile, error)
	List(ctx context.Context, query *ListLanguageQuery) ([]*entity.LanguageSummary, int64, error)
	Delete(ctx context.Context, id string) error
}
