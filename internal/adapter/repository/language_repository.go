package repository

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/infrastructure/database"
	"github.com/eslsoft/conlang/internal/repository"
)

const languagesTable = "languages"

type LanguageRepository struct {
	db *database.DB
}

// NewLanguageRepository constructs a SQL-backed language store.
func NewLanguageRepository(db *database.DB) repository.LanguageRepository {
	return &LanguageRepository{db: db}
}

func (r *LanguageRepository) Save(ctx context.Context, profile *entity.LanguageProfile) (*entity.LanguageProfile, error) {
	if profile == nil {
		return nil, errors.New("profile is required")
	}
	doc, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode language document: %w", err)
	}

	query, args := r.db.Builder().Insert(languagesTable).
		Columns("id", "name", "display_name", "document", "created_at", "updated_at").
		Values(profile.ID, profile.Name, profile.DisplayName(), string(doc), profile.CreatedAt.UTC(), profile.UpdatedAt.UTC()).
		OnConflict(
			sql.ConflictColumns("id"),
			sql.ResolveWith(func(u *sql.UpdateSet) {
				u.SetExcluded("name")
				u.SetExcluded("display_name")
				u.SetExcluded("document")
				u.SetExcluded("updated_at")
			}),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("save language: %w", err)
	}
	return profile.Clone(), nil
}

func (r *LanguageRepository) Get(ctx context.Context, id string) (*entity.LanguageProfile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, entity.ErrInvalidLanguageID
	}
	profile, err := r.first(ctx, sql.EQ("id", id))
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, entity.ErrLanguageNotFound
	}
	return profile, nil
}

func (r *LanguageRepository) FindByName(ctx context.Context, name string) (*entity.LanguageProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	return r.first(ctx, sql.EqualFold("display_name", name))
}

func (r *LanguageRepository) first(ctx context.Context, pred *sql.Predicate) (*entity.LanguageProfile, error) {
	b := r.db.Builder()
	query, args := b.Select("document").
		From(b.Table(languagesTable)).
		Where(pred).
		OrderBy(sql.Desc("updated_at"), sql.Asc("id")).
		Limit(1).
		Query()

	var doc []byte
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get language: %w", err)
	}
	return decodeLanguage(doc)
}

func (r *LanguageRepository) List(ctx context.Context, query *repository.ListLanguageQuery) ([]*entity.LanguageSummary, int64, error) {
	if query == nil {
		query = &repository.ListLanguageQuery{}
	}
	b := r.db.Builder()

	countSel := b.Select(sql.Count("*")).From(b.Table(languagesTable))
	if p := languageKeyword(query.Keyword); p != nil {
		countSel.Where(p)
	}
	countQuery, countArgs := countSel.Query()
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count languages: %w", err)
	}

	sel := b.Select("document").From(b.Table(languagesTable))
	if p := languageKeyword(query.Keyword); p != nil {
		sel.Where(p)
	}
	sel.OrderBy(sql.Desc("updated_at"), sql.Asc("id"))
	if query.PageSize > 0 {
		sel.Limit(int(query.PageSize)).Offset(int(query.Offset()))
	}
	listQuery, listArgs := sel.Query()

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	var items []*entity.LanguageSummary
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, 0, fmt.Errorf("scan language: %w", err)
		}
		profile, err := decodeLanguage(doc)
		if err != nil {
			return nil, 0, err
		}
		summary := profile.Summarize()
		items = append(items, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate languages: %w", err)
	}
	return items, total, nil
}

func (r *LanguageRepository) Delete(ctx context.Context, id string) error {
	query, args := r.db.Builder().Delete(languagesTable).Where(sql.EQ("id", id)).Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	if affected == 0 {
		return entity.ErrLanguageNotFound
	}
	return nil
}

func languageKeyword(keyword string) *sql.Predicate {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	return sql.ContainsFold("display_name", keyword)
}

func decodeLanguage(doc []byte) (*entity.LanguageProfile, error) {
	var profile entity.LanguageProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("decode language document: %w", err)
	}
	return &profile, nil
}
