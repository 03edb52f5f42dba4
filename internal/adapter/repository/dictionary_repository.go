package repository

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/infrastructure/database"
	"github.com/eslsoft/conlang/internal/repository"
	"github.com/eslsoft/conlang/pkg/filterexpr"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const dictionaryTable = "dictionary_entries"

var dictionaryColumns = []string{"id", "language_id", "word", "ipa", "pos", "definition", "created_at"}

type DictionaryRepository struct {
	db *database.DB
}

// NewDictionaryRepository constructs a SQL-backed dictionary store.
func NewDictionaryRepository(db *database.DB) repository.DictionaryRepository {
	return &DictionaryRepository{db: db}
}

type listDictionaryParams struct {
	Word               string
	WordPrefix         *string
	WordContains       *string
	Words              []string
	IPA                string
	IPAContains        *string
	PartOfSpeech       string
	PartsOfSpeech      []string
	DefinitionContains *string
	CreatedAfter       *time.Time
	CreatedBefore      *time.Time
	PrimaryKey         string
	PrimaryDesc        bool
	SecondaryKey       string
	SecondaryDesc      bool
}

func (r *DictionaryRepository) Create(ctx context.Context, entry *entity.DictionaryEntry) (*entity.DictionaryEntry, error) {
	if entry == nil {
		return nil, errors.New("entry is required")
	}
	rec := *entry
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	query, args := r.insert(rec).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, translateDictionaryError(err)
	}
	return &rec, nil
}

func (r *DictionaryRepository) FindByWord(ctx context.Context, languageID, word string) (*entity.DictionaryEntry, error) {
	key := entity.NormalizeWordToken(word)
	if key == "" {
		return nil, nil
	}
	b := r.db.Builder()
	query, args := b.Select(dictionaryColumns...).
		From(b.Table(dictionaryTable)).
		Where(sql.And(sql.EQ("language_id", languageID), sql.EQ("normalized", key))).
		Limit(1).
		Query()

	rec, err := scanDictionaryEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find dictionary entry: %w", err)
	}
	return rec, nil
}

func (r *DictionaryRepository) List(ctx context.Context, query *repository.ListDictionaryQuery) ([]*entity.DictionaryEntry, int64, error) {
	if query == nil {
		query = &repository.ListDictionaryQuery{}
	}
	var params listDictionaryParams
	if err := filterexpr.Bind(query, &params, listDictionarySchema); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", entity.ErrInvalidFilter, err)
	}

	b := r.db.Builder()
	countQuery, countArgs := b.Select(sql.Count("*")).
		From(b.Table(dictionaryTable)).
		Where(applyDictionaryFilters(query, params)).
		Query()
	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count dictionary entries: %w", err)
	}

	sel := b.Select(dictionaryColumns...).
		From(b.Table(dictionaryTable)).
		Where(applyDictionaryFilters(query, params))
	applyDictionaryOrdering(sel, params)
	if query.PageSize > 0 {
		sel.Limit(int(query.PageSize)).Offset(int(query.Offset()))
	}
	listQuery, listArgs := sel.Query()

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list dictionary entries: %w", err)
	}
	defer rows.Close()

	var items []*entity.DictionaryEntry
	for rows.Next() {
		rec, err := scanDictionaryEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan dictionary entry: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate dictionary entries: %w", err)
	}
	return items, total, nil
}

func (r *DictionaryRepository) DeleteByWords(ctx context.Context, languageID string, words []string) (int64, error) {
	keys := normalizeWordKeys(words)
	if len(keys) == 0 {
		return 0, nil
	}
	query, args := r.db.Builder().Delete(dictionaryTable).
		Where(sql.And(sql.EQ("language_id", languageID), sql.In("normalized", stringArgs(keys)...))).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete dictionary entries: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete dictionary entries: %w", err)
	}
	return affected, nil
}

// ReplaceAll swaps the language's dictionary for entries in one transaction.
// Entries whose word collides with an earlier one are skipped.
func (r *DictionaryRepository) ReplaceAll(ctx context.Context, languageID string, entries []*entity.DictionaryEntry) error {
	return r.db.InTx(ctx, func(q database.Querier) error {
		query, args := r.db.Builder().Delete(dictionaryTable).Where(sql.EQ("language_id", languageID)).Query()
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear dictionary: %w", err)
		}
		for _, entry := range entries {
			if entry == nil || entry.Key() == "" {
				continue
			}
			rec := *entry
			rec.LanguageID = languageID
			if rec.ID == "" {
				rec.ID = uuid.NewString()
			}
			query, args := r.insert(rec).
				OnConflict(sql.ConflictColumns("language_id", "normalized"), sql.DoNothing()).
				Query()
			if _, err := q.ExecContext(ctx, query, args...); err != nil {
				return translateDictionaryError(err)
			}
		}
		return nil
	})
}

func (r *DictionaryRepository) insert(rec entity.DictionaryEntry) *sql.InsertBuilder {
	return r.db.Builder().Insert(dictionaryTable).
		Columns("id", "language_id", "word", "normalized", "ipa", "pos", "definition", "created_at").
		Values(rec.ID, rec.LanguageID, rec.Word, rec.Key(), rec.IPA, string(rec.PartOfSpeech), rec.Definition, rec.CreatedAt.UTC())
}

func applyDictionaryFilters(query *repository.ListDictionaryQuery, params listDictionaryParams) *sql.Predicate {
	preds := []*sql.Predicate{sql.EQ("language_id", query.LanguageID)}

	if kw := strings.TrimSpace(query.Keyword); kw != "" {
		preds = append(preds, sql.Or(sql.ContainsFold("word", kw), sql.ContainsFold("definition", kw)))
	}
	if params.Word != "" {
		preds = append(preds, sql.EQ("normalized", params.Word))
	}
	if prefix := trimmedOrEmpty(params.WordPrefix); prefix != "" {
		preds = append(preds, sql.HasPrefix("normalized", prefix))
	}
	if sub := trimmedOrEmpty(params.WordContains); sub != "" {
		preds = append(preds, sql.Contains("normalized", sub))
	}
	if words := lo.Compact(params.Words); len(words) > 0 {
		preds = append(preds, sql.In("normalized", stringArgs(words)...))
	}
	if params.IPA != "" {
		preds = append(preds, sql.EQ("ipa", params.IPA))
	}
	if sub := trimmedOrEmpty(params.IPAContains); sub != "" {
		preds = append(preds, sql.Contains("ipa", sub))
	}
	if params.PartOfSpeech != "" {
		preds = append(preds, sql.EQ("pos", params.PartOfSpeech))
	}
	if parts := lo.Uniq(lo.Compact(params.PartsOfSpeech)); len(parts) > 0 {
		preds = append(preds, sql.In("pos", stringArgs(parts)...))
	}
	if sub := trimmedOrEmpty(params.DefinitionContains); sub != "" {
		preds = append(preds, sql.ContainsFold("definition", sub))
	}
	if params.CreatedAfter != nil {
		preds = append(preds, sql.GTE("created_at", params.CreatedAfter.UTC()))
	}
	if params.CreatedBefore != nil {
		preds = append(preds, sql.LTE("created_at", params.CreatedBefore.UTC()))
	}
	return sql.And(preds...)
}

func applyDictionaryOrdering(sel *sql.Selector, params listDictionaryParams) {
	order := func(key string, desc bool) string {
		col := listDictionarySchema.Order.Column(key)
		if desc {
			return sql.Desc(col)
		}
		return sql.Asc(col)
	}
	sel.OrderBy(order(params.PrimaryKey, params.PrimaryDesc))
	if params.SecondaryKey != "" && params.SecondaryKey != params.PrimaryKey {
		sel.OrderBy(order(params.SecondaryKey, params.SecondaryDesc))
	}
	if params.PrimaryKey != "id" && params.SecondaryKey != "id" {
		sel.OrderBy(sql.Asc("id"))
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDictionaryEntry(row rowScanner) (*entity.DictionaryEntry, error) {
	var (
		rec entity.DictionaryEntry
		pos string
	)
	if err := row.Scan(&rec.ID, &rec.LanguageID, &rec.Word, &rec.IPA, &pos, &rec.Definition, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.PartOfSpeech = entity.PartOfSpeech(pos)
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}

func translateDictionaryError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return entity.ErrDuplicateDictionaryEntry
	}
	return fmt.Errorf("save dictionary entry: %w", err)
}
