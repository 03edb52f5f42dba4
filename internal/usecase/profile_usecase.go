package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/lexparse"
	"github.com/eslsoft/conlang/internal/naming"
	"github.com/eslsoft/conlang/internal/repository"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ProfileUsecase turns wizard drafts into language profiles and manages the stored library.
type ProfileUsecase interface {
	Create(ctx context.Context, draft *entity.LanguageDraft) (*entity.LanguageProfile, error)
	Save(ctx context.Context, profile *entity.LanguageProfile) (*entity.LanguageProfile, error)
	Get(ctx context.Context, idOrName string) (*entity.LanguageProfile, error)
	List(ctx context.Context, query *repository.ListLanguageQuery) ([]*entity.LanguageSummary, int64, error)
	Delete(ctx context.Context, idOrName string) error
}

// NameGenerator proposes a name for languages created without one.
type NameGenerator interface {
	Generate() string
}

type profileUsecase struct {
	repo  repository.LanguageRepository
	names NameGenerator
	clock func() time.Time
}

func NewProfileUsecase(repo repository.LanguageRepository, names *naming.Generator) ProfileUsecase {
	if names == nil {
		names = naming.NewGenerator(nil)
	}
	return newProfileUsecase(repo, names, time.Now)
}

func newProfileUsecase(repo repository.LanguageRepository, names NameGenerator, clock func() time.Time) *profileUsecase {
	if clock == nil {
		clock = time.Now
	}
	if names == nil {
		names = naming.NewGenerator(nil)
	}
	return &profileUsecase{repo: repo, names: names, clock: clock}
}

// Create validates the draft and builds a profile. Nothing is persisted.
func (u *profileUsecase) Create(_ context.Context, draft *entity.LanguageDraft) (*entity.LanguageProfile, error) {
	if draft == nil {
		return nil, errors.New("language draft required")
	}

	phonotactics := entity.PhonotacticProfile{
		Consonants:       inventory(draft.Consonants),
		Vowels:           inventory(draft.Vowels),
		OnsetClusters:    cleanList(draft.OnsetClusters),
		MedialClusters:   cleanList(draft.MedialClusters),
		CodaClusters:     cleanList(draft.CodaClusters),
		IllegalSequences: lexparse.ParseIllegalSequences(draft.IllegalSequences),
	}
	if err := phonotactics.Validate(); err != nil {
		return nil, err
	}

	stress, err := stressFromDraft(draft)
	if err != nil {
		return nil, err
	}

	order := entity.DefaultWordOrder
	if raw := strings.TrimSpace(draft.WordOrder); raw != "" {
		parsed, ok := entity.ParseWordOrder(raw)
		if !ok {
			return nil, &entity.ValidationError{Field: "grammar.word_order", Err: entity.ErrInvalidWordOrder}
		}
		order = parsed
	}
	optional := lo.FilterMap(draft.OptionalPartsOfSpeech, func(label string, _ int) (entity.PartOfSpeech, bool) {
		return entity.ParsePartOfSpeech(label)
	})

	parts := entity.LanguageParts{
		Name:         strings.TrimSpace(draft.Name),
		Tagline:      strings.TrimSpace(draft.Tagline),
		Phonotactics: phonotactics,
		Stress:       stress,
		Lexicon:      lexparse.ParseLexicon(draft.Lexicon),
		Affixes:      lexparse.ParseAffixes(draft.Affixes),
		DerivedWords: lexparse.ParseDerivedWords(draft.DerivedWords),
		Grammar:      entity.NewGrammarProfile(order, optional, draft.GrammarNotes),
	}
	if parts.Name == "" {
		parts.GeneratedName = u.names.Generate()
	}

	profile := entity.NewLanguageProfile(parts, u.clock().UTC())
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

func stressFromDraft(draft *entity.LanguageDraft) (entity.StressSettings, error) {
	pattern := entity.StressNoFixed
	if raw := strings.TrimSpace(draft.StressPattern); raw != "" {
		parsed, ok := entity.ParseStressPattern(raw)
		if !ok {
			return entity.StressSettings{}, &entity.ValidationError{Field: "stress.pattern", Err: entity.ErrInvalidStressPattern}
		}
		pattern = parsed
	}

	settings := entity.StressSettings{Pattern: pattern}
	if pattern == entity.StressCustomFoot {
		custom := entity.DefaultCustomStressPattern()
		if draft.CustomStress != nil {
			custom = *draft.CustomStress
			if custom.FootDirection == "" {
				custom.FootDirection = entity.FootLeftToRight
			}
			if custom.MainStressPosition == "" {
				custom.MainStressPosition = entity.MainStressRightMost
			}
		}
		settings.Custom = &custom
	}
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return entity.StressSettings{}, err
	}
	return settings, nil
}

func (u *profileUsecase) Save(ctx context.Context, profile *entity.LanguageProfile) (*entity.LanguageProfile, error) {
	if profile == nil {
		return nil, errors.New("language profile required")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	out := profile.Clone()
	now := u.clock().UTC()
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now
	}
	out.UpdatedAt = now
	return u.repo.Save(ctx, out)
}

// Get resolves a profile by its identifier or, failing that, by display name.
func (u *profileUsecase) Get(ctx context.Context, idOrName string) (*entity.LanguageProfile, error) {
	key := strings.TrimSpace(idOrName)
	if key == "" {
		return nil, entity.ErrInvalidLanguageID
	}
	if _, err := uuid.Parse(key); err == nil {
		profile, err := u.repo.Get(ctx, key)
		if err == nil || !errors.Is(err, entity.ErrLanguageNotFound) {
			return profile, err
		}
	}
	profile, err := u.repo.FindByName(ctx, key)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, entity.ErrLanguageNotFound
	}
	return profile, nil
}

func (u *profileUsecase) List(ctx context.Context, query *repository.ListLanguageQuery) ([]*entity.LanguageSummary, int64, error) {
	return u.repo.List(ctx, query)
}

func (u *profileUsecase) Delete(ctx context.Context, idOrName string) error {
	profile, err := u.Get(ctx, idOrName)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, profile.ID)
}

// inventory trims, dedupes and sorts phoneme symbols the way the wizard's charts report them.
func inventory(symbols []string) []string {
	out := cleanList(symbols)
	sort.Strings(out)
	return out
}

func cleanList(items []string) []string {
	out := lo.Uniq(lo.Compact(lo.Map(items, func(s string, _ int) string { return strings.TrimSpace(s) })))
	if len(out) == 0 {
		return nil
	}
	return out
}
