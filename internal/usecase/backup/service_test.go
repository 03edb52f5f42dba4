package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect/sql/schema"
	adapter "github.com/eslsoft/conlang/internal/adapter/repository"
	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/internal/infrastructure/config"
	"github.com/eslsoft/conlang/internal/infrastructure/database"
	"github.com/eslsoft/conlang/internal/repository"
	"github.com/sirupsen/logrus"
)

func TestServiceExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	src := openDB(t, "src.db")
	profile, words := seedData(t, ctx, src)

	exporter, err := NewService(src)
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	progress := &recordingProgress{}
	var buf bytes.Buffer
	if err := exporter.Export(ctx, &buf, WithProgressReporter(progress)); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !reflect.DeepEqual(progress.started, []string{"languages", "dictionary_entries"}) {
		t.Fatalf("tables must be exported parents first, got %v", progress.started)
	}
	if progress.rows != 1+len(words) {
		t.Fatalf("unexpected row count %d", progress.rows)
	}

	dst := openDB(t, "dst.db")
	importer, err := NewService(dst)
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	if err := importer.Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	// Importing the same backup again overwrites rows in place.
	if err := importer.Import(ctx, bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	got, err := adapter.NewLanguageRepository(dst).Get(ctx, profile.ID)
	if err != nil {
		t.Fatalf("get imported language: %v", err)
	}
	if got.DisplayName() != profile.DisplayName() || !reflect.DeepEqual(got.Lexicon, profile.Lexicon) || !got.CreatedAt.Equal(profile.CreatedAt) {
		t.Fatalf("language mismatch after import: %+v", got)
	}
	if snapshot := snapshotWords(t, ctx, dst, profile.ID); !reflect.DeepEqual(snapshot, words) {
		t.Fatalf("dictionary mismatch after import:\nwant %v\ngot  %v", words, snapshot)
	}
}

func TestServiceExportTablesFilter(t *testing.T) {
	ctx := context.Background()
	src := openDB(t, "src.db")
	seedData(t, ctx, src)

	svc, err := NewService(src)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	var buf bytes.Buffer
	if err := svc.Export(ctx, &buf, WithTables([]string{" Languages "})); err != nil {
		t.Fatalf("filtered export failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected meta plus one language, got %d lines", len(lines))
	}
	var meta rawRecord
	if err := json.Unmarshal([]byte(lines[0]), &meta); err != nil {
		t.Fatalf("decode meta: %v", err)
	}
	if meta.Type != "meta" || !reflect.DeepEqual(meta.Tables, []string{"languages"}) || meta.RowCounts["languages"] != 1 {
		t.Fatalf("unexpected meta %+v", meta)
	}

	if err := svc.Export(ctx, &buf, WithTables([]string{"users"})); err == nil {
		t.Fatalf("expected unsupported table error")
	}
}

func TestServiceImportRejectsBadBackups(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(openDB(t, "dst.db"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	cases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "missing meta", input: `{"type":"languages","payload":{"id":"x"}}` + "\n"},
		{name: "empty", input: ""},
		{name: "version", input: `{"type":"meta","version":9}` + "\n"},
		{name: "schema", input: `{"type":"meta","version":1,"schema_hash":"abc"}` + "\n", want: ErrSchemaMismatch},
		{name: "garbage", input: "not json\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Import(ctx, strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestComputeSchemaHashIsStable(t *testing.T) {
	a := computeSchemaHash(database.Tables)
	reversed := []*schema.Table{database.Tables[1], database.Tables[0]}
	if a != computeSchemaHash(reversed) {
		t.Fatalf("hash must not depend on table order")
	}
}

type recordingProgress struct {
	started []string
	rows    int
}

func (p *recordingProgress) StartTable(table string, _ int) { p.started = append(p.started, table) }
func (p *recordingProgress) Increment(_ string, delta int)  { p.rows += delta }
func (p *recordingProgress) FinishTable(string)             {}

func openDB(t *testing.T, name string) *database.DB {
	t.Helper()
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver: "sqlite3",
		DSN:    "file:" + filepath.Join(t.TempDir(), name) + "?_fk=1",
	}}
	db, cleanup, err := database.NewDB(cfg, logrus.New())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(cleanup)
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type wordSnapshot struct {
	ID         string
	Word       string
	IPA        string
	POS        entity.PartOfSpeech
	Definition string
	CreatedAt  time.Time
}

func seedData(t *testing.T, ctx context.Context, db *database.DB) (*entity.LanguageProfile, []wordSnapshot) {
	t.Helper()
	createdAt := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	profile := entity.NewLanguageProfile(entity.LanguageParts{
		Name:         "Valarin",
		Phonotactics: entity.PhonotacticProfile{Consonants: []string{"v", "l", "r", "n"}, Vowels: []string{"a", "e", "i"}},
		Lexicon:      []entity.LexiconEntry{{Conlang: "vala", PartOfSpeech: "noun", English: "sunlight", IPA: "ˈva.la"}},
		Grammar:      entity.GrammarProfile{WordOrder: entity.WordOrderVSO, Notes: "# Syntax"},
	}, createdAt)
	if _, err := adapter.NewLanguageRepository(db).Save(ctx, profile); err != nil {
		t.Fatalf("save language: %v", err)
	}

	dict := adapter.NewDictionaryRepository(db)
	for i, sample := range entity.SampleDictionaryEntries() {
		sample.LanguageID = profile.ID
		sample.CreatedAt = createdAt.Add(time.Duration(i) * time.Minute)
		if _, err := dict.Create(ctx, &sample); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}
	return profile, snapshotWords(t, ctx, db, profile.ID)
}

func snapshotWords(t *testing.T, ctx context.Context, db *database.DB, languageID string) []wordSnapshot {
	t.Helper()
	items, _, err := adapter.NewDictionaryRepository(db).List(ctx, &repository.ListDictionaryQuery{LanguageID: languageID})
	if err != nil {
		t.Fatalf("list dictionary: %v", err)
	}
	out := make([]wordSnapshot, 0, len(items))
	for _, e := range items {
		out = append(out, wordSnapshot{
			ID:         e.ID,
			Word:       e.Word,
			IPA:        e.IPA,
			POS:        e.PartOfSpeech,
			Definition: e.Definition,
			CreatedAt:  e.CreatedAt.UTC(),
		})
	}
	return out
}
