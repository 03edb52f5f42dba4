package filterexpr

import (
	"strings"
	"testing"
	"time"
)

type request struct {
	filter  string
	orderBy string
}

func (r request) GetFilter() string  { return r.filter }
func (r request) GetOrderBy() string { return r.orderBy }

type entryQuery struct {
	WordPrefix   *string
	Words        []string
	PartOfSpeech string
	Gloss        *string
	CreatedAfter *time.Time

	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

var entrySchema = Schema{
	Filter: map[string]Field{
		"word": {
			Kind:      KindString,
			Ops:       map[Op]string{OpSW: "WordPrefix", OpIN: "Words"},
			Normalize: strings.ToLower,
		},
		"pos": {
			Kind: KindString,
			Ops:  map[Op]string{OpEQ: "PartOfSpeech"},
		},
		"definition": {
			Kind: KindString,
			Ops:  map[Op]string{OpContains: "Gloss"},
		},
		"created_at": {
			Kind: KindTimestamp,
			Ops:  map[Op]string{OpGTE: "CreatedAfter"},
		},
	},
	Order: OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: true,
		FallbackKey:        "id",
		Fields: map[string]OrderField{
			"created_at": {Expr: "created_at"},
			"word":       {Expr: "normalized"},
			"id":         {Expr: "id"},
		},
	},
}

func TestBindConjunction(t *testing.T) {
	var q entryQuery
	filter := "word.startsWith('VA') && pos == 'noun' && definition.contains('light') && created_at >= timestamp('2025-01-01T00:00:00Z')"
	if err := Bind(request{filter: filter}, &q, entrySchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if q.WordPrefix == nil || *q.WordPrefix != "va" {
		t.Fatalf("expected normalized prefix 'va', got %v", q.WordPrefix)
	}
	if q.PartOfSpeech != "noun" {
		t.Fatalf("expected pos noun, got %q", q.PartOfSpeech)
	}
	if q.Gloss == nil || *q.Gloss != "light" {
		t.Fatalf("expected gloss 'light', got %v", q.Gloss)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if q.CreatedAfter == nil || !q.CreatedAfter.Equal(want) {
		t.Fatalf("expected CreatedAfter %v, got %v", want, q.CreatedAfter)
	}
	if q.PrimaryKey != "created_at" || !q.PrimaryDesc || q.SecondaryKey != "id" || q.SecondaryDesc {
		t.Fatalf("unexpected default order %+v", q)
	}
}

func TestBindInOperator(t *testing.T) {
	var q entryQuery
	if err := Bind(request{filter: "word in ['Vala', 'RENI']"}, &q, entrySchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if len(q.Words) != 2 || q.Words[0] != "vala" || q.Words[1] != "reni" {
		t.Fatalf("unexpected words %v", q.Words)
	}
}

func TestBindGlobalStartsWith(t *testing.T) {
	var q entryQuery
	if err := Bind(request{filter: "startsWith(word, 're')"}, &q, entrySchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if q.WordPrefix == nil || *q.WordPrefix != "re" {
		t.Fatalf("expected prefix 're', got %v", q.WordPrefix)
	}
}

func TestBindOrderBy(t *testing.T) {
	cases := []struct {
		name          string
		orderBy       string
		primary       string
		primaryDesc   bool
		secondary     string
		secondaryDesc bool
	}{
		{name: "single key", orderBy: "word", primary: "word", secondary: "id"},
		{name: "two keys", orderBy: "word desc, created_at asc", primary: "word", primaryDesc: true, secondary: "created_at"},
		{name: "fallback duplicate", orderBy: "id desc", primary: "id", primaryDesc: true, secondary: "created_at", secondaryDesc: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var q entryQuery
			if err := Bind(request{orderBy: tc.orderBy}, &q, entrySchema); err != nil {
				t.Fatalf("Bind returned error: %v", err)
			}
			if q.PrimaryKey != tc.primary || q.PrimaryDesc != tc.primaryDesc ||
				q.SecondaryKey != tc.secondary || q.SecondaryDesc != tc.secondaryDesc {
				t.Fatalf("unexpected order %+v", q)
			}
		})
	}
}

func TestBindErrors(t *testing.T) {
	cases := []struct {
		name    string
		filter  string
		orderBy string
		want    string
	}{
		{name: "unknown field", filter: "ipa == 'x'", want: "not allowed"},
		{name: "unknown operator", filter: "pos.startsWith('n')", want: "operator"},
		{name: "wrong literal", filter: "pos == 1", want: "literal type"},
		{name: "disjunction", filter: "pos == 'noun' || pos == 'verb'", want: "&&"},
		{name: "non literal", filter: "pos == word", want: "right-hand side"},
		{name: "empty list", filter: "word in []", want: "must not be empty"},
		{name: "list of numbers", filter: "word in [1]", want: "must be strings"},
		{name: "bad timestamp", filter: "created_at >= timestamp('yesterday')", want: "RFC3339"},
		{name: "syntax", filter: "pos ==", want: "invalid filter"},
		{name: "bad order key", orderBy: "ipa", want: "cannot be used"},
		{name: "bad direction", orderBy: "word sideways", want: "invalid direction"},
		{name: "duplicate order key", orderBy: "word, word desc", want: "duplicate"},
		{name: "three keys", orderBy: "word, id, created_at", want: "at most two"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var q entryQuery
			err := Bind(request{filter: tc.filter, orderBy: tc.orderBy}, &q, entrySchema)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestBindRequiresStructPointer(t *testing.T) {
	var q *entryQuery
	if err := Bind(request{filter: "pos == 'noun'"}, q, entrySchema); err == nil {
		t.Fatalf("expected error for nil destination")
	}
	s := "not a struct"
	if err := Bind(request{}, &s, entrySchema); err == nil {
		t.Fatalf("expected error for non-struct destination")
	}
}

func TestOrderSchemaColumn(t *testing.T) {
	if got := entrySchema.Order.Column("word"); got != "normalized" {
		t.Fatalf("expected normalized, got %q", got)
	}
	if got := entrySchema.Order.Column("missing"); got != "created_at" {
		t.Fatalf("expected default column, got %q", got)
	}
}
