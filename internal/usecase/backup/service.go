package backup

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/conlang/internal/infrastructure/database"
)

const (
	defaultBatchSize = 512
	formatVersion    = 1
)

var (
	errNoTablesSelected = errors.New("backup: no tables selected")
	// ErrSchemaMismatch is returned when a backup was taken from a different table layout.
	ErrSchemaMismatch = errors.New("backup: schema hash mismatch")
)

type ProgressReporter interface {
	StartTable(table string, total int)
	Increment(table string, delta int)
	FinishTable(table string)
}

type noopProgress struct{}

func (noopProgress) StartTable(string, int) {}
func (noopProgress) Increment(string, int)  {}
func (noopProgress) FinishTable(string)     {}

// Service streams the workspace tables (languages and their dictionaries) to and from NDJSON.
type Service struct {
	db         *database.DB
	batchSize  int
	tables     []*schema.Table
	tableIndex map[string]*schema.Table
	schemaHash string
	clock      func() time.Time
}

type Option func(*Service)

func WithBatchSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.batchSize = size
		}
	}
}

// NewService constructs a backup service over db. Tables keep their declared
// order so parents are written and restored before the rows that reference them.
func NewService(db *database.DB, opts ...Option) (*Service, error) {
	if db == nil {
		return nil, errors.New("backup: database is required")
	}
	tables, err := schema.CopyTables(database.Tables)
	if err != nil {
		return nil, fmt.Errorf("copy schema tables: %w", err)
	}
	tableIndex := make(map[string]*schema.Table, len(tables))
	for _, tbl := range tables {
		tableIndex[tbl.Name] = tbl
	}

	svc := &Service{
		db:         db,
		batchSize:  defaultBatchSize,
		tables:     tables,
		tableIndex: tableIndex,
		schemaHash: computeSchemaHash(tables),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// TableNames lists the tables a backup can contain.
func (s *Service) TableNames() []string {
	return tableNames(s.tables)
}

type ExportOption func(*exportConfig)

type exportConfig struct {
	tables   []string
	reporter ProgressReporter
}

// WithTables restricts export to the provided table names.
func WithTables(tables []string) ExportOption {
	return func(cfg *exportConfig) {
		if len(tables) == 0 {
			return
		}
		cfg.tables = append([]string{}, tables...)
	}
}

// WithProgressReporter registers a reporter that receives progress callbacks during export.
func WithProgressReporter(reporter ProgressReporter) ExportOption {
	return func(cfg *exportConfig) {
		cfg.reporter = reporter
	}
}

type ImportOption func(*importConfig)

type importConfig struct {
	tables []string
}

// WithImportTables restricts import to the provided table names.
func WithImportTables(tables []string) ImportOption {
	return func(cfg *importConfig) {
		if len(tables) == 0 {
			return
		}
		cfg.tables = append([]string{}, tables...)
	}
}

type record struct {
	Type       string         `json:"type"`
	Version    int            `json:"version,omitempty"`
	ExportedAt *time.Time     `json:"exported_at,omitempty"`
	SchemaHash string         `json:"schema_hash,omitempty"`
	Tables     []string       `json:"tables,omitempty"`
	RowCounts  map[string]int `json:"row_counts,omitempty"`
	Payload    any            `json:"payload,omitempty"`
}

type rawRecord struct {
	Type       string          `json:"type"`
	Version    int             `json:"version"`
	ExportedAt *time.Time      `json:"exported_at"`
	SchemaHash string          `json:"schema_hash"`
	Tables     []string        `json:"tables"`
	RowCounts  map[string]int  `json:"row_counts"`
	Payload    json.RawMessage `json:"payload"`
}

func (s *Service) Export(ctx context.Context, w io.Writer, opts ...ExportOption) error {
	cfg := exportConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tables, err := s.selectTables(cfg.tables)
	if err != nil {
		return err
	}
	reporter := cfg.reporter
	if reporter == nil {
		reporter = noopProgress{}
	}

	counts := make(map[string]int, len(tables))
	for _, tbl := range tables {
		count, err := s.countTableRows(ctx, tbl.Name)
		if err != nil {
			return fmt.Errorf("count table %s: %w", tbl.Name, err)
		}
		counts[tbl.Name] = count
	}

	writer := bufio.NewWriter(w)
	defer writer.Flush()

	now := s.clock().UTC()
	meta := record{
		Type:       "meta",
		Version:    formatVersion,
		ExportedAt: &now,
		SchemaHash: s.schemaHash,
		Tables:     tableNames(tables),
		RowCounts:  counts,
	}
	if err := writeRecord(writer, meta); err != nil {
		return err
	}

	for _, tbl := range tables {
		reporter.StartTable(tbl.Name, counts[tbl.Name])
		if err := s.exportTable(ctx, tbl, reporter, writer); err != nil {
			return err
		}
		reporter.FinishTable(tbl.Name)
	}
	return writer.Flush()
}

// Import restores rows inside a single transaction. Existing rows with the
// same primary key are overwritten.
func (s *Service) Import(ctx context.Context, r io.Reader, opts ...ImportOption) error {
	cfg := importConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	tables, err := s.selectTables(cfg.tables)
	if err != nil {
		return err
	}
	tableFilter := make(map[string]*schema.Table, len(tables))
	for _, tbl := range tables {
		tableFilter[tbl.Name] = tbl
	}

	return s.db.InTx(ctx, func(q database.Querier) error {
		br := bufio.NewReader(r)
		metaSeen := false
		for {
			line, err := br.ReadBytes('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read backup: %w", err)
			}
			line = bytes.TrimSpace(line)
			if len(line) > 0 {
				var rec rawRecord
				if err := json.Unmarshal(line, &rec); err != nil {
					return fmt.Errorf("decode record: %w", err)
				}
				if rec.Type == "meta" {
					if err := s.checkMeta(rec); err != nil {
						return err
					}
					metaSeen = true
				} else {
					if !metaSeen {
						return errors.New("backup: missing meta record")
					}
					if tbl, ok := tableFilter[rec.Type]; ok {
						if len(rec.Payload) == 0 {
							return fmt.Errorf("backup: missing payload for table %s", rec.Type)
						}
						if err := s.importRow(ctx, q, tbl, rec.Payload); err != nil {
							return err
						}
					}
				}
			}
			if errors.Is(err, io.EOF) {
				break
			}
		}
		if !metaSeen {
			return errors.New("backup: missing meta record")
		}
		return nil
	})
}

func (s *Service) checkMeta(rec rawRecord) error {
	if rec.Version != formatVersion {
		return fmt.Errorf("backup: unsupported format version %d", rec.Version)
	}
	if rec.SchemaHash != "" && rec.SchemaHash != s.schemaHash {
		return ErrSchemaMismatch
	}
	return nil
}

func (s *Service) exportTable(ctx context.Context, table *schema.Table, reporter ProgressReporter, w io.Writer) error {
	columns := columnNames(table)
	if len(columns) == 0 {
		return nil
	}
	batch := s.batchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	b := s.db.Builder()
	for offset := 0; ; offset += batch {
		query, args := b.Select(columns...).
			From(b.Table(table.Name)).
			OrderBy(orderColumns(table)...).
			Limit(batch).
			Offset(offset).
			Query()
		rowCount, err := s.exportBatch(ctx, table, columns, query, args, reporter, w)
		if err != nil {
			return err
		}
		if rowCount < batch {
			return nil
		}
	}
}

func (s *Service) exportBatch(ctx context.Context, table *schema.Table, columns []string, query string, args []any, reporter ProgressReporter, w io.Writer) (int, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", table.Name, err)
	}
	defer rows.Close()

	rowCount := 0
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range dest {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return rowCount, fmt.Errorf("scan %s: %w", table.Name, err)
		}
		rowMap, err := convertRow(table, columns, values)
		if err != nil {
			return rowCount, err
		}
		if err := writeRecord(w, record{Type: table.Name, Payload: rowMap}); err != nil {
			return rowCount, err
		}
		reporter.Increment(table.Name, 1)
		rowCount++
	}
	if err := rows.Err(); err != nil {
		return rowCount, fmt.Errorf("iterate %s: %w", table.Name, err)
	}
	return rowCount, nil
}

func (s *Service) importRow(ctx context.Context, q database.Querier, table *schema.Table, payload json.RawMessage) error {
	values, err := decodePayload(table, payload)
	if err != nil {
		return fmt.Errorf("decode payload for %s: %w", table.Name, err)
	}
	if len(values) == 0 {
		return nil
	}

	cols := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, col := range table.Columns {
		val, ok := values[col.Name]
		if !ok {
			continue
		}
		if val == nil && !col.Nullable {
			if col.Default == nil {
				return fmt.Errorf("backup: missing required value for %s.%s", table.Name, col.Name)
			}
			val = col.Default
		}
		cols = append(cols, col.Name)
		args = append(args, val)
	}
	if len(cols) == 0 {
		return nil
	}

	insert := s.db.Builder().Insert(table.Name).Columns(cols...).Values(args...)
	if pk := primaryKeyColumns(table); len(pk) > 0 {
		insert = insert.OnConflict(entsql.ConflictColumns(pk...), entsql.ResolveWithNewValues())
	}
	query, qargs := insert.Query()
	if _, err := q.ExecContext(ctx, query, qargs...); err != nil {
		return fmt.Errorf("insert into %s: %w", table.Name, err)
	}
	return nil
}

func (s *Service) selectTables(requested []string) ([]*schema.Table, error) {
	if len(requested) == 0 {
		return append([]*schema.Table(nil), s.tables...), nil
	}
	set := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		n := strings.TrimSpace(strings.ToLower(name))
		if n == "" {
			continue
		}
		if _, ok := s.tableIndex[n]; !ok {
			return nil, fmt.Errorf("backup: unsupported table %q", name)
		}
		set[n] = struct{}{}
	}
	if len(set) == 0 {
		return nil, errNoTablesSelected
	}
	tbls := make([]*schema.Table, 0, len(set))
	for _, tbl := range s.tables {
		if _, ok := set[tbl.Name]; ok {
			tbls = append(tbls, tbl)
		}
	}
	return tbls, nil
}

func (s *Service) countTableRows(ctx context.Context, table string) (int, error) {
	b := s.db.Builder()
	query, args := b.Select(entsql.Count("*")).From(b.Table(table)).Query()
	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func convertRow(table *schema.Table, columns []string, values []any) (map[string]any, error) {
	result := make(map[string]any, len(columns))
	for idx, name := range columns {
		col := findColumn(table, name)
		if col == nil {
			return nil, fmt.Errorf("column %s not found in table %s", name, table.Name)
		}
		val, err := convertDBValue(col, values[idx])
		if err != nil {
			return nil, fmt.Errorf("convert %s.%s: %w", table.Name, name, err)
		}
		result[name] = val
	}
	return result, nil
}

func convertDBValue(col *schema.Column, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano), nil
	case []byte:
		value = string(v)
	}
	if col.Type != field.TypeJSON {
		return value, nil
	}
	// JSON columns come back as text from both drivers.
	str, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected json value %T", value)
	}
	if !json.Valid([]byte(str)) {
		return nil, errors.New("stored document is not valid json")
	}
	return json.RawMessage(str), nil
}

func decodePayload(table *schema.Table, payload json.RawMessage) (map[string]any, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}
	result := make(map[string]any, len(raw))
	for key, val := range raw {
		col := findColumn(table, key)
		if col == nil {
			return nil, fmt.Errorf("column %s not found in table %s", key, table.Name)
		}
		converted, err := convertJSONValue(col, val)
		if err != nil {
			return nil, fmt.Errorf("convert %s.%s: %w", table.Name, key, err)
		}
		result[key] = converted
	}
	return result, nil
}

func convertJSONValue(col *schema.Column, value json.RawMessage) (any, error) {
	if string(value) == "null" {
		return nil, nil
	}
	switch col.Type {
	case field.TypeJSON:
		return string(value), nil
	case field.TypeTime:
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return nil, err
		}
		return t.UTC(), nil
	case field.TypeString:
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			return nil, err
		}
		return str, nil
	default:
		return nil, fmt.Errorf("unsupported column type %s", col.Type)
	}
}

func primaryKeyColumns(table *schema.Table) []string {
	cols := make([]string, len(table.PrimaryKey))
	for i, col := range table.PrimaryKey {
		cols[i] = col.Name
	}
	return cols
}

func orderColumns(table *schema.Table) []string {
	if cols := primaryKeyColumns(table); len(cols) > 0 {
		return cols
	}
	return columnNames(table)
}

func columnNames(table *schema.Table) []string {
	cols := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		cols[i] = col.Name
	}
	return cols
}

func tableNames(tables []*schema.Table) []string {
	names := make([]string, len(tables))
	for i, tbl := range tables {
		names[i] = tbl.Name
	}
	return names
}

func findColumn(table *schema.Table, name string) *schema.Column {
	for _, col := range table.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

func computeSchemaHash(tables []*schema.Table) string {
	builder := &strings.Builder{}
	sortedTables := make([]*schema.Table, len(tables))
	copy(sortedTables, tables)
	sort.Slice(sortedTables, func(i, j int) bool { return sortedTables[i].Name < sortedTables[j].Name })

	for _, tbl := range sortedTables {
		builder.WriteString(tbl.Name)
		builder.WriteString("|cols:")
		sortedCols := make([]*schema.Column, len(tbl.Columns))
		copy(sortedCols, tbl.Columns)
		sort.Slice(sortedCols, func(i, j int) bool { return sortedCols[i].Name < sortedCols[j].Name })
		for _, col := range sortedCols {
			builder.WriteString(fmt.Sprintf("%s:%d:%t:%t;", col.Name, col.Type, col.Nullable, col.Unique))
		}
		builder.WriteString("|pk:")
		for _, pk := range tbl.PrimaryKey {
			builder.WriteString(pk.Name)
			builder.WriteByte(',')
		}
		builder.WriteString("|idx:")
		sortedIdx := make([]*schema.Index, len(tbl.Indexes))
		copy(sortedIdx, tbl.Indexes)
		sort.Slice(sortedIdx, func(i, j int) bool { return sortedIdx[i].Name < sortedIdx[j].Name })
		for _, idx := range sortedIdx {
			builder.WriteString(idx.Name)
			builder.WriteString(":")
			builder.WriteString(strconv.FormatBool(idx.Unique))
			builder.WriteString(":")
			for _, col := range idx.Columns {
				builder.WriteString(col.Name)
				builder.WriteByte(',')
			}
			builder.WriteByte(';')
		}
		builder.WriteByte('\n')
	}
	sum := sha256.Sum256([]byte(builder.String()))
	return fmt.Sprintf("%x", sum[:])
}

func writeRecord(w io.Writer, rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
