package database

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LanguagesColumns holds the columns for the "languages" table.
	LanguagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "name", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "display_name", Type: field.TypeString, Size: 255},
		{Name: "document", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LanguagesTable holds the schema information for the "languages" table.
	LanguagesTable = &schema.Table{
		Name:       "languages",
		Columns:    LanguagesColumns,
		PrimaryKey: []*schema.Column{LanguagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "language_display_name",
				Unique:  false,
				Columns: []*schema.Column{LanguagesColumns[2]},
			},
		},
	}
	// DictionaryEntriesColumns holds the columns for the "dictionary_entries" table.
	DictionaryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "word", Type: field.TypeString, Size: 255},
		{Name: "normalized", Type: field.TypeString, Size: 255},
		{Name: "ipa", Type: field.TypeString, Size: 255},
		{Name: "pos", Type: field.TypeString, Size: 32},
		{Name: "definition", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "language_id", Type: field.TypeString, Size: 36},
	}
	// DictionaryEntriesTable holds the schema information for the "dictionary_entries" table.
	DictionaryEntriesTable = &schema.Table{
		Name:       "dictionary_entries",
		Columns:    DictionaryEntriesColumns,
		PrimaryKey: []*schema.Column{DictionaryEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dictionary_entries_languages_dictionary",
				Columns:    []*schema.Column{DictionaryEntriesColumns[7]},
				RefColumns: []*schema.Column{LanguagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dictionaryentry_language_id_normalized",
				Unique:  true,
				Columns: []*schema.Column{DictionaryEntriesColumns[7], DictionaryEntriesColumns[2]},
			},
			{
				Name:    "dictionaryentry_language_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DictionaryEntriesColumns[7], DictionaryEntriesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LanguagesTable,
		DictionaryEntriesTable,
	}
)

func init() {
	DictionaryEntriesTable.ForeignKeys[0].RefTable = LanguagesTable
}
