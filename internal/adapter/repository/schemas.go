package repository

import (
	"strings"

	"github.com/eslsoft/conlang/internal/entity"
	"github.com/eslsoft/conlang/pkg/filterexpr"
)

var listDictionarySchema = filterexpr.Schema{
	Filter: map[string]filterexpr.Field{
		"word": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ:       "Word",
				filterexpr.OpSW:       "WordPrefix",
				filterexpr.OpContains: "WordContains",
				filterexpr.OpIN:       "Words",
			},
			Normalize: entity.NormalizeWordToken,
		},
		"ipa": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ:       "IPA",
				filterexpr.OpContains: "IPAContains",
			},
			Normalize: strings.TrimSpace,
		},
		"pos": {
			Kind: filterexpr.KindString,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpEQ: "PartOfSpeech",
				filterexpr.OpIN: "PartsOfSpeech",
			},
			Normalize: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
		},
		"definition": {
			Kind: filterexpr.KindString,
			Ops:  map[filterexpr.Op]string{filterexpr.OpContains: "DefinitionContains"},
		},
		"created_at": {
			Kind: filterexpr.KindTimestamp,
			Ops: map[filterexpr.Op]string{
				filterexpr.OpGTE: "CreatedAfter",
				filterexpr.OpLTE: "CreatedBefore",
			},
		},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary:     "created_at",
		DefaultPrimaryDesc: false,
		FallbackKey:        "id",
		FallbackDesc:       false,
		Fields: map[string]filterexpr.OrderField{
			"created_at": {Expr: "created_at", Nulls: "last"},
			"word":       {Expr: "normalized", Nulls: "last"},
			"pos":        {Expr: "pos", Nulls: "last"},
			"id":         {Expr: "id", Nulls: "last"},
		},
	},
}
