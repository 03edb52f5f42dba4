package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// OrderField maps an order key to a column expression.
type OrderField struct {
	Expr  string
	Nulls string
}

// OrderSchema whitelists order keys and supplies the defaults used when a
// request names fewer than two keys.
type OrderSchema struct {
	DefaultPrimary     string
	DefaultPrimaryDesc bool
	FallbackKey        string
	FallbackDesc       bool
	Fields             map[string]OrderField
}

// Column returns the column expression for key, falling back to the default
// primary key for unknown or empty keys.
func (s OrderSchema) Column(key string) string {
	if f, ok := s.Fields[key]; ok && f.Expr != "" {
		return f.Expr
	}
	if f, ok := s.Fields[s.DefaultPrimary]; ok && f.Expr != "" {
		return f.Expr
	}
	return s.DefaultPrimary
}

type order struct {
	primary       string
	primaryDesc   bool
	secondary     string
	secondaryDesc bool
}

func parseOrderBy(raw string, schema OrderSchema) (order, error) {
	if schema.DefaultPrimary == "" || schema.FallbackKey == "" {
		return order{}, errors.New("order schema needs a default primary and a fallback key")
	}
	for _, key := range []string{schema.DefaultPrimary, schema.FallbackKey} {
		if _, ok := schema.Fields[key]; !ok {
			return order{}, fmt.Errorf("order key %q missing from schema fields", key)
		}
	}

	ord := order{
		primary:       schema.DefaultPrimary,
		primaryDesc:   schema.DefaultPrimaryDesc,
		secondary:     schema.FallbackKey,
		secondaryDesc: schema.FallbackDesc,
	}

	var keys []string
	seen := make(map[string]struct{})
	var desc []bool
	for _, seg := range strings.Split(raw, ",") {
		parts := strings.Fields(seg)
		if len(parts) == 0 {
			continue
		}
		if len(parts) > 2 {
			return order{}, fmt.Errorf("invalid order segment %q", strings.TrimSpace(seg))
		}
		key := parts[0]
		if _, ok := schema.Fields[key]; !ok {
			return order{}, fmt.Errorf("field %q cannot be used for ordering", key)
		}
		if _, dup := seen[key]; dup {
			return order{}, fmt.Errorf("duplicate order key %q", key)
		}
		seen[key] = struct{}{}

		d := false
		if len(parts) == 2 {
			switch strings.ToLower(parts[1]) {
			case "asc":
			case "desc":
				d = true
			default:
				return order{}, fmt.Errorf("invalid direction %q for field %q", parts[1], key)
			}
		}
		keys = append(keys, key)
		desc = append(desc, d)
	}

	switch len(keys) {
	case 0:
	case 1:
		ord.primary, ord.primaryDesc = keys[0], desc[0]
	case 2:
		ord.primary, ord.primaryDesc = keys[0], desc[0]
		ord.secondary, ord.secondaryDesc = keys[1], desc[1]
	default:
		return order{}, errors.New("order_by supports at most two keys")
	}

	if ord.secondary == ord.primary {
		// Keep the ordering total by using the default primary as tie-breaker.
		if ord.primary == schema.DefaultPrimary {
			return order{}, errors.New("order schema needs two distinct keys")
		}
		ord.secondary, ord.secondaryDesc = schema.DefaultPrimary, schema.DefaultPrimaryDesc
	}
	return ord, nil
}

func setOrder(target reflect.Value, ord order) error {
	values := []struct {
		name  string
		value any
	}{
		{"PrimaryKey", ord.primary},
		{"PrimaryDesc", ord.primaryDesc},
		{"SecondaryKey", ord.secondary},
		{"SecondaryDesc", ord.secondaryDesc},
	}
	for _, v := range values {
		field := target.FieldByName(v.name)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("%s has no settable field %q", target.Type(), v.name)
		}
		value := reflect.ValueOf(v.value)
		if !value.Type().ConvertibleTo(field.Type()) {
			return fmt.Errorf("field %q must be %s-compatible", v.name, value.Type())
		}
		field.Set(value.Convert(field.Type()))
	}
	return nil
}
