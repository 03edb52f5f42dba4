// Package filterexpr binds AIP-160 style filter strings, written in CEL, and
// "key [asc|desc]" order strings onto plain query structs.
//
// Only conjunctions of simple comparisons are accepted:
//
//	pos == 'verb' && word.startsWith('va') && definition.contains('light')
//
// Each comparison is mapped through a Schema onto a named struct field, so a
// repository can translate the bound struct into SQL without ever seeing CEL.
package filterexpr

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Request is implemented by list queries that carry raw filter and order text.
type Request interface {
	GetFilter() string
	GetOrderBy() string
}

// ValueKind describes the literal type a field accepts.
type ValueKind string

const (
	KindString    ValueKind = "string"
	KindTimestamp ValueKind = "timestamp"
)

// Op is a supported comparison.
type Op string

const (
	OpEQ       Op = "=="
	OpGTE      Op = ">="
	OpLTE      Op = "<="
	OpSW       Op = "startsWith"
	OpContains Op = "contains"
	OpIN       Op = "in"
)

// Field maps one filterable name to struct fields, one per allowed operator.
// Normalize, when set, rewrites every string literal before assignment.
type Field struct {
	Kind      ValueKind
	Ops       map[Op]string
	Normalize func(string) string
}

// Schema aggregates filtering and ordering rules for a resource.
type Schema struct {
	Filter map[string]Field
	Order  OrderSchema
}

var timeType = reflect.TypeOf(time.Time{})

// Bind parses req's filter and order_by into dest, a pointer to a struct.
// The struct must expose PrimaryKey, PrimaryDesc, SecondaryKey and
// SecondaryDesc fields for the resolved ordering.
func Bind[R Request, D any](req R, dest *D, schema Schema) error {
	if dest == nil {
		return errors.New("destination must not be nil")
	}
	target, err := structValue(dest)
	if err != nil {
		return err
	}

	if err := bindFilter(target, req.GetFilter(), schema.Filter); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	order, err := parseOrderBy(req.GetOrderBy(), schema.Order)
	if err != nil {
		return fmt.Errorf("order_by: %w", err)
	}
	return setOrder(target, order)
}

func structValue(dest any) (reflect.Value, error) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, errors.New("destination must be a non-nil pointer")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New("destination must point to a struct")
	}
	return rv, nil
}

func bindFilter(target reflect.Value, filter string, fields map[string]Field) error {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil
	}
	if len(fields) == 0 {
		return errors.New("schema allows no filter fields")
	}

	env, err := newEnv(fields)
	if err != nil {
		return err
	}
	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return fmt.Errorf("convert AST: %w", err)
	}
	terms, err := conjuncts(parsed.GetExpr())
	if err != nil {
		return err
	}

	for _, term := range terms {
		pred, err := parsePredicate(term)
		if err != nil {
			return err
		}
		rule, ok := fields[pred.field]
		if !ok {
			return fmt.Errorf("field %q is not allowed", pred.field)
		}
		name, ok := rule.Ops[pred.op]
		if !ok {
			return fmt.Errorf("operator %q is not allowed for field %q", pred.op, pred.field)
		}
		if err := checkLiteral(rule.Kind, pred.op, pred.value); err != nil {
			return fmt.Errorf("field %q: %w", pred.field, err)
		}

		field := target.FieldByName(name)
		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf("%s has no settable field %q", target.Type(), name)
		}
		if err := assign(field, normalized(rule, pred.value)); err != nil {
			return fmt.Errorf("assign %q: %w", name, err)
		}
	}
	return nil
}

func newEnv(fields map[string]Field) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(fields))
	for name, rule := range fields {
		switch rule.Kind {
		case KindString:
			opts = append(opts, cel.Variable(name, cel.StringType))
		case KindTimestamp:
			opts = append(opts, cel.Variable(name, cel.TimestampType))
		default:
			return nil, fmt.Errorf("field %q: unsupported kind %q", name, rule.Kind)
		}
	}
	return cel.NewEnv(opts...)
}

// conjuncts flattens nested && chains. Any other logical operator is rejected.
func conjuncts(expr *exprpb.Expr) ([]*exprpb.Expr, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		return []*exprpb.Expr{expr}, nil
	}
	switch call.Function {
	case "_&&_":
		var out []*exprpb.Expr
		for _, arg := range call.Args {
			terms, err := conjuncts(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, terms...)
		}
		return out, nil
	case "_||_", "_?_:_", "!_":
		return nil, fmt.Errorf("operator %q is not supported; combine terms with && only", call.Function)
	default:
		return []*exprpb.Expr{expr}, nil
	}
}

type predicate struct {
	field string
	op    Op
	value any
}

func parsePredicate(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return predicate{}, errors.New("expected a comparison or function call")
	}
	switch call.Function {
	case "_==_":
		return parseOperands(call.Args, OpEQ)
	case "_>=_":
		return parseOperands(call.Args, OpGTE)
	case "_<=_":
		return parseOperands(call.Args, OpLTE)
	case "@in", "_in_":
		return parseOperands(call.Args, OpIN)
	case "startsWith":
		return parseMethod(call, OpSW)
	case "contains":
		return parseMethod(call, OpContains)
	default:
		return predicate{}, fmt.Errorf("function %q is not supported", call.Function)
	}
}

func parseOperands(args []*exprpb.Expr, op Op) (predicate, error) {
	if len(args) != 2 {
		return predicate{}, fmt.Errorf("operator %q expects two operands", op)
	}
	name, err := ident(args[0])
	if err != nil {
		return predicate{}, err
	}
	value, err := literal(args[1])
	if err != nil {
		return predicate{}, err
	}
	return predicate{field: name, op: op, value: value}, nil
}

// parseMethod accepts both receiver style (word.startsWith('a')) and global
// style (startsWith(word, 'a')).
func parseMethod(call *exprpb.Expr_Call, op Op) (predicate, error) {
	args := call.Args
	if call.Target != nil {
		args = append([]*exprpb.Expr{call.Target}, call.Args...)
	}
	pred, err := parseOperands(args, op)
	if err != nil {
		return predicate{}, err
	}
	if _, ok := pred.value.(string); !ok {
		return predicate{}, fmt.Errorf("%s requires a string literal", op)
	}
	return pred, nil
}

func ident(expr *exprpb.Expr) (string, error) {
	id := expr.GetIdentExpr()
	if id == nil {
		return "", errors.New("left-hand side must be a field name")
	}
	return id.GetName(), nil
}

func literal(expr *exprpb.Expr) (any, error) {
	if c := expr.GetConstExpr(); c != nil {
		if _, ok := c.ConstantKind.(*exprpb.Constant_StringValue); ok {
			return c.GetStringValue(), nil
		}
		return nil, fmt.Errorf("literal type %T is not supported", c.ConstantKind)
	}

	if list := expr.GetListExpr(); list != nil {
		values := make([]string, 0, len(list.GetElements()))
		for i, elem := range list.GetElements() {
			c := elem.GetConstExpr()
			if c == nil {
				return nil, fmt.Errorf("list element %d must be a literal", i)
			}
			if _, ok := c.ConstantKind.(*exprpb.Constant_StringValue); !ok {
				return nil, errors.New("list literal elements must be strings")
			}
			values = append(values, c.GetStringValue())
		}
		return values, nil
	}

	if call := expr.GetCallExpr(); call != nil && call.Function == "timestamp" {
		if call.Target != nil || len(call.Args) != 1 || call.Args[0].GetConstExpr() == nil {
			return nil, errors.New("timestamp() expects a single string literal")
		}
		raw := call.Args[0].GetConstExpr().GetStringValue()
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("timestamp literal %q is not RFC3339", raw)
		}
		return t, nil
	}

	return nil, errors.New("right-hand side must be a literal, list literal, or timestamp() call")
}

func checkLiteral(kind ValueKind, op Op, value any) error {
	switch kind {
	case KindString:
		if op == OpIN {
			list, ok := value.([]string)
			if !ok {
				return errors.New("expected list of string literals")
			}
			if len(list) == 0 {
				return errors.New("list literal must not be empty")
			}
			return nil
		}
		if _, ok := value.(string); !ok {
			return errors.New("expected string literal")
		}
	case KindTimestamp:
		if _, ok := value.(time.Time); !ok {
			return errors.New("expected timestamp literal")
		}
	default:
		return fmt.Errorf("unsupported kind %q", kind)
	}
	return nil
}

func normalized(rule Field, value any) any {
	if rule.Normalize == nil {
		return value
	}
	switch v := value.(type) {
	case string:
		return rule.Normalize(v)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = rule.Normalize(s)
		}
		return out
	default:
		return value
	}
}

func assign(field reflect.Value, value any) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return assign(field.Elem(), value)
	}

	switch v := value.(type) {
	case string:
		if field.Kind() != reflect.String {
			return fmt.Errorf("expected string destination, got %s", field.Kind())
		}
		field.SetString(v)
	case []string:
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("expected []string destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(append([]string(nil), v...)).Convert(field.Type()))
	case time.Time:
		if field.Type() != timeType {
			return fmt.Errorf("expected time.Time destination, got %s", field.Type())
		}
		field.Set(reflect.ValueOf(v))
	default:
		return fmt.Errorf("unsupported literal type %T", value)
	}
	return nil
}
