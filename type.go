package contracts

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Unnamed is the display name of types declared without one.
const Unnamed = "<UNNAMED>"

// Type is a named, total predicate over arbitrary values. Types are open
// records: Declare merges caller-supplied extra fields into Meta, and both
// Name and Check may be overridden. A Type is stringifiable; its rendering
// is the name.
type Type struct {
	Name  string
	Check Predicate
	Meta  map[string]any
}

func (t Type) String() string {
	if t.Name == "" {
		return Unnamed
	}
	return t.Name
}

// Named primitive types built from the shallow classifiers.
var (
	Bool          = Type{Name: "bool", Check: IsBool}
	Int           = Type{Name: "int", Check: IsInt}
	Float         = Type{Name: "float", Check: IsFloat}
	Number        = Type{Name: "number", Check: IsNumber}
	Str           = Type{Name: "string", Check: IsString}
	Null          = Type{Name: "null", Check: IsNull}
	List          = Type{Name: "list", Check: IsList}
	Attrs         = Type{Name: "attrs", Check: IsAttrs}
	Function      = Type{Name: "function", Check: IsFunction}
	Stringifiable = Type{Name: "stringifiable", Check: IsStringifiable}
	AnyT          = Type{Name: "any", Check: Any}
	NoneT         = Type{Name: "none", Check: None}
)

// Declare builds a Type from an arbitrary spec (see Def for the coercion
// rule), then overlays extra onto the result. The keys "name" and "check"
// override the computed name and predicate; every other key lands in Meta.
func Declare(extra map[string]any) func(spec any) Type {
	return func(spec any) Type {
		t := Def(spec)
		if len(extra) == 0 {
			return t
		}
		var meta map[string]any
		for k, v := range extra {
			switch k {
			case "name":
				if s, ok := v.(string); ok {
					t.Name = s
				}
			case "check":
				if p, ok := asPredicate(v); ok {
					t.Check = p
				}
			default:
				if meta == nil {
					// Copy-on-write so the source type's metadata is never
					// mutated.
					meta = make(map[string]any, len(t.Meta)+1)
					for mk, mv := range t.Meta {
						meta[mk] = mv
					}
				}
				meta[k] = v
			}
		}
		if meta != nil {
			t.Meta = meta
		}
		return t
	}
}

// Def coerces an arbitrary spec into a Type:
//   - a Type (or *Type) is returned as is, making Def idempotent;
//   - a Predicate or func(any) bool becomes an unnamed Type;
//   - a map carrying "name" and "check" descriptor fields is bridged as an
//     externally declared type (the option-type interface point);
//   - any other string-keyed map is a subset structural check over its
//     fields (FromFields);
//   - a []any of nested specs is a positional prefix constraint (FromTuple);
//   - anything else is a constant type matching that literal (FromLiteral).
func Def(spec any) Type {
	switch s := spec.(type) {
	case Type:
		return s
	case *Type:
		if s != nil {
			return *s
		}
		return FromLiteral(nil)
	case Predicate:
		return FromPredicate(s)
	case func(any) bool:
		return FromPredicate(s)
	case map[string]any:
		if t, ok := descriptorFromMap(s); ok {
			return t
		}
		return FromFields(s)
	case []any:
		return FromTuple(s)
	case []Type:
		specs := make([]any, len(s))
		for i, st := range s {
			specs[i] = st
		}
		return FromTuple(specs)
	default:
		if t, ok := descriptorFromStruct(spec); ok {
			return t
		}
		return FromLiteral(spec)
	}
}

// FromPredicate wraps a raw predicate as an unnamed Type.
func FromPredicate(p Predicate) Type {
	return Type{Name: Unnamed, Check: p}
}

// FromFields builds a subset structural check: every field named in the spec
// must be present in the candidate map and satisfy its nested type. Extra
// candidate keys are permitted.
func FromFields(fields map[string]any) Type {
	types := make(map[string]Type, len(fields))
	for k, s := range fields {
		types[k] = Def(s)
	}
	return Type{
		Name: renderFieldsName(types),
		Check: func(v any) bool {
			attrs, ok := asAttrs(v)
			if !ok {
				return false
			}
			for k, t := range types {
				fv, present := attrs[k]
				if !present || !t.Check(fv) {
					return false
				}
			}
			return true
		},
	}
}

// FromTuple builds a positional prefix constraint: the candidate must be a
// sequence at least as long as the spec, and each positional nested type must
// be satisfied at its index. Extra trailing elements are ignored; this is
// deliberately not an exact-arity tuple check.
func FromTuple(specs []any) Type {
	types := make([]Type, len(specs))
	for i, s := range specs {
		types[i] = Def(s)
	}
	return Type{
		Name: renderTupleName(types),
		Check: func(v any) bool {
			l, ok := asList(v)
			if !ok || len(l) < len(types) {
				return false
			}
			for i, t := range types {
				if !t.Check(l[i]) {
					return false
				}
			}
			return true
		},
	}
}

// FromLiteral builds a constant type matching exactly the given value.
func FromLiteral(lit any) Type {
	name := Unnamed
	switch {
	case lit == nil:
		name = "null"
	case IsStringifiable(lit):
		name = fmt.Sprint(lit)
	}
	return Type{
		Name: name,
		Check: func(v any) bool {
			return reflect.DeepEqual(v, lit)
		},
	}
}

// asPredicate coerces predicate-shaped values: raw predicates and Types.
func asPredicate(v any) (Predicate, bool) {
	switch p := v.(type) {
	case Predicate:
		return p, p != nil
	case func(any) bool:
		return p, p != nil
	case Type:
		return p.Check, p.Check != nil
	case *Type:
		if p == nil {
			return nil, false
		}
		return p.Check, p.Check != nil
	default:
		return nil, false
	}
}

// descriptorFromMap bridges an external type descriptor: a map exposing a
// "name" string and a "check" predicate. The field names are the fixed
// interface point with external option-declaration systems.
func descriptorFromMap(m map[string]any) (Type, bool) {
	name, ok := m["name"].(string)
	if !ok {
		return Type{}, false
	}
	check, ok := asPredicate(m["check"])
	if !ok {
		return Type{}, false
	}
	return Type{Name: name, Check: check}, true
}

// descriptorFromStruct bridges structs (or pointers to structs) exposing a
// Name string field and a Check predicate field, the Go-native mirror of the
// descriptor map.
func descriptorFromStruct(v any) (Type, bool) {
	if v == nil {
		return Type{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Type{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Type{}, false
	}
	nameField := rv.FieldByName("Name")
	checkField := rv.FieldByName("Check")
	if !nameField.IsValid() || !checkField.IsValid() {
		return Type{}, false
	}
	if nameField.Kind() != reflect.String || !checkField.CanInterface() {
		return Type{}, false
	}
	check, ok := asPredicate(checkField.Interface())
	if !ok {
		return Type{}, false
	}
	return Type{Name: nameField.String(), Check: check}, true
}

func renderTupleName(types []Type) string {
	if len(types) == 0 {
		return "[ ]"
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return "[ " + strings.Join(names, " ") + " ]"
}

func renderFieldsName(types map[string]Type) string {
	if len(types) == 0 {
		return "{ }"
	}
	keys := make([]string, 0, len(types))
	for k := range types {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("{ ")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %s; ", k, types[k])
	}
	b.WriteString("}")
	return b.String()
}
