package yants

import (
	"fmt"

	"github.com/yvan-sraka/contracts"
)

// Primitive types re-exported under their yants names.
var (
	Int      = contracts.Int
	Bool     = contracts.Bool
	Float    = contracts.Float
	String   = contracts.Str
	Path     = contracts.NonEmptyStr
	Function = contracts.Function
	Any      = contracts.AnyT
	Null     = contracts.Null

	// Unit matches the empty attribute set.
	Unit = contracts.Type{Name: "unit", Check: func(v any) bool {
		m, ok := v.(map[string]any)
		return ok && len(m) == 0
	}}
)

// Typedef builds a named type from a raw predicate.
func Typedef(name string, check contracts.Predicate) contracts.Type {
	return contracts.Declare(map[string]any{"name": name})(check)
}

// List matches a homogeneous sequence of t.
func List(t any) contracts.Type { return contracts.ListOf(t) }

// Attrs matches a mapping whose values all satisfy t.
func Attrs(t any) contracts.Type { return contracts.SetOf(t) }

// Either matches values satisfying a or b.
func Either(a, b any) contracts.Type { return contracts.Enum(a, b) }

// EitherN matches values satisfying at least one of ts.
func EitherN(ts ...any) contracts.Type { return contracts.Enum(ts...) }

// Enum builds a named union of literal constants: a candidate matches when
// it is structurally equal to one of the members.
func Enum(name string, members ...any) contracts.Type {
	specs := make([]any, len(members))
	for i, m := range members {
		specs[i] = contracts.FromLiteral(m)
	}
	t := contracts.Enum(specs...)
	t.Name = name
	return t
}

// Option matches null or a value satisfying t.
func Option(t any) contracts.Type {
	inner := contracts.Def(t)
	u := contracts.Enum(contracts.Null, inner)
	u.Name = fmt.Sprintf("option (%s)", inner)
	return u
}

// Restrict refines t with an arbitrary extra predicate: the candidate is
// first coerced through t, then pred is applied to the coerced result. The
// refinement is surfaced as a named contract.
func Restrict(name string, pred func(any) bool, t any) contracts.Type {
	inner := contracts.Def(t)
	return contracts.Type{
		Name: name,
		Check: func(v any) bool {
			// Coercion through the inner type is the identity on success,
			// so the refinement predicate sees the accepted value.
			if !inner.Check(v) {
				return false
			}
			return pred(v)
		},
	}
}

// Struct builds a named subset structural check over fields: every declared
// field must be present and satisfy its type, extra candidate fields are
// permitted.
func Struct(name string, fields map[string]any) contracts.Type {
	t := contracts.FromFields(fields)
	t.Name = name
	return t
}

// Sum builds a tagged union: the candidate must be a mapping with exactly
// one key, which names a variant, and the key's value must satisfy the
// variant's type.
func Sum(name string, variants map[string]any) contracts.Type {
	types := make(map[string]contracts.Type, len(variants))
	for k, s := range variants {
		types[k] = contracts.Def(s)
	}
	return contracts.Type{
		Name: name,
		Check: func(v any) bool {
			m, ok := v.(map[string]any)
			if !ok || len(m) != 1 {
				return false
			}
			for tag, payload := range m {
				t, known := types[tag]
				return known && t.Check(payload)
			}
			return false
		},
	}
}

// Defun wraps f so its arguments and result are contract-checked on the
// default engine. The last element of types is the result type; the
// preceding elements type the arguments positionally. Missing trailing
// arguments and extra untyped arguments pass through unchecked, mirroring
// the engine's prefix semantics for sequences.
func Defun(types []any, f func(...any) any) func(...any) (any, error) {
	return DefunOn(contracts.DefaultEngine(), types, f)
}

// DefunOn is Defun bound to an explicit engine.
func DefunOn(e *contracts.Engine, types []any, f func(...any) any) func(...any) (any, error) {
	var argTypes []any
	var retType any = contracts.AnyT
	if len(types) > 0 {
		argTypes = types[:len(types)-1]
		retType = types[len(types)-1]
	}
	return func(args ...any) (any, error) {
		for i, arg := range args {
			if i >= len(argTypes) {
				break
			}
			if _, err := e.Is(argTypes[i], arg); err != nil {
				return nil, err
			}
		}
		out := f(args...)
		if _, err := e.Is(retType, out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Unwrap converts an externally styled validator that panics on bad input
// into a Type: the check attempts the call and recovers, reporting false on
// panic. A validator returning a bool keeps its verdict; any other return
// counts as success.
func Unwrap(f func(any) any) contracts.Type {
	return contracts.Type{
		Name: contracts.Unnamed,
		Check: func(v any) (ok bool) {
			defer func() {
				if recover() != nil {
					ok = false
				}
			}()
			out := f(v)
			if b, isBool := out.(bool); isBool {
				return b
			}
			return true
		},
	}
}

// Opt coerces x into a Type: a bare string becomes an ad-hoc named type
// accepting any checked value; anything else goes through Def.
func Opt(x any) contracts.Type {
	if name, ok := x.(string); ok {
		return contracts.Type{Name: name, Check: contracts.Any}
	}
	return contracts.Def(x)
}
