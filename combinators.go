package contracts

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ListOf matches a sequence where every element satisfies t. An empty
// sequence trivially matches. t may be anything Def accepts.
func ListOf(t any) Type {
	elem := Def(t)
	return Type{
		Name: fmt.Sprintf("listOf (%s)", elem),
		Check: func(v any) bool {
			l, ok := asList(v)
			if !ok {
				return false
			}
			for _, e := range l {
				if !elem.Check(e) {
					return false
				}
			}
			return true
		},
	}
}

// SetOf matches a string-keyed map where every value satisfies t; keys are
// unconstrained. An empty map trivially matches. Implemented by projecting
// the map to its value sequence and delegating to the ListOf check.
func SetOf(t any) Type {
	elems := ListOf(t)
	return Type{
		Name: fmt.Sprintf("setOf (%s)", Def(t)),
		Check: func(v any) bool {
			attrs, ok := asAttrs(v)
			if !ok {
				return false
			}
			keys := make([]string, 0, len(attrs))
			for k := range attrs {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			values := make([]any, len(keys))
			for i, k := range keys {
				values[i] = attrs[k]
			}
			return elems.Check(values)
		},
	}
}

// Length matches a sequence with at least n elements. The bound is a
// minimum, not an exact arity, mirroring the prefix semantics of tuple
// specs.
func Length(n int) Type {
	return Type{
		Name: fmt.Sprintf("length >= %d", n),
		Check: func(v any) bool {
			l, ok := asList(v)
			return ok && len(l) >= n
		},
	}
}

// Both is the intersection of the given types: a candidate must satisfy all
// of them. Evaluation is in order and short-circuits on the first failure.
func Both(ts ...any) Type {
	types := defAll(ts)
	return Type{
		Name: fmt.Sprintf("both (%s)", joinNames(types, " and ")),
		Check: func(v any) bool {
			for _, t := range types {
				if !t.Check(v) {
					return false
				}
			}
			return true
		},
	}
}

// Enum is the union of the given types: a candidate must satisfy at least
// one. Evaluation is in order and short-circuits on the first match.
func Enum(ts ...any) Type {
	types := defAll(ts)
	return Type{
		Name: fmt.Sprintf("enum (%s)", joinNames(types, " | ")),
		Check: func(v any) bool {
			for _, t := range types {
				if t.Check(v) {
					return true
				}
			}
			return false
		},
	}
}

// Not is the complement of t.
func Not(t any) Type {
	inner := Def(t)
	return Type{
		Name: fmt.Sprintf("not (%s)", inner),
		Check: func(v any) bool {
			return !inner.Check(v)
		},
	}
}

// Match matches a string whose entirety matches the pattern; this is
// anchored full-match semantics, not substring search. An invalid pattern
// yields a type that fails every candidate, so the misuse surfaces as a
// recoverable contract violation rather than a crash.
func Match(pattern string) Type {
	name := fmt.Sprintf("match (%s)", pattern)
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return Type{
			Name:  name,
			Check: None,
			Meta:  map[string]any{"error": err},
		}
	}
	return Type{
		Name: name,
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		},
	}
}

// Option bridges an externally declared option type: any value exposing a
// name string and a check predicate (a Type, a descriptor map with "name"
// and "check" keys, or a struct with Name and Check fields). A value that
// does not look like a type yields a type failing every candidate, with
// ErrNotAType recorded in its metadata.
func Option(lt any) Type {
	switch s := lt.(type) {
	case Type:
		return s
	case *Type:
		if s != nil {
			return *s
		}
	case map[string]any:
		if t, ok := descriptorFromMap(s); ok {
			return t
		}
	default:
		if t, ok := descriptorFromStruct(lt); ok {
			return t
		}
	}
	return Type{
		Name:  "option (<invalid>)",
		Check: None,
		Meta:  map[string]any{"error": ErrNotAType},
	}
}

func defAll(ts []any) []Type {
	types := make([]Type, len(ts))
	for i, t := range ts {
		types[i] = Def(t)
	}
	return types
}

func joinNames(types []Type, sep string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, sep)
}
