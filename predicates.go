package contracts

import (
	"fmt"
	"reflect"
)

// Predicate is a pure, total classification function over arbitrary values.
// Unclassifiable input yields false, never an error; this totality is what
// keeps the engine itself panic-free.
type Predicate func(v any) bool

// Any matches every value (top type).
func Any(any) bool { return true }

// None matches no value (bottom type).
func None(any) bool { return false }

// TODO is a placeholder predicate for intentionally unimplemented types.
// Calling it is a programming error and panics with ErrTODO; the contract
// engine converts the panic into an InvalidTypeError.
func TODO(any) bool { panic(ErrTODO) }

// IsNull matches only nil.
func IsNull(v any) bool { return v == nil }

func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsInt matches all Go integer kinds, signed and unsigned.
func IsInt(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func IsFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// IsNumber matches any integer or floating-point value.
func IsNumber(v any) bool { return IsInt(v) || IsFloat(v) }

func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsList matches any slice or array. The check is shallow: elements are not
// inspected.
func IsList(v any) bool {
	_, ok := asList(v)
	return ok
}

// IsAttrs matches any string-keyed map. The check is shallow: values are not
// inspected.
func IsAttrs(v any) bool {
	_, ok := asAttrs(v)
	return ok
}

func IsFunction(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// IsStringifiable matches values with a natural string rendering: strings,
// numbers, booleans and fmt.Stringer implementations.
func IsStringifiable(v any) bool {
	if IsString(v) || IsNumber(v) || IsBool(v) {
		return true
	}
	_, ok := v.(fmt.Stringer)
	return ok
}

// asList normalizes any slice or array into []any. The fast path avoids
// reflection for the shape produced by YAML/JSON decoding.
func asList(v any) ([]any, bool) {
	if l, ok := v.([]any); ok {
		return l, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

// asAttrs normalizes any string-keyed map into map[string]any.
func asAttrs(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
