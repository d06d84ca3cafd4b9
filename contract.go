package contracts

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Engine enforces contracts. Its enable flag is fixed at construction and
// never written afterwards, which makes every method safe for concurrent
// use.
type Engine struct {
	enable bool
	logger *slog.Logger
}

// EngineOption configures engine construction.
type EngineOption func(*Engine)

// WithTraceLogger sets the sink for diagnostic traces emitted on contract
// violations. Nil loggers are ignored.
func WithTraceLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an engine with the given checking mode.
func New(cfg Config, opts ...EngineOption) *Engine {
	e := &Engine{enable: cfg.Enable, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enabled reports the engine's checking mode.
func (e *Engine) Enabled() bool { return e.enable }

// Context is passed to custom diagnostic message functions.
type Context struct {
	// Name is the diagnostic label set via WithName.
	Name string
	// Type is the coerced type the value was checked against.
	Type Type
}

// ContractOption configures a Checker.
type ContractOption func(*contractOptions)

type contractOptions struct {
	name    string
	message func(Context) string
}

// WithName sets a diagnostic label included in violation errors and traces.
func WithName(name string) ContractOption {
	return func(o *contractOptions) { o.name = name }
}

// WithMessage sets the function producing the contextual diagnostic message
// emitted before the offending value on a violation.
func WithMessage(f func(Context) string) ContractOption {
	return func(o *contractOptions) {
		if f != nil {
			o.message = f
		}
	}
}

func defaultMessage(c Context) string {
	return fmt.Sprintf("Value should be of type '%s':", c.Type)
}

// Checker checks values against types with fixed diagnostic options.
type Checker struct {
	engine *Engine
	opts   contractOptions
}

// Contract builds a Checker bound to this engine.
func (e *Engine) Contract(opts ...ContractOption) *Checker {
	o := contractOptions{name: Unnamed, message: defaultMessage}
	for _, opt := range opts {
		opt(&o)
	}
	return &Checker{engine: e, opts: o}
}

// Check evaluates spec (coerced via Def) against value.
//
// With checking disabled it returns value untouched and runs nothing. On
// success it returns value unchanged. On violation it emits two ordered
// traces (the contextual message, then the raw offending value) and returns
// a *ContractError naming the type. A type whose predicate cannot produce a
// boolean verdict panics with *InvalidTypeError; that is a bug in the type
// definition, not a data error, and is deliberately not recoverable.
func (c *Checker) Check(spec, value any) (any, error) {
	if !c.engine.enable {
		return value, nil
	}
	t := Def(spec)
	if verdict(t, value) {
		return value, nil
	}
	msg := c.opts.message(Context{Name: c.opts.name, Type: t})
	c.engine.trace(msg, value)
	return value, &ContractError{
		TypeName: t.String(),
		Label:    c.opts.name,
		Value:    value,
		Message:  msg,
	}
}

// Is checks value against spec with default diagnostic options.
func (e *Engine) Is(spec, value any) (any, error) {
	return e.Contract().Check(spec, value)
}

// MustIs is like Is but panics on violation. Useful at initialization, in
// the spirit of config.MustLoad.
func (e *Engine) MustIs(spec, value any) any {
	v, err := e.Is(spec, value)
	if err != nil {
		panic(err)
	}
	return v
}

// Fn wraps a unary function so its argument is contract-checked against
// argType before f runs, turning misuse of the wrapped callable into a
// recoverable contract violation.
func (e *Engine) Fn(argType any) func(f func(any) any) func(any) (any, error) {
	t := Def(argType)
	return func(f func(any) any) func(any) (any, error) {
		return func(x any) (any, error) {
			v, err := e.Is(t, x)
			if err != nil {
				return nil, err
			}
			return f(v), nil
		}
	}
}

// Contract builds a Checker on the default engine.
func Contract(opts ...ContractOption) *Checker {
	return DefaultEngine().Contract(opts...)
}

// Is checks value against spec on the default engine.
func Is(spec, value any) (any, error) {
	return DefaultEngine().Is(spec, value)
}

// MustIs checks on the default engine and panics on violation.
func MustIs(spec, value any) any {
	return DefaultEngine().MustIs(spec, value)
}

// Fn wraps f on the default engine; see Engine.Fn.
func Fn(argType any) func(f func(any) any) func(any) (any, error) {
	return DefaultEngine().Fn(argType)
}

// Default returns a checker that substitutes fallback instead of failing:
// the returned function yields value when it satisfies spec and fallback
// otherwise. It always checks, independent of any engine's enable flag, and
// never produces an error; a predicate that panics counts as a failed check.
func Default(fallback any) func(spec, value any) any {
	return func(spec, value any) any {
		t := Def(spec)
		if safeCheck(t, value) {
			return value
		}
		return fallback
	}
}

// Strict forces complete evaluation of v: every nested sequence and mapping
// is walked and materialized into a fresh []any / map[string]any structure.
// Scalars are returned as is. Use it to opt into eager checking of data that
// was produced lazily or shares structure with mutable containers.
func Strict(v any) any {
	switch vv := v.(type) {
	case []any:
		out := make([]any, len(vv))
		for i, e := range vv {
			out[i] = Strict(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, e := range vv {
			out[k] = Strict(e)
		}
		return out
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Strict(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Strict(iter.Value().Interface())
		}
		return out
	default:
		return v
	}
}

// verdict runs a type's predicate and converts any failure to produce a
// boolean (nil check, or a panicking predicate such as TODO) into an
// InvalidTypeError panic.
func verdict(t Type, v any) bool {
	if t.Check == nil {
		panic(&InvalidTypeError{TypeName: t.String(), Reason: "type has no check predicate"})
	}
	defer func() {
		if r := recover(); r != nil {
			panic(&InvalidTypeError{
				TypeName: t.String(),
				Reason:   fmt.Sprintf("check did not produce a boolean verdict: %v", r),
			})
		}
	}()
	return t.Check(v)
}

// safeCheck is the non-raising variant used by Default: any panic inside
// the predicate counts as false.
func safeCheck(t Type, v any) (ok bool) {
	if t.Check == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return t.Check(v)
}
