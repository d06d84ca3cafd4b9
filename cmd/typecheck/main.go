// Command typecheck validates a YAML or JSON document against a named type
// from the built-in registry.
//
// Usage:
//
//	typecheck -type listOf:int config.yaml
//	cat config.json | typecheck -type attrs -format json
//
// Exits 0 when the document satisfies the type, 1 on violation or usage
// error. Diagnostics go to stderr through the engine's trace sink.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yvan-sraka/contracts"
)

var registry = map[string]contracts.Type{
	"any":      contracts.AnyT,
	"bool":     contracts.Bool,
	"int":      contracts.Int,
	"float":    contracts.Float,
	"number":   contracts.Number,
	"string":   contracts.Str,
	"null":     contracts.Null,
	"list":     contracts.List,
	"attrs":    contracts.Attrs,
	"uuid":     contracts.UUID,
	"semver":   contracts.SemVer,
	"email":    contracts.Email,
	"nonempty": contracts.NonEmptyStr,
}

// resolve turns a type expression into a Type. Compound expressions nest to
// the right: "listOf:setOf:int" is a list of maps of ints.
func resolve(expr string) (contracts.Type, error) {
	switch {
	case strings.HasPrefix(expr, "listOf:"):
		elem, err := resolve(strings.TrimPrefix(expr, "listOf:"))
		if err != nil {
			return contracts.Type{}, err
		}
		return contracts.ListOf(elem), nil
	case strings.HasPrefix(expr, "setOf:"):
		elem, err := resolve(strings.TrimPrefix(expr, "setOf:"))
		if err != nil {
			return contracts.Type{}, err
		}
		return contracts.SetOf(elem), nil
	case strings.HasPrefix(expr, "not:"):
		inner, err := resolve(strings.TrimPrefix(expr, "not:"))
		if err != nil {
			return contracts.Type{}, err
		}
		return contracts.Not(inner), nil
	case strings.HasPrefix(expr, "match:"):
		return contracts.Match(strings.TrimPrefix(expr, "match:")), nil
	}
	t, ok := registry[expr]
	if !ok {
		return contracts.Type{}, fmt.Errorf("unknown type %q", expr)
	}
	return t, nil
}

func decode(data []byte, format string) (any, error) {
	var doc any
	switch format {
	case "json":
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return normalizeNumbers(doc), nil
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unknown format %q: must be yaml or json", format)
	}
}

// normalizeNumbers rewrites json.Number leaves into int64 or float64 so the
// engine's numeric predicates see concrete kinds, matching YAML decoding.
func normalizeNumbers(v any) any {
	switch vv := v.(type) {
	case json.Number:
		if i, err := vv.Int64(); err == nil {
			return i
		}
		if f, err := vv.Float64(); err == nil {
			return f
		}
		return vv.String()
	case []any:
		for i, e := range vv {
			vv[i] = normalizeNumbers(e)
		}
		return vv
	case map[string]any:
		for k, e := range vv {
			vv[k] = normalizeNumbers(e)
		}
		return vv
	default:
		return v
	}
}

func run() error {
	typeExpr := flag.String("type", "any", "type expression to check against")
	format := flag.String("format", "yaml", "input format: yaml or json")
	quiet := flag.Bool("quiet", false, "suppress the success message")
	flag.Parse()

	t, err := resolve(*typeExpr)
	if err != nil {
		return err
	}

	var data []byte
	if path := flag.Arg(0); path != "" && path != "-" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, err := decode(data, *format)
	if err != nil {
		return err
	}

	// Checking is always on for the CLI: validating is the whole point.
	engine := contracts.New(
		contracts.Config{Enable: true},
		contracts.WithTraceLogger(contracts.NewTraceLogger()),
	)
	if _, err := engine.Is(t, contracts.Strict(doc)); err != nil {
		return err
	}
	if !*quiet {
		fmt.Printf("ok: document satisfies type '%s'\n", t)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "typecheck:", err)
		os.Exit(1)
	}
}
