// Package contracts provides a composable runtime type and contract engine
// for dynamic configuration data: values of type any as produced by decoding
// YAML or JSON documents (nil, bool, int, float64, string, []any,
// map[string]any, funcs).
//
// A Type is a named, total predicate over any value. Types compose
// algebraically (ListOf, SetOf, Enum, Both, Not, Match, Length), coerce
// uniformly from raw predicates, field maps, positional tuples, and literals
// via Def, and are enforced through contracts that fail with an ordinary,
// catchable error instead of crashing the caller.
//
// # Architecture
//
// Core building blocks:
//   - Predicate         – pure func(any) bool, total over all values
//   - Type              – named predicate with open metadata; fmt.Stringer
//   - Def / Declare     – uniform coercion of arbitrary specs into Types
//   - Combinators       – ListOf, SetOf, Length, Enum, Both, Not, Match, Option
//   - Engine / Checker  – contract enforcement with a process-wide enable flag
//   - ContractError     – recoverable violation; InvalidTypeError – misuse panic
//
// The engine distinguishes two failure kinds. A value failing its type is a
// Contract-Violation: Check returns a *ContractError the caller can inspect
// with errors.As. A Type whose predicate cannot produce a boolean verdict
// (nil Check, or a predicate that panics) is a bug in the type definition,
// not bad data, and surfaces as a panic carrying *InvalidTypeError.
//
// # Usage
//
//	engine := contracts.New(contracts.Config{Enable: true})
//
//	login := contracts.Def(map[string]any{
//	    "user":     contracts.Str,
//	    "password": contracts.Str,
//	})
//
//	if _, err := engine.Is(login, doc); err != nil {
//	    var cerr *contracts.ContractError
//	    if errors.As(err, &cerr) {
//	        // cerr.TypeName, cerr.Value describe the violation
//	    }
//	}
//
// The package-level Contract, Is and Fn helpers delegate to a default engine
// whose enable flag is read once from the CONTRACTS_ENABLE environment
// variable (default false). When checking is disabled every contract is the
// identity function and no predicate runs.
//
// # Concurrency
//
// All types and combinators are pure values; the engine holds only an
// immutable flag and a logger. Everything is safe for concurrent use.
package contracts
