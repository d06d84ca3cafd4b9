// Package yants re-expresses the yants validator-combinator surface on top
// of the contracts engine, for drop-in replacement. Every entry point of the
// external library maps onto a core primitive or combinator:
//
//	typedef   -> Typedef
//	attrs     -> Attrs (contracts.SetOf)
//	list      -> List (contracts.ListOf)
//	either    -> Either / eitherN -> EitherN (contracts.Enum)
//	enum      -> Enum (union of literal constants)
//	function  -> Function
//	option    -> Option (t or null)
//	restrict  -> Restrict (post-check refinement)
//	struct    -> Struct (named subset structural check)
//	sum       -> Sum (tagged union over a one-key map)
//	defun     -> Defun / DefunOn (argument- and result-checked functions)
//	unit      -> Unit
//
// Two adaptation rules bridge style differences. Unwrap converts a validator
// that signals failure by panicking into a Type whose check attempts the
// call and recovers, so throwing-style validators become plain predicates.
// Opt accepts either a bare name (yielding an ad-hoc named type) or any
// spec the engine's Def coercion understands.
package yants
