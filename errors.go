package contracts

import (
	"errors"
	"fmt"
)

// Package-specific errors
var (
	// ErrTODO is the panic value of the TODO placeholder predicate. Calling a
	// TODO type is a programming error, not a validation failure.
	ErrTODO = errors.New("type is intentionally not implemented yet")

	// ErrNotAType is recorded when Option receives a value that does not
	// expose the name/check descriptor fields of a type.
	ErrNotAType = errors.New("value does not look like a type: missing name or check")
)

// ContractError is a recoverable contract violation: a type's check returned
// false for the given value. It carries the rendered type name, the optional
// diagnostic label passed via WithName, and the offending value.
type ContractError struct {
	TypeName string
	Label    string
	Value    any
	Message  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("type error: value does not satisfy type '%s'", e.TypeName)
}

// AsContractError extracts a *ContractError from an error chain.
func AsContractError(err error) (*ContractError, bool) {
	if err == nil {
		return nil, false
	}
	var cerr *ContractError
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}

// IsContractViolation reports whether err is (or wraps) a contract violation.
func IsContractViolation(err error) bool {
	_, ok := AsContractError(err)
	return ok
}

// InvalidTypeError signals a bug in a type definition: a check that is nil or
// that cannot produce a boolean verdict. It is delivered via panic and is the
// one failure the engine does not make recoverable.
type InvalidTypeError struct {
	TypeName string
	Reason   string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type '%s': %s", e.TypeName, e.Reason)
}

// IsInvalidType reports whether a recovered panic value is an
// *InvalidTypeError raised by the engine.
func IsInvalidType(recovered any) bool {
	_, ok := recovered.(*InvalidTypeError)
	return ok
}
