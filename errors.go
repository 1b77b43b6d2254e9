// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import "fmt"

// ContractViolation reports a broken structural invariant of the Boolean
// graph: a cyclic input, a dangling parent back-reference, a malformed
// ATLEAST gate, or any other condition the preprocessor's contract
// declares to be a programmer error rather than a recoverable one. It is
// always delivered through panic, never returned as an error value.
type ContractViolation struct {
	Op      string // the primitive or phase that detected the violation
	Message string
}

func (c ContractViolation) Error() string {
	return fmt.Sprintf("boolgraph: contract violation in %s: %s", c.Op, c.Message)
}

func violate(op, format string, a ...interface{}) {
	panic(ContractViolation{Op: op, Message: fmt.Sprintf(format, a...)})
}

// assertf panics with a ContractViolation when cond is false. It is the
// preprocessor's only admitted form of error handling for mid-algorithm
// invariant breaches (see SPEC_FULL.md §7): such breaches are undefined
// behavior by contract, not user-facing errors.
func assertf(cond bool, op, format string, a ...interface{}) {
	if !cond {
		violate(op, format, a...)
	}
}
