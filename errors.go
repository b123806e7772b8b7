package algebra

import "errors"

// Every failure in this package is one of these kinds, returned to the
// caller (possibly wrapped with context); nothing panics past
// construction misuse and nothing is swallowed.
var (
	// ErrInvalidArity: an operation node was constructed with zero children.
	ErrInvalidArity = errors.New("algebra: operation requires at least one child")

	// ErrDivisionByZero: evaluation or solving required dividing by a
	// sub-expression that evaluates to exactly 0.
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrUndefinedVariable: pure-constant evaluation reached a variable leaf.
	ErrUndefinedVariable = errors.New("algebra: evaluation reached a variable")

	// ErrVariableNotFound: the target variable is absent from both sides.
	ErrVariableNotFound = errors.New("algebra: variable not found in equation")

	// ErrAmbiguousVariable: the target variable occurs on both sides.
	ErrAmbiguousVariable = errors.New("algebra: variable occurs on both sides")

	// ErrMultipleVariableOccurrences: more than one child of the same node
	// contains the target variable.
	ErrMultipleVariableOccurrences = errors.New("algebra: variable occurs in multiple children")

	// ErrUnsupportedOperation: the variable's path passes through a node
	// type with no known inverse rule.
	ErrUnsupportedOperation = errors.New("algebra: no inverse rule for operation")
)
