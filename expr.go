// Package algebra represents algebraic expressions as immutable trees and
// rearranges equations to isolate a named variable.
//
// Design goals:
//   - Immutable value trees: built once, never mutated, safe to share
//   - Open node set: any type implementing Expr composes with the built-ins
//   - Deterministic rendering with minimal parenthesization
//   - Typed, returned errors; nothing is swallowed or logged
package algebra

// Expr is the capability every node in an expression tree provides.
// The built-in Value, Variable and Operation types implement it, and
// third-party node types that implement it participate in rendering and
// variable-containment checks without any changes to this package.
type Expr interface {
	// Render returns the node's infix textual form.
	Render() string

	// Contains reports whether a variable with the given name occurs
	// anywhere in the subtree rooted at this node.
	Contains(name string) bool
}

// Evaluator is the optional capability of nodes that can fold to a
// single float64. Built-in nodes implement it; evaluation of a custom
// node that does not is treated as reaching an undefined variable.
type Evaluator interface {
	Eval() (float64, error)
}

// LaTeXer is the optional capability of nodes that carry their own LaTeX
// form. Nodes without it fall back to Render output.
type LaTeXer interface {
	LaTeX() string
}

// Substituter is the optional capability of nodes that support variable
// substitution. Nodes without it pass through Substitute unchanged.
type Substituter interface {
	Substitute(name string, repl Expr) Expr
}

// Invertible is the optional capability that lets a custom operation type
// participate in solving. Invert peels one layer off the node: given the
// target variable name and the expression currently on the opposite side
// of the equation, it returns the child on the variable's path and the
// rewritten opposite side. The solver fails with ErrUnsupportedOperation
// when the variable's path runs through a custom node without this
// capability.
type Invertible interface {
	Expr
	Invert(target string, other Expr) (next Expr, newOther Expr, err error)
}

// Evaluate folds a pure-constant subtree to a single float64.
// It fails with ErrUndefinedVariable when the subtree contains a variable
// leaf (or a custom node that cannot evaluate itself), and with
// ErrDivisionByZero when a Divide denominator folds to exactly zero.
func Evaluate(e Expr) (float64, error) {
	ev, ok := e.(Evaluator)
	if !ok {
		return 0, ErrUndefinedVariable
	}
	return ev.Eval()
}
