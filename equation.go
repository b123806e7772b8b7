package algebra

// Equation asserts that two expressions are equal. It is an immutable
// pair; the solver consumes it and produces a new Equation rather than
// rewriting in place.
type Equation struct {
	Left  Expr
	Right Expr
}

// NewEquation pairs a left- and right-hand side.
func NewEquation(lhs, rhs Expr) Equation {
	return Equation{Left: lhs, Right: rhs}
}

// Render returns "lhs = rhs".
func (eq Equation) Render() string {
	return eq.Left.Render() + " = " + eq.Right.Render()
}

// LaTeX returns the LaTeX form of both sides joined by "=".
func (eq Equation) LaTeX() string {
	return LaTeX(eq.Left) + " = " + LaTeX(eq.Right)
}

// Contains reports whether the variable occurs on either side.
func (eq Equation) Contains(name string) bool {
	return eq.Left.Contains(name) || eq.Right.Contains(name)
}

// Equal reports structural equality of both sides.
func (eq Equation) Equal(other Equation) bool {
	return exprEqual(eq.Left, other.Left) && exprEqual(eq.Right, other.Right)
}
