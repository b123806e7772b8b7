package algebra

import "strings"

// LaTeX returns the LaTeX form of an expression. Nodes implementing
// LaTeXer supply their own; anything else falls back to Render.
func LaTeX(e Expr) string {
	if l, ok := e.(LaTeXer); ok {
		return l.LaTeX()
	}
	return e.Render()
}

// LaTeX renders Divide as \frac, Multiply with \cdot, and Add/Subtract
// infix; grouping follows the same precedence rule as Render except that
// \frac needs no parentheses around its operands.
func (o *Operation) LaTeX() string {
	if o.kind == KindDivide {
		out := "\\frac{" + LaTeX(o.children[0]) + "}{"
		dens := make([]string, len(o.children)-1)
		for i, c := range o.children[1:] {
			dens[i] = LaTeX(c)
		}
		return out + strings.Join(dens, " \\cdot ") + "}"
	}

	sep := " " + o.kind.String() + " "
	if o.kind == KindMultiply {
		sep = " \\cdot "
	}
	parts := make([]string, len(o.children))
	for i, c := range o.children {
		if child, ok := c.(*Operation); ok && child.kind.precedence() < o.kind.precedence() {
			parts[i] = "\\left(" + child.LaTeX() + "\\right)"
		} else {
			parts[i] = LaTeX(c)
		}
	}
	return strings.Join(parts, sep)
}
