package algebra

import (
	"math"
	"strconv"
	"strings"
)

// Render returns the node's infix form. Children are joined by the
// operator symbol in stored order; a child is parenthesized only when it
// is itself an operation node of strictly lower precedence than this one.
// Leaves and same-or-higher-precedence children are never parenthesized,
// so output carries the minimal set of parentheses.
func (o *Operation) Render() string {
	parts := make([]string, len(o.children))
	for i, c := range o.children {
		parts[i] = o.renderChild(c)
	}
	return strings.Join(parts, " "+o.kind.String()+" ")
}

func (o *Operation) renderChild(c Expr) string {
	if child, ok := c.(*Operation); ok && child.kind.precedence() < o.kind.precedence() {
		return "(" + child.Render() + ")"
	}
	return c.Render()
}

// formatFloat renders a constant. Integral finite values keep a trailing
// ".0" so that constants are distinguishable from variables at a glance
// (2.0, not 2); NaN and infinities use Go's standard forms.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
