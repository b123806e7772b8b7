package algebra

// Substitute returns a new tree with every occurrence of the named
// variable replaced by repl. Built-in nodes rewrite recursively; custom
// nodes participate through the Substituter capability and otherwise
// pass through unchanged.
func Substitute(e Expr, name string, repl Expr) Expr {
	switch n := e.(type) {
	case *Operation:
		children := make([]Expr, len(n.children))
		for i, c := range n.children {
			children[i] = Substitute(c, name, repl)
		}
		return &Operation{kind: n.kind, children: children}
	case Substituter:
		return n.Substitute(name, repl)
	}
	return e
}

// SubstituteEquation substitutes on both sides.
func SubstituteEquation(eq Equation, name string, repl Expr) Equation {
	return NewEquation(Substitute(eq.Left, name, repl), Substitute(eq.Right, name, repl))
}

// Variables returns the distinct variable names in the subtree, in first
// occurrence order. Custom node types contribute nothing: containment
// for them is a yes/no capability, not an enumeration.
func Variables(e Expr) []string {
	var out []string
	seen := map[string]bool{}
	collectVariables(e, seen, &out)
	return out
}

func collectVariables(e Expr, seen map[string]bool, out *[]string) {
	switch n := e.(type) {
	case *Variable:
		if !seen[n.name] {
			seen[n.name] = true
			*out = append(*out, n.name)
		}
	case *Operation:
		for _, c := range n.children {
			collectVariables(c, seen, out)
		}
	}
}
