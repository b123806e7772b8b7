package algebra

// Simplify returns an equivalent expression with constant subtrees
// folded and neutral elements removed: constants inside Add and Multiply
// are accumulated, nested sums and products are flattened, additive
// zeros and multiplicative ones disappear, and a zero factor collapses a
// product. Division by a constant zero is left unfolded rather than
// turned into an error. This is constant cleanup only, not algebraic
// rewriting: no factoring, no like-term collection across variables.
//
// The input is not modified; a new tree is returned where anything
// changed. Node types other than the built-ins pass through untouched.
func Simplify(e Expr) Expr {
	op, ok := e.(*Operation)
	if !ok {
		return e
	}
	children := make([]Expr, len(op.children))
	for i, c := range op.children {
		children[i] = Simplify(c)
	}
	switch op.kind {
	case KindAdd:
		return simplifyAdd(children)
	case KindSubtract:
		return simplifySubtract(children)
	case KindMultiply:
		return simplifyMultiply(children)
	default:
		return simplifyDivide(children)
	}
}

// SimplifyEquation simplifies both sides.
func SimplifyEquation(eq Equation) Equation {
	return NewEquation(Simplify(eq.Left), Simplify(eq.Right))
}

func simplifyAdd(children []Expr) Expr {
	flat := make([]Expr, 0, len(children))
	for _, c := range children {
		if inner, ok := c.(*Operation); ok && inner.kind == KindAdd {
			flat = append(flat, inner.children...)
		} else {
			flat = append(flat, c)
		}
	}
	total := 0.0
	rest := make([]Expr, 0, len(flat))
	for _, c := range flat {
		if v, ok := c.(*Value); ok {
			total += v.v
		} else {
			rest = append(rest, c)
		}
	}
	if len(rest) == 0 {
		return Val(total)
	}
	if total != 0.0 {
		rest = append(rest, Val(total))
	}
	if len(rest) == 1 {
		return rest[0]
	}
	return &Operation{kind: KindAdd, children: rest}
}

func simplifySubtract(children []Expr) Expr {
	if v, ok := foldConstants(KindSubtract, children); ok {
		return v
	}
	// a - 0 - b  ->  a - b
	kept := children[:1]
	for _, c := range children[1:] {
		if v, ok := c.(*Value); ok && v.v == 0.0 {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return &Operation{kind: KindSubtract, children: kept}
}

func simplifyMultiply(children []Expr) Expr {
	flat := make([]Expr, 0, len(children))
	for _, c := range children {
		if inner, ok := c.(*Operation); ok && inner.kind == KindMultiply {
			flat = append(flat, inner.children...)
		} else {
			flat = append(flat, c)
		}
	}
	coeff := 1.0
	rest := make([]Expr, 0, len(flat))
	for _, c := range flat {
		if v, ok := c.(*Value); ok {
			coeff *= v.v
		} else {
			rest = append(rest, c)
		}
	}
	if coeff == 0.0 || len(rest) == 0 {
		return Val(coeff)
	}
	if coeff == 1.0 {
		if len(rest) == 1 {
			return rest[0]
		}
		return &Operation{kind: KindMultiply, children: rest}
	}
	return &Operation{kind: KindMultiply, children: append([]Expr{Val(coeff)}, rest...)}
}

func simplifyDivide(children []Expr) Expr {
	if v, ok := foldConstants(KindDivide, children); ok {
		return v
	}
	// a / 1 / b  ->  a / b
	kept := children[:1]
	for _, c := range children[1:] {
		if v, ok := c.(*Value); ok && v.v == 1.0 {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return &Operation{kind: KindDivide, children: kept}
}

// foldConstants collapses an all-constant child list to a single Value.
// A division by constant zero stays symbolic, so callers see ok=false.
func foldConstants(kind Kind, children []Expr) (*Value, bool) {
	op := &Operation{kind: kind, children: children}
	for _, c := range children {
		if _, ok := c.(*Value); !ok {
			return nil, false
		}
	}
	v, err := op.Eval()
	if err != nil {
		return nil, false
	}
	return Val(v), true
}
