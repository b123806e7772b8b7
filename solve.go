package algebra

// Solve isolates the target variable: given lhs = rhs where the variable
// occurs exactly once and on exactly one side, it returns a new equation
// of the form target = <expression free of target>. The input equation is
// not modified.
//
// One operation layer is peeled per step by applying the inverse
// operation to the opposite side, so the result is reached in at most
// tree-depth steps. Solving an already-isolated equation returns it
// unchanged.
//
// Failure kinds: ErrVariableNotFound (absent from both sides),
// ErrAmbiguousVariable (present on both sides),
// ErrMultipleVariableOccurrences (more than one child of a node contains
// it), ErrDivisionByZero (a rearrangement would divide by a constant
// zero), ErrUnsupportedOperation (the variable's path runs through a node
// type with no inverse rule).
func Solve(eq Equation, target string) (Equation, error) {
	inLeft := eq.Left.Contains(target)
	inRight := eq.Right.Contains(target)
	switch {
	case inLeft && inRight:
		return Equation{}, ErrAmbiguousVariable
	case !inLeft && !inRight:
		return Equation{}, ErrVariableNotFound
	}

	side, other := eq.Left, eq.Right
	if inRight {
		side, other = eq.Right, eq.Left
	}

	for {
		if leaf, ok := side.(*Variable); ok && leaf.name == target {
			return NewEquation(leaf, other), nil
		}
		inv, ok := side.(Invertible)
		if !ok {
			return Equation{}, ErrUnsupportedOperation
		}
		next, newOther, err := inv.Invert(target, other)
		if err != nil {
			return Equation{}, err
		}
		side, other = next, newOther
	}
}

// Invert peels one layer off the node for the solver: exactly one child
// must contain the target; every other child moves to the opposite side
// via the inverse operation, order-sensitively for Subtract and Divide.
// It returns the containing child and the rewritten opposite side.
func (o *Operation) Invert(target string, other Expr) (Expr, Expr, error) {
	idx := -1
	for i, c := range o.children {
		if c.Contains(target) {
			if idx >= 0 {
				return nil, nil, ErrMultipleVariableOccurrences
			}
			idx = i
		}
	}
	if idx < 0 {
		return nil, nil, ErrVariableNotFound
	}

	ci := o.children[idx]
	rest := make([]Expr, 0, len(o.children)-1)
	for i, c := range o.children {
		if i != idx {
			rest = append(rest, c)
		}
	}
	if len(rest) == 0 {
		// Single-child node: the wrapper carries no arithmetic.
		return ci, other, nil
	}

	switch o.kind {
	case KindAdd:
		// ci + rest = other  =>  ci = other - rest
		return ci, Subtract(other, rest...), nil

	case KindSubtract:
		if idx == 0 {
			// ci - rest = other  =>  ci = other + rest
			return ci, Add(other, rest...), nil
		}
		// c0 - ... - ci - ... = other  =>  ci = c0 - ... - other
		tail := make([]Expr, 0, len(rest))
		tail = append(tail, rest[1:]...)
		tail = append(tail, other)
		return ci, Subtract(rest[0], tail...), nil

	case KindMultiply:
		// ci * rest = other  =>  ci = other / rest
		for _, c := range rest {
			if v, err := Evaluate(c); err == nil && v == 0.0 {
				return nil, nil, ErrDivisionByZero
			}
		}
		return ci, Divide(other, rest...), nil

	case KindDivide:
		if idx == 0 {
			// ci / rest = other  =>  ci = other * rest
			return ci, Multiply(other, rest...), nil
		}
		// c0 / ... / ci / ... = other  =>  ci = c0 / ... / other
		if v, err := Evaluate(other); err == nil && v == 0.0 {
			return nil, nil, ErrDivisionByZero
		}
		tail := make([]Expr, 0, len(rest))
		tail = append(tail, rest[1:]...)
		tail = append(tail, other)
		return ci, Divide(rest[0], tail...), nil
	}
	return nil, nil, ErrUnsupportedOperation
}
