package algebra

// ============================================================
// Operation — n-ary interior node
// ============================================================

// Kind identifies one of the four built-in operations.
type Kind int

const (
	KindAdd Kind = iota
	KindSubtract
	KindMultiply
	KindDivide
)

// String returns the operator symbol.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "+"
	case KindSubtract:
		return "-"
	case KindMultiply:
		return "*"
	case KindDivide:
		return "/"
	}
	return "?"
}

// precedence: * and / bind tighter than + and -.
func (k Kind) precedence() int {
	switch k {
	case KindMultiply, KindDivide:
		return 2
	default:
		return 1
	}
}

// Operation is an interior node holding an ordered, non-empty sequence of
// children. Add and Multiply are n-ary folds; Subtract and Divide treat
// the first child as the base and apply the remaining children
// left-to-right: Subtract(a, b, c) is a - b - c, Divide(a, b, c) is
// a / b / c. A parent exclusively owns its children.
type Operation struct {
	kind     Kind
	children []Expr
}

// NewOperation builds an operation node from a kind and an ordered child
// list. It fails with ErrInvalidArity when the list is empty. The list is
// copied, so the caller's slice stays independent of the tree.
func NewOperation(kind Kind, children []Expr) (*Operation, error) {
	if len(children) == 0 {
		return nil, ErrInvalidArity
	}
	cp := make([]Expr, len(children))
	copy(cp, children)
	return &Operation{kind: kind, children: cp}, nil
}

// The variadic constructors take a required first child, so an empty
// child list is unrepresentable at the call site.

// Add returns an n-ary sum node.
func Add(first Expr, rest ...Expr) *Operation { return newOp(KindAdd, first, rest) }

// Subtract returns a node computing first - rest[0] - rest[1] - ...
func Subtract(first Expr, rest ...Expr) *Operation { return newOp(KindSubtract, first, rest) }

// Multiply returns an n-ary product node.
func Multiply(first Expr, rest ...Expr) *Operation { return newOp(KindMultiply, first, rest) }

// Divide returns a node computing first / rest[0] / rest[1] / ...
func Divide(first Expr, rest ...Expr) *Operation { return newOp(KindDivide, first, rest) }

func newOp(kind Kind, first Expr, rest []Expr) *Operation {
	children := make([]Expr, 0, 1+len(rest))
	children = append(children, first)
	children = append(children, rest...)
	return &Operation{kind: kind, children: children}
}

// Kind returns the node's operation kind.
func (o *Operation) Kind() Kind { return o.kind }

// Children returns a copy of the ordered child list.
func (o *Operation) Children() []Expr {
	cp := make([]Expr, len(o.children))
	copy(cp, o.children)
	return cp
}

// Contains reports whether the target variable occurs in any child.
func (o *Operation) Contains(name string) bool {
	for _, c := range o.children {
		if c.Contains(name) {
			return true
		}
	}
	return false
}

// Eval folds the subtree bottom-up. Subtract and Divide fold
// left-to-right from the first child; a Divide non-first child that
// evaluates to exactly zero fails with ErrDivisionByZero.
func (o *Operation) Eval() (float64, error) {
	acc, err := Evaluate(o.children[0])
	if err != nil {
		return 0, err
	}
	for _, c := range o.children[1:] {
		v, err := Evaluate(c)
		if err != nil {
			return 0, err
		}
		switch o.kind {
		case KindAdd:
			acc += v
		case KindSubtract:
			acc -= v
		case KindMultiply:
			acc *= v
		case KindDivide:
			if v == 0.0 {
				return 0, ErrDivisionByZero
			}
			acc /= v
		}
	}
	return acc, nil
}

// Equal reports structural equality with another expression. Children
// are compared pairwise in stored order; leaves compare by value or name,
// other node types by pointer identity.
func (o *Operation) Equal(other Expr) bool {
	p, ok := other.(*Operation)
	if !ok || o.kind != p.kind || len(o.children) != len(p.children) {
		return false
	}
	for i := range o.children {
		if !exprEqual(o.children[i], p.children[i]) {
			return false
		}
	}
	return true
}

func exprEqual(a, b Expr) bool {
	switch x := a.(type) {
	case *Value:
		return x.Equal(b)
	case *Variable:
		return x.Equal(b)
	case *Operation:
		return x.Equal(b)
	}
	return a == b
}
