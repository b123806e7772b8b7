package algebra

// ============================================================
// Value — constant leaf
// ============================================================

// Value is a constant leaf holding a double-precision number.
// Non-finite values (NaN, ±Inf) are accepted; downstream arithmetic
// simply propagates them.
type Value struct{ v float64 }

// Val returns a constant leaf.
func Val(n float64) *Value { return &Value{v: n} }

func (v *Value) Render() string               { return formatFloat(v.v) }
func (v *Value) Contains(string) bool         { return false }
func (v *Value) Eval() (float64, error)       { return v.v, nil }
func (v *Value) LaTeX() string                { return formatFloat(v.v) }
func (v *Value) Substitute(string, Expr) Expr { return v }

// Float returns the underlying number.
func (v *Value) Float() float64 { return v.v }

// Equal reports value equality with another expression.
func (v *Value) Equal(other Expr) bool {
	o, ok := other.(*Value)
	return ok && v.v == o.v
}

// ============================================================
// Variable — named leaf
// ============================================================

// Variable is a named leaf. Identity is the name: two occurrences of "x"
// anywhere in a tree are the same logical variable, compared by name
// equality. A Variable is never mutated after creation.
type Variable struct{ name string }

// Var returns a variable leaf. The name must be non-empty.
func Var(name string) *Variable {
	if name == "" {
		panic("algebra: empty variable name")
	}
	return &Variable{name: name}
}

func (s *Variable) Render() string            { return s.name }
func (s *Variable) Contains(name string) bool { return s.name == name }
func (s *Variable) LaTeX() string             { return s.name }

// Name returns the variable's name.
func (s *Variable) Name() string { return s.name }

func (s *Variable) Eval() (float64, error) {
	return 0, ErrUndefinedVariable
}

func (s *Variable) Substitute(name string, repl Expr) Expr {
	if s.name == name {
		return repl
	}
	return s
}

// Equal reports name equality with another expression.
func (s *Variable) Equal(other Expr) bool {
	o, ok := other.(*Variable)
	return ok && s.name == o.name
}
