package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbruckner/algebra"
)

// negate is a custom node with a registered inverse rule: -inner.
type negate struct{ inner algebra.Expr }

func (n negate) Render() string            { return "-" + n.inner.Render() }
func (n negate) Contains(name string) bool { return n.inner.Contains(name) }
func (n negate) Invert(target string, other algebra.Expr) (algebra.Expr, algebra.Expr, error) {
	return n.inner, algebra.Multiply(algebra.Val(-1), other), nil
}

// opaque is a custom node with no inverse rule.
type opaque struct{ inner algebra.Expr }

func (o opaque) Render() string            { return "op(" + o.inner.Render() + ")" }
func (o opaque) Contains(name string) bool { return o.inner.Contains(name) }

func TestSolve_AddExample(t *testing.T) {
	eq := algebra.NewEquation(
		algebra.Add(algebra.Var("x"), algebra.Val(3)),
		algebra.Val(10),
	)
	solved, err := algebra.Solve(eq, "x")
	require.NoError(t, err)
	assert.Equal(t, "x = 10.0 - 3.0", solved.Render())

	v, err := algebra.Evaluate(solved.Right)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestSolve_MultiplyExample(t *testing.T) {
	eq := algebra.NewEquation(
		algebra.Multiply(algebra.Val(2), algebra.Var("x")),
		algebra.Val(8),
	)
	solved, err := algebra.Solve(eq, "x")
	require.NoError(t, err)

	v, err := algebra.Evaluate(solved.Right)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestSolve_VariableOnRight(t *testing.T) {
	eq := algebra.NewEquation(
		algebra.Val(8),
		algebra.Multiply(algebra.Val(2), algebra.Var("x")),
	)
	solved, err := algebra.Solve(eq, "x")
	require.NoError(t, err)

	v, err := algebra.Evaluate(solved.Right)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestSolve_MultiLevel(t *testing.T) {
	// ((x + 2) * 3 - 4) / 5 = 7  =>  x = 11
	eq, err := algebra.ParseEquation("((x + 2) * 3 - 4) / 5 = 7")
	require.NoError(t, err)

	solved, err := algebra.Solve(eq, "x")
	require.NoError(t, err)
	assert.False(t, solved.Right.Contains("x"))

	v, err := algebra.Evaluate(solved.Right)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, v, 1e-12)
}

// Exhaustive child-position coverage: for every kind and every position
// of the variable among three children, the solved right side must
// reproduce the assignment the equation was built from.
func TestSolve_AllChildPositions(t *testing.T) {
	const target = 5.0
	constants := []float64{40.0, 2.0, 4.0}

	for _, kind := range []algebra.Kind{
		algebra.KindAdd, algebra.KindSubtract, algebra.KindMultiply, algebra.KindDivide,
	} {
		for pos := 0; pos < 3; pos++ {
			children := make([]algebra.Expr, 3)
			ci := 0
			for i := range children {
				if i == pos {
					children[i] = algebra.Var("x")
				} else {
					children[i] = algebra.Val(constants[ci])
					ci++
				}
			}
			side, err := algebra.NewOperation(kind, children)
			require.NoError(t, err)

			// rhs is the side's value under x = target.
			rhs, err := algebra.Evaluate(algebra.Substitute(side, "x", algebra.Val(target)))
			require.NoError(t, err, "kind=%v pos=%d", kind, pos)

			solved, err := algebra.Solve(algebra.NewEquation(side, algebra.Val(rhs)), "x")
			require.NoError(t, err, "kind=%v pos=%d", kind, pos)
			require.False(t, solved.Right.Contains("x"))

			got, err := algebra.Evaluate(solved.Right)
			require.NoError(t, err, "kind=%v pos=%d", kind, pos)
			assert.InDelta(t, target, got, 1e-9, "kind=%v pos=%d: %s", kind, pos, solved.Render())
		}
	}
}

func TestSolve_Idempotent(t *testing.T) {
	eq := algebra.NewEquation(
		algebra.Var("x"),
		algebra.Subtract(algebra.Val(10), algebra.Val(3)),
	)
	solved, err := algebra.Solve(eq, "x")
	require.NoError(t, err)
	assert.True(t, solved.Equal(eq), "already-solved equation must come back unchanged")
}

func TestSolve_VariableNotFound(t *testing.T) {
	eq := algebra.NewEquation(algebra.Var("a"), algebra.Val(1))
	_, err := algebra.Solve(eq, "x")
	assert.ErrorIs(t, err, algebra.ErrVariableNotFound)
}

func TestSolve_Ambiguous(t *testing.T) {
	eq := algebra.NewEquation(algebra.Var("x"), algebra.Var("x"))
	_, err := algebra.Solve(eq, "x")
	assert.ErrorIs(t, err, algebra.ErrAmbiguousVariable)
}

func TestSolve_MultipleOccurrences(t *testing.T) {
	eq := algebra.NewEquation(
		algebra.Add(algebra.Var("x"), algebra.Var("x")),
		algebra.Val(4),
	)
	_, err := algebra.Solve(eq, "x")
	assert.ErrorIs(t, err, algebra.ErrMultipleVariableOccurrences)
}

func TestSolve_MultiplyByZero(t *testing.T) {
	eq := algebra.NewEquation(
		algebra.Multiply(algebra.Var("x"), algebra.Val(0)),
		algebra.Val(5),
	)
	_, err := algebra.Solve(eq, "x")
	assert.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestSolve_DenominatorVariableZeroOtherSide(t *testing.T) {
	// 6 / x = 0 has no finite solution.
	eq := algebra.NewEquation(
		algebra.Divide(algebra.Val(6), algebra.Var("x")),
		algebra.Val(0),
	)
	_, err := algebra.Solve(eq, "x")
	assert.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestSolve_ZeroFoldedFromSubtree(t *testing.T) {
	// The zero factor is a constant subtree, not a literal.
	eq := algebra.NewEquation(
		algebra.Multiply(algebra.Var("x"), algebra.Subtract(algebra.Val(2), algebra.Val(2))),
		algebra.Val(5),
	)
	_, err := algebra.Solve(eq, "x")
	assert.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestSolve_CustomInvertible(t *testing.T) {
	// -(x) + 2 = 5  =>  x = -1 * (5 - 2) = -3
	eq := algebra.NewEquation(
		algebra.Add(negate{inner: algebra.Var("x")}, algebra.Val(2)),
		algebra.Val(5),
	)
	solved, err := algebra.Solve(eq, "x")
	require.NoError(t, err)

	v, err := algebra.Evaluate(solved.Right)
	require.NoError(t, err)
	assert.Equal(t, -3.0, v)
}

func TestSolve_CustomWithoutInverse(t *testing.T) {
	eq := algebra.NewEquation(
		algebra.Add(opaque{inner: algebra.Var("x")}, algebra.Val(2)),
		algebra.Val(5),
	)
	_, err := algebra.Solve(eq, "x")
	assert.ErrorIs(t, err, algebra.ErrUnsupportedOperation)
}

func TestSolve_CustomOffPathIsMoved(t *testing.T) {
	// An uninvertible node off the variable's path is moved, not peeled.
	// x + op(y) = 9  =>  x = 9 - op(y)
	eq := algebra.NewEquation(
		algebra.Add(algebra.Var("x"), opaque{inner: algebra.Var("y")}),
		algebra.Val(9),
	)
	solved, err := algebra.Solve(eq, "x")
	require.NoError(t, err)
	assert.Equal(t, "x = 9.0 - op(y)", solved.Render())
}

func TestSolve_InputNotMutated(t *testing.T) {
	lhs := algebra.Add(algebra.Var("x"), algebra.Val(3))
	eq := algebra.NewEquation(lhs, algebra.Val(10))
	before := eq.Render()

	_, err := algebra.Solve(eq, "x")
	require.NoError(t, err)
	assert.Equal(t, before, eq.Render())
}
