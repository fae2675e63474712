package sema

import (
	"testing"

	"ylc/internal/resolved"
	"ylc/internal/token"
)

func num(v float64) *resolved.NumberLiteral {
	return resolved.NewNumberLiteral(token.Location{}, v)
}

func TestCEEArithmetic(t *testing.T) {
	cee := NewCEE(&resolved.Arena{})

	expr := resolved.NewBinaryOperator(token.Location{}, "+", num(2), num(3))
	v, ok := cee.Evaluate(expr, false)
	if !ok || v != 5 {
		t.Fatalf("got (%v, %v), want (5, true)", v, ok)
	}

	expr = resolved.NewBinaryOperator(token.Location{}, "*",
		resolved.NewBinaryOperator(token.Location{}, "+", num(2), num(3)), num(4))
	v, ok = cee.Evaluate(expr, false)
	if !ok || v != 20 {
		t.Fatalf("got (%v, %v), want (20, true)", v, ok)
	}
}

func TestCEEUnary(t *testing.T) {
	cee := NewCEE(&resolved.Arena{})

	v, ok := cee.Evaluate(resolved.NewUnaryOperator(token.Location{}, "-", num(4)), false)
	if !ok || v != -4 {
		t.Fatalf("got (%v, %v), want (-4, true)", v, ok)
	}

	v, ok = cee.Evaluate(resolved.NewUnaryOperator(token.Location{}, "!", num(0)), false)
	if !ok || v != 1 {
		t.Fatalf("got (%v, %v), want (1, true)", v, ok)
	}
}

func TestCEEShortCircuit(t *testing.T) {
	cee := NewCEE(&resolved.Arena{})

	call := resolved.NewCallExpr(token.Location{}, num(0).Type(), 0, nil)

	andExpr := resolved.NewBinaryOperator(token.Location{}, "&&", num(0), call)
	v, ok := cee.Evaluate(andExpr, false)
	if !ok || v != 0 {
		t.Fatalf("&&-with-false-LHS: got (%v, %v), want (0, true)", v, ok)
	}

	orExpr := resolved.NewBinaryOperator(token.Location{}, "||", num(1), call)
	v, ok = cee.Evaluate(orExpr, false)
	if !ok || v != 1 {
		t.Fatalf("||-with-true-LHS: got (%v, %v), want (1, true)", v, ok)
	}

	// An unfoldable RHS still blocks folding when the LHS doesn't decide
	// the result.
	andExpr = resolved.NewBinaryOperator(token.Location{}, "&&", num(1), call)
	if _, ok := cee.Evaluate(andExpr, false); ok {
		t.Fatal("expected && with an unfoldable RHS and true LHS to not fold")
	}
}

func TestCEECallNeverConstant(t *testing.T) {
	cee := NewCEE(&resolved.Arena{})
	call := resolved.NewCallExpr(token.Location{}, num(0).Type(), 0, nil)
	if _, ok := cee.Evaluate(call, false); ok {
		t.Fatal("expected a CallExpr to never fold")
	}
}

func TestCEEComparisonOperators(t *testing.T) {
	cee := NewCEE(&resolved.Arena{})
	cases := []struct {
		op   string
		lhs  float64
		rhs  float64
		want float64
	}{
		{"<", 1, 2, 1},
		{"<", 2, 1, 0},
		{">", 2, 1, 1},
		{"==", 3, 3, 1},
		{"!=", 3, 3, 0},
	}
	for _, c := range cases {
		expr := resolved.NewBinaryOperator(token.Location{}, c.op, num(c.lhs), num(c.rhs))
		v, ok := cee.Evaluate(expr, false)
		if !ok || v != c.want {
			t.Errorf("%v %s %v: got (%v, %v), want (%v, true)", c.lhs, c.op, c.rhs, v, ok, c.want)
		}
	}
}

func TestCEEConstantVarDecl(t *testing.T) {
	arena := &resolved.Arena{}
	cee := NewCEE(arena)

	vd := &resolved.VarDecl{Name: "x", IsMutable: false, Initializer: num(7)}
	h := arena.Add(vd)

	ref := resolved.NewDeclRefExpr(token.Location{}, num(0).Type(), h)
	v, ok := cee.Evaluate(ref, false)
	if !ok || v != 7 {
		t.Fatalf("got (%v, %v), want (7, true)", v, ok)
	}

	vd.IsMutable = true
	if _, ok := cee.Evaluate(ref, false); ok {
		t.Fatal("expected a mutable variable's reference to never fold")
	}
}
