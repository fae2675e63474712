package sema

import "ylc/internal/resolved"

// CEE is the constant expression evaluator: a pure, side-effect-free
// folder over resolved expressions (spec.md §4.2). It never reports
// diagnostics and never mutates its input; Evaluate is referentially
// transparent by construction (spec.md §8 invariant 6), since it reads
// only the Arena and the Expr tree, both of which are immutable once
// resolution of the surrounding function has completed.
type CEE struct {
	arena *resolved.Arena
}

// NewCEE constructs a CEE that resolves DeclRefExprs through arena.
func NewCEE(arena *resolved.Arena) *CEE {
	return &CEE{arena: arena}
}

// Evaluate attempts to fold e to a constant float64. allowSideEffects
// is threaded through to preserve the original interface (spec.md
// §4.2); every call site in this module passes false, and Evaluate
// never itself performs a side effect regardless of the flag's value.
func (c *CEE) Evaluate(e resolved.Expr, allowSideEffects bool) (float64, bool) {
	switch n := e.(type) {
	case *resolved.NumberLiteral:
		return n.ConstantValue()

	case *resolved.GroupingExpr:
		return c.Evaluate(n.Inner, allowSideEffects)

	case *resolved.UnaryOperator:
		v, ok := c.Evaluate(n.RHS, allowSideEffects)
		if !ok {
			return 0, false
		}
		switch n.Op {
		case "-":
			return -v, true
		case "!":
			if v == 0.0 {
				return 1.0, true
			}
			return 0.0, true
		}
		return 0, false

	case *resolved.BinaryOperator:
		return c.evalBinary(n, allowSideEffects)

	case *resolved.DeclRefExpr:
		decl := c.arena.Get(n.Decl)
		v, ok := decl.(*resolved.VarDecl)
		if !ok || v.IsMutable || v.Initializer == nil {
			return 0, false
		}
		return c.Evaluate(v.Initializer, allowSideEffects)

	default:
		// CallExpr, StringLiteral: never constant.
		return 0, false
	}
}

func (c *CEE) evalBinary(n *resolved.BinaryOperator, allowSideEffects bool) (float64, bool) {
	lhs, lhsOK := c.Evaluate(n.LHS, allowSideEffects)

	// Short-circuit: && is decided by a known-false LHS, || by a
	// known-true LHS, even when RHS cannot be folded (spec.md §4.2).
	if n.Op == "&&" && lhsOK && lhs == 0.0 {
		return 0.0, true
	}
	if n.Op == "||" && lhsOK && lhs != 0.0 {
		return 1.0, true
	}

	rhs, rhsOK := c.Evaluate(n.RHS, allowSideEffects)
	if !lhsOK || !rhsOK {
		return 0, false
	}

	switch n.Op {
	case "+":
		return lhs + rhs, true
	case "-":
		return lhs - rhs, true
	case "*":
		return lhs * rhs, true
	case "/":
		return lhs / rhs, true
	case "<":
		return boolf(lhs < rhs), true
	case ">":
		return boolf(lhs > rhs), true
	case "==":
		return boolf(lhs == rhs), true
	case "!=":
		return boolf(lhs != rhs), true
	case "&&":
		return boolf(lhs != 0.0 && rhs != 0.0), true
	case "||":
		return boolf(lhs != 0.0 || rhs != 0.0), true
	default:
		return 0, false
	}
}

func boolf(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
