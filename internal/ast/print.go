package ast

import "fmt"

// Print renders fn's parsed tree as indented text, ahead of Sema ever
// running - the same two-space-per-depth shape internal/ir uses for
// the resolved tree, kept as a separate small walker since this one
// has no constant-folding or handle indirection to show.
func Print(fn *FunctionDecl) string {
	var lines []string
	lines = appendf(lines, 0, "FunctionDecl %s -> %s", fn.Ident, fn.ReturnType)
	for _, p := range fn.Params {
		lines = appendf(lines, 1, "ParamDecl %s: %s", p.Ident, p.Type)
	}
	if fn.Body != nil {
		lines = printBlock(lines, fn.Body, 1)
	}
	s := ""
	for _, l := range lines {
		s += l + "\n"
	}
	return s
}

// PrintForest renders every function in fns, in order.
func PrintForest(fns []*FunctionDecl) string {
	s := ""
	for _, fn := range fns {
		s += Print(fn)
	}
	return s
}

func appendf(lines []string, depth int, format string, args ...interface{}) []string {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	return append(lines, indent+fmt.Sprintf(format, args...))
}

func printBlock(lines []string, b *Block, depth int) []string {
	lines = appendf(lines, depth, "Block")
	for _, s := range b.Stmts {
		lines = printStmt(lines, s, depth+1)
	}
	return lines
}

func printStmt(lines []string, s Stmt, depth int) []string {
	switch st := s.(type) {
	case *DeclStmt:
		lines = appendf(lines, depth, "DeclStmt %s mutable=%t", st.VarDecl.Ident, st.VarDecl.IsMutable)
		if st.VarDecl.HasType {
			lines = appendf(lines, depth+1, "Type %s", st.VarDecl.Type)
		}
		if st.VarDecl.Initializer != nil {
			lines = printExpr(lines, st.VarDecl.Initializer, depth+1)
		}

	case *Assignment:
		lines = appendf(lines, depth, "Assignment")
		lines = printExpr(lines, st.Variable, depth+1)
		lines = printExpr(lines, st.Expr, depth+1)

	case *IfStmt:
		lines = appendf(lines, depth, "IfStmt")
		lines = printExpr(lines, st.Cond, depth+1)
		lines = printBlock(lines, st.Then, depth+1)
		if st.Else != nil {
			lines = printBlock(lines, st.Else, depth+1)
		}

	case *WhileStmt:
		lines = appendf(lines, depth, "WhileStmt")
		lines = printExpr(lines, st.Cond, depth+1)
		lines = printBlock(lines, st.Body, depth+1)

	case *ReturnStmt:
		lines = appendf(lines, depth, "ReturnStmt")
		if st.Expr != nil {
			lines = printExpr(lines, st.Expr, depth+1)
		}

	case *Block:
		lines = printBlock(lines, st, depth)

	case *ExprStmt:
		lines = printExpr(lines, st.Expr, depth)
	}
	return lines
}

func printExpr(lines []string, e Expr, depth int) []string {
	switch n := e.(type) {
	case *NumberLiteral:
		lines = appendf(lines, depth, "NumberLiteral %s", n.Value)

	case *StringLiteral:
		lines = appendf(lines, depth, "StringLiteral %q", n.Value)

	case *DeclRefExpr:
		lines = appendf(lines, depth, "DeclRefExpr %s", n.Ident)

	case *CallExpr:
		lines = appendf(lines, depth, "CallExpr %s", n.Callee.Ident)
		for _, a := range n.Args {
			lines = printExpr(lines, a, depth+1)
		}

	case *GroupingExpr:
		lines = appendf(lines, depth, "GroupingExpr")
		lines = printExpr(lines, n.Inner, depth+1)

	case *BinaryOperator:
		lines = appendf(lines, depth, "BinaryOperator %s", n.Op)
		lines = printExpr(lines, n.LHS, depth+1)
		lines = printExpr(lines, n.RHS, depth+1)

	case *UnaryOperator:
		lines = appendf(lines, depth, "UnaryOperator %s", n.Op)
		lines = printExpr(lines, n.RHS, depth+1)
	}
	return lines
}
