// Package ir renders the resolved forest Sema produces as indented
// text, standing in for the out-of-scope code-generation hand-off
// (spec.md §1 explicitly excludes a backend). The recursive,
// depth-indented walk is the teacher's own `ir.Node.Print` shape
// (`src/ir/nodetype.go`), generalized from the teacher's single
// untyped `Node` tree to this module's typed resolved.Expr/Stmt/Decl
// sum.
package ir

import (
	"fmt"

	"ylc/internal/resolved"
)

// Print renders fn's resolved tree as indented text, the way the
// teacher's Node.Print walks its own tree (two spaces per depth level).
func Print(fn *resolved.FunctionDecl) string {
	var sb stringBuilder
	printFunction(&sb, fn, 0)
	return sb.String()
}

// PrintForest renders every function in fns, in order.
func PrintForest(fns []*resolved.FunctionDecl) string {
	s := ""
	for _, fn := range fns {
		s += Print(fn)
	}
	return s
}

// stringBuilder is a tiny indirection so Print's signature doesn't leak
// strings.Builder; kept local because nothing else in this package
// needs it.
type stringBuilder struct {
	lines []string
}

func (b *stringBuilder) String() string {
	s := ""
	for _, l := range b.lines {
		s += l + "\n"
	}
	return s
}

func (b *stringBuilder) add(depth int, format string, args ...interface{}) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	b.lines = append(b.lines, indent+fmt.Sprintf(format, args...))
}

func printFunction(b *stringBuilder, fn *resolved.FunctionDecl, depth int) {
	b.add(depth, "FunctionDecl %s -> %s", fn.Name, fn.ReturnType)
	for _, p := range fn.Params {
		b.add(depth+1, "ParamDecl %s: %s", p.Name, p.Type)
	}
	if fn.Body != nil {
		printBlock(b, fn.Body, depth+1)
	}
}

func printBlock(b *stringBuilder, blk *resolved.Block, depth int) {
	b.add(depth, "Block")
	for _, s := range blk.Stmts {
		printStmt(b, s, depth+1)
	}
}

func printStmt(b *stringBuilder, s resolved.Stmt, depth int) {
	switch st := s.(type) {
	case *resolved.DeclStmt:
		b.add(depth, "DeclStmt %s: %s mutable=%t", st.VarDecl.Name, st.VarDecl.Type, st.VarDecl.IsMutable)
		if st.VarDecl.Initializer != nil {
			printExpr(b, st.VarDecl.Initializer, depth+1)
		}

	case *resolved.Assignment:
		b.add(depth, "Assignment")
		printExpr(b, st.Variable, depth+1)
		printExpr(b, st.Expr, depth+1)

	case *resolved.IfStmt:
		b.add(depth, "IfStmt")
		printExpr(b, st.Cond, depth+1)
		printBlock(b, st.Then, depth+1)
		if st.Else != nil {
			printBlock(b, st.Else, depth+1)
		}

	case *resolved.WhileStmt:
		b.add(depth, "WhileStmt")
		printExpr(b, st.Cond, depth+1)
		printBlock(b, st.Body, depth+1)

	case *resolved.ReturnStmt:
		b.add(depth, "ReturnStmt")
		if st.Expr != nil {
			printExpr(b, st.Expr, depth+1)
		}

	case *resolved.Block:
		printBlock(b, st, depth)

	default:
		if e, ok := resolved.UnwrapExprStmt(s); ok {
			printExpr(b, e, depth)
		}
	}
}

func printExpr(b *stringBuilder, e resolved.Expr, depth int) {
	constSuffix := ""
	if v, ok := e.ConstantValue(); ok {
		constSuffix = fmt.Sprintf(" const=%g", v)
	}

	switch n := e.(type) {
	case *resolved.NumberLiteral:
		v, _ := n.ConstantValue()
		b.add(depth, "NumberLiteral %g", v)

	case *resolved.StringLiteral:
		b.add(depth, "StringLiteral %q", n.Value)

	case *resolved.DeclRefExpr:
		b.add(depth, "DeclRefExpr%s", constSuffix)

	case *resolved.CallExpr:
		b.add(depth, "CallExpr%s", constSuffix)
		for _, a := range n.Args {
			printExpr(b, a, depth+1)
		}

	case *resolved.GroupingExpr:
		b.add(depth, "GroupingExpr%s", constSuffix)
		printExpr(b, n.Inner, depth+1)

	case *resolved.BinaryOperator:
		b.add(depth, "BinaryOperator %s%s", n.Op, constSuffix)
		printExpr(b, n.LHS, depth+1)
		printExpr(b, n.RHS, depth+1)

	case *resolved.UnaryOperator:
		b.add(depth, "UnaryOperator %s%s", n.Op, constSuffix)
		printExpr(b, n.RHS, depth+1)
	}
}
