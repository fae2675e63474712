package frontend

import (
	"testing"

	"ylc/internal/ast"
)

func TestParseFunctionShape(t *testing.T) {
	src := `
fn add(a: number, b: number): number {
  return a + b;
}
`
	fns, err := Parse("test.yl", src)
	if err != nil {
		t.Fatalf("Parse returned error: %s", err)
	}
	if len(fns) != 1 {
		t.Fatalf("got %d functions, want 1", len(fns))
	}

	fn := fns[0]
	if fn.Ident != "add" {
		t.Errorf("got name %q, want \"add\"", fn.Ident)
	}
	if fn.ReturnType.Kind != ast.KindNumber {
		t.Errorf("got return type %s, want number", fn.ReturnType)
	}
	if len(fn.Params) != 2 || fn.Params[0].Ident != "a" || fn.Params[1].Ident != "b" {
		t.Fatalf("unexpected params: %+v", fn.Params)
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body.Stmts))
	}

	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ReturnStmt", fn.Body.Stmts[0])
	}
	bin, ok := ret.Expr.(*ast.BinaryOperator)
	if !ok || bin.Op != "+" {
		t.Fatalf("got %+v, want a '+' BinaryOperator", ret.Expr)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	src := `
fn f(): number {
  return 1.0 + 2.0 * 3.0 == 7.0 && !no || yes;
}
`
	fns, err := Parse("test.yl", src)
	if err != nil {
		t.Fatalf("Parse returned error: %s", err)
	}
	ret := fns[0].Body.Stmts[0].(*ast.ReturnStmt)

	top, ok := ret.Expr.(*ast.BinaryOperator)
	if !ok || top.Op != "||" {
		t.Fatalf("expected top-level '||', got %+v", ret.Expr)
	}

	and, ok := top.LHS.(*ast.BinaryOperator)
	if !ok || and.Op != "&&" {
		t.Fatalf("expected '&&' under '||', got %+v", top.LHS)
	}

	eq, ok := and.LHS.(*ast.BinaryOperator)
	if !ok || eq.Op != "==" {
		t.Fatalf("expected '==' under '&&', got %+v", and.LHS)
	}

	add, ok := eq.LHS.(*ast.BinaryOperator)
	if !ok || add.Op != "+" {
		t.Fatalf("expected '+' under '==', got %+v", eq.LHS)
	}
	mul, ok := add.RHS.(*ast.BinaryOperator)
	if !ok || mul.Op != "*" {
		t.Fatalf("expected '*' nested tighter than '+', got %+v", add.RHS)
	}
}

func TestParseCallAndGrouping(t *testing.T) {
	src := `
fn f(): void {
  println(callee((1.0 + 2.0)));
}
fn callee(x: number): number {
  return x;
}
`
	fns, err := Parse("test.yl", src)
	if err != nil {
		t.Fatalf("Parse returned error: %s", err)
	}
	stmt := fns[0].Body.Stmts[0].(*ast.ExprStmt)
	call, ok := stmt.Expr.(*ast.CallExpr)
	if !ok || call.Callee.Ident != "println" {
		t.Fatalf("expected a println call, got %+v", stmt.Expr)
	}
	inner, ok := call.Args[0].(*ast.CallExpr)
	if !ok || inner.Callee.Ident != "callee" {
		t.Fatalf("expected a nested callee() call, got %+v", call.Args[0])
	}
	if _, ok := inner.Args[0].(*ast.GroupingExpr); !ok {
		t.Fatalf("expected a GroupingExpr argument, got %+v", inner.Args[0])
	}
}

func TestParseMissingSemiIsError(t *testing.T) {
	src := `
fn f(): void {
  println('hi')
}
`
	if _, err := Parse("test.yl", src); err == nil {
		t.Fatal("expected a parse error for the missing ';', got nil")
	}
}
