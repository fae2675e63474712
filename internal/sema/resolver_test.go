package sema

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ylc/internal/ast"
	"ylc/internal/diag"
	"ylc/internal/frontend"
	"ylc/internal/resolved"
)

func parseSrc(t *testing.T, src string) []*ast.FunctionDecl {
	t.Helper()
	fns, err := frontend.Parse("test.yl", src)
	require.NoError(t, err)
	return fns
}

func resolveFile(t *testing.T, path string) (*Program, *diag.Sink) {
	t.Helper()
	src, err := os.ReadFile(path)
	require.NoError(t, err)

	fns, err := frontend.Parse(path, string(src))
	require.NoError(t, err)

	var sink diag.Sink
	prog, _ := ResolveProgram(fns, &sink)
	return prog, &sink
}

func TestResolveForwardReference(t *testing.T) {
	prog, sink := resolveFile(t, "../../testdata/forward_reference.yl")
	require.Empty(t, sink.Entries())
	require.NotNil(t, prog)
	// println occupies index 0 regardless of source order.
	assert.Equal(t, "println", prog.Functions[0].Name)
	names := make([]string, len(prog.Functions))
	for i, fn := range prog.Functions {
		names[i] = fn.Name
	}
	assert.Contains(t, names, "main")
	assert.Contains(t, names, "callee")
}

func TestResolvePrintlnNumericCallArgument(t *testing.T) {
	prog, sink := resolveFile(t, "../../testdata/forward_reference.yl")
	require.Empty(t, sink.Entries())

	var main *resolved.FunctionDecl
	for _, fn := range prog.Functions {
		if fn.Name == "main" {
			main = fn
		}
	}
	require.NotNil(t, main)

	call, ok := resolved.UnwrapExprStmt(main.Body.Stmts[0])
	require.True(t, ok)
	ce, ok := call.(*resolved.CallExpr)
	require.True(t, ok)
	// callee(2.0) is a number argument to println, not the string overload.
	_, isNum := ce.Args[0].(*resolved.NumberLiteral)
	assert.False(t, isNum, "println's argument here is callee(2.0), a CallExpr")
}

func TestResolveStringLiteralRejectedOutsidePrintln(t *testing.T) {
	fns := parseSrc(t, `
fn f(): void {
  var x: number = 1.0;
  x = 'oops';
}
`)

	var sink diag.Sink
	_, ok := ResolveProgram(fns, &sink)
	require.False(t, ok)
	require.NotEmpty(t, sink.Entries())
	assert.Equal(t, diag.InvalidType, sink.Entries()[0].Kind)
}

func TestResolveMainShapeRejectsNonVoid(t *testing.T) {
	fns := parseSrc(t, `
fn main(): number {
  return 1.0;
}
`)
	var sink diag.Sink
	_, ok := ResolveProgram(fns, &sink)
	require.False(t, ok)
	assert.Equal(t, diag.MainShape, sink.Entries()[0].Kind)
}

func TestResolveArgCountMismatch(t *testing.T) {
	fns := parseSrc(t, `
fn f(a: number): void {
}
fn g(): void {
  f(1.0, 2.0);
}
`)
	var sink diag.Sink
	_, ok := ResolveProgram(fns, &sink)
	require.False(t, ok)
	assert.Equal(t, diag.ArgMismatch, sink.Entries()[0].Kind)
}

func TestResolveRedeclarationInSameScope(t *testing.T) {
	fns := parseSrc(t, `
fn f(): void {
  var x: number = 1.0;
  var x: number = 2.0;
}
`)
	var sink diag.Sink
	_, ok := ResolveProgram(fns, &sink)
	require.False(t, ok)
	assert.Equal(t, diag.Redeclaration, sink.Entries()[0].Kind)
}

func TestResolveUnreachableStatementWarns(t *testing.T) {
	fns := parseSrc(t, `
fn f(): number {
  return 1.0;
  var x: number = 2.0;
}
`)
	var sink diag.Sink
	_, ok := ResolveProgram(fns, &sink)
	require.True(t, ok, "an unreachable statement warning must not fail resolution")
	require.NotEmpty(t, sink.Entries())
	assert.Equal(t, diag.UnreachableStatement, sink.Entries()[0].Kind)
	assert.True(t, sink.Entries()[0].IsWarning)
}
