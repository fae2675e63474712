package sema

import (
	"strconv"

	"ylc/internal/ast"
	"ylc/internal/diag"
	"ylc/internal/resolved"
	"ylc/internal/token"
)

// builtinLoc marks a location inside the implicit builtin println
// declaration, which has no source text of its own.
var builtinLoc = token.Location{File: "<builtin>"}

// Resolver is the two-pass name resolver and type checker of spec.md
// §4.4, ported from the reference Sema class: pass one resolves every
// function signature and inserts it into the global scope (so forward
// references between functions work), pass two resolves every body
// against the now-complete global scope.
type Resolver struct {
	arena  *resolved.Arena
	scopes Scopes
	sink   *diag.Sink
	cee    *CEE

	currentFn *resolved.FunctionDecl
}

// NewResolver constructs a Resolver reporting into sink.
func NewResolver(sink *diag.Sink) *Resolver {
	arena := &resolved.Arena{}
	return &Resolver{
		arena: arena,
		sink:  sink,
		cee:   NewCEE(arena),
	}
}

// Arena exposes the arena the resolver populated, for callers (the CFG
// builder, println's handle) that need to dereference a Handle.
func (r *Resolver) Arena() *resolved.Arena { return r.arena }

func (r *Resolver) resolveType(t ast.Type) (ast.Type, bool) {
	if t.Kind == ast.KindCustom {
		return ast.Type{}, false
	}
	return t, true
}

// createBuiltinPrintln mints the implicit `println` declaration, always
// the first entry in the global scope (spec.md §4.4 step 1). Its single
// parameter is typed number so ordinary numeric calls type-check
// normally; the string-literal overload used for `println('text')` is
// handled entirely inside resolveCallExpr, bypassing the parameter type
// check for that one call shape (see DESIGN.md).
func (r *Resolver) createBuiltinPrintln() *resolved.FunctionDecl {
	param := &resolved.ParamDecl{Loc: builtinLoc, Name: "n", Type: ast.NumberType()}
	paramHandle := r.arena.Add(param)

	fn := &resolved.FunctionDecl{
		Loc:          builtinLoc,
		Name:         "println",
		ReturnType:   ast.VoidType(),
		Params:       []*resolved.ParamDecl{param},
		ParamHandles: []resolved.Handle{paramHandle},
		Body:         &resolved.Block{Loc: builtinLoc},
	}
	return fn
}

func (r *Resolver) resolveUnaryOperator(u *ast.UnaryOperator) (*resolved.UnaryOperator, bool) {
	rhs, ok := r.resolveExpr(u.RHS)
	if !ok {
		return nil, false
	}
	if rhs.Type().Kind == ast.KindVoid {
		r.sink.Report(rhs.Location(), diag.VoidInExpression,
			"void expression cannot be used as operand to unary operator")
		return nil, false
	}
	return resolved.NewUnaryOperator(u.Loc, u.Op, rhs), true
}

func (r *Resolver) resolveBinaryOperator(b *ast.BinaryOperator) (*resolved.BinaryOperator, bool) {
	lhs, ok := r.resolveExpr(b.LHS)
	if !ok {
		return nil, false
	}
	rhs, ok := r.resolveExpr(b.RHS)
	if !ok {
		return nil, false
	}
	if lhs.Type().Kind == ast.KindVoid {
		r.sink.Report(lhs.Location(), diag.VoidInExpression,
			"void expression cannot be used as LHS operand to binary operator")
		return nil, false
	}
	if rhs.Type().Kind == ast.KindVoid {
		r.sink.Report(rhs.Location(), diag.VoidInExpression,
			"void expression cannot be used as RHS operand to binary operator")
		return nil, false
	}
	return resolved.NewBinaryOperator(b.Loc, b.Op, lhs, rhs), true
}

func (r *Resolver) resolveGroupingExpr(g *ast.GroupingExpr) (*resolved.GroupingExpr, bool) {
	inner, ok := r.resolveExpr(g.Inner)
	if !ok {
		return nil, false
	}
	return resolved.NewGroupingExpr(g.Loc, inner), true
}

// resolveDeclRefExpr looks ident up in scope. inCall relaxes the
// "function used as a value" rejection, since a DeclRefExpr naming a
// function is legal exactly as a CallExpr's callee.
func (r *Resolver) resolveDeclRefExpr(loc token.Location, ident string, inCall bool) (*resolved.DeclRefExpr, bool) {
	h, _, ok := r.scopes.Lookup(ident)
	if !ok {
		r.sink.Report(loc, diag.UnresolvedSymbol, "symbol %q not found", ident)
		return nil, false
	}

	decl := r.arena.Get(h)
	if _, isFn := decl.(*resolved.FunctionDecl); isFn && !inCall {
		r.sink.Report(loc, diag.FunctionAsValue, "expected to call function %q", ident)
		return nil, false
	}

	var typ ast.Type
	switch d := decl.(type) {
	case *resolved.FunctionDecl:
		typ = d.ReturnType
	case *resolved.ParamDecl:
		typ = d.Type
	case *resolved.VarDecl:
		typ = d.Type
	}

	return resolved.NewDeclRefExpr(loc, typ, h), true
}

func (r *Resolver) resolveCallExpr(c *ast.CallExpr) (*resolved.CallExpr, bool) {
	calleeRef, ok := r.resolveDeclRefExpr(c.Callee.Loc, c.Callee.Ident, true)
	if !ok {
		return nil, false
	}

	fn, ok := r.arena.Get(calleeRef.Decl).(*resolved.FunctionDecl)
	if !ok {
		r.sink.Report(c.Loc, diag.FunctionAsValue, "calling non-function symbol")
		return nil, false
	}

	if len(c.Args) != len(fn.Params) {
		r.sink.Report(c.Loc, diag.ArgMismatch, "argument count mismatch in call to %q", fn.Name)
		return nil, false
	}

	args := make([]resolved.Expr, len(c.Args))
	for i, rawArg := range c.Args {
		// The println('text') overload: a raw string-literal argument to
		// println bypasses the normal number-typed parameter check. Every
		// other function, and every other argument position, rejects a
		// string literal outright (see ast.KindString's doc comment).
		if fn.Name == "println" {
			if sl, isStr := rawArg.(*ast.StringLiteral); isStr {
				args[i] = resolved.NewStringLiteral(sl.Loc, sl.Value)
				continue
			}
		}

		arg, ok := r.resolveExpr(rawArg)
		if !ok {
			return nil, false
		}
		if arg.Type().Kind != fn.Params[i].Type.Kind {
			r.sink.Report(arg.Location(), diag.ArgMismatch, "unexpected type of argument")
			return nil, false
		}
		v, cok := r.cee.Evaluate(arg, false)
		arg.SetConstantValue(v, cok)
		args[i] = arg
	}

	return resolved.NewCallExpr(c.Loc, fn.ReturnType, calleeRef.Decl, args), true
}

func (r *Resolver) resolveExpr(e ast.Expr) (resolved.Expr, bool) {
	switch n := e.(type) {
	case *ast.NumberLiteral:
		v, _ := strconv.ParseFloat(n.Value, 64)
		return resolved.NewNumberLiteral(n.Loc, v), true

	case *ast.StringLiteral:
		r.sink.Report(n.Loc, diag.InvalidType, "string literals may only be used as println arguments")
		return nil, false

	case *ast.DeclRefExpr:
		return r.resolveDeclRefExpr(n.Loc, n.Ident, false)

	case *ast.CallExpr:
		return r.resolveCallExpr(n)

	case *ast.GroupingExpr:
		return r.resolveGroupingExpr(n)

	case *ast.BinaryOperator:
		return r.resolveBinaryOperator(n)

	case *ast.UnaryOperator:
		return r.resolveUnaryOperator(n)
	}
	return nil, false
}

func (r *Resolver) resolveStmt(s ast.Stmt) (resolved.Stmt, bool) {
	switch st := s.(type) {
	case *ast.ExprStmt:
		e, ok := r.resolveExpr(st.Expr)
		if !ok {
			return nil, false
		}
		return resolved.WrapExprStmt(e), true

	case *ast.IfStmt:
		return r.resolveIfStmt(st)

	case *ast.Assignment:
		return r.resolveAssignment(st)

	case *ast.DeclStmt:
		return r.resolveDeclStmt(st)

	case *ast.WhileStmt:
		return r.resolveWhileStmt(st)

	case *ast.ReturnStmt:
		return r.resolveReturnStmt(st)
	}
	return nil, false
}

func (r *Resolver) resolveIfStmt(s *ast.IfStmt) (*resolved.IfStmt, bool) {
	cond, ok := r.resolveExpr(s.Cond)
	if !ok {
		return nil, false
	}
	if cond.Type().Kind != ast.KindNumber {
		r.sink.Report(cond.Location(), diag.TypeMismatch, "expected number in condition")
		return nil, false
	}

	thenBlock, ok := r.resolveBlock(s.Then)
	if !ok {
		return nil, false
	}

	var elseBlock *resolved.Block
	if s.Else != nil {
		elseBlock, ok = r.resolveBlock(s.Else)
		if !ok {
			return nil, false
		}
	}

	v, cok := r.cee.Evaluate(cond, false)
	cond.SetConstantValue(v, cok)

	return &resolved.IfStmt{Loc: s.Loc, Cond: cond, Then: thenBlock, Else: elseBlock}, true
}

func (r *Resolver) resolveWhileStmt(s *ast.WhileStmt) (*resolved.WhileStmt, bool) {
	cond, ok := r.resolveExpr(s.Cond)
	if !ok {
		return nil, false
	}
	if cond.Type().Kind != ast.KindNumber {
		r.sink.Report(cond.Location(), diag.TypeMismatch, "expected number in condition")
		return nil, false
	}

	body, ok := r.resolveBlock(s.Body)
	if !ok {
		return nil, false
	}

	v, cok := r.cee.Evaluate(cond, false)
	cond.SetConstantValue(v, cok)

	return &resolved.WhileStmt{Loc: s.Loc, Cond: cond, Body: body}, true
}

func (r *Resolver) resolveDeclStmt(s *ast.DeclStmt) (*resolved.DeclStmt, bool) {
	vd, ok := r.resolveVarDecl(s.VarDecl)
	if !ok {
		return nil, false
	}
	h := r.arena.Add(vd)
	if !r.scopes.InsertCurrent(vd.Name, h) {
		r.sink.Report(vd.Loc, diag.Redeclaration, "redeclaration of %q", vd.Name)
		return nil, false
	}
	return &resolved.DeclStmt{Loc: s.Loc, VarDecl: vd, Handle: h}, true
}

func (r *Resolver) resolveAssignment(s *ast.Assignment) (*resolved.Assignment, bool) {
	lhs, ok := r.resolveDeclRefExpr(s.Variable.Loc, s.Variable.Ident, false)
	if !ok {
		return nil, false
	}
	rhs, ok := r.resolveExpr(s.Expr)
	if !ok {
		return nil, false
	}

	if _, isParam := r.arena.Get(lhs.Decl).(*resolved.ParamDecl); isParam {
		r.sink.Report(lhs.Location(), diag.ImmutableMutation, "parameters are immutable and cannot be assigned")
		return nil, false
	}

	if rhs.Type().Kind != lhs.Type().Kind {
		r.sink.Report(rhs.Location(), diag.TypeMismatch, "assigned value type doesn't match variable type")
		return nil, false
	}

	v, cok := r.cee.Evaluate(rhs, false)
	rhs.SetConstantValue(v, cok)

	return &resolved.Assignment{Loc: s.Loc, Variable: lhs, Expr: rhs}, true
}

func (r *Resolver) resolveReturnStmt(s *ast.ReturnStmt) (*resolved.ReturnStmt, bool) {
	if r.currentFn.ReturnType.Kind == ast.KindVoid && s.Expr != nil {
		r.sink.Report(s.Loc, diag.TypeMismatch, "unexpected return value in void function")
		return nil, false
	}
	if r.currentFn.ReturnType.Kind != ast.KindVoid && s.Expr == nil {
		r.sink.Report(s.Loc, diag.TypeMismatch, "expected a return value")
		return nil, false
	}

	var expr resolved.Expr
	if s.Expr != nil {
		var ok bool
		expr, ok = r.resolveExpr(s.Expr)
		if !ok {
			return nil, false
		}
		if expr.Type().Kind != r.currentFn.ReturnType.Kind {
			r.sink.Report(expr.Location(), diag.TypeMismatch, "unexpected return type")
			return nil, false
		}
		v, cok := r.cee.Evaluate(expr, false)
		expr.SetConstantValue(v, cok)
	}

	return &resolved.ReturnStmt{Loc: s.Loc, Expr: expr}, true
}

// resolveBlock opens a nested scope and resolves every statement in
// order, continuing past a failed statement to surface further
// diagnostics rather than aborting at the first error (spec.md §4.4).
// A warning is raised for the first statement found after a return;
// later unreachable statements are resolved silently.
func (r *Resolver) resolveBlock(b *ast.Block) (*resolved.Block, bool) {
	leave := r.scopes.Enter()
	defer leave()

	stmts := make([]resolved.Stmt, 0, len(b.Stmts))
	failed := false
	unreachableCount := 0

	for _, s := range b.Stmts {
		rs, ok := r.resolveStmt(s)
		if !ok {
			failed = true
			continue
		}
		stmts = append(stmts, rs)

		if unreachableCount == 1 {
			r.sink.Warn(s.Location(), diag.UnreachableStatement, "unreachable statement")
			unreachableCount++
		}
		if _, isReturn := s.(*ast.ReturnStmt); isReturn {
			unreachableCount++
		}
	}

	if failed {
		return nil, false
	}
	return &resolved.Block{Loc: b.Loc, Stmts: stmts}, true
}

func (r *Resolver) resolveParamDecl(p *ast.ParamDecl) (*resolved.ParamDecl, bool) {
	typ, ok := r.resolveType(p.Type)
	if !ok || typ.Kind == ast.KindVoid {
		r.sink.Report(p.Loc, diag.InvalidType, "parameter %q has invalid %s type", p.Ident, p.Type)
		return nil, false
	}
	return &resolved.ParamDecl{Loc: p.Loc, Name: p.Ident, Type: typ}, true
}

func (r *Resolver) resolveVarDecl(v *ast.VarDecl) (*resolved.VarDecl, bool) {
	if !v.HasType && v.Initializer == nil {
		r.sink.Report(v.Loc, diag.InvalidType, "an uninitialized variable is expected to have a type specifier")
		return nil, false
	}

	var initializer resolved.Expr
	if v.Initializer != nil {
		var ok bool
		initializer, ok = r.resolveExpr(v.Initializer)
		if !ok {
			return nil, false
		}
	}

	resolvable := v.Type
	if !v.HasType {
		resolvable = initializer.Type()
	}
	typ, ok := r.resolveType(resolvable)
	if !ok || typ.Kind == ast.KindVoid {
		r.sink.Report(v.Loc, diag.InvalidType, "variable %q has invalid %s type", v.Ident, resolvable)
		return nil, false
	}

	if initializer != nil {
		if initializer.Type().Kind != typ.Kind {
			r.sink.Report(initializer.Location(), diag.TypeMismatch, "initializer type mismatch")
			return nil, false
		}
		val, cok := r.cee.Evaluate(initializer, false)
		initializer.SetConstantValue(val, cok)
	}

	return &resolved.VarDecl{Loc: v.Loc, Name: v.Ident, Type: typ, IsMutable: v.IsMutable, Initializer: initializer}, true
}

// resolveFunctionSignature resolves fn's return type and parameters
// (spec.md §4.4 pass one), checking the main-shape invariant, but never
// touches the body - the caller inserts the result into the global
// scope before any body is resolved, so forward references work.
func (r *Resolver) resolveFunctionSignature(fn *ast.FunctionDecl) (*resolved.FunctionDecl, bool) {
	leave := r.scopes.Enter()
	defer leave()

	typ, ok := r.resolveType(fn.ReturnType)
	if !ok {
		r.sink.Report(fn.Loc, diag.InvalidType, "function %q has invalid %s type", fn.Ident, fn.ReturnType)
		return nil, false
	}

	if fn.Ident == "main" {
		if typ.Kind != ast.KindVoid {
			r.sink.Report(fn.Loc, diag.MainShape, "'main' function is expected to have 'void' type")
			return nil, false
		}
		if len(fn.Params) != 0 {
			r.sink.Report(fn.Loc, diag.MainShape, "'main' function is expected to take no arguments")
			return nil, false
		}
	}

	params := make([]*resolved.ParamDecl, 0, len(fn.Params))
	handles := make([]resolved.Handle, 0, len(fn.Params))
	for _, p := range fn.Params {
		rp, ok := r.resolveParamDecl(p)
		if !ok {
			return nil, false
		}
		h := r.arena.Add(rp)
		if !r.scopes.InsertCurrent(rp.Name, h) {
			r.sink.Report(rp.Loc, diag.Redeclaration, "redeclaration of %q", rp.Name)
			return nil, false
		}
		params = append(params, rp)
		handles = append(handles, h)
	}

	return &resolved.FunctionDecl{
		Loc: fn.Loc, Name: fn.Ident, ReturnType: typ,
		Params: params, ParamHandles: handles,
	}, true
}

// resolveFunctionBody resolves fn.Body against a fresh scope seeded
// with resolvedFn's already-resolved parameters (spec.md §4.4 pass
// two).
func (r *Resolver) resolveFunctionBody(fn *ast.FunctionDecl, resolvedFn *resolved.FunctionDecl) bool {
	leave := r.scopes.Enter()
	defer leave()

	for i, p := range resolvedFn.Params {
		r.scopes.InsertCurrent(p.Name, resolvedFn.ParamHandles[i])
	}

	r.currentFn = resolvedFn
	body, ok := r.resolveBlock(fn.Body)
	r.currentFn = nil
	if !ok {
		return false
	}
	resolvedFn.Body = body
	return true
}

