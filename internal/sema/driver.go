// Package sema implements semantic analysis: two-pass name resolution
// and type checking, constant folding, and the CFG-based flow-sensitive
// checks (spec.md §4). ResolveProgram is the single entry point the
// rest of the compiler calls.
package sema

import (
	"ylc/internal/ast"
	"ylc/internal/cfg"
	"ylc/internal/diag"
	"ylc/internal/resolved"
)

// Program is the fully resolved, fully checked forest handed off to
// code generation. Functions[0] is always the implicit builtin
// println (spec.md §4.4).
type Program struct {
	Functions []*resolved.FunctionDecl
	Arena     *resolved.Arena
}

// ResolveProgram runs the complete two-pass resolution protocol of
// spec.md §4.4 over fns: insert builtin println, resolve every
// signature and insert it into the global scope (so forward references
// between top-level functions work), then resolve every body and run
// the flow-sensitive checks over it. Any failure in either pass yields
// an empty forest - partial results are never handed to code
// generation.
func ResolveProgram(fns []*ast.FunctionDecl, sink *diag.Sink) (*Program, bool) {
	r := NewResolver(sink)

	leaveGlobal := r.scopes.Enter()
	defer leaveGlobal()

	builtin := r.createBuiltinPrintln()
	builtinHandle := r.arena.Add(builtin)
	r.scopes.InsertCurrent(builtin.Name, builtinHandle)

	result := []*resolved.FunctionDecl{builtin}

	signatures := make([]*resolved.FunctionDecl, len(fns))
	failed := false
	for i, fn := range fns {
		sig, ok := r.resolveFunctionSignature(fn)
		if !ok {
			failed = true
			continue
		}

		h := r.arena.Add(sig)
		if !r.scopes.InsertCurrent(sig.Name, h) {
			sink.Report(sig.Loc, diag.Redeclaration, "redeclaration of %q", sig.Name)
			failed = true
			continue
		}

		signatures[i] = sig
		result = append(result, sig)
	}
	if failed {
		return nil, false
	}

	for i, fn := range fns {
		sig := signatures[i]
		if !r.resolveFunctionBody(fn, sig) {
			failed = true
			continue
		}

		g := cfg.Build(sig, r.arena)
		if !RunFlowChecks(sig, g, sink) {
			failed = true
		}
	}
	if failed {
		return nil, false
	}

	return &Program{Functions: result, Arena: r.arena}, true
}
