package sema

import (
	"ylc/internal/ast"
	"ylc/internal/cfg"
	"ylc/internal/diag"
	"ylc/internal/resolved"
)

// RunFlowChecks runs both flow-sensitive analyses over fn's CFG
// (spec.md §4.6) and reports every diagnostic they find. It returns
// true iff neither analysis found a problem.
func RunFlowChecks(fn *resolved.FunctionDecl, g *cfg.CFG, sink *diag.Sink) bool {
	ok := checkReturnOnAllPaths(fn, g, sink)
	ok = checkInitAndImmutability(g, sink) && ok
	return ok
}

// checkReturnOnAllPaths is a worklist reachability from Entry following
// only reachable edges (spec.md §4.6). Void functions are exempt.
func checkReturnOnAllPaths(fn *resolved.FunctionDecl, g *cfg.CFG, sink *diag.Sink) bool {
	if fn.ReturnType.Kind == ast.KindVoid {
		return true
	}

	returnCount := 0
	exitReached := false
	visited := make(map[int]bool)
	worklist := []int{g.Entry}

	for len(worklist) > 0 {
		bb := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if visited[bb] {
			continue
		}
		visited[bb] = true

		if bb == g.Exit {
			exitReached = true
		}

		// A return always ends its block, so it is the block's tail:
		// Items[0] in the tail-first storage order.
		if items := g.Blocks[bb].Items; len(items) > 0 && items[0].Kind == cfg.ItemReturn {
			returnCount++
			continue
		}

		for _, e := range g.Blocks[bb].Succs {
			if e.Reachable {
				worklist = append(worklist, e.Block)
			}
		}
	}

	if exitReached || returnCount == 0 {
		if returnCount > 0 {
			sink.Report(fn.Loc, diag.NonReturningSomePaths,
				"function %q doesn't return a value on every path", fn.Name)
		} else {
			sink.Report(fn.Loc, diag.NonReturning,
				"function %q doesn't return a value", fn.Name)
		}
		return false
	}
	return true
}

// initState is the four-point lattice of spec.md §4.6: Bottom is the
// zero value so an absent map entry behaves as the join identity
// without special-casing lookups.
type initState int

const (
	stateBottom initState = iota
	stateUnassigned
	stateAssigned
	stateTop
)

func joinState(a, b initState) initState {
	if a == b {
		return a
	}
	if a == stateBottom {
		return b
	}
	if b == stateBottom {
		return a
	}
	return stateTop
}

type lattice map[*resolved.VarDecl]initState

func (l lattice) equal(o lattice) bool {
	if len(l) != len(o) {
		return false
	}
	for k, v := range l {
		if o[k] != v {
			return false
		}
	}
	return true
}

// checkInitAndImmutability runs the forward fixpoint dataflow of
// spec.md §4.6 to convergence with no reporting, then replays the
// transfer functions once more over the converged lattices to report
// diagnostics (spec.md's own open question: diagnostics from
// non-final iterations are discarded, since intermediate lattices may
// not yet be stable).
func checkInitAndImmutability(g *cfg.CFG, sink *diag.Sink) bool {
	n := len(g.Blocks)
	cur := make([]lattice, n)
	for i := range cur {
		cur[i] = lattice{}
	}

	changed := true
	for changed {
		changed = false
		for bb := 0; bb < n; bb++ {
			tmp := lattice{}
			for _, e := range g.Blocks[bb].Preds {
				for decl, st := range cur[e.Block] {
					tmp[decl] = joinState(tmp[decl], st)
				}
			}

			items := g.Blocks[bb].Items
			for i := len(items) - 1; i >= 0; i-- {
				it := items[i]
				switch it.Kind {
				case cfg.ItemDecl:
					if it.Decl.Initializer != nil {
						tmp[it.Decl] = stateAssigned
					} else {
						tmp[it.Decl] = stateUnassigned
					}
				case cfg.ItemAssign:
					tmp[it.Decl] = stateAssigned
				}
			}

			if !cur[bb].equal(tmp) {
				cur[bb] = tmp
				changed = true
			}
		}
	}

	return reportFinalPass(g, cur, sink)
}

// reportFinalPass re-runs the transfer functions once more using the
// already-converged per-block lattices, each holding a block's state
// after its own items (a block's entry state is the join of its
// predecessors' lattices), reporting diagnostics at the exact item
// location rather than the declaration's location.
func reportFinalPass(g *cfg.CFG, entryLattices []lattice, sink *diag.Sink) bool {
	ok := true
	for bb := range g.Blocks {
		tmp := lattice{}
		for _, e := range g.Blocks[bb].Preds {
			for decl, st := range entryLattices[e.Block] {
				tmp[decl] = joinState(tmp[decl], st)
			}
		}
		items := g.Blocks[bb].Items
		for i := len(items) - 1; i >= 0; i-- {
			it := items[i]
			switch it.Kind {
			case cfg.ItemDecl:
				if it.Decl.Initializer != nil {
					tmp[it.Decl] = stateAssigned
				} else {
					tmp[it.Decl] = stateUnassigned
				}
			case cfg.ItemAssign:
				if !it.Decl.IsMutable && tmp[it.Decl] != stateUnassigned {
					ok = sink.Report(it.Loc, diag.ImmutableMutation, "%q cannot be mutated", it.Decl.Name) && ok
				}
				tmp[it.Decl] = stateAssigned
			case cfg.ItemRef:
				if tmp[it.Decl] != stateAssigned {
					ok = sink.Report(it.Loc, diag.UninitializedUse, "%q is not initialized", it.Decl.Name) && ok
				}
			}
		}
	}
	return ok
}
