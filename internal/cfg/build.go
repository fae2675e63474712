package cfg

import "ylc/internal/resolved"

// builder holds the mutable state used while lowering one function
// body to a CFG.
type builder struct {
	cfg     *CFG
	arena   *resolved.Arena
	current int
}

// Build lowers fn's resolved body into a CFG. fn.Body must be non-nil
// (the caller resolves the body before building the graph, per
// spec.md §4.4's two-pass protocol).
func Build(fn *resolved.FunctionDecl, arena *resolved.Arena) *CFG {
	b := &builder{cfg: &CFG{}, arena: arena}

	entry := b.newBlock()
	exit := b.newBlock()
	b.cfg.Entry = entry
	b.cfg.Exit = exit
	b.current = entry

	b.buildStmts(fn.Body.Stmts)

	if !b.cfg.Blocks[b.current].sealed {
		b.addEdge(b.current, exit, true)
		b.seal(b.current)
	}

	return b.cfg
}

func (b *builder) newBlock() int {
	b.cfg.Blocks = append(b.cfg.Blocks, &Block{})
	return len(b.cfg.Blocks) - 1
}

func (b *builder) append(blockIdx int, item Item) {
	b.cfg.Blocks[blockIdx].Items = append(b.cfg.Blocks[blockIdx].Items, item)
}

// seal reverses a block's accumulated items once, turning the forward
// construction order into the reverse (tail-first) storage order the
// rest of the package relies on. Sealing a block twice is a builder
// bug.
func (b *builder) seal(blockIdx int) {
	blk := b.cfg.Blocks[blockIdx]
	if blk.sealed {
		panic("cfg: block sealed twice")
	}
	for i, j := 0, len(blk.Items)-1; i < j; i, j = i+1, j-1 {
		blk.Items[i], blk.Items[j] = blk.Items[j], blk.Items[i]
	}
	blk.sealed = true
}

func (b *builder) addEdge(from, to int, reachable bool) {
	b.cfg.Blocks[from].Succs = append(b.cfg.Blocks[from].Succs, Edge{Block: to, Reachable: reachable})
	b.cfg.Blocks[to].Preds = append(b.cfg.Blocks[to].Preds, Edge{Block: from, Reachable: reachable})
}

func (b *builder) buildStmts(stmts []resolved.Stmt) {
	for _, s := range stmts {
		b.buildStmt(s)
	}
}

func (b *builder) buildStmt(s resolved.Stmt) {
	// A sealed current block ended in a return. Any statement still to
	// come in this source block is unreachable (spec.md §4.5: no
	// statements appear after a return in its block); give it a fresh,
	// predecessor-less block so the invariant holds without losing its
	// items.
	if b.cfg.Blocks[b.current].sealed {
		b.current = b.newBlock()
	}

	switch st := s.(type) {
	case *resolved.DeclStmt:
		if st.VarDecl.Initializer != nil {
			b.flattenExpr(b.current, st.VarDecl.Initializer)
		}
		b.append(b.current, Item{Kind: ItemDecl, Loc: st.Loc, Decl: st.VarDecl})

	case *resolved.Assignment:
		b.flattenExpr(b.current, st.Expr)
		if varDecl, ok := b.arena.Get(st.Variable.Decl).(*resolved.VarDecl); ok {
			b.append(b.current, Item{Kind: ItemAssign, Loc: st.Loc, Decl: varDecl})
		}

	case *resolved.ReturnStmt:
		if st.Expr != nil {
			b.flattenExpr(b.current, st.Expr)
		}
		b.append(b.current, Item{Kind: ItemReturn, Loc: st.Loc, Return: st})
		b.addEdge(b.current, b.cfg.Exit, true)
		b.seal(b.current)
		// The sealed block stays current; buildStmt opens a fresh block
		// only if another statement follows in this source block.

	case *resolved.IfStmt:
		b.buildIf(st)

	case *resolved.WhileStmt:
		b.buildWhile(st)

	default:
		if e, ok := resolved.UnwrapExprStmt(s); ok {
			b.flattenExpr(b.current, e)
		}
	}
}

func (b *builder) buildIf(st *resolved.IfStmt) {
	b.flattenExpr(b.current, st.Cond)

	condVal, condKnown := st.Cond.ConstantValue()
	thenReachable, elseReachable := true, true
	if condKnown {
		if condVal != 0 {
			elseReachable = false
		} else {
			thenReachable = false
		}
	}

	thenBlock := b.newBlock()
	after := b.newBlock()

	b.addEdge(b.current, thenBlock, thenReachable)

	if st.Else != nil {
		elseBlock := b.newBlock()
		b.addEdge(b.current, elseBlock, elseReachable)
		b.seal(b.current)

		b.current = elseBlock
		b.buildStmts(st.Else.Stmts)
		if !b.cfg.Blocks[b.current].sealed {
			b.addEdge(b.current, after, true)
			b.seal(b.current)
		}
	} else {
		b.addEdge(b.current, after, elseReachable)
		b.seal(b.current)
	}

	b.current = thenBlock
	b.buildStmts(st.Then.Stmts)
	if !b.cfg.Blocks[b.current].sealed {
		b.addEdge(b.current, after, true)
		b.seal(b.current)
	}

	b.current = after
}

func (b *builder) buildWhile(st *resolved.WhileStmt) {
	condBlock := b.newBlock()
	b.addEdge(b.current, condBlock, true)
	b.seal(b.current)

	b.current = condBlock
	b.flattenExpr(condBlock, st.Cond)

	condVal, condKnown := st.Cond.ConstantValue()
	bodyReachable, afterReachable := true, true
	if condKnown {
		if condVal != 0 {
			afterReachable = false
		} else {
			bodyReachable = false
		}
	}

	bodyBlock := b.newBlock()
	after := b.newBlock()
	b.addEdge(condBlock, bodyBlock, bodyReachable)
	b.addEdge(condBlock, after, afterReachable)
	b.seal(condBlock)

	b.current = bodyBlock
	b.buildStmts(st.Body.Stmts)
	if !b.cfg.Blocks[b.current].sealed {
		b.addEdge(b.current, condBlock, true)
		b.seal(b.current)
	}

	b.current = after
}

// flattenExpr walks e pre-order, emitting an ItemRef for every
// DeclRefExpr that resolves to a ResolvedVarDecl (parameters and
// function references never participate in the init/use lattice). A
// CallExpr's callee is never walked - only a function may appear
// there, and the resolver already forbids treating a function
// reference as a value.
func (b *builder) flattenExpr(blockIdx int, e resolved.Expr) {
	switch n := e.(type) {
	case *resolved.NumberLiteral, *resolved.StringLiteral:
		// leaves

	case *resolved.DeclRefExpr:
		if varDecl, ok := b.arena.Get(n.Decl).(*resolved.VarDecl); ok {
			b.append(blockIdx, Item{Kind: ItemRef, Loc: n.Location(), Decl: varDecl})
		}

	case *resolved.CallExpr:
		for _, a := range n.Args {
			b.flattenExpr(blockIdx, a)
		}

	case *resolved.GroupingExpr:
		b.flattenExpr(blockIdx, n.Inner)

	case *resolved.BinaryOperator:
		b.flattenExpr(blockIdx, n.LHS)
		b.flattenExpr(blockIdx, n.RHS)

	case *resolved.UnaryOperator:
		b.flattenExpr(blockIdx, n.RHS)
	}
}
