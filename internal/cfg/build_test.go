package cfg

import (
	"testing"

	"ylc/internal/resolved"
	"ylc/internal/token"
)

func numLit(v float64) *resolved.NumberLiteral {
	return resolved.NewNumberLiteral(token.Location{}, v)
}

func TestBuildStraightLineReturn(t *testing.T) {
	arena := &resolved.Arena{}
	fn := &resolved.FunctionDecl{
		Body: &resolved.Block{Stmts: []resolved.Stmt{
			&resolved.ReturnStmt{Expr: numLit(1)},
		}},
	}

	g := Build(fn, arena)

	if len(g.Blocks) != 2 {
		t.Fatalf("got %d blocks, want 2 (entry, exit)", len(g.Blocks))
	}
	if _, ok := g.FirstExecutedReturn(g.Entry); !ok {
		t.Fatal("expected the entry block's first executed item to be the return")
	}
}

func TestBuildIfElseBranches(t *testing.T) {
	arena := &resolved.Arena{}
	cond := resolved.NewBinaryOperator(token.Location{}, "<", numLit(1), numLit(2))

	fn := &resolved.FunctionDecl{
		Body: &resolved.Block{Stmts: []resolved.Stmt{
			&resolved.IfStmt{
				Cond: cond,
				Then: &resolved.Block{Stmts: []resolved.Stmt{
					&resolved.ReturnStmt{Expr: numLit(1)},
				}},
				Else: &resolved.Block{Stmts: []resolved.Stmt{
					&resolved.ReturnStmt{Expr: numLit(0)},
				}},
			},
		}},
	}

	g := Build(fn, arena)

	entry := g.Blocks[g.Entry]
	if len(entry.Succs) != 2 {
		t.Fatalf("got %d successor edges out of the condition block, want 2", len(entry.Succs))
	}
	for _, e := range entry.Succs {
		if !e.Reachable {
			t.Fatal("expected both if/else edges reachable when the condition isn't constant-folded")
		}
		if _, ok := g.FirstExecutedReturn(e.Block); !ok {
			t.Errorf("expected branch block %d to start with its return", e.Block)
		}
	}
}

func TestBuildConstantFoldedIfMarksDeadBranch(t *testing.T) {
	arena := &resolved.Arena{}
	cond := numLit(1) // always true

	fn := &resolved.FunctionDecl{
		Body: &resolved.Block{Stmts: []resolved.Stmt{
			&resolved.IfStmt{
				Cond: cond,
				Then: &resolved.Block{Stmts: []resolved.Stmt{
					&resolved.ReturnStmt{Expr: numLit(1)},
				}},
				Else: &resolved.Block{Stmts: []resolved.Stmt{
					&resolved.ReturnStmt{Expr: numLit(0)},
				}},
			},
		}},
	}

	g := Build(fn, arena)

	entry := g.Blocks[g.Entry]
	var sawReachable, sawUnreachable bool
	for _, e := range entry.Succs {
		if e.Reachable {
			sawReachable = true
		} else {
			sawUnreachable = true
		}
	}
	if !sawReachable || !sawUnreachable {
		t.Fatal("expected exactly one reachable and one unreachable branch edge")
	}
}

func TestBuildWhileLoopsBack(t *testing.T) {
	arena := &resolved.Arena{}
	vd := &resolved.VarDecl{Name: "i", Type: numLit(0).Type(), IsMutable: true, Initializer: numLit(0)}

	fn := &resolved.FunctionDecl{
		Body: &resolved.Block{Stmts: []resolved.Stmt{
			&resolved.DeclStmt{VarDecl: vd},
			&resolved.WhileStmt{
				Cond: resolved.NewBinaryOperator(token.Location{}, "<", numLit(0), numLit(10)),
				Body: &resolved.Block{},
			},
		}},
	}

	g := Build(fn, arena)

	// Find the condition block: the one with two successor edges, one of
	// which points back to itself from the body block.
	var condBlock = -1
	for i, blk := range g.Blocks {
		if len(blk.Succs) == 2 {
			condBlock = i
		}
	}
	if condBlock == -1 {
		t.Fatal("expected exactly one block with two successor edges (the while condition)")
	}

	bodyBlock := -1
	for _, e := range g.Blocks[condBlock].Succs {
		if e.Block != g.Exit {
			// The successor that isn't the loop's exit edge candidate is
			// either the body or the after-block; the body is the one
			// whose own successor list points back to condBlock.
			for _, back := range g.Blocks[e.Block].Succs {
				if back.Block == condBlock {
					bodyBlock = e.Block
				}
			}
		}
	}
	if bodyBlock == -1 {
		t.Fatal("expected the while body block to have an edge back to the condition block")
	}
}
