// Package resolved defines the resolved tree Sema produces: every name
// bound to a Handle, every expression carrying a concrete Type and an
// optional constant value. Only ast.KindNumber and ast.KindVoid appear
// here, plus ast.KindString on a StringLiteral passed to println;
// ast.KindCustom never survives resolution.
package resolved

import (
	"ylc/internal/ast"
	"ylc/internal/token"
)

// Decl is the sealed sum of declaration shapes that can be the target
// of a Handle.
type Decl interface {
	declNode()
	Ident() string
	Location() token.Location
}

// Expr is the sealed sum of resolved expression shapes. Every Expr
// carries a Type and an optional constant value, stapled on by the
// constant expression evaluator.
type Expr interface {
	exprNode()
	Location() token.Location
	Type() ast.Type
	ConstantValue() (float64, bool)
	SetConstantValue(v float64, ok bool)
}

// Stmt is the sealed sum of resolved statement shapes.
type Stmt interface {
	stmtNode()
	Location() token.Location
}

// exprBase factors the Type/ConstantValue bookkeeping shared by every
// resolved expression shape.
type exprBase struct {
	Loc      token.Location
	Typ      ast.Type
	constVal float64
	hasConst bool
}

func (b *exprBase) Location() token.Location { return b.Loc }
func (b *exprBase) Type() ast.Type            { return b.Typ }
func (b *exprBase) ConstantValue() (float64, bool) {
	return b.constVal, b.hasConst
}
func (b *exprBase) SetConstantValue(v float64, ok bool) {
	b.constVal, b.hasConst = v, ok
}

// ---------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------

// ParamDecl is a resolved function parameter. Parameters are always
// immutable: an assignment targeting one is rejected by the resolver.
type ParamDecl struct {
	Loc   token.Location
	Name  string
	Type  ast.Type
}

func (d *ParamDecl) declNode()                {}
func (d *ParamDecl) Ident() string            { return d.Name }
func (d *ParamDecl) Location() token.Location { return d.Loc }

// VarDecl is a resolved local variable declaration.
type VarDecl struct {
	Loc         token.Location
	Name        string
	Type        ast.Type
	IsMutable   bool
	Initializer Expr // nil if absent
}

func (d *VarDecl) declNode()                {}
func (d *VarDecl) Ident() string            { return d.Name }
func (d *VarDecl) Location() token.Location { return d.Loc }

// FunctionDecl is a resolved function declaration. Body is nil until
// the second resolution pass (spec.md §4.4) fills it in; ParamHandles
// are the arena handles of the entries in Params, so the CFG and flow
// checker never need to distinguish a parameter Decl from a Handle to
// one.
type FunctionDecl struct {
	Loc          token.Location
	Name         string
	ReturnType   ast.Type
	Params       []*ParamDecl
	ParamHandles []Handle
	Body         *Block
}

func (d *FunctionDecl) declNode()                {}
func (d *FunctionDecl) Ident() string            { return d.Name }
func (d *FunctionDecl) Location() token.Location { return d.Loc }

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

// Block is a resolved statement sequence.
type Block struct {
	Loc   token.Location
	Stmts []Stmt
}

func (s *Block) stmtNode()             {}
func (s *Block) Location() token.Location { return s.Loc }

// IfStmt is a resolved conditional.
type IfStmt struct {
	Loc  token.Location
	Cond Expr
	Then *Block
	Else *Block // nil if absent
}

func (s *IfStmt) stmtNode()             {}
func (s *IfStmt) Location() token.Location { return s.Loc }

// WhileStmt is a resolved loop.
type WhileStmt struct {
	Loc  token.Location
	Cond Expr
	Body *Block
}

func (s *WhileStmt) stmtNode()             {}
func (s *WhileStmt) Location() token.Location { return s.Loc }

// ReturnStmt is a resolved return. Expr is nil for a void return.
type ReturnStmt struct {
	Loc  token.Location
	Expr Expr
}

func (s *ReturnStmt) stmtNode()             {}
func (s *ReturnStmt) Location() token.Location { return s.Loc }

// DeclStmt introduces VarDecl into the enclosing scope. Handle is the
// arena handle minted for VarDecl, so later DeclRefExprs in the same
// function can point back to it.
type DeclStmt struct {
	Loc     token.Location
	VarDecl *VarDecl
	Handle  Handle
}

func (s *DeclStmt) stmtNode()             {}
func (s *DeclStmt) Location() token.Location { return s.Loc }

// Assignment targets a resolved variable reference.
type Assignment struct {
	Loc      token.Location
	Variable *DeclRefExpr
	Expr     Expr
}

func (s *Assignment) stmtNode()             {}
func (s *Assignment) Location() token.Location { return s.Loc }

// exprStmtAdapter lets any resolved Expr double as a Stmt, mirroring
// ast.ExprStmt. The resolver wraps any resolved expression used as a
// statement; it does not restrict them to void calls.
type exprStmtAdapter struct {
	Expr Expr
}

func (s *exprStmtAdapter) stmtNode()             {}
func (s *exprStmtAdapter) Location() token.Location { return s.Expr.Location() }

// WrapExprStmt wraps a resolved Expr as a Stmt.
func WrapExprStmt(e Expr) Stmt { return &exprStmtAdapter{Expr: e} }

// UnwrapExprStmt returns the Expr held by a Stmt built with
// WrapExprStmt, or nil, false if s is not such a wrapper.
func UnwrapExprStmt(s Stmt) (Expr, bool) {
	if a, ok := s.(*exprStmtAdapter); ok {
		return a.Expr, true
	}
	return nil, false
}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// NumberLiteral is a resolved numeric constant; its constant value is
// always known (the literal itself).
type NumberLiteral struct {
	exprBase
}

func (e *NumberLiteral) exprNode() {}

// NewNumberLiteral constructs a NumberLiteral with its constant value
// already stapled on.
func NewNumberLiteral(loc token.Location, v float64) *NumberLiteral {
	n := &NumberLiteral{exprBase{Loc: loc, Typ: ast.NumberType()}}
	n.SetConstantValue(v, true)
	return n
}

// StringLiteral is a resolved string literal. It only ever appears as a
// println argument; see ast.KindString.
type StringLiteral struct {
	exprBase
	Value string
}

func (e *StringLiteral) exprNode() {}

// NewStringLiteral constructs a StringLiteral resolved expression.
func NewStringLiteral(loc token.Location, v string) *StringLiteral {
	return &StringLiteral{exprBase: exprBase{Loc: loc, Typ: ast.StringType()}, Value: v}
}

// DeclRefExpr is a resolved identifier reference: a non-owning Handle
// into the Arena that minted Decl.
type DeclRefExpr struct {
	exprBase
	Decl Handle
}

func (e *DeclRefExpr) exprNode() {}

// NewDeclRefExpr constructs a resolved identifier reference of type typ
// (the referenced declaration's type).
func NewDeclRefExpr(loc token.Location, typ ast.Type, decl Handle) *DeclRefExpr {
	return &DeclRefExpr{exprBase: exprBase{Loc: loc, Typ: typ}, Decl: decl}
}

// CallExpr is a resolved function call.
type CallExpr struct {
	exprBase
	Callee Handle
	Args   []Expr
}

func (e *CallExpr) exprNode() {}

// NewCallExpr constructs a resolved call of type typ (the callee's
// return type).
func NewCallExpr(loc token.Location, typ ast.Type, callee Handle, args []Expr) *CallExpr {
	return &CallExpr{exprBase: exprBase{Loc: loc, Typ: typ}, Callee: callee, Args: args}
}

// GroupingExpr is a resolved parenthesized expression.
type GroupingExpr struct {
	exprBase
	Inner Expr
}

func (e *GroupingExpr) exprNode() {}

// NewGroupingExpr constructs a resolved parenthesized expression,
// inheriting inner's type.
func NewGroupingExpr(loc token.Location, inner Expr) *GroupingExpr {
	return &GroupingExpr{exprBase: exprBase{Loc: loc, Typ: inner.Type()}, Inner: inner}
}

// BinaryOperator is a resolved binary expression. Per spec.md
// invariant 2, LHS.Type().Kind == RHS.Type().Kind == ast.KindNumber
// always holds here.
type BinaryOperator struct {
	exprBase
	Op  string
	LHS Expr
	RHS Expr
}

func (e *BinaryOperator) exprNode() {}

// NewBinaryOperator constructs a resolved binary expression; its type
// is always number (spec.md invariant 2 - the only binary operators
// the grammar admits are numeric/comparison/logical, all number-typed).
func NewBinaryOperator(loc token.Location, op string, lhs, rhs Expr) *BinaryOperator {
	return &BinaryOperator{exprBase: exprBase{Loc: loc, Typ: ast.NumberType()}, Op: op, LHS: lhs, RHS: rhs}
}

// UnaryOperator is a resolved unary expression.
type UnaryOperator struct {
	exprBase
	Op  string
	RHS Expr
}

func (e *UnaryOperator) exprNode() {}

// NewUnaryOperator constructs a resolved unary expression, inheriting
// rhs's type.
func NewUnaryOperator(loc token.Location, op string, rhs Expr) *UnaryOperator {
	return &UnaryOperator{exprBase: exprBase{Loc: loc, Typ: rhs.Type()}, Op: op, RHS: rhs}
}
