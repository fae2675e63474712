package ast

import "ylc/internal/token"

// Expr is the sealed sum of expression node shapes.
type Expr interface {
	exprNode()
	Location() token.Location
}

// Stmt is the sealed sum of statement node shapes. Every Expr used as a
// statement also satisfies Stmt (ExprStmt wraps it).
type Stmt interface {
	stmtNode()
	Location() token.Location
}

// ---------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------

// ParamDecl is a single typed function parameter.
type ParamDecl struct {
	Loc   token.Location
	Ident string
	Type  Type
}

// VarDecl is a local variable declaration. At least one of Type (the
// Kind is meaningful only when HasType is true) and Initializer must be
// present, per spec.md §4.4.
type VarDecl struct {
	Loc         token.Location
	Ident       string
	Type        Type
	HasType     bool
	Initializer Expr // nil if absent
	IsMutable   bool
}

// FunctionDecl is a top-level function declaration.
type FunctionDecl struct {
	Loc        token.Location
	Ident      string
	ReturnType Type
	Params     []*ParamDecl
	Body       *Block
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

// Block is a brace-delimited statement sequence; it opens a nested
// lexical scope when resolved.
type Block struct {
	Loc   token.Location
	Stmts []Stmt
}

func (b *Block) stmtNode()             {}
func (b *Block) Location() token.Location { return b.Loc }

// IfStmt is `if (cond) { ... } else { ... }`, the else branch optional.
type IfStmt struct {
	Loc       token.Location
	Cond      Expr
	Then      *Block
	Else      *Block // nil if absent
}

func (s *IfStmt) stmtNode()             {}
func (s *IfStmt) Location() token.Location { return s.Loc }

// WhileStmt is `while (cond) { ... }`.
type WhileStmt struct {
	Loc  token.Location
	Cond Expr
	Body *Block
}

func (s *WhileStmt) stmtNode()             {}
func (s *WhileStmt) Location() token.Location { return s.Loc }

// ReturnStmt is `return [expr];`. Expr is nil for a bare `return;`.
type ReturnStmt struct {
	Loc  token.Location
	Expr Expr // nil if absent
}

func (s *ReturnStmt) stmtNode()             {}
func (s *ReturnStmt) Location() token.Location { return s.Loc }

// DeclStmt wraps a VarDecl used as a statement.
type DeclStmt struct {
	Loc     token.Location
	VarDecl *VarDecl
}

func (s *DeclStmt) stmtNode()             {}
func (s *DeclStmt) Location() token.Location { return s.Loc }

// Assignment is `variable = expr;`. The LHS is always a bare reference,
// never an arbitrary expression.
type Assignment struct {
	Loc      token.Location
	Variable *DeclRefExpr
	Expr     Expr
}

func (s *Assignment) stmtNode()             {}
func (s *Assignment) Location() token.Location { return s.Loc }

// ExprStmt wraps an Expr used in statement position. Any expression is
// accepted here, and Sema does not restrict it to void calls.
type ExprStmt struct {
	Loc  token.Location
	Expr Expr
}

func (s *ExprStmt) stmtNode()             {}
func (s *ExprStmt) Location() token.Location { return s.Loc }

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// NumberLiteral carries the literal's raw text, parsed by Sema.
type NumberLiteral struct {
	Loc   token.Location
	Value string
}

func (e *NumberLiteral) exprNode()              {}
func (e *NumberLiteral) Location() token.Location { return e.Loc }

// StringLiteral is only legal as a `println` argument.
type StringLiteral struct {
	Loc   token.Location
	Value string
}

func (e *StringLiteral) exprNode()              {}
func (e *StringLiteral) Location() token.Location { return e.Loc }

// DeclRefExpr is an identifier reference, resolved against the scope
// stack.
type DeclRefExpr struct {
	Loc   token.Location
	Ident string
}

func (e *DeclRefExpr) exprNode()              {}
func (e *DeclRefExpr) Location() token.Location { return e.Loc }

// CallExpr calls Callee with Args. Callee is always a DeclRefExpr.
type CallExpr struct {
	Loc    token.Location
	Callee *DeclRefExpr
	Args   []Expr
}

func (e *CallExpr) exprNode()              {}
func (e *CallExpr) Location() token.Location { return e.Loc }

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	Loc   token.Location
	Inner Expr
}

func (e *GroupingExpr) exprNode()              {}
func (e *GroupingExpr) Location() token.Location { return e.Loc }

// BinaryOperator is `lhs op rhs`.
type BinaryOperator struct {
	Loc token.Location
	Op  string
	LHS Expr
	RHS Expr
}

func (e *BinaryOperator) exprNode()              {}
func (e *BinaryOperator) Location() token.Location { return e.Loc }

// UnaryOperator is `op rhs`.
type UnaryOperator struct {
	Loc token.Location
	Op  string
	RHS Expr
}

func (e *UnaryOperator) exprNode()              {}
func (e *UnaryOperator) Location() token.Location { return e.Loc }
