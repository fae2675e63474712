package frontend

import (
	"fmt"

	"ylc/internal/ast"
	"ylc/internal/token"
)

// parser is a hand-written recursive-descent parser over the item
// stream produced by the lexer. Parsing is out of Sema's scope (spec.md
// §1): on the first malformed construct it returns an error rather
// than attempting multi-error recovery, unlike the resolver, which
// keeps going to surface every diagnostic it can (spec.md §4.4).
type parser struct {
	items []token.Item
	pos   int
}

// Parse lexes and parses src, returning the top-level function
// declarations in source order.
func Parse(file, src string) ([]*ast.FunctionDecl, error) {
	items, err := Tokenize(file, src)
	if err != nil {
		return nil, err
	}
	p := &parser{items: items}
	return p.parseProgram()
}

func (p *parser) cur() token.Item  { return p.items[p.pos] }
func (p *parser) atEnd() bool      { return p.cur().Kind == token.EOF }
func (p *parser) advance() token.Item {
	it := p.items[p.pos]
	if p.pos < len(p.items)-1 {
		p.pos++
	}
	return it
}

func (p *parser) check(k token.Kind) bool { return p.cur().Kind == k }

func (p *parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(k token.Kind) (token.Item, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	return token.Item{}, fmt.Errorf("%s: expected %s, got %s %q", p.cur().Loc, k, p.cur().Kind, p.cur().Val)
}

func (p *parser) parseProgram() ([]*ast.FunctionDecl, error) {
	var fns []*ast.FunctionDecl
	for !p.atEnd() {
		fn, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

func (p *parser) parseFunctionDecl() (*ast.FunctionDecl, error) {
	kw, err := p.expect(token.Fn)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []*ast.ParamDecl
	if !p.check(token.RParen) {
		for {
			param, err := p.parseParamDecl()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	retType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{
		Loc:        loc(kw),
		Ident:      name.Val,
		ReturnType: retType,
		Params:     params,
		Body:       body,
	}, nil
}

func (p *parser) parseParamDecl() (*ast.ParamDecl, error) {
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.ParamDecl{Loc: loc(name), Ident: name.Val, Type: typ}, nil
}

func (p *parser) parseType() (ast.Type, error) {
	switch {
	case p.check(token.Number):
		p.advance()
		return ast.NumberType(), nil
	case p.check(token.Void):
		p.advance()
		return ast.VoidType(), nil
	case p.check(token.Identifier):
		it := p.advance()
		return ast.CustomType(it.Val), nil
	default:
		return ast.Type{}, fmt.Errorf("%s: expected type, got %s %q", p.cur().Loc, p.cur().Kind, p.cur().Val)
	}
}

func (p *parser) parseBlock() (*ast.Block, error) {
	start, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.check(token.RBrace) {
		if p.atEnd() {
			return nil, fmt.Errorf("%s: unterminated block", loc(start))
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume '}'
	return &ast.Block{Loc: loc(start), Stmts: stmts}, nil
}

func (p *parser) parseStmt() (ast.Stmt, error) {
	switch {
	case p.check(token.Var), p.check(token.Let):
		return p.parseDeclStmt()
	case p.check(token.If):
		return p.parseIfStmt()
	case p.check(token.While):
		return p.parseWhileStmt()
	case p.check(token.Return):
		return p.parseReturnStmt()
	case p.check(token.LBrace):
		block, err := p.parseBlock()
		return block, err
	default:
		return p.parseAssignmentOrExprStmt()
	}
}

func (p *parser) parseDeclStmt() (ast.Stmt, error) {
	kw := p.advance() // 'var' or 'let'
	isMutable := kw.Kind == token.Var
	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDecl{Loc: loc(name), Ident: name.Val, IsMutable: isMutable}
	if p.match(token.Colon) {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		decl.Type = typ
		decl.HasType = true
	}
	if p.match(token.Equal) {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		decl.Initializer = expr
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}
	return &ast.DeclStmt{Loc: loc(name), VarDecl: decl}, nil
}

func (p *parser) parseIfStmt() (ast.Stmt, error) {
	kw := p.advance()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock *ast.Block
	if p.match(token.Else) {
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Loc: loc(kw), Cond: cond, Then: then, Else: elseBlock}, nil
}

func (p *parser) parseWhileStmt() (ast.Stmt, error) {
	kw := p.advance()
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Loc: loc(kw), Cond: cond, Body: body}, nil
}

func (p *parser) parseReturnStmt() (ast.Stmt, error) {
	kw := p.advance()
	var expr ast.Expr
	if !p.check(token.Semi) {
		var err error
		expr, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Loc: loc(kw), Expr: expr}, nil
}

// parseAssignmentOrExprStmt disambiguates `ident = expr;` from a bare
// expression statement by looking one token past a leading identifier.
func (p *parser) parseAssignmentOrExprStmt() (ast.Stmt, error) {
	if p.check(token.Identifier) && p.items[p.pos+1].Kind == token.Equal {
		name := p.advance()
		p.advance() // '='
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
		return &ast.Assignment{
			Loc:      loc(name),
			Variable: &ast.DeclRefExpr{Loc: loc(name), Ident: name.Val},
			Expr:     rhs,
		}, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Loc: expr.Location(), Expr: expr}, nil
}

// Expression grammar, lowest to highest precedence:
//
//	or  := and ('||' and)*
//	and := equality ('&&' equality)*
//	equality := comparison (('=='|'!=') comparison)*
//	comparison := additive (('<'|'>') additive)*
//	additive := multiplicative (('+'|'-') multiplicative)*
//	multiplicative := unary (('*'|'/') unary)*
//	unary := ('!'|'-') unary | primary
//	primary := NUMBER | STRING | IDENT ('(' args ')')? | '(' expr ')'
func (p *parser) parseExpr() (ast.Expr, error) { return p.parseOr() }

func (p *parser) parseOr() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseAnd, map[token.Kind]string{token.PipePipe: "||"})
}

func (p *parser) parseAnd() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseEquality, map[token.Kind]string{token.AmpAmp: "&&"})
}

func (p *parser) parseEquality() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseComparison, map[token.Kind]string{
		token.EqualEqual: "==",
		token.BangEqual:  "!=",
	})
}

func (p *parser) parseComparison() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseAdditive, map[token.Kind]string{
		token.Less:    "<",
		token.Greater: ">",
	})
}

func (p *parser) parseAdditive() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseMultiplicative, map[token.Kind]string{
		token.Plus:  "+",
		token.Minus: "-",
	})
}

func (p *parser) parseMultiplicative() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseUnary, map[token.Kind]string{
		token.Star:  "*",
		token.Slash: "/",
	})
}

func (p *parser) parseBinaryLevel(next func() (ast.Expr, error), ops map[token.Kind]string) (ast.Expr, error) {
	lhs, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.cur().Kind]
		if !ok {
			return lhs, nil
		}
		opLoc := p.advance().Loc
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryOperator{Loc: opLoc, Op: op, LHS: lhs, RHS: rhs}
	}
}

func (p *parser) parseUnary() (ast.Expr, error) {
	if p.check(token.Bang) || p.check(token.Minus) {
		it := p.advance()
		op := "-"
		if it.Kind == token.Bang {
			op = "!"
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperator{Loc: loc(it), Op: op, RHS: rhs}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	switch {
	case p.check(token.NumberLiteral):
		it := p.advance()
		return &ast.NumberLiteral{Loc: loc(it), Value: it.Val}, nil
	case p.check(token.StringLiteral):
		it := p.advance()
		return &ast.StringLiteral{Loc: loc(it), Value: it.Val}, nil
	case p.check(token.LParen):
		lp := p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return &ast.GroupingExpr{Loc: loc(lp), Inner: inner}, nil
	case p.check(token.Identifier):
		it := p.advance()
		ref := &ast.DeclRefExpr{Loc: loc(it), Ident: it.Val}
		if p.check(token.LParen) {
			p.advance()
			var args []ast.Expr
			if !p.check(token.RParen) {
				for {
					arg, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if !p.match(token.Comma) {
						break
					}
				}
			}
			if _, err := p.expect(token.RParen); err != nil {
				return nil, err
			}
			return &ast.CallExpr{Loc: loc(it), Callee: ref, Args: args}, nil
		}
		return ref, nil
	default:
		return nil, fmt.Errorf("%s: expected expression, got %s %q", p.cur().Loc, p.cur().Kind, p.cur().Val)
	}
}

func loc(it token.Item) token.Location { return it.Loc }
