/*
File    : golox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/golox/cursor"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/value"
)

// maxArgs is the parameter/argument count limit: 255 is the highest
// legal count, so the 256th item is the error.
const maxArgs = 255

// Parser implements a recursive-descent/Pratt grammar. It holds one
// token of lookahead (cur) plus the token already consumed (prev, used
// to report locations relative to what the caller just saw).
//
// The parser returns a structured error on the first failure and stops:
// it does not attempt error recovery or synchronization. That
// single-error contract is implemented with Go's panic/recover: every
// parsing helper that hits a malformed construct panics with a
// *loxerr.Error, and Parse recovers it at the top.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	prev lexer.Token
}

// New creates a Parser over src.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.cur = p.lex.Next()
	return p
}

// parseError is the panic payload used to unwind to Parse's recover.
type parseError struct{ err *loxerr.Error }

func (p *Parser) fail(kind loxerr.Kind, loc cursor.Loc, format string, args ...any) {
	panic(parseError{loxerr.New(loxerr.Syntax, kind, loc, format, args...)})
}

// failUnmatched raises KindUnmatchedDelimiter for an opening delimiter at
// openLoc that was never closed; the hint points at wherever the parser
// was looking when it gave up.
func (p *Parser) failUnmatched(openLoc cursor.Loc, format string, args ...any) {
	panic(parseError{loxerr.NewUnmatchedDelimiter(loxerr.Syntax, openLoc, p.cur.Loc, format, args...)})
}

// Parse consumes the entire token stream and returns the resulting
// Program, or the first syntax error encountered.
func (p *Parser) Parse() (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				prog, err = nil, pe.err
				return
			}
			panic(r)
		}
	}()

	var stmts []Stmt
	for p.cur.Kind != lexer.EOF {
		stmts = append(stmts, p.declaration())
	}
	return &Program{Stmts: stmts}, nil
}

func (p *Parser) advance() lexer.Token {
	p.prev = p.cur
	p.cur = p.lex.Next()
	return p.prev
}

func (p *Parser) check(k lexer.Kind) bool { return p.cur.Kind == k }

func (p *Parser) matchAny(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes cur if it has kind k, else raises Expected at cur's
// location (or UnexpectedEOF if we have run out of input).
func (p *Parser) expect(k lexer.Kind, what string) lexer.Token {
	if p.check(k) {
		return p.advance()
	}
	if p.cur.Kind == lexer.EOF {
		p.fail(loxerr.KindUnexpectedEOF, p.cur.Loc, "expected %s but reached end of input", what)
	}
	p.fail(loxerr.KindExpected, p.cur.Loc, "expected %s but found %s", what, p.cur)
	panic("unreachable")
}

// ---- statements ----

func (p *Parser) declaration() Stmt {
	switch {
	case p.matchAny(lexer.LET):
		return p.varDecl()
	case p.matchAny(lexer.FN):
		return p.funcDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) varDecl() Stmt {
	loc := p.prev.Loc
	name := p.expect(lexer.IDENT, "variable name").Text
	var init Expr
	if p.matchAny(lexer.EQUAL) {
		init = p.expression()
	}
	p.expect(lexer.SEMICOLON, "';' after variable declaration")
	return &VarDeclStmt{Name: name, Init: init, Loc: loc}
}

func (p *Parser) funcDecl() Stmt {
	loc := p.prev.Loc
	name := p.expect(lexer.IDENT, "function name").Text
	p.expect(lexer.LEFT_PAREN, "'(' after function name")
	var params []string
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.fail(loxerr.KindTooManyParams, p.cur.Loc, "function %q takes more than %d parameters", name, maxArgs)
			}
			params = append(params, p.expect(lexer.IDENT, "parameter name").Text)
			if !p.matchAny(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RIGHT_PAREN, "')' after parameters")
	p.expect(lexer.LEFT_BRACE, "'{' before function body")
	body := p.block()
	return &FuncDeclStmt{Name: name, Params: params, Body: body, Loc: loc}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.matchAny(lexer.LEFT_BRACE):
		return p.block()
	case p.matchAny(lexer.IF):
		return p.ifStmt()
	case p.matchAny(lexer.WHILE):
		return p.whileStmt()
	case p.matchAny(lexer.FOR):
		return p.forStmt()
	case p.matchAny(lexer.PRINT):
		return p.printStmt()
	case p.matchAny(lexer.RETURN):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) block() *BlockStmt {
	var stmts []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.check(lexer.EOF) {
		stmts = append(stmts, p.declaration())
	}
	p.expect(lexer.RIGHT_BRACE, "'}' after block")
	return &BlockStmt{Stmts: stmts}
}

func (p *Parser) ifStmt() Stmt {
	p.expect(lexer.LEFT_PAREN, "'(' after 'if'")
	cond := p.expression()
	p.expect(lexer.RIGHT_PAREN, "')' after if condition")
	then := p.statement()
	var elseStmt Stmt
	if p.matchAny(lexer.ELSE) {
		elseStmt = p.statement()
	}
	return &IfStmt{Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) whileStmt() Stmt {
	p.expect(lexer.LEFT_PAREN, "'(' after 'while'")
	cond := p.expression()
	p.expect(lexer.RIGHT_PAREN, "')' after while condition")
	body := p.statement()
	return &WhileStmt{Cond: cond, Body: body}
}

// forStmt desugars `for (I; C; U) B` into `{ I; while (C) { B; U; } }`
// inline, rather than producing a distinct ForStmt node: the evaluator
// never needs to know a `for` loop existed.
func (p *Parser) forStmt() Stmt {
	p.expect(lexer.LEFT_PAREN, "'(' after 'for'")

	var init Stmt
	switch {
	case p.matchAny(lexer.SEMICOLON):
		init = nil
	case p.matchAny(lexer.LET):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond Expr
	if !p.check(lexer.SEMICOLON) {
		cond = p.expression()
	}
	p.expect(lexer.SEMICOLON, "';' after loop condition")

	var update Expr
	if !p.check(lexer.RIGHT_PAREN) {
		update = p.expression()
	}
	p.expect(lexer.RIGHT_PAREN, "')' after for clauses")

	body := p.statement()

	if cond == nil {
		cond = &LiteralExpr{Value: value.Boolean(true)}
	}
	if update != nil {
		if blk, ok := body.(*BlockStmt); ok {
			body = &BlockStmt{Stmts: append(append([]Stmt{}, blk.Stmts...), &ExprStmt{Expr: update})}
		} else {
			body = &BlockStmt{Stmts: []Stmt{body, &ExprStmt{Expr: update}}}
		}
	}

	loop := Stmt(&WhileStmt{Cond: cond, Body: body})
	if init != nil {
		loop = &BlockStmt{Stmts: []Stmt{init, loop}}
	}
	return loop
}

func (p *Parser) printStmt() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON, "';' after value")
	return &PrintStmt{Expr: expr}
}

func (p *Parser) returnStmt() Stmt {
	loc := p.prev.Loc
	var val Expr
	if !p.check(lexer.SEMICOLON) {
		val = p.expression()
	}
	p.expect(lexer.SEMICOLON, "';' after return value")
	return &ReturnStmt{Value: val, Loc: loc}
}

func (p *Parser) exprStmt() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON, "';' after expression")
	return &ExprStmt{Expr: expr}
}

// ---- expressions (precedence ladder: asgn > logic > cmp > term > factor > unary > call > primary) ----

func (p *Parser) expression() Expr { return p.assignment() }

// assignment is right-associative and accepts only a bare identifier as a
// target. Any other left-hand side followed by '=' raises
// InvalidAssignmentTarget at the LHS's location.
func (p *Parser) assignment() Expr {
	lhsLoc := p.cur.Loc
	expr := p.logic()
	if p.matchAny(lexer.EQUAL) {
		rhs := p.assignment()
		if ve, ok := expr.(*VarExpr); ok {
			return &AssignExpr{Ref: ve.Ref, Value: rhs}
		}
		p.fail(loxerr.KindInvalidAssignmentTarget, lhsLoc, "invalid assignment target")
	}
	return expr
}

func (p *Parser) logic() Expr {
	expr := p.comparison()
	for p.check(lexer.AND) || p.check(lexer.OR) {
		op := OpAnd
		if p.cur.Kind == lexer.OR {
			op = OpOr
		}
		p.advance()
		right := p.comparison()
		expr = &LogicalExpr{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for {
		var op BinaryOp
		switch p.cur.Kind {
		case lexer.EQUAL_EQUAL:
			op = OpEq
		case lexer.BANG_EQUAL:
			op = OpNe
		case lexer.GREATER:
			op = OpGt
		case lexer.GREATER_EQUAL:
			op = OpGe
		case lexer.LESS:
			op = OpLt
		case lexer.LESS_EQUAL:
			op = OpLe
		default:
			return expr
		}
		opTok := p.advance()
		right := p.term()
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Loc: opTok.Loc}
	}
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := OpAdd
		if p.cur.Kind == lexer.MINUS {
			op = OpSub
		}
		opTok := p.advance()
		right := p.factor()
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Loc: opTok.Loc}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) {
		op := OpMul
		if p.cur.Kind == lexer.SLASH {
			op = OpDiv
		}
		opTok := p.advance()
		right := p.unary()
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Loc: opTok.Loc}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.check(lexer.BANG) || p.check(lexer.MINUS) {
		op := OpNot
		if p.cur.Kind == lexer.MINUS {
			op = OpNeg
		}
		opTok := p.advance()
		right := p.unary()
		return &UnaryExpr{Op: op, Right: right, Loc: opTok.Loc}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for p.matchAny(lexer.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	loc := p.prev.Loc
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.fail(loxerr.KindTooManyArgs, p.cur.Loc, "call takes more than %d arguments", maxArgs)
			}
			args = append(args, p.expression())
			if !p.matchAny(lexer.COMMA) {
				break
			}
		}
	}
	if !p.check(lexer.RIGHT_PAREN) {
		p.failUnmatched(loc, "unclosed '(' in call")
	}
	p.advance()
	return &CallExpr{Callee: callee, Args: args, Loc: loc}
}

func (p *Parser) primary() Expr {
	switch {
	case p.matchAny(lexer.TRUE):
		return &LiteralExpr{Value: value.Boolean(true)}
	case p.matchAny(lexer.FALSE):
		return &LiteralExpr{Value: value.Boolean(false)}
	case p.matchAny(lexer.NIL):
		return &LiteralExpr{Value: value.Nil{}}
	case p.check(lexer.NUMBER):
		tok := p.advance()
		return &LiteralExpr{Value: value.Number(tok.Number)}
	case p.check(lexer.STRING):
		tok := p.advance()
		return &LiteralExpr{Value: value.String(tok.Text)}
	case p.check(lexer.IDENT):
		tok := p.advance()
		return &VarExpr{Ref: NewVariableRef(tok.Text, tok.Loc)}
	case p.matchAny(lexer.LEFT_PAREN):
		openLoc := p.prev.Loc
		expr := p.expression()
		if !p.check(lexer.RIGHT_PAREN) {
			p.failUnmatched(openLoc, "unclosed '(' in grouping expression")
		}
		p.advance()
		return expr
	case p.cur.Kind == lexer.UNTERMINATED:
		p.fail(loxerr.KindUnexpectedEOF, p.cur.Loc, "unterminated string")
	case p.cur.Kind == lexer.EOF:
		p.fail(loxerr.KindUnexpectedEOF, p.cur.Loc, "unexpected end of input")
	}
	p.fail(loxerr.KindUnexpectedToken, p.cur.Loc, "unexpected token %s", p.cur)
	panic("unreachable")
}
