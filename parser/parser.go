package parser

import (
	"fmt"

	"fortio.org/log"
	"kalc.io/kalc/ast"
	"kalc.io/kalc/lexer"
	"kalc.io/kalc/symbol"
	"kalc.io/kalc/token"
)

type Priority int8

const (
	_ Priority = iota
	LOWEST
	SUM     // +
	PRODUCT // *
	PREFIX  // -x
	POWER   // ^ (right associative)
	UNIT    // 90 deg
	CALL    // sin(x)
)

//go:generate stringer -type=Priority
var _ = CALL.String() // force compile error if go generate is missing.

var precedences = map[token.Type]Priority{
	token.PLUS:   SUM,
	token.MINUS:  SUM,
	token.STAR:   PRODUCT,
	token.SLASH:  PRODUCT,
	token.POWER:  POWER,
	token.DEG:    UNIT,
	token.RAD:    UNIT,
	token.LPAREN: CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l  *lexer.Lexer
	st *symbol.Table

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) {
	p.prefixParseFns[t] = fn
}

func (p *Parser) registerInfix(t token.Type, fn infixParseFn) {
	p.infixParseFns[t] = fn
}

// New creates a parser reading from l. Function declarations are registered
// into st as they are parsed, before any evaluation, so a call can precede
// its function's declaration within the same input only if a previous input
// declared it (repl sessions share one table).
func New(l *lexer.Lexer, st *symbol.Table) *Parser {
	p := &Parser{
		l:      l,
		st:     st,
		errors: []string{},
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.PLUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupExpression)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, t := range []token.Type{token.PLUS, token.MINUS, token.STAR, token.SLASH, token.POWER} {
		p.registerInfix(t, p.parseBinaryExpression)
	}
	p.registerInfix(token.DEG, p.parseUnitExpression)
	p.registerInfix(token.RAD, p.parseUnitExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Node{}

	for p.curToken.Type != token.EOF {
		if p.curToken.Type == token.SEMICOLON {
			p.nextToken() // empty statement / blank line.
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil { // explicit nil check to avoid the typed-nil interface gotcha.
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// A statement is an expression, optionally followed by `= value` which turns
// it into a declaration: `x = ...` for an identifier, `f(a, b) = ...` for a
// call whose arguments are all plain identifiers.
func (p *Parser) parseStatement() ast.Node {
	first := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken() // the '='.
		assign := p.curToken
		p.nextToken()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		stmt := p.makeDeclaration(assign, expr, value)
		p.finishStatement()
		return stmt
	}
	stmt := &ast.ExpressionStatement{Base: ast.Base{Token: first}, Val: expr}
	p.finishStatement()
	return stmt
}

func (p *Parser) finishStatement() {
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

func (p *Parser) makeDeclaration(assign token.Token, target ast.Expression, value ast.Expression) ast.Node {
	switch target := target.(type) {
	case *ast.Identifier:
		return &ast.VarDeclStatement{Base: ast.Base{Token: assign}, Name: target.Val, Value: value}
	case *ast.CallExpression:
		params := make([]string, len(target.Args))
		for i, a := range target.Args {
			ident, ok := a.(*ast.Identifier)
			if !ok {
				p.errorf("function declaration parameter %d of '%s' is not an identifier: %s",
					i+1, target.Name, a.String())
				return nil
			}
			params[i] = ident.Val
		}
		stmt := &ast.FuncDeclStatement{Base: ast.Base{Token: assign}, Name: target.Name, Params: params, Body: value}
		// Functions are registered at parse time; evaluating the declaration
		// again later is a no-op.
		p.st.Insert(symbol.FuncKey(target.Name), stmt)
		return stmt
	default:
		p.errorf("cannot declare '%s': left of = must be a name or a function signature", target.String())
		return nil
	}
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errorf("expected next token to be %s, got %s (%q) instead",
		t, p.peekToken.Type, p.peekToken.Literal)
}

func (p *Parser) peekPrecedence() Priority {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() Priority {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) parseExpression(precedence Priority) ast.Expression {
	log.Debugf("parseExpression: %s precedence %s", p.curToken.Literal, precedence)
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf("unexpected token %s (%q)", p.curToken.Type, p.curToken.Literal)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Base: ast.Base{Token: p.curToken}, Val: p.curToken.Literal}
}

// The literal text is carried as-is; it is parsed to a float at eval time.
func (p *Parser) parseNumberLiteral() ast.Expression {
	return &ast.NumberLiteral{Base: ast.Base{Token: p.curToken}, Val: p.curToken.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Base: ast.Base{Token: p.curToken}}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{Base: ast.Base{Token: p.curToken}, Left: left}
	precedence := p.curPrecedence()
	if p.curTokenIs(token.POWER) {
		precedence-- // right associative: 2^3^2 is 2^(3^2).
	}
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// Postfix unit suffix: consumes no further input, the suffix token is the operator.
func (p *Parser) parseUnitExpression(left ast.Expression) ast.Expression {
	return &ast.UnitExpression{Base: ast.Base{Token: p.curToken}, Inner: left}
}

func (p *Parser) parseGroupExpression() ast.Expression {
	expr := &ast.GroupExpression{Base: ast.Base{Token: p.curToken}}
	p.nextToken()
	expr.Inner = p.parseExpression(LOWEST)
	if expr.Inner == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf("expected a function name before '(', got %s", left.String())
		return nil
	}
	call := &ast.CallExpression{Base: ident.Base, Name: ident.Val}
	call.Args = p.parseCallArguments()
	if call.Args == nil {
		return nil
	}
	return call
}

func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	args = append(args, arg)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg = p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}
