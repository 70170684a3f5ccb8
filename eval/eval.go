// Package eval is the tree walking core: it takes parsed statements and a
// context (angle unit + shared symbol table) and produces a float64 result.
//
// Known limitation, kept on purpose: function call arguments are bound as
// plain entries in the single shared symbol table, there is no call-stack
// scoping. A recursive or re-entrant call reusing a parameter name clobbers
// the outer binding.
package eval

import (
	"fmt"
	"math"
	"strconv"

	"fortio.org/log"
	"kalc.io/kalc/ast"
	"kalc.io/kalc/prelude"
	"kalc.io/kalc/symbol"
	"kalc.io/kalc/token"
)

// Maximum eval recursion before giving up with a RecursionError. The original
// design had no guard at all and overflowed the goroutine stack instead;
// a function body calling itself burns a handful of levels per call.
const DefaultMaxDepth = 10_000

// Context is the only mutable state threaded through evaluation. It lives
// for one Interpret call; the symbol table it points to is owned by the host
// and persists across calls (that is what makes a repl session incremental).
type Context struct {
	table *symbol.Table
	unit  ast.Unit

	MaxDepth int
	depth    int
}

func NewContext(unit ast.Unit, table *symbol.Table) *Context {
	return &Context{
		table:    table,
		unit:     unit,
		MaxDepth: DefaultMaxDepth,
	}
}

// Unit returns the context's configured default angle unit.
func (c *Context) Unit() ast.Unit {
	return c.unit
}

// Interpret evaluates statements in order. Only the last statement's value is
// surfaced, and only when that statement is a bare expression: ok reports
// whether there is a result. Evaluation stops at the first error, with no
// partial result.
func (c *Context) Interpret(program *ast.Program) (value float64, ok bool, err error) {
	last := len(program.Statements) - 1
	for i, stmt := range program.Statements {
		v, err := c.evalStatement(stmt)
		if err != nil {
			return 0, false, err
		}
		if i == last {
			if _, isExpr := stmt.(*ast.ExpressionStatement); isExpr {
				return v, true, nil
			}
		}
	}
	return 0, false, nil
}

// Declarations register themselves (unevaluated) and yield a neutral 0.
func (c *Context) evalStatement(stmt ast.Node) (float64, error) {
	switch stmt := stmt.(type) {
	case *ast.VarDeclStatement:
		c.table.Insert(stmt.Name, stmt)
		return 0, nil
	case *ast.FuncDeclStatement:
		// Already registered by the parser; re-evaluating is a no-op.
		return 0, nil
	case *ast.ExpressionStatement:
		return c.Eval(stmt.Val)
	default:
		return 0, fmt.Errorf("unknown statement type: %T", stmt)
	}
}

// Eval evaluates one expression node, depth first, left to right.
func (c *Context) Eval(expr ast.Expression) (float64, error) {
	if c.depth >= c.MaxDepth {
		log.LogVf("max depth %d reached", c.MaxDepth)
		return 0, RecursionError{Limit: c.MaxDepth}
	}
	c.depth++
	defer func() { c.depth-- }()

	switch expr := expr.(type) {
	case *ast.BinaryExpression:
		return c.evalBinary(expr)
	case *ast.PrefixExpression:
		return c.evalPrefix(expr)
	case *ast.UnitExpression:
		return c.evalUnit(expr)
	case *ast.Identifier:
		return c.evalIdentifier(expr.Val)
	case *ast.NumberLiteral:
		return evalLiteral(expr.Val)
	case *ast.GroupExpression:
		return c.Eval(expr.Inner)
	case *ast.CallExpression:
		return c.evalCall(expr)
	default:
		return 0, fmt.Errorf("unknown expression type: %T", expr)
	}
}

// Left is fully evaluated before right: either side may fail, and argument
// binding in a nested call mutates the shared table.
func (c *Context) evalBinary(expr *ast.BinaryExpression) (float64, error) {
	left, err := c.Eval(expr.Left)
	if err != nil {
		return 0, err
	}
	right, err := c.Eval(expr.Right)
	if err != nil {
		return 0, err
	}
	switch expr.Token.Type {
	case token.PLUS:
		return left + right, nil
	case token.MINUS:
		return left - right, nil
	case token.STAR:
		return left * right, nil
	case token.SLASH:
		// No division by zero guard: IEEE Inf/NaN semantics apply.
		return left / right, nil
	case token.POWER:
		return math.Pow(left, right), nil
	default:
		// Only the operators above can appear in a parsed binary node.
		return 0, fmt.Errorf("invalid binary operator: %s", expr.Token.Type)
	}
}

func (c *Context) evalPrefix(expr *ast.PrefixExpression) (float64, error) {
	v, err := c.Eval(expr.Right)
	if err != nil {
		return 0, err
	}
	switch expr.Token.Type {
	case token.MINUS:
		return -v, nil
	case token.PLUS:
		return v, nil
	default:
		return 0, fmt.Errorf("invalid unary operator: %s", expr.Token.Type)
	}
}

// A unit suffix asserts "this value is written in unit X". Values always flow
// in the context's default unit, so when X differs from the default the value
// is converted into the default; when they match nothing happens.
func (c *Context) evalUnit(expr *ast.UnitExpression) (float64, error) {
	v, err := c.Eval(expr.Inner)
	if err != nil {
		return 0, err
	}
	unit, ok := ast.UnitFor(expr.Token.Type)
	if !ok {
		return 0, UnitError{Suffix: expr.Token.Literal}
	}
	if unit == c.unit {
		return v, nil
	}
	if unit == ast.Degrees {
		return v * math.Pi / 180, nil // written in degrees, wanted in radians.
	}
	return v * 180 / math.Pi, nil // written in radians, wanted in degrees.
}

func (c *Context) evalIdentifier(name string) (float64, error) {
	// Constants expand to a fresh literal, re-entering literal parsing.
	if text, ok := prelude.Constant(name); ok {
		return evalLiteral(text)
	}
	decl, ok := c.table.Get(name)
	if ok {
		if varDecl, isVar := decl.(*ast.VarDeclStatement); isVar {
			return c.Eval(varDecl.Value)
		}
	}
	return 0, UndefinedVariableError{Name: name}
}

func evalLiteral(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// The lexer is permissive on purpose; this is where bad text surfaces.
		return 0, LiteralError{Text: text}
	}
	return v, nil
}

// Calls resolve builtins first (for arities they support), then user
// declarations under the arity-disambiguated key. A builtin name shadows a
// same-named user function whenever the builtin accepts the given arity.
func (c *Context) evalCall(expr *ast.CallExpression) (float64, error) {
	switch len(expr.Args) {
	case 1:
		x, err := c.Eval(expr.Args[0])
		if err != nil {
			return 0, err
		}
		if r, ok := prelude.CallUnary(expr.Name, x, c.unit); ok {
			return r, nil
		}
	case 2:
		x, err := c.Eval(expr.Args[0])
		if err != nil {
			return 0, err
		}
		y, err := c.Eval(expr.Args[1])
		if err != nil {
			return 0, err
		}
		if r, ok := prelude.CallBinary(expr.Name, x, y, c.unit); ok {
			return r, nil
		}
	}

	decl, ok := c.table.Get(symbol.FuncKey(expr.Name))
	if !ok {
		return 0, UndefinedFunctionError{Name: expr.Name}
	}
	fn, ok := decl.(*ast.FuncDeclStatement)
	if !ok {
		return 0, UndefinedFunctionError{Name: expr.Name}
	}
	if len(fn.Params) != len(expr.Args) {
		return 0, ArgumentCountError{Name: expr.Name, Expected: len(fn.Params), Actual: len(expr.Args)}
	}
	// Bind each argument as a variable declaration for its parameter, with
	// the unevaluated argument expression as body. This writes through to the
	// shared table (see the package comment for the scoping caveat).
	for i, param := range fn.Params {
		bind := &ast.VarDeclStatement{
			Base:  ast.Base{Token: token.Token{Type: token.IDENT, Literal: param}},
			Name:  param,
			Value: expr.Args[i],
		}
		if _, err := c.evalStatement(bind); err != nil {
			return 0, err
		}
	}
	log.Debugf("calling %s(%d args)", expr.Name, len(expr.Args))
	return c.Eval(fn.Body)
}
