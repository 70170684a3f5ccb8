package ast

import (
	"strings"

	"kalc.io/kalc/token"
)

type Node interface {
	TokenLiteral() string
	String() string // normalized string representation of the expression/statement.
}

type Expression interface {
	Node
	expressionNode()
}

// Common to all nodes that have a token and avoids repeating the same TokenLiteral() methods.
type Base struct {
	token.Token
}

func (b *Base) TokenLiteral() string {
	return b.Literal
}

func (b *Base) String() string {
	return b.Type.String() + " " + b.Literal
}

type Program struct {
	Statements []Node
}

func (p *Program) String() string {
	if len(p.Statements) == 0 {
		return "<empty>"
	}
	buf := strings.Builder{}
	for i, s := range p.Statements {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(s.String())
	}
	return buf.String()
}

// VarDeclStatement binds a name to an unevaluated expression body (`x = 1 + 2`).
type VarDeclStatement struct {
	Base
	Name  string
	Value Expression
}

func (vs *VarDeclStatement) String() string {
	out := strings.Builder{}
	out.WriteString(vs.Name)
	out.WriteString(" = ")
	if vs.Value != nil {
		out.WriteString(vs.Value.String())
	}
	return out.String()
}

// FuncDeclStatement binds a name to a callable with fixed parameters and a
// single expression body (`f(a, b) = a + b`).
type FuncDeclStatement struct {
	Base
	Name   string
	Params []string
	Body   Expression
}

func (fs *FuncDeclStatement) String() string {
	out := strings.Builder{}
	out.WriteString(fs.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(fs.Params, ", "))
	out.WriteString(") = ")
	if fs.Body != nil {
		out.WriteString(fs.Body.String())
	}
	return out.String()
}

type ExpressionStatement struct {
	Base
	Val Expression
}

func (e *ExpressionStatement) String() string {
	if e.Val == nil {
		return "<nil>"
	}
	return e.Val.String()
}

type Identifier struct {
	Base
	Val string
}

func (i *Identifier) expressionNode() {}

func (i *Identifier) String() string {
	return i.Val
}

// NumberLiteral keeps the raw text; parsing to float happens at eval time so
// a malformed literal is an evaluation error, not a silent zero.
type NumberLiteral struct {
	Base
	Val string
}

func (n *NumberLiteral) expressionNode() {}

func (n *NumberLiteral) String() string {
	return n.Val
}

// BinaryExpression's operator is the token in Base (PLUS, MINUS, STAR, SLASH, POWER).
type BinaryExpression struct {
	Base
	Left  Expression
	Right Expression
}

func (b *BinaryExpression) expressionNode() {}

func (b *BinaryExpression) String() string {
	out := strings.Builder{}
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" ")
	out.WriteString(b.Literal)
	out.WriteString(" ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// PrefixExpression's operator is the token in Base (PLUS or MINUS).
type PrefixExpression struct {
	Base
	Right Expression
}

func (p *PrefixExpression) expressionNode() {}

func (p *PrefixExpression) String() string {
	return "(" + p.Literal + p.Right.String() + ")"
}

// UnitExpression annotates its inner expression with the angle unit suffix
// carried by the token in Base (DEG or RAD).
type UnitExpression struct {
	Base
	Inner Expression
}

func (u *UnitExpression) expressionNode() {}

func (u *UnitExpression) String() string {
	return u.Inner.String() + " " + u.Literal
}

// GroupExpression is a pure grouping marker; precedence is already resolved
// by the parser but the parentheses are kept for faithful re-rendering.
type GroupExpression struct {
	Base
	Inner Expression
}

func (g *GroupExpression) expressionNode() {}

func (g *GroupExpression) String() string {
	return "(" + g.Inner.String() + ")"
}

type CallExpression struct {
	Base
	Name string
	Args []Expression
}

func (c *CallExpression) expressionNode() {}

func (c *CallExpression) String() string {
	out := strings.Builder{}
	out.WriteString(c.Name)
	out.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}
