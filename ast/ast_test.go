package ast_test

import (
	"testing"

	"kalc.io/kalc/ast"
	"kalc.io/kalc/token"
)

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Base: ast.Base{Token: token.Token{Type: token.IDENT, Literal: name}}, Val: name}
}

func num(text string) *ast.NumberLiteral {
	return &ast.NumberLiteral{Base: ast.Base{Token: token.Token{Type: token.NUMBER, Literal: text}}, Val: text}
}

func TestString(t *testing.T) {
	body := &ast.BinaryExpression{
		Base:  ast.Base{Token: token.Token{Type: token.PLUS, Literal: "+"}},
		Left:  ident("a"),
		Right: num("1"),
	}
	program := &ast.Program{
		Statements: []ast.Node{
			&ast.VarDeclStatement{Name: "x", Value: num("2.5")},
			&ast.FuncDeclStatement{Name: "f", Params: []string{"a"}, Body: body},
			&ast.ExpressionStatement{Val: &ast.CallExpression{Name: "f", Args: []ast.Expression{ident("x")}}},
		},
	}
	expected := "x = 2.5\nf(a) = (a + 1)\nf(x)"
	if got := program.String(); got != expected {
		t.Errorf("program.String() got %q, want %q", got, expected)
	}
}

func TestUnitString(t *testing.T) {
	u := &ast.UnitExpression{
		Base:  ast.Base{Token: token.Token{Type: token.DEG, Literal: "deg"}},
		Inner: num("90"),
	}
	if got := u.String(); got != "90 deg" {
		t.Errorf("unit String() got %q", got)
	}
}

func TestUnitFor(t *testing.T) {
	if u, ok := ast.UnitFor(token.DEG); !ok || u != ast.Degrees {
		t.Errorf("UnitFor(DEG) got %v, %v", u, ok)
	}
	if u, ok := ast.UnitFor(token.RAD); !ok || u != ast.Radians {
		t.Errorf("UnitFor(RAD) got %v, %v", u, ok)
	}
	if _, ok := ast.UnitFor(token.PLUS); ok {
		t.Errorf("UnitFor(PLUS) should not resolve")
	}
}

func TestUnitFromString(t *testing.T) {
	for _, s := range []string{"deg", "degrees"} {
		if u, err := ast.UnitFromString(s); err != nil || u != ast.Degrees {
			t.Errorf("UnitFromString(%q) got %v, %v", s, u, err)
		}
	}
	for _, s := range []string{"rad", "radians"} {
		if u, err := ast.UnitFromString(s); err != nil || u != ast.Radians {
			t.Errorf("UnitFromString(%q) got %v, %v", s, u, err)
		}
	}
	if _, err := ast.UnitFromString("grad"); err == nil {
		t.Errorf("UnitFromString(grad) should error")
	}
}
