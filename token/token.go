package token

import "fortio.org/log"

type Type uint8

type Token struct {
	Type    Type
	Literal string
}

const (
	ILLEGAL Type = iota
	EOF

	// Identifiers + literals.
	IDENT  // x, f, sin, ...
	NUMBER // 123, 2.5, .5, 1e3

	// Operators.
	ASSIGN
	PLUS
	MINUS
	STAR
	SLASH
	POWER

	// Delimiters. Newlines are normalized to SEMICOLON by the lexer.
	COMMA
	SEMICOLON

	LPAREN
	RPAREN

	// Angle unit suffixes.
	DEG
	RAD
)

//go:generate stringer -type=Type
var _ = EOF.String() // force compile error if go generate is missing.

var keywords = map[string]Type{
	"deg": DEG,
	"rad": RAD,
}

func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		log.Debugf("LookupIdent(%s) found %s", ident, tok.String())
		return tok
	}
	return IDENT
}

// IsUnit tells whether t is one of the angle unit suffix tokens.
func IsUnit(t Type) bool {
	return t == DEG || t == RAD
}
