package lexer

import (
	"kalc.io/kalc/token"
)

type Lexer struct {
	input      []byte
	pos        int
	lineNumber int
}

func New(input string) *Lexer {
	return NewBytes([]byte(input))
}

// Bytes based full input mode.
func NewBytes(input []byte) *Lexer {
	return &Lexer{input: input, lineNumber: 1}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) LineNumber() int {
	return l.lineNumber
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	ch := l.readChar()
	nextChar := l.peekChar()
	switch ch {
	case '\n':
		l.lineNumber++
		return token.Token{Type: token.SEMICOLON, Literal: ";"}
	case ';':
		return token.Token{Type: token.SEMICOLON, Literal: ";"}
	case '=':
		return token.Token{Type: token.ASSIGN, Literal: "="}
	case '+':
		return token.Token{Type: token.PLUS, Literal: "+"}
	case '-':
		return token.Token{Type: token.MINUS, Literal: "-"}
	case '*':
		return token.Token{Type: token.STAR, Literal: "*"}
	case '/':
		return token.Token{Type: token.SLASH, Literal: "/"}
	case '^':
		return token.Token{Type: token.POWER, Literal: "^"}
	case ',':
		return token.Token{Type: token.COMMA, Literal: ","}
	case '(':
		return token.Token{Type: token.LPAREN, Literal: "("}
	case ')':
		return token.Token{Type: token.RPAREN, Literal: ")"}
	case 0:
		return token.Token{Type: token.EOF, Literal: ""}
	case '.':
		if !isDigit(nextChar) {
			return token.Token{Type: token.ILLEGAL, Literal: string(ch)}
		}
		// number can start with . eg .5
		return token.Token{Type: token.NUMBER, Literal: l.readNumber()}
	default:
		switch {
		case isLetter(ch):
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Literal: ident}
		case isDigit(ch):
			return token.Token{Type: token.NUMBER, Literal: l.readNumber()}
		default:
			return token.Token{Type: token.ILLEGAL, Literal: string(ch)}
		}
	}
}

func isWhiteSpace(ch byte) bool {
	// Newlines are significant (statement separator), not whitespace here.
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		ch := l.peekChar()
		if isWhiteSpace(ch) {
			l.pos++
			continue
		}
		// Line comments run to (but not including) the newline.
		if ch == '/' && l.peekCharAt(1) == '/' {
			for {
				ch = l.peekChar()
				if ch == 0 || ch == '\n' {
					break
				}
				l.pos++
			}
			continue
		}
		return
	}
}

func (l *Lexer) readChar() byte {
	ch := l.peekChar()
	l.pos++
	return ch
}

func (l *Lexer) peekChar() byte {
	return l.peekCharAt(0)
}

func (l *Lexer) peekCharAt(off int) byte {
	if l.pos+off >= len(l.input) {
		return 0
	}
	return l.input[l.pos+off]
}

// Reads digits, dots and a trailing exponent. Deliberately permissive: the
// raw text is kept in the token and actual float parsing (and its error
// reporting) happens at eval time.
func (l *Lexer) readNumber() string {
	start := l.pos - 1 // first digit (or leading dot) is already consumed.
	for isDigit(l.peekChar()) || l.peekChar() == '.' {
		l.pos++
	}
	if c := l.peekChar(); c == 'e' || c == 'E' {
		next := l.peekCharAt(1)
		if isDigit(next) {
			l.pos += 2
		} else if (next == '+' || next == '-') && isDigit(l.peekCharAt(2)) {
			l.pos += 3
		}
		for isDigit(l.peekChar()) {
			l.pos++
		}
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) readIdentifier() string {
	start := l.pos - 1
	for {
		ch := l.peekChar()
		if !isLetter(ch) && !isDigit(ch) {
			break
		}
		l.pos++
	}
	return string(l.input[start:l.pos])
}
