package calculator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// TokenKind is the type of a Token.
type TokenKind int8

const (
	// TokenNone is the zero TokenKind. It is never produced by Split, and
	// ConvertToRPN ignores tokens of this kind.
	TokenNone TokenKind = iota
	// TokenNum is a decimal number.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a single lexical element of an expression. Tokens carry no
// position information.
type Token struct {
	Kind TokenKind
	// Text is the literal text of a number, or the operator or parenthesis
	// itself.
	Text string
}

// Num creates a number token. The text is not checked until evaluation.
func Num(text string) Token {
	return Token{Kind: TokenNum, Text: text}
}

// Op creates an operator token.
func Op(op rune) Token {
	return Token{Kind: TokenOp, Text: string(op)}
}

// Open creates an open parenthesis token.
func Open() Token {
	return Token{Kind: TokenOpen, Text: "("}
}

// Close creates a close parenthesis token.
func Close() Token {
	return Token{Kind: TokenClose, Text: ")"}
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

// op returns the operator rune of t, or utf8.RuneError if t has none.
func (t Token) op() rune {
	r, sz := utf8.DecodeRuneInString(t.Text)
	if sz != len(t.Text) {
		return utf8.RuneError
	}
	return r
}

// Tokens is a sequence of tokens in either infix or postfix order.
type Tokens []Token

// String formats the token texts separated by single spaces, e.g.
// "3 4 ^ 11 3 2 * - 2 / +".
func (s Tokens) String() string {
	var b strings.Builder
	for i, t := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
