package internal

import "fmt"

// tokenType kind of a token
type tokenType int

const (
	tkEOF tokenType = iota - 1
	tkIllegal

	// Literals.
	// *variable*, int
	tkIdentifier
	tkInt

	// Single-character tokens.
	// (, ), {, }, ',', ;, -, +, /, *, <, >
	tkLeftParen
	tkRightParen
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkComma
	tkSemicolon
	tkMinus
	tkPlus
	tkSlash
	tkStar
	tkLess
	tkGreater

	// One or two character tokens.
	// !, !=, =, ==
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual

	// Keywords.
	// let, fn, if, else, return, true, false
	tkLet
	tkFn
	tkIf
	tkElse
	tkReturn
	tkTrue
	tkFalse
)

var keywords = map[string]tokenType{
	"let":    tkLet,
	"fn":     tkFn,
	"if":     tkIf,
	"else":   tkElse,
	"return": tkReturn,
	"true":   tkTrue,
	"false":  tkFalse,
}

var tokenNames = map[tokenType]string{
	tkEOF:             "EOF",
	tkIllegal:         "ILLEGAL",
	tkIdentifier:      "IDENT",
	tkInt:             "INT",
	tkLeftParen:       "(",
	tkRightParen:      ")",
	tkLeftCurlyBrace:  "{",
	tkRightCurlyBrace: "}",
	tkComma:           ",",
	tkSemicolon:       ";",
	tkMinus:           "-",
	tkPlus:            "+",
	tkSlash:           "/",
	tkStar:            "*",
	tkLess:            "<",
	tkGreater:         ">",
	tkBang:            "!",
	tkBangEqual:       "!=",
	tkEqual:           "=",
	tkEqualEqual:      "==",
	tkLet:             "let",
	tkFn:              "fn",
	tkIf:              "if",
	tkElse:            "else",
	tkReturn:          "return",
	tkTrue:            "true",
	tkFalse:           "false",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	token  tokenType
	lexeme string
	line   int
}

// Token is the exported view of a scanned token
type Token struct {
	Kind   string
	Lexeme string
	Line   int
}

func (t token) export() Token {
	return Token{
		Kind:   t.token.String(),
		Lexeme: t.lexeme,
		Line:   t.line,
	}
}

func (t Token) String() string {
	switch t.Kind {
	case "IDENT", "INT", "ILLEGAL":
		return fmt.Sprintf("%s(%s)", t.Kind, t.Lexeme)
	}
	return t.Kind
}
