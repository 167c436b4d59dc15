package internal

type lexer struct {
	source  string
	start   int
	current int
	line    int
}

func newLexer(source string) *lexer {
	return &lexer{
		source: source,
		line:   1,
	}
}

// next returns the following token in the source. Once the end of input
// is reached every call returns an EOF token.
func (l *lexer) next() token {
	l.skipWhitespace()
	l.start = l.current

	if l.isAtEnd() {
		return l.emit(tkEOF)
	}

	c := l.advance()
	switch c {
	case '(':
		return l.emit(tkLeftParen)
	case ')':
		return l.emit(tkRightParen)
	case '{':
		return l.emit(tkLeftCurlyBrace)
	case '}':
		return l.emit(tkRightCurlyBrace)
	case ',':
		return l.emit(tkComma)
	case ';':
		return l.emit(tkSemicolon)
	case '-':
		return l.emit(tkMinus)
	case '+':
		return l.emit(tkPlus)
	case '/':
		return l.emit(tkSlash)
	case '*':
		return l.emit(tkStar)
	case '<':
		return l.emit(tkLess)
	case '>':
		return l.emit(tkGreater)
	case '!':
		if l.match('=') {
			return l.emit(tkBangEqual)
		}
		return l.emit(tkBang)
	case '=':
		if l.match('=') {
			return l.emit(tkEqualEqual)
		}
		return l.emit(tkEqual)
	}

	if isDigit(c) {
		return l.number()
	}
	if isAlpha(c) {
		return l.identifier()
	}
	return l.emit(tkIllegal)
}

func (l *lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.source[l.current] {
		case '\n':
			l.line++
		case ' ', '\r', '\t', '\v', '\f':
		default:
			return
		}
		l.current++
	}
}

func (l *lexer) number() token {
	for !l.isAtEnd() && isDigit(l.source[l.current]) {
		l.current++
	}
	return l.emit(tkInt)
}

func (l *lexer) identifier() token {
	for !l.isAtEnd() && isAlpha(l.source[l.current]) {
		l.current++
	}

	tokenType, ok := keywords[l.source[l.start:l.current]]
	if !ok {
		tokenType = tkIdentifier
	}
	return l.emit(tokenType)
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

// match consumes the next byte only when it equals c
func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) emit(tk tokenType) token {
	return token{
		token:  tk,
		lexeme: l.source[l.start:l.current],
		line:   l.line,
	}
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
