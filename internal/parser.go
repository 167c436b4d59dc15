package internal

import (
	"strconv"
)

const (
	precLowest = iota
	precEquality
	precRelational
	precSum
	precProduct
	precPrefix
	precCall
)

var precedences = map[tokenType]int{
	tkEqualEqual: precEquality,
	tkBangEqual:  precEquality,
	tkLess:       precRelational,
	tkGreater:    precRelational,
	tkPlus:       precSum,
	tkMinus:      precSum,
	tkStar:       precProduct,
	tkSlash:      precProduct,
	tkLeftParen:  precCall,
}

// parser turns the token stream into statements. The current token is
// always the last token consumed by the production being parsed.
type parser struct {
	lexer *lexer

	current token
	next    token

	state *interpreterState
}

func newParser(state *interpreterState) *parser {
	p := &parser{
		lexer: newLexer(state.source),
		state: state,
	}
	p.advance()
	p.advance()
	return p
}

func (p *parser) parse() {
	p.state.stmts = p.block(tkEOF)
	p.state.logger.WithField("statements", len(p.state.stmts)).
		WithField("errors", len(p.state.errors)).
		Debug("parse")
}

// block parses statements until the end token (or EOF) is the current token
func (p *parser) block(end tokenType) []stmt {
	stmts := make([]stmt, 0)
	for !p.check(end) && !p.check(tkEOF) {
		st, ok := p.parseStmt()
		if ok {
			stmts = append(stmts, st)
		} else if p.synchronize(end) {
			continue
		}
		p.advance()
	}
	return stmts
}

func (p *parser) parseStmt() (s stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(*ParseError); !isParseErr {
				panic(r)
			}
			s, ok = nil, false
		}
	}()

	switch p.current.token {
	case tkLet:
		s = p.let()
	case tkReturn:
		s = p.returnStmt()
	default:
		s = &exprStmt{expression: p.expression(precLowest)}
	}
	if p.peekIs(tkSemicolon) {
		p.advance()
	}
	return s, true
}

func (p *parser) let() stmt {
	name := p.consumeIdentifier()
	p.consume(tkEqual)
	p.advance()
	return &letStmt{
		name:  name,
		value: p.expression(precLowest),
	}
}

func (p *parser) returnStmt() stmt {
	p.advance()
	return &returnStmt{value: p.expression(precLowest)}
}

func (p *parser) expression(precedence int) expr {
	left := p.prefix()
	for !p.check(tkSemicolon) && precedence < p.peekPrecedence() {
		p.advance()
		if p.check(tkLeftParen) {
			left = p.call(left)
		} else {
			left = p.infix(left)
		}
	}
	return left
}

func (p *parser) prefix() expr {
	switch p.current.token {
	case tkIdentifier:
		return &identifierExpr{name: p.current.lexeme}
	case tkInt:
		value, err := strconv.ParseInt(p.current.lexeme, 10, 64)
		if err != nil {
			p.fail(ErrIntegerParse, p.current)
		}
		return &integerExpr{value: value}
	case tkTrue, tkFalse:
		return &booleanExpr{value: p.check(tkTrue)}
	case tkBang, tkMinus:
		op := p.operator()
		p.advance()
		return &prefixExpr{
			operator: op,
			right:    p.expression(precPrefix),
		}
	case tkLeftParen:
		p.advance()
		expr := p.expression(precLowest)
		p.consume(tkRightParen)
		return expr
	case tkIf:
		return p.ifExpr()
	case tkFn:
		return p.fnExpr()
	}
	p.fail(ErrExpectedExpression, p.current)
	return nil
}

func (p *parser) infix(left expr) expr {
	op := p.operator()
	precedence := p.currentPrecedence()
	p.advance()
	return &infixExpr{
		left:     left,
		operator: op,
		right:    p.expression(precedence),
	}
}

func (p *parser) operator() operator {
	op, ok := operatorFor(p.current.token)
	if !ok {
		p.fail(ErrUnrecognizedOperator, p.current)
	}
	return op
}

func (p *parser) ifExpr() expr {
	p.consume(tkLeftParen)
	p.advance()
	condition := p.expression(precLowest)
	p.consume(tkRightParen)
	p.consume(tkLeftCurlyBrace)

	ifExpr := &ifExpr{
		condition:   condition,
		consequence: p.blockBody(),
	}

	if p.peekIs(tkElse) {
		p.advance()
		p.consume(tkLeftCurlyBrace)
		ifExpr.alternative = p.blockBody()
	}
	return ifExpr
}

func (p *parser) fnExpr() expr {
	p.consume(tkLeftParen)

	params := make([]string, 0)
	if p.peekIs(tkRightParen) {
		p.advance()
	} else {
		params = append(params, p.consumeIdentifier())
		for p.peekIs(tkComma) {
			p.advance()
			params = append(params, p.consumeIdentifier())
		}
		p.consume(tkRightParen)
	}

	p.consume(tkLeftCurlyBrace)
	return &functionExpr{
		params: params,
		body:   p.blockBody(),
	}
}

func (p *parser) call(callee expr) expr {
	arguments := make([]expr, 0)
	if p.peekIs(tkRightParen) {
		p.advance()
	} else {
		p.advance()
		arguments = append(arguments, p.expression(precLowest))
		for p.peekIs(tkComma) {
			p.advance()
			p.advance()
			arguments = append(arguments, p.expression(precLowest))
		}
		p.consume(tkRightParen)
	}
	return &callExpr{
		callee:    callee,
		arguments: arguments,
	}
}

// blockBody parses the statements after an opening curly brace, leaving
// the closing one as the current token
func (p *parser) blockBody() []stmt {
	p.advance()
	stmts := p.block(tkRightCurlyBrace)
	if !p.check(tkRightCurlyBrace) {
		p.failExpected(tkRightCurlyBrace, p.current)
	}
	return stmts
}

func (p *parser) consume(tk tokenType) {
	if !p.peekIs(tk) {
		p.failExpected(tk, p.next)
	}
	p.advance()
}

func (p *parser) consumeIdentifier() string {
	if !p.peekIs(tkIdentifier) {
		p.fail(ErrExpectedIdentifier, p.next)
	}
	p.advance()
	return p.current.lexeme
}

func (p *parser) fail(err error, tk token) {
	panic(p.state.setError(err, tk))
}

func (p *parser) failExpected(expected tokenType, tk token) {
	pe := p.state.setError(ErrUnexpectedToken, tk)
	pe.Expected = expected.String()
	panic(pe)
}

func (p *parser) advance() {
	p.current = p.next
	p.next = p.lexer.next()
}

func (p *parser) check(tk tokenType) bool {
	return p.current.token == tk
}

func (p *parser) peekIs(tk tokenType) bool {
	return p.next.token == tk
}

func (p *parser) currentPrecedence() int {
	return precedences[p.current.token]
}

func (p *parser) peekPrecedence() int {
	return precedences[p.next.token]
}

// synchronize skips the rest of a broken statement, leaving its last token
// as the current one. It returns true when the current token closes the
// enclosing block instead, so it must not be consumed.
func (p *parser) synchronize(end tokenType) bool {
	depth := 0
	for {
		switch p.current.token {
		case tkEOF:
			return true
		case tkLeftCurlyBrace:
			depth++
		case tkRightCurlyBrace:
			if depth > 0 {
				depth--
			} else if end == tkRightCurlyBrace {
				return true
			}
		case tkSemicolon:
			if depth == 0 {
				return false
			}
		}

		if depth == 0 {
			switch p.next.token {
			case tkLet, tkReturn, tkEOF:
				return false
			case tkRightCurlyBrace:
				if end == tkRightCurlyBrace {
					return false
				}
			}
		}
		p.advance()
	}
}
