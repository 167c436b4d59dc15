package internal

//R generic type
type R interface{}

type expr interface {
	accept(exprVisitor) R
}

type exprVisitor interface {
	visitIdentifierExpr(expr *identifierExpr) R
	visitIntegerExpr(expr *integerExpr) R
	visitBooleanExpr(expr *booleanExpr) R
	visitPrefixExpr(expr *prefixExpr) R
	visitInfixExpr(expr *infixExpr) R
	visitIfExpr(expr *ifExpr) R
	visitFunctionExpr(expr *functionExpr) R
	visitCallExpr(expr *callExpr) R
}

type identifierExpr struct {
	name string
}

func (s *identifierExpr) accept(visitor exprVisitor) R {
	return visitor.visitIdentifierExpr(s)
}

type integerExpr struct {
	value int64
}

func (s *integerExpr) accept(visitor exprVisitor) R {
	return visitor.visitIntegerExpr(s)
}

type booleanExpr struct {
	value bool
}

func (s *booleanExpr) accept(visitor exprVisitor) R {
	return visitor.visitBooleanExpr(s)
}

type prefixExpr struct {
	operator operator
	right    expr
}

func (s *prefixExpr) accept(visitor exprVisitor) R {
	return visitor.visitPrefixExpr(s)
}

type infixExpr struct {
	left     expr
	operator operator
	right    expr
}

func (s *infixExpr) accept(visitor exprVisitor) R {
	return visitor.visitInfixExpr(s)
}

// ifExpr has a nil alternative when no else branch was written
type ifExpr struct {
	condition   expr
	consequence []stmt
	alternative []stmt
}

func (s *ifExpr) accept(visitor exprVisitor) R {
	return visitor.visitIfExpr(s)
}

type functionExpr struct {
	params []string
	body   []stmt
}

func (s *functionExpr) accept(visitor exprVisitor) R {
	return visitor.visitFunctionExpr(s)
}

type callExpr struct {
	callee    expr
	arguments []expr
}

func (s *callExpr) accept(visitor exprVisitor) R {
	return visitor.visitCallExpr(s)
}
