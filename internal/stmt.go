package internal

type stmt interface {
	accept(stmtVisitor) R
}

type stmtVisitor interface {
	visitLetStmt(stmt *letStmt) R
	visitReturnStmt(stmt *returnStmt) R
	visitExprStmt(stmt *exprStmt) R
}

type letStmt struct {
	name  string
	value expr
}

func (s *letStmt) accept(visitor stmtVisitor) R {
	return visitor.visitLetStmt(s)
}

type returnStmt struct {
	value expr
}

func (s *returnStmt) accept(visitor stmtVisitor) R {
	return visitor.visitReturnStmt(s)
}

type exprStmt struct {
	expression expr
}

func (s *exprStmt) accept(visitor stmtVisitor) R {
	return visitor.visitExprStmt(s)
}
