package internal

import (
	"fmt"
	"strings"
)

// String returns the canonical form of a program: every prefix and infix
// expression is wrapped in parentheses so that precedence is explicit.
func (p *Program) String() string {
	out := ""
	for _, s := range p.stmts {
		out += s.accept(stringVisitor{}).(string)
	}
	return out
}

//PrintTree Prints ast
func (state *interpreterState) PrintTree(p IPrinter) {
	for _, s := range state.stmts {
		p.Println(s.accept(stringVisitor{}).(string))
	}
}

type stringVisitor struct{}

func (v stringVisitor) block(stmts []stmt) string {
	if len(stmts) == 0 {
		return "{}"
	}
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.accept(v).(string)
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (v stringVisitor) visitLetStmt(stmt *letStmt) R {
	return fmt.Sprintf("let %s = %v;", stmt.name, stmt.value.accept(v))
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) R {
	return fmt.Sprintf("return %v;", stmt.value.accept(v))
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitIdentifierExpr(expr *identifierExpr) R {
	return expr.name
}

func (v stringVisitor) visitIntegerExpr(expr *integerExpr) R {
	return fmt.Sprintf("%d", expr.value)
}

func (v stringVisitor) visitBooleanExpr(expr *booleanExpr) R {
	return fmt.Sprintf("%t", expr.value)
}

func (v stringVisitor) visitPrefixExpr(expr *prefixExpr) R {
	return fmt.Sprintf("(%s%v)", expr.operator, expr.right.accept(v))
}

func (v stringVisitor) visitInfixExpr(expr *infixExpr) R {
	return fmt.Sprintf("(%v %s %v)", expr.left.accept(v), expr.operator, expr.right.accept(v))
}

func (v stringVisitor) visitIfExpr(expr *ifExpr) R {
	out := fmt.Sprintf("if %v %s", expr.condition.accept(v), v.block(expr.consequence))
	if expr.alternative != nil {
		out += " else " + v.block(expr.alternative)
	}
	return out
}

func (v stringVisitor) visitFunctionExpr(expr *functionExpr) R {
	return fmt.Sprintf("fn(%s) %s", strings.Join(expr.params, ", "), v.block(expr.body))
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	arguments := make([]string, len(expr.arguments))
	for i, arg := range expr.arguments {
		arguments[i] = arg.accept(v).(string)
	}
	return fmt.Sprintf("%v(%s)", expr.callee.accept(v), strings.Join(arguments, ", "))
}
