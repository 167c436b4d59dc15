package internal

type exec struct {
	state *interpreterState

	env *Env
}

// interpret evaluates the parsed program in the root scope. A return at
// the top level ends the program with its value.
func (e *exec) interpret() Object {
	result := e.evalBlock(e.state.stmts)
	if returnVal, isReturn := result.(*ReturnValue); isReturn {
		result = returnVal.Value
	}
	e.state.logger.WithField("type", result.Type()).Debug("eval")
	return result
}

// evalBlock keeps the value of the last statement, stopping early on a
// return value or an error
func (e *exec) evalBlock(stmts []stmt) Object {
	var result Object = Null
	for _, s := range stmts {
		result = s.accept(e).(Object)
		if isSentinel(result) {
			return result
		}
	}
	return result
}

func (e *exec) executeBlock(stmts []stmt, env *Env) Object {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	return e.evalBlock(stmts)
}

func (e *exec) eval(expr expr) Object {
	return expr.accept(e).(Object)
}

func (e *exec) visitLetStmt(stmt *letStmt) R {
	val := e.eval(stmt.value)
	if isSentinel(val) {
		return val
	}
	e.env.Define(stmt.name, val)
	return val
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	val := e.eval(stmt.value)
	if isSentinel(val) {
		return val
	}
	return &ReturnValue{Value: val}
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	return e.eval(stmt.expression)
}

func (e *exec) visitIdentifierExpr(expr *identifierExpr) R {
	if value, ok := e.env.Get(expr.name); ok {
		return value
	}
	return newError("Identifier not found: %s", expr.name)
}

func (e *exec) visitIntegerExpr(expr *integerExpr) R {
	return Integer(expr.value)
}

func (e *exec) visitBooleanExpr(expr *booleanExpr) R {
	return Boolean(expr.value)
}

func (e *exec) visitPrefixExpr(expr *prefixExpr) R {
	value := e.eval(expr.right)
	if isSentinel(value) {
		return value
	}
	switch expr.operator {
	case opBang:
		return Boolean(!truthy(value))
	case opMinus:
		valueNum, ok := value.(Integer)
		if !ok {
			return newError("No such negative value of %s", value)
		}
		return -valueNum
	}
	return newError("Unsupported prefix operator: %s", expr.operator)
}

func (e *exec) visitInfixExpr(expr *infixExpr) R {
	left := e.eval(expr.left)
	if isSentinel(left) {
		return left
	}
	right := e.eval(expr.right)
	if isSentinel(right) {
		return right
	}
	return applyOperator(expr.operator, left, right)
}

func (e *exec) visitIfExpr(expr *ifExpr) R {
	condition := e.eval(expr.condition)
	if isSentinel(condition) {
		return condition
	}
	if truthy(condition) {
		return e.evalBlock(expr.consequence)
	}
	if expr.alternative != nil {
		return e.evalBlock(expr.alternative)
	}
	return Null
}

func (e *exec) visitFunctionExpr(expr *functionExpr) R {
	return &Function{
		params:  expr.params,
		body:    expr.body,
		closure: e.env,
	}
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := e.eval(expr.callee)
	if isSentinel(callee) {
		return callee
	}

	fn, isFn := callee.(*Function)
	if !isFn {
		return newError("%s is not callable", callee)
	}

	arguments := make([]Object, len(expr.arguments))
	for i, arg := range expr.arguments {
		arguments[i] = e.eval(arg)
		if isSentinel(arguments[i]) {
			return arguments[i]
		}
	}

	return fn.call(e, arguments)
}
