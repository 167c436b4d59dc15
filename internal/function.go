package internal

import "github.com/sirupsen/logrus"

// Function is a function value closed over the scope it was defined in.
// The body is shared with the defining expression and read on every call.
type Function struct {
	params  []string
	body    []stmt
	closure *Env
}

func (f *Function) arity() int {
	return len(f.params)
}

func (f *Function) call(exec *exec, arguments []Object) Object {
	if len(arguments) != f.arity() {
		return newError("Wrong number of arguments: expected %d, got %d", f.arity(), len(arguments))
	}

	env := NewEnv(f.closure)
	for i, param := range f.params {
		env.Define(param, arguments[i])
	}

	if exec.state.logger.IsLevelEnabled(logrus.TraceLevel) {
		exec.state.logger.WithFields(logrus.Fields{
			"arity": f.arity(),
			"depth": env.depth(),
		}).Trace("call")
	}

	result := exec.executeBlock(f.body, env)
	if returnVal, isReturn := result.(*ReturnValue); isReturn {
		return returnVal.Value
	}
	return result
}

func (f *Function) Type() string {
	return "FUNCTION"
}

func (f *Function) String() string {
	return stringVisitor{}.visitFunctionExpr(&functionExpr{
		params: f.params,
		body:   f.body,
	}).(string)
}
