package internal

import "fmt"

// Object is a runtime value
type Object interface {
	Type() string
	String() string
}

type nullObject struct{}

// Null is the single value of if expressions without a taken branch
var Null Object = nullObject{}

func (nullObject) Type() string {
	return "NULL"
}

func (nullObject) String() string {
	return "null"
}

// ReturnValue wraps the value of a return statement while it unwinds
// enclosing blocks. It never escapes a call or the top level.
type ReturnValue struct {
	Value Object
}

func (r *ReturnValue) Type() string {
	return "RETURN_VALUE"
}

func (r *ReturnValue) String() string {
	return r.Value.String()
}

// Error aborts evaluation and becomes the program result
type Error struct {
	Message string
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func (e *Error) Type() string {
	return "ERROR"
}

func (e *Error) String() string {
	return "Error: " + e.Message
}

// isSentinel reports whether obj stops the evaluation of a block
func isSentinel(obj Object) bool {
	switch obj.(type) {
	case *ReturnValue, *Error:
		return true
	}
	return false
}

func truthy(obj Object) bool {
	switch obj := obj.(type) {
	case nullObject:
		return false
	case Boolean:
		return bool(obj)
	}
	return true
}
