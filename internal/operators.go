package internal

type operator string

const (
	opBang        operator = "!"
	opPlus        operator = "+"
	opMinus       operator = "-"
	opMult        operator = "*"
	opDiv         operator = "/"
	opGreaterThan operator = ">"
	opLessThan    operator = "<"
	opEquals      operator = "=="
	opNotEquals   operator = "!="
)

var tokenOperators = map[tokenType]operator{
	tkBang:       opBang,
	tkPlus:       opPlus,
	tkMinus:      opMinus,
	tkStar:       opMult,
	tkSlash:      opDiv,
	tkGreater:    opGreaterThan,
	tkLess:       opLessThan,
	tkEqualEqual: opEquals,
	tkBangEqual:  opNotEquals,
}

func operatorFor(tk tokenType) (operator, bool) {
	op, ok := tokenOperators[tk]
	return op, ok
}

// operatorApply combines two operands already known to be of the
// table's type. The result is a value or an *Error.
type operatorApply func(left, right Object) Object

// applyOperator looks up op in the table of the left operand's type.
// Operands of different types never combine.
func applyOperator(op operator, left, right Object) Object {
	var table map[operator]operatorApply
	switch left.(type) {
	case Integer:
		if _, ok := right.(Integer); ok {
			table = integerOperations
		}
	case Boolean:
		if _, ok := right.(Boolean); ok {
			table = booleanOperations
		}
	}
	if apply, ok := table[op]; ok {
		return apply(left, right)
	}
	return operatorError(op, left, right)
}

func operatorError(op operator, left, right Object) *Error {
	switch op {
	case opPlus:
		return newError("Cannot add %s to %s", left, right)
	case opMinus:
		return newError("Cannot subtract %s from %s", right, left)
	case opMult:
		return newError("Cannot multiply %s by %s", left, right)
	case opDiv:
		return newError("Cannot divide %s by %s", left, right)
	}
	return newError("Cannot compare %s %s %s", left, op, right)
}
