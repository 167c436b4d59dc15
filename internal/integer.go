package internal

import "strconv"

// Integer is a signed 64-bit integer value. Arithmetic wraps on overflow.
type Integer int64

var integerOperations = map[operator]operatorApply{
	opPlus: func(left, right Object) Object {
		return left.(Integer) + right.(Integer)
	},
	opMinus: func(left, right Object) Object {
		return left.(Integer) - right.(Integer)
	},
	opMult: func(left, right Object) Object {
		return left.(Integer) * right.(Integer)
	},
	opDiv: func(left, right Object) Object {
		n1, n2 := left.(Integer), right.(Integer)
		if n2 == 0 {
			return newError("Cannot divide %s by zero", n1)
		}
		return n1 / n2
	},
	opLessThan: func(left, right Object) Object {
		return Boolean(left.(Integer) < right.(Integer))
	},
	opGreaterThan: func(left, right Object) Object {
		return Boolean(left.(Integer) > right.(Integer))
	},
	opEquals: func(left, right Object) Object {
		return Boolean(left.(Integer) == right.(Integer))
	},
	opNotEquals: func(left, right Object) Object {
		return Boolean(left.(Integer) != right.(Integer))
	},
}

func (n Integer) Type() string {
	return "INTEGER"
}

func (n Integer) String() string {
	return strconv.FormatInt(int64(n), 10)
}
