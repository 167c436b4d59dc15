package internal

import "strconv"

type Boolean bool

var booleanOperations = map[operator]operatorApply{
	opEquals: func(left, right Object) Object {
		return Boolean(left.(Boolean) == right.(Boolean))
	},
	opNotEquals: func(left, right Object) Object {
		return Boolean(left.(Boolean) != right.(Boolean))
	},
}

func (b Boolean) Type() string {
	return "BOOLEAN"
}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}
