package internal

import "testing"

func TestApplyOperator(t *testing.T) {
	cases := []struct {
		op          operator
		left, right Object
		expected    string
	}{
		{opPlus, Integer(2), Integer(3), "5"},
		{opMinus, Integer(2), Integer(3), "-1"},
		{opMult, Integer(-2), Integer(3), "-6"},
		{opDiv, Integer(7), Integer(-2), "-3"},
		{opDiv, Integer(7), Integer(0), "Error: Cannot divide 7 by zero"},
		{opLessThan, Integer(2), Integer(3), "true"},
		{opGreaterThan, Integer(2), Integer(3), "false"},
		{opEquals, Boolean(true), Boolean(true), "true"},
		{opNotEquals, Boolean(true), Boolean(false), "true"},
		{opLessThan, Boolean(true), Boolean(false), "Error: Cannot compare true < false"},
		{opPlus, Null, Integer(1), "Error: Cannot add null to 1"},
		{opEquals, Null, Null, "Error: Cannot compare null == null"},
	}
	for _, c := range cases {
		result := applyOperator(c.op, c.left, c.right)
		if result.String() != c.expected {
			t.Errorf("%v %s %v should be %s instead of %s", c.left, c.op, c.right, c.expected, result)
		}
	}
}

func TestOperatorFor(t *testing.T) {
	if op, ok := operatorFor(tkStar); !ok || op != opMult {
		t.Errorf("* should map to multiplication, found %v", op)
	}
	if _, ok := operatorFor(tkLeftParen); ok {
		t.Error("( is not an operator")
	}
}
