package internal

import (
	"fmt"
	"io"
	"testing"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return t.Println(fmt.Sprintf(format, a...))
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return t.Println(a...)
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

func checkExpression(t *testing.T, exp string, result ...string) {
	t.Helper()
	tp := &testPrinter{}
	RunSourceWithPrinter(exp, tp)
	any := false
	for _, r := range result {
		if tp.Equals(r) {
			any = true
			break
		}
	}
	if !any {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s",
			exp,
			result,
			tp.printed,
		)
	}
}

func checkErrorMsg(t *testing.T, source string, errorMsg string) {
	t.Helper()
	result := "Error: " + errorMsg

	tp := &testPrinter{}
	if RunSourceWithPrinter(source, tp) {
		t.Errorf("\nSource:\n----\n%s\n----\nshould have failed", source)
	}
	if !tp.Equals(result) {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s\n----\nFound:\n----\n%s----",
			source,
			result,
			tp.printed,
		)
	}
}

func checkStatements(t *testing.T, code string, resultVar string, result string) {
	t.Helper()
	source := code + "\n" + resultVar
	tp := &testPrinter{}
	RunSourceWithPrinter(source, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\t%s should be equal to %s instead of %s",
			code,
			resultVar,
			result,
			tp.printed,
		)
	}
}

func TestExpressions(t *testing.T) {

	// Arithmethic
	{
		checkExpression(t, "5", "5")
		checkExpression(t, "42069", "42069")
		checkExpression(t, "-5", "-5")
		checkExpression(t, "5 + 5 + 5 + 5 - 10", "10")
		checkExpression(t, "2 * 2 * 2 * 2 * 2", "32")
		checkExpression(t, "-50 + 100 + -50", "0")
		checkExpression(t, "5 * 2 + 10", "20")
		checkExpression(t, "5 + 2 * 10", "25")
		checkExpression(t, "20 + 2 * -10", "0")
		checkExpression(t, "50 / 2 * 2 + 10", "60")
		checkExpression(t, "2 * (5 + 10)", "30")
		checkExpression(t, "3 * (3 * 3) + 10", "37")
		checkExpression(t, "(5 + 10 * 2 + 15 / 3) * 2 + -10", "50")
		checkExpression(t, "7 / 2", "3")
		checkExpression(t, "-7 / 2", "-3")
		checkExpression(t, "9223372036854775807 + 1", "-9223372036854775808")
	}

	// Comparison
	{
		checkExpression(t, "true", "true")
		checkExpression(t, "false", "false")
		checkExpression(t, "1 < 2", "true")
		checkExpression(t, "1 > 2", "false")
		checkExpression(t, "1 < 1", "false")
		checkExpression(t, "1 == 1", "true")
		checkExpression(t, "1 != 1", "false")
		checkExpression(t, "1 != 2", "true")
		checkExpression(t, "true == true", "true")
		checkExpression(t, "true != false", "true")
		checkExpression(t, "false == false", "true")
		checkExpression(t, "(1 < 2) == true", "true")
		checkExpression(t, "(1 > 2) == true", "false")
	}

	// Prefix
	{
		checkExpression(t, "!true", "false")
		checkExpression(t, "!false", "true")
		checkExpression(t, "!!true", "true")
		checkExpression(t, "!5", "false")
		checkExpression(t, "!!5", "true")
		checkExpression(t, "!0", "false")
		checkExpression(t, "!if (false) { 1 }", "true")
		checkExpression(t, "--5", "5")
	}

	// Conditionals
	{
		checkExpression(t, "if (true) { 10 }", "10")
		checkExpression(t, "if (false) { 10 }", "null")
		checkExpression(t, "if (1) { 10 }", "10")
		checkExpression(t, "if (0) { 10 } else { 20 }", "10")
		checkExpression(t, "if (1 < 2) { 10 }", "10")
		checkExpression(t, "if (1 > 2) { 10 }", "null")
		checkExpression(t, "if (1 > 2) { 10 } else { 20 }", "20")
		checkExpression(t, "if (1 < 2) { 10 } else { 20 }", "10")
		checkExpression(t, "if (true) { }", "null")
	}

	// Functions
	{
		checkExpression(t, "fn(x) { x + 2; }", "fn(x) { (x + 2) }")
		checkExpression(t, "fn() { }", "fn() {}")
		checkExpression(t, "fn(x) { x; }(5)", "5")
		checkExpression(t, "fn(a, b) { a * b }(6, 7)", "42")
	}
}

func TestStatements(t *testing.T) {

	// Return
	{
		checkExpression(t, "return 10;", "10")
		checkExpression(t, "return 10; 9;", "10")
		checkExpression(t, "return 2 * 5; 9;", "10")
		checkExpression(t, "9; return 2 * 5; 9;", "10")
		checkExpression(t, `
			if (10 > 1) {
				if (10 > 1) {
					return 10;
				}
				return 1;
			}`, "10")
	}

	// Let
	{
		checkStatements(t, "let a = 5;", "a", "5")
		checkStatements(t, "let a = 5 * 5;", "a", "25")
		checkStatements(t, "let a = 5; let b = a;", "b", "5")
		checkStatements(t, "let a = 5; let b = a; let c = a + b + 5;", "c", "15")
		checkStatements(t, "let a = 1; let a = a + 1;", "a", "2")
		checkStatements(t, "if (true) { let inner = 3 }", "inner", "3")
		checkExpression(t, "let a = 5", "5")
	}

	// Calls
	{
		checkStatements(t, "let identity = fn(x) { x; }; let r = identity(5);", "r", "5")
		checkStatements(t, "let identity = fn(x) { return x; }; let r = identity(5);", "r", "5")
		checkStatements(t, "let double = fn(x) { x * 2; }; let r = double(5);", "r", "10")
		checkStatements(t, "let add = fn(x, y) { x + y; }; let r = add(5 + 5, add(5, 5));", "r", "20")
		checkStatements(t, "let f = fn() { return 1; 2 }; let r = f() + 10;", "r", "11")
	}

	// Closures
	{
		checkStatements(t, `
			let newAdder = fn(x) { fn(y) { x + y }; };
			let addTwo = newAdder(2);
			let r = addTwo(3);`, "r", "5")
		checkStatements(t, `
			let counter = fn(n) {
				if (n > 0) { counter(n - 1) } else { 0 }
			};
			let r = counter(50);`, "r", "0")
		checkStatements(t, `
			let fib = fn(n) {
				if (n < 2) { return n; }
				fib(n - 1) + fib(n - 2)
			};
			let r = fib(15);`, "r", "610")
		checkStatements(t, `
			let twice = fn(f, x) { f(f(x)) };
			let inc = fn(x) { x + 1 };
			let r = twice(inc, 5);`, "r", "7")
		checkStatements(t, `
			let x = 10;
			let shadow = fn(x) { x * 2 };
			let r = shadow(3) + x;`, "r", "16")
		checkStatements(t, `
			let x = 1;
			let set = fn() { let x = 99; x };
			set();`, "x", "1")
	}
}

func TestRuntimeErrors(t *testing.T) {
	checkErrorMsg(t, "5 + true;", "Cannot add 5 to true")
	checkErrorMsg(t, "5 + true; 5;", "Cannot add 5 to true")
	checkErrorMsg(t, "-true", "No such negative value of true")
	checkErrorMsg(t, "true + false;", "Cannot add true to false")
	checkErrorMsg(t, "5; true + false; 5", "Cannot add true to false")
	checkErrorMsg(t, "if (10 > 1) { true + false; }", "Cannot add true to false")
	checkErrorMsg(t, `
		if (10 > 1) {
			if (10 > 1) {
				return true + false;
			}
			return 1;
		}`, "Cannot add true to false")
	checkErrorMsg(t, "foobar", "Identifier not found: foobar")
	checkErrorMsg(t, "5 - true", "Cannot subtract true from 5")
	checkErrorMsg(t, "true * 2", "Cannot multiply true by 2")
	checkErrorMsg(t, "4 / false", "Cannot divide 4 by false")
	checkErrorMsg(t, "4 / 0", "Cannot divide 4 by zero")
	checkErrorMsg(t, "1 < true", "Cannot compare 1 < true")
	checkErrorMsg(t, "true > false", "Cannot compare true > false")
	checkErrorMsg(t, "1 == true", "Cannot compare 1 == true")
	checkErrorMsg(t, "5(1)", "5 is not callable")
	checkErrorMsg(t, "let f = fn(x) { x }; f(1, 2)", "Wrong number of arguments: expected 1, got 2")
	checkErrorMsg(t, "let f = fn(x, y) { x }; f(1)", "Wrong number of arguments: expected 2, got 1")
	checkErrorMsg(t, "let a = missing; 5", "Identifier not found: missing")
	checkErrorMsg(t, "let f = fn(x) { x }; f(1 + true, undefinedArg)", "Cannot add 1 to true")
	checkErrorMsg(t, "undefinedFn(1 + true)", "Identifier not found: undefinedFn")
	checkErrorMsg(t, "let f = fn() { -false }; f(); 10", "No such negative value of false")
	checkErrorMsg(t, "if (1 + true) { 10 }", "Cannot add 1 to true")
}

func TestParseErrorsSkipEvaluation(t *testing.T) {
	tp := &testPrinter{}
	if RunSourceWithPrinter("let = 5; 10", tp) {
		t.Error("Source with syntax errors should not run")
	}
	expected := "line 1: Expected identifier, received =\n"
	if tp.printed != expected {
		t.Errorf("Expected %q, found %q", expected, tp.printed)
	}
}

func TestInterpreterKeepsBindings(t *testing.T) {
	tp := &testPrinter{}
	in := NewInterpreter(tp, nil)

	in.Run("let add = fn(a, b) { a + b };")
	tp.Reset()

	in.Run("let x = 40;")
	tp.Reset()

	if !in.Run("add(x, 2)") {
		t.Fatalf("Run failed: %s", tp.printed)
	}
	if !tp.Equals("42") {
		t.Errorf("Expected 42, found %s", tp.printed)
	}

	if in.Run("y") {
		t.Error("Unknown identifier should fail")
	}
	if !tp.Equals("Error: Identifier not found: y") {
		t.Errorf("Unexpected output %s", tp.printed)
	}
}

func TestEvalReturnsObjects(t *testing.T) {
	env := NewEnv(nil)
	result, errs := Eval("let x = 2; x * 21", env, nil)
	if len(errs) != 0 {
		t.Fatalf("Unexpected parse errors %v", errs)
	}
	if result != Integer(42) {
		t.Errorf("Expected 42, found %v", result)
	}
	if x, ok := env.Get("x"); !ok || x != Integer(2) {
		t.Errorf("x should be bound to 2 in the root scope, found %v", x)
	}

	result, _ = Eval("if (false) { 1 }", env, nil)
	if result != Null {
		t.Errorf("Expected null, found %v", result)
	}

	result, _ = Eval("5 + true; 5;", env, nil)
	errObj, ok := result.(*Error)
	if !ok || errObj.Message != "Cannot add 5 to true" {
		t.Errorf("Expected an error value, found %v", result)
	}

	result, _ = Eval("return 3;", env, nil)
	if result != Integer(3) {
		t.Errorf("Top-level return should be unwrapped, found %v", result)
	}

	result, errs = Eval("let = 1;", env, nil)
	if result != nil || len(errs) != 1 {
		t.Errorf("Expected no result and one parse error, found %v %v", result, errs)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		value  Object
		truthy bool
	}{
		{Null, false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Integer(0), true},
		{Integer(-1), true},
		{&Function{}, true},
	}
	for _, c := range cases {
		if truthy(c.value) != c.truthy {
			t.Errorf("truthy(%v) should be %v", c.value, c.truthy)
		}
	}
}
