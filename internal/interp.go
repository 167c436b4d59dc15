package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Program is a parsed source
type Program struct {
	stmts []stmt
}

// Tokenize scans the whole source. The last token is always the only EOF.
func Tokenize(source string) []Token {
	lexer := newLexer(source)
	tokens := make([]Token, 0)
	for {
		tk := lexer.next()
		tokens = append(tokens, tk.export())
		if tk.token == tkEOF {
			return tokens
		}
	}
}

// Parse parses source, collecting every syntax error instead of stopping
// at the first one
func Parse(source string) (*Program, []*ParseError) {
	state := newInterpreterState(source, nil)
	newParser(state).parse()
	return &Program{stmts: state.stmts}, state.errors
}

// Eval parses and evaluates source in env. Nothing is evaluated when the
// source has syntax errors.
func Eval(source string, env *Env, logger *logrus.Logger) (Object, []*ParseError) {
	state := newInterpreterState(source, logger)
	newParser(state).parse()
	if !state.Valid() {
		return nil, state.errors
	}

	e := &exec{
		state: state,
		env:   env,
	}
	return e.interpret(), nil
}

// Interpreter evaluates successive sources in the same root scope
type Interpreter struct {
	globals *Env
	printer IPrinter
	logger  *logrus.Logger
}

// NewInterpreter creates an interpreter with an empty root scope
func NewInterpreter(p IPrinter, logger *logrus.Logger) *Interpreter {
	if logger == nil {
		logger = discardLogger()
	}
	return &Interpreter{
		globals: NewEnv(nil),
		printer: p,
		logger:  logger,
	}
}

// Run evaluates source and prints its value, or prints its parse errors.
// It returns false when the source could not be parsed or evaluated.
func (in *Interpreter) Run(source string) bool {
	result, errs := Eval(source, in.globals, in.logger)
	if len(errs) > 0 {
		for _, err := range errs {
			in.printer.Fprintln(os.Stderr, err)
		}
		return false
	}
	if _, isErr := result.(*Error); isErr {
		in.printer.Fprintln(os.Stderr, result)
		return false
	}
	in.printer.Println(result)
	return true
}

// PrintTokens prints one scanned token per line
func (in *Interpreter) PrintTokens(source string) bool {
	for _, tk := range Tokenize(source) {
		in.printer.Println(tk)
	}
	return true
}

// PrintTree prints the canonical form of each parsed statement
func (in *Interpreter) PrintTree(source string) bool {
	state := newInterpreterState(source, in.logger)
	newParser(state).parse()
	if !state.Valid() {
		for _, err := range state.errors {
			in.printer.Fprintln(os.Stderr, err)
		}
		return false
	}
	state.PrintTree(in.printer)
	return true
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	return NewInterpreter(p, nil).Run(source)
}
