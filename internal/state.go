package internal

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// Parser errors
var (
	ErrUnexpectedToken      = errors.New("Unexpected token")
	ErrExpectedIdentifier   = errors.New("Expected identifier")
	ErrExpectedExpression   = errors.New("Expected expression")
	ErrIntegerParse         = errors.New("Could not parse integer")
	ErrUnrecognizedOperator = errors.New("Unrecognized operator")
)

// ParseError is a syntax error found while parsing a statement.
// Expected is only meaningful for ErrUnexpectedToken.
type ParseError struct {
	Err      error
	Expected string
	Received string
	Lexeme   string
	Line     int
}

func (e *ParseError) Error() string {
	switch e.Err {
	case ErrUnexpectedToken:
		return fmt.Sprintf("line %d: %v: expected %s, received %s", e.Line, e.Err, e.Expected, e.Received)
	case ErrIntegerParse:
		return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Lexeme)
	}
	return fmt.Sprintf("line %d: %v, received %s", e.Line, e.Err, e.Received)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// interpreterState stores the state of a single pass over some source
type interpreterState struct {
	source string
	errors []*ParseError
	stmts  []stmt

	logger *logrus.Logger
}

func newInterpreterState(source string, logger *logrus.Logger) *interpreterState {
	if logger == nil {
		logger = discardLogger()
	}
	return &interpreterState{
		source: source,
		errors: make([]*ParseError, 0),
		logger: logger,
	}
}

func (s *interpreterState) setError(err error, tk token) *ParseError {
	pe := &ParseError{
		Err:      err,
		Received: tk.token.String(),
		Lexeme:   tk.lexeme,
		Line:     tk.line,
	}
	s.errors = append(s.errors, pe)
	s.logger.WithFields(logrus.Fields{
		"error": err.Error(),
		"line":  tk.line,
		"token": tk.lexeme,
	}).Debug("parse error")
	return pe
}

// Valid returns true if no parse errors were recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// NewLogger builds the logger used by the interpreter
func NewLogger(level string, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)
	return logger, nil
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}
