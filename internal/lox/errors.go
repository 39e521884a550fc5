package lox

import (
	"fmt"
	"strings"
)

// ScanError is reported by the scanner when it sees something that can not be
// part of any token.
type ScanError struct {
	line    int
	message string
}

func newScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.line, err.message)
}

// unterminated is true for strings and comments cut off by the end of input.
func (err *ScanError) unterminated() bool {
	return strings.HasPrefix(err.message, "Unterminated")
}

// ParseError is reported by the parser when the tokens do not follow the
// grammar. The token is the one at which the parser gave up.
type ParseError struct {
	token   *Token
	message string
}

func newParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", err.token.Line, err.message)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line,
		err.token.Lexeme,
		err.message,
	)
}

// SemanticError is reported by the resolver for programs that are
// syntactically valid but misuse scoping or control flow.
type SemanticError struct {
	Token   *Token
	Message string
}

func newSemanticError(token *Token, message string) error {
	return &SemanticError{token, message}
}

func (err *SemanticError) Error() string {
	return fmt.Sprintf(
		"[line %d] SemanticError: at '%s' %s",
		err.Token.Line,
		err.Token.Lexeme,
		err.Message,
	)
}

// RuntimeErrorKind classifies the faults the interpreter can raise.
type RuntimeErrorKind int

const (
	UndefinedVariable RuntimeErrorKind = iota
	UndefinedProperty
	TypeMismatch
	DivisionByZero
	NotCallable
	NotAnInstance
	NotAClass
	ArityMismatch
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case UndefinedVariable:
		return "UndefinedVariable"
	case UndefinedProperty:
		return "UndefinedProperty"
	case TypeMismatch:
		return "TypeMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case NotCallable:
		return "NotCallable"
	case NotAnInstance:
		return "NotAnInstance"
	case NotAClass:
		return "NotAClass"
	case ArityMismatch:
		return "ArityMismatch"
	}
	return "Unknown"
}

// RuntimeError aborts the execution of the current batch of statements. It
// carries the token closest to where the fault happened.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Token   *Token
	Message string
}

func newRuntimeError(kind RuntimeErrorKind, token *Token, message string) error {
	return &RuntimeError{kind, token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"[line %d] RuntimeError: at '%s' %s",
		err.Token.Line,
		err.Token.Lexeme,
		err.Message,
	)
}
