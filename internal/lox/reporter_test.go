package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendRuntimeError(t *testing.T) {
	assert := assert.New(t)
	err := newRuntimeError(TypeMismatch, NewToken(MINUS, "-", nil, 1), "Operand must be a number.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := newRuntimeError(TypeMismatch, NewToken(MINUS, "-", nil, 1), "Operand must be a number.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := newRuntimeError(TypeMismatch, NewToken(MINUS, "-", nil, 1), "Operand must be a number.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	r.Reset()
	assert.False(r.HadRuntimeError())
	assert.False(r.HadError())
}

func TestSimpleReporterWrappedRuntimeError(t *testing.T) {
	assert := assert.New(t)
	err := fmt.Errorf("call failed: %w", newRuntimeError(NotCallable, NewToken(RIGHT_PAREN, ")", nil, 3), "Can only call functions and classes."))

	r := NewSimpleReporter(io.Discard)
	r.Report(err)

	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestErrorFormats(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{newScanError(2, "Unexpected character."), "[line 2] Error: Unexpected character."},
		{newParseError(NewToken(SEMICOLON, ";", nil, 4), "Expect expression."), "[line 4] Error at ';': Expect expression."},
		{newParseError(tokEOF(7), "Expect '}' after block."), "[line 7] Error at end: Expect '}' after block."},
		{
			newSemanticError(NewToken(RETURN, "return", nil, 1), "Can't return from top-level code."),
			"[line 1] SemanticError: at 'return' Can't return from top-level code.",
		},
		{
			newRuntimeError(TypeMismatch, NewToken(MINUS, "-", nil, 3), "Operand must be a number."),
			"[line 3] RuntimeError: at '-' Operand must be a number.",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, tc.err.Error())
	}
}
