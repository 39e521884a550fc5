package lox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIncomplete(t *testing.T) {
	testCases := []struct {
		script     string
		incomplete bool
	}{
		{"print 1;", false},
		{"", false},
		{"{", true},
		{"fun f() {", true},
		{"class A {\n  m() {", true},
		{"if (a)", true},
		{"print 1", true},
		{`print "abc`, true},
		{"/* comment", true},
		{"print 1 +", true},
		{"print ;", false},
		{"}", false},
		{"print @;", false},
		{"{ print 1; }", false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.incomplete, IsIncomplete(tc.script), tc.script)
	}
}

func TestRunSkipsLaterStagesOnStaticError(t *testing.T) {
	assert := assert.New(t)

	// Nothing runs when the parser fails, not even the valid statements.
	out, report := runSource("print 1;\nprint ;")
	assert.Empty(out)
	assert.Equal([]string{"[line 2] Error at ';': Expect expression."}, report.messages())

	// Nothing runs when the resolver fails.
	out, report = runSource("print 1;\n{ var a = a; }")
	assert.Empty(out)
	assert.True(report.HadError())
	assert.False(report.HadRuntimeError())

	out, report = runSource("print 1 @;")
	assert.Empty(out)
	assert.Equal([]string{"[line 1] Error: Unexpected character."}, report.messages())
}

func TestRunReusesInterpreterAfterError(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	report := newMockReporter()
	interpreter := NewInterpreter(&out, report, false)

	Run("var a = 1;", interpreter, report)
	Run("print ;", interpreter, report)
	assert.True(report.HadError())

	report.Reset()
	Run("print a;", interpreter, report)
	assert.Equal("1\n", out.String())
	assert.False(report.HadError())
}

func TestRunFailedGlobalInitializerLeavesNoBinding(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	report := newMockReporter()
	interpreter := NewInterpreter(&out, report, false)

	Run("var x = 1 / 0;", interpreter, report)
	assert.Equal([]string{"[line 1] RuntimeError: at '/' Division by zero."}, report.messages())

	report.Reset()
	Run("print x;", interpreter, report)
	assert.Empty(out.String())
	assert.Equal([]string{
		"[line 1] RuntimeError: at '/' Division by zero.",
		"[line 1] RuntimeError: at 'x' Undefined variable 'x'.",
	}, report.messages())

	// An existing global keeps its value when a redeclaration fails.
	Run("var y = 1;", interpreter, report)
	Run("var y = 1 / 0;", interpreter, report)
	Run("print y;", interpreter, report)
	assert.Equal("1\n", out.String())
}
