package lox

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockReporter struct {
	errors        []error
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func (reporter *mockReporter) messages() []string {
	var msgs []string
	for _, err := range reporter.errors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func tokEOF(line int) *Token {
	return NewToken(EOF, "", nil, line)
}

func tokIdent(name string) *Token {
	return NewToken(IDENTIFIER, name, nil, 1)
}

// runSource runs a whole program through a fresh interpreter and returns what
// it printed.
func runSource(script string) (string, *mockReporter) {
	var out strings.Builder
	report := newMockReporter()
	Run(script, NewInterpreter(&out, report, false), report)
	return out.String(), report
}

func TestStringify(t *testing.T) {
	fn := newLoxFn(NewFunctionStmt(tokIdent("foo"), nil, nil), nil, false)
	class := newLoxClass("Bar", nil, map[string]*loxFn{})
	testCases := []struct {
		val  interface{}
		want string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{12.0, "12"},
		{12.5, "12.5"},
		{-0.25, "-0.25"},
		{4294967296.0, "4294967296"},
		{"", ""},
		{"hello", "hello"},
		{fn, "<fn foo>"},
		{nativeClock, "<native fn>"},
		{class, "Bar"},
		{newLoxInstance(class), "Bar instance"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, stringify(tc.val))
	}
}

func TestIsTruthy(t *testing.T) {
	testCases := []struct {
		val  interface{}
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0.0, true},
		{"", true},
		{nativeClock, true},
		{newLoxInstance(newLoxClass("A", nil, nil)), true},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, isTruthy(tc.val), "isTruthy(%#v)", tc.val)
	}
}

func TestIsEqual(t *testing.T) {
	a := newLoxInstance(newLoxClass("A", nil, nil))
	b := newLoxInstance(newLoxClass("A", nil, nil))
	testCases := []struct {
		lhs, rhs interface{}
		want     bool
	}{
		{nil, nil, true},
		{nil, false, false},
		{false, nil, false},
		{1.0, 1.0, true},
		{1.0, "1", false},
		{"a", "a", true},
		{true, 1.0, false},
		{a, a, true},
		{a, b, false},
		{nativeClock, nativeClock, true},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, isEqual(tc.lhs, tc.rhs), "isEqual(%#v, %#v)", tc.lhs, tc.rhs)
	}
}

func TestFindMethodWalksSuperclassChain(t *testing.T) {
	mA := newLoxFn(NewFunctionStmt(tokIdent("m"), nil, nil), nil, false)
	mB := newLoxFn(NewFunctionStmt(tokIdent("m"), nil, nil), nil, false)
	onlyA := newLoxFn(NewFunctionStmt(tokIdent("onlyA"), nil, nil), nil, false)
	a := newLoxClass("A", nil, map[string]*loxFn{"m": mA, "onlyA": onlyA})
	b := newLoxClass("B", a, map[string]*loxFn{"m": mB})
	c := newLoxClass("C", b, map[string]*loxFn{})

	assert := assert.New(t)
	assert.Same(mB, c.findMethod("m"))
	assert.Same(mA, a.findMethod("m"))
	assert.Same(onlyA, c.findMethod("onlyA"))
	assert.Nil(c.findMethod("missing"))
}

func TestClassArity(t *testing.T) {
	params := []*Token{tokIdent("a"), tokIdent("b")}
	initializer := newLoxFn(NewFunctionStmt(tokIdent("init"), params, nil), nil, true)
	base := newLoxClass("Base", nil, map[string]*loxFn{"init": initializer})
	derived := newLoxClass("Derived", base, map[string]*loxFn{})

	assert := assert.New(t)
	assert.Equal(0, newLoxClass("Empty", nil, nil).arity())
	assert.Equal(2, base.arity())
	assert.Equal(2, derived.arity())
}

func TestBindCreatesFreshEnvironment(t *testing.T) {
	closure := NewEnvironment(nil)
	method := newLoxFn(NewFunctionStmt(tokIdent("m"), nil, nil), closure, false)
	class := newLoxClass("A", nil, map[string]*loxFn{"m": method})
	i1 := newLoxInstance(class)
	i2 := newLoxInstance(class)

	b1 := method.bind(i1)
	b2 := method.bind(i2)

	assert := assert.New(t)
	assert.NotSame(b1, b2)
	assert.Same(closure, b1.closure.enclosing)
	assert.Same(closure, b2.closure.enclosing)
	assert.Same(i1, b1.closure.GetAt(0, "this"))
	assert.Same(i2, b2.closure.GetAt(0, "this"))
	assert.Same(method.decl, b1.decl)
	_, hasThis := closure.values["this"]
	assert.False(hasThis)
}

func TestInstanceGetAndSet(t *testing.T) {
	method := newLoxFn(NewFunctionStmt(tokIdent("m"), nil, nil), NewEnvironment(nil), false)
	instance := newLoxInstance(newLoxClass("A", nil, map[string]*loxFn{"m": method}))

	assert := assert.New(t)
	val, err := instance.get(tokIdent("m"))
	assert.NoError(err)
	bound, ok := val.(*loxFn)
	assert.True(ok)
	assert.Same(instance, bound.closure.GetAt(0, "this"))

	// Each access binds again.
	again, _ := instance.get(tokIdent("m"))
	assert.NotSame(bound, again)

	instance.set(tokIdent("m"), "field")
	val, err = instance.get(tokIdent("m"))
	assert.NoError(err)
	assert.Equal("field", val)

	_, err = instance.get(tokIdent("missing"))
	var runtimeErr *RuntimeError
	assert.True(errors.As(err, &runtimeErr))
	assert.Equal(UndefinedProperty, runtimeErr.Kind)
}
