package lox

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentDefineOverwrites(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(nil)

	env.Define("a", 1.0)
	env.Define("a", "again")

	val, err := env.Get(tokIdent("a"))
	assert.NoError(err)
	assert.Equal("again", val)
	assert.Len(env.values, 1)
}

func TestEnvironmentGetWalksOutward(t *testing.T) {
	assert := assert.New(t)
	global := NewEnvironment(nil)
	global.Define("a", "global")
	global.Define("b", "global")
	local := NewEnvironment(NewEnvironment(global))
	local.Define("a", "local")

	val, err := local.Get(tokIdent("a"))
	assert.NoError(err)
	assert.Equal("local", val)

	val, err = local.Get(tokIdent("b"))
	assert.NoError(err)
	assert.Equal("global", val)

	_, err = local.Get(tokIdent("c"))
	var runtimeErr *RuntimeError
	assert.True(errors.As(err, &runtimeErr))
	assert.Equal(UndefinedVariable, runtimeErr.Kind)
	assert.Equal("[line 1] RuntimeError: at 'c' Undefined variable 'c'.", err.Error())
}

func TestEnvironmentNilIsABinding(t *testing.T) {
	assert := assert.New(t)
	global := NewEnvironment(nil)
	global.Define("a", nil)
	local := NewEnvironment(global)

	val, err := local.Get(tokIdent("a"))
	assert.NoError(err)
	assert.Nil(val)
	assert.NoError(local.Assign(tokIdent("a"), 1.0))
	assert.Equal(1.0, global.values["a"])
}

func TestEnvironmentAssign(t *testing.T) {
	assert := assert.New(t)
	global := NewEnvironment(nil)
	global.Define("a", 1.0)
	local := NewEnvironment(global)

	assert.NoError(local.Assign(tokIdent("a"), 2.0))
	assert.Equal(2.0, global.values["a"])
	_, inLocal := local.values["a"]
	assert.False(inLocal)

	err := local.Assign(tokIdent("b"), 3.0)
	var runtimeErr *RuntimeError
	assert.True(errors.As(err, &runtimeErr))
	assert.Equal(UndefinedVariable, runtimeErr.Kind)
	_, inGlobal := global.values["b"]
	assert.False(inGlobal)
}

func TestEnvironmentAtDistance(t *testing.T) {
	assert := assert.New(t)
	global := NewEnvironment(nil)
	global.Define("a", "global")
	middle := NewEnvironment(global)
	middle.Define("a", "middle")
	inner := NewEnvironment(middle)
	inner.Define("a", "inner")

	assert.Equal("inner", inner.GetAt(0, "a"))
	assert.Equal("middle", inner.GetAt(1, "a"))
	assert.Equal("global", inner.GetAt(2, "a"))

	inner.AssignAt(1, tokIdent("a"), "changed")
	assert.Equal("changed", middle.values["a"])
	assert.Equal("inner", inner.values["a"])
	assert.Equal("global", global.values["a"])
}

func TestEnvironmentAliasing(t *testing.T) {
	assert := assert.New(t)
	shared := NewEnvironment(nil)
	shared.Define("count", 0.0)
	first := NewEnvironment(shared)
	second := NewEnvironment(shared)

	assert.NoError(first.Assign(tokIdent("count"), 1.0))
	val, err := second.Get(tokIdent("count"))
	assert.NoError(err)
	assert.Equal(1.0, val)
}
