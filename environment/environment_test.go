/*
File    : wisp/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/value"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number{Value: 10})

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number{Value: 10}, v)
}

func TestGet_UndefinedFails(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestGet_WalksEnclosingChain(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)

	v, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Number{Value: 1}, v)
}

func TestDefine_ShadowsOuterWithoutMutatingIt(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Text{Value: "outer"})
	inner := New(outer)
	inner.Define("x", value.Text{Value: "inner"})

	innerVal, _ := inner.Get("x")
	assert.Equal(t, value.Text{Value: "inner"}, innerVal)

	outerVal, _ := outer.Get("x")
	assert.Equal(t, value.Text{Value: "outer"}, outerVal)
}

func TestAssign_UpdatesOuterBindingFromInnerScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)

	ok := inner.Assign("x", value.Number{Value: 2})
	require.True(t, ok)

	// The assignment mutated the outer frame, not just a local copy.
	v, _ := outer.Get("x")
	assert.Equal(t, value.Number{Value: 2}, v)
}

func TestAssign_UndeclaredNameFails(t *testing.T) {
	env := New(nil)
	ok := env.Assign("never_declared", value.NilValue)
	assert.False(t, ok, "assignment must not create a new binding")
}

func TestDefine_RedefinitionInSameFrameOverwrites(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number{Value: 1})
	env.Define("x", value.Number{Value: 2})

	v, _ := env.Get("x")
	assert.Equal(t, value.Number{Value: 2}, v)
}
