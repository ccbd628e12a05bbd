package eval_test

import (
	"testing"

	"lambda/eval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentLookupWalksOuterScopes(t *testing.T) {
	root := eval.NewEnvironment(nil)
	root.Define("a", eval.Integer(1))
	mid := eval.NewEnvironment(root)
	mid.Define("b", eval.Boolean(true))
	leaf := eval.NewEnvironment(mid)

	v, err := leaf.Lookup("a")
	require.NoError(t, err)
	assert.Equal(t, eval.Integer(1), v)
	v, err = leaf.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, eval.Boolean(true), v)

	_, err = leaf.Lookup("c")
	require.Error(t, err)
	assert.Equal(t, eval.NameError, eval.KindOf(err))
	assert.Equal(t, "NameError: name 'c' is not defined", err.Error())

	assert.Same(t, mid, leaf.Outer())
	assert.Nil(t, root.Outer())
}

func TestEnvironmentDefineIsLocal(t *testing.T) {
	root := eval.NewEnvironment(nil)
	root.Define("x", eval.Integer(1))
	child := eval.NewEnvironment(root)
	child.Define("x", eval.Integer(2))
	child.Define("y", eval.Integer(3))

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, eval.Integer(2), v)
	v, ok = root.Get("x")
	require.True(t, ok)
	assert.Equal(t, eval.Integer(1), v)
	_, ok = root.Get("y")
	assert.False(t, ok)

	root.Define("x", eval.Boolean(false))
	v, _ = root.Get("x")
	assert.Equal(t, eval.Boolean(false), v)
}

func TestEnvironmentNames(t *testing.T) {
	root := eval.NewEnvironment(nil)
	assert.Empty(t, root.Names())
	root.Define("zeta", eval.Integer(0))
	root.Define("alpha", eval.Integer(0))
	root.Define("mu", eval.Integer(0))
	child := eval.NewEnvironment(root)
	child.Define("local", eval.Integer(0))
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, root.Names())
	assert.Equal(t, []string{"local"}, child.Names())
}
