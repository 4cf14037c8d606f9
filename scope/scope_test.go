/*
File    : golox/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/akashmaji946/golox/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_DefineAndGetAtZero(t *testing.T) {
	s := New(nil)
	s.Define("x", value.Number(1))
	v, ok := s.GetAt(0, "x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestScope_GetAtWalksParentChain(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Number(1))
	child := New(global)
	grandchild := New(child)
	v, ok := grandchild.GetAt(2, "x")
	require.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestScope_AssignAtUpdatesAncestorInPlace(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Number(1))
	child := New(global)
	child.AssignAt(1, "x", value.Number(2))
	v, _ := global.GetAt(0, "x")
	assert.Equal(t, value.Number(2), v)
}

func TestScope_ShadowingDoesNotAffectParent(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Number(1))
	child := New(global)
	child.Define("x", value.Number(2))
	childVal, _ := child.GetAt(0, "x")
	globalVal, _ := global.GetAt(0, "x")
	assert.Equal(t, value.Number(2), childVal)
	assert.Equal(t, value.Number(1), globalVal)
}

func TestScope_AssignGlobalFailsForUndeclaredName(t *testing.T) {
	global := New(nil)
	ok := global.AssignGlobal("missing", value.Number(1))
	assert.False(t, ok)
}

func TestScope_AssignGlobalSucceedsAfterDefine(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Number(1))
	ok := global.AssignGlobal("x", value.Number(2))
	require.True(t, ok)
	v, _ := global.GetGlobal("x")
	assert.Equal(t, value.Number(2), v)
}

func TestScope_GlobalFromDeeplyNestedScope(t *testing.T) {
	global := New(nil)
	a := New(global)
	b := New(a)
	assert.Same(t, global, b.Global())
}

func TestScope_LookupFindsNearestBinding(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Number(1))
	child := New(global)
	child.Define("x", value.Number(2))
	v, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Number(2), v)
}
