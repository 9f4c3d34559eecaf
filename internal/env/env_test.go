package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashmirathi1729/liswat/internal/value"
)

func TestDefineAndLookup(t *testing.T) {
	e := New(nil)
	_, found := e.Lookup("foo")
	assert.False(t, found)

	e.Define("foo", value.Str("bar"))
	v, found := e.Lookup("foo")
	require.True(t, found)
	assert.Equal(t, value.Str("bar"), v)
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Define("foo", value.Str("bar"))
	child := parent.Child()
	v, found := child.Lookup("foo")
	require.True(t, found)
	assert.Equal(t, value.Str("bar"), v)
}

func TestChildShadowsParent(t *testing.T) {
	parent := New(nil)
	parent.Define("foo", value.NewNumber(1))
	child := parent.Child()
	child.Define("foo", value.NewNumber(2))

	v, _ := child.Lookup("foo")
	assert.Equal(t, value.NewNumber(2), v)
	v, _ = parent.Lookup("foo")
	assert.Equal(t, value.NewNumber(1), v)
}

func TestSetVarRequiresExistingBinding(t *testing.T) {
	e := New(nil)
	err := e.SetVar("foo", value.NewNumber(1))
	require.NotNil(t, err)

	e.Define("foo", value.NewNumber(1))
	err = e.SetVar("foo", value.NewNumber(2))
	require.Nil(t, err)
	v, _ := e.Lookup("foo")
	assert.Equal(t, value.NewNumber(2), v)
}

func TestSetVarUpdatesDefiningFrame(t *testing.T) {
	parent := New(nil)
	parent.Define("foo", value.NewNumber(1))
	child := parent.Child()

	err := child.SetVar("foo", value.NewNumber(9))
	require.Nil(t, err)

	v, _ := parent.Lookup("foo")
	assert.Equal(t, value.NewNumber(9), v)
}

func TestNewChildImplementsValueEnvironment(t *testing.T) {
	var _ value.Environment = New(nil)
}
