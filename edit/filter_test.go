package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsmith/confdoc/ir"
)

func TestFilterKeepsMatchedSubtrees(t *testing.T) {
	root := obj(
		"a", obj("b", ir.FromInt(1), "c", ir.FromInt(2)),
		"d", ir.FromInt(3),
	)
	got := Filter(root, "b")
	require.NotNil(t, got)
	assert.True(t, ir.Equal(got, obj("a", obj("b", ir.FromInt(1)))))
}

func TestFilterMatchedKeyKeepsWholeSubtree(t *testing.T) {
	server := obj("host", ir.FromString("x"), "port", ir.FromInt(1))
	root := obj("server", server, "other", ir.FromInt(2))
	got := Filter(root, "server")
	require.NotNil(t, got)
	assert.Same(t, server, got.Get("server"), "matched keys keep their subtree shared")
	assert.Nil(t, got.Get("other"))
}

func TestFilterCaseInsensitive(t *testing.T) {
	root := obj("MaxPlayers", ir.FromInt(20))
	got := Filter(root, "maxplayers")
	require.NotNil(t, got)
	assert.NotNil(t, got.Get("MaxPlayers"))
}

func TestFilterNoMatch(t *testing.T) {
	root := obj("a", obj("b", ir.FromInt(1)))
	assert.Nil(t, Filter(root, "zzz"))
}

func TestFilterEmptyQueryReturnsInput(t *testing.T) {
	root := obj("a", ir.FromInt(1))
	assert.Same(t, root, Filter(root, ""))
}

func TestFilterArrays(t *testing.T) {
	root := obj("rules", ir.FromSlice([]*ir.Node{
		obj("allow", ir.FromBool(true)),
		obj("deny", ir.FromBool(false)),
	}))
	got := Filter(root, "deny")
	require.NotNil(t, got)
	rules := got.Get("rules")
	require.NotNil(t, rules)
	require.Len(t, rules.Values, 1)
	assert.NotNil(t, rules.Values[0].Get("deny"))
}

func TestFilterInputUnchanged(t *testing.T) {
	root := obj("a", obj("b", ir.FromInt(1), "c", ir.FromInt(2)))
	Filter(root, "b")
	assert.Equal(t, []string{"b", "c"}, root.Get("a").Fields)
}
