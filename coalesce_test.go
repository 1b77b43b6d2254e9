// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoalesceFoldsSingleParentSameKindChild(t *testing.T) {
	g := NewEmptyGraph()
	root := g.AddGate(AND, 0)
	inner := g.AddGate(AND, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	c := g.AddVariable("c")
	g.Connect(inner, 1, b)
	g.Connect(inner, 1, c)
	g.Connect(root, 1, a)
	g.Connect(root, 1, inner)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.Coalesce(false)

	require.Equal(t, 3, root.argCount())
	require.True(t, root.hasArg(a.index))
	require.True(t, root.hasArg(b.index))
	require.True(t, root.hasArg(c.index))
}

func TestCoalesceLeavesSharedChildAloneInNonCommonMode(t *testing.T) {
	g := NewEmptyGraph()
	root1 := g.AddGate(AND, 0)
	root2 := g.AddGate(AND, 0)
	shared := g.AddGate(AND, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	g.Connect(shared, 1, a)
	g.Connect(shared, 1, b)
	g.Connect(root1, 1, shared)
	g.Connect(root2, 1, shared)
	top := g.AddGate(OR, 0)
	g.Connect(top, 1, root1)
	g.Connect(top, 1, root2)
	g.Finish(top)

	p := NewPreprocessor(g)
	p.Coalesce(false)

	require.Equal(t, 1, root1.argCount(), "shared gate has >1 parent; non-common coalescence must not fold it in")
}

func TestCoalesceModuleIsNeverFoldedAway(t *testing.T) {
	g := NewEmptyGraph()
	root := g.AddGate(AND, 0)
	inner := g.AddGate(AND, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	g.Connect(inner, 1, a)
	g.Connect(inner, 1, b)
	g.Connect(root, 1, inner)
	g.Finish(root)
	g.turnModule(inner)

	p := NewPreprocessor(g)
	p.Coalesce(true)

	require.Equal(t, 1, root.argCount())
	require.True(t, root.hasArg(inner.index))
}
