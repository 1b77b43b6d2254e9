// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDecomposeCommonNodesSubstitutesAtAndDestination builds a shared
// variable n referenced positively by an AND destination with a single
// parent, and checks that reference gets absorbed as if n were TRUE
// there, leaving the AND with just its other argument.
func TestDecomposeCommonNodesSubstitutesAtAndDestination(t *testing.T) {
	g := NewEmptyGraph()
	n := g.AddVariable("n")
	x := g.AddVariable("x")
	dest := g.AddGate(AND, 0)
	g.Connect(dest, 1, n)
	g.Connect(dest, 1, x)

	other := g.AddGate(OR, 0)
	y := g.AddVariable("y")
	g.Connect(other, 1, n)
	g.Connect(other, 1, y)
	// give other a second parent so it counts as a shared destination and
	// is left alone, isolating the effect to dest.
	p1 := g.AddGate(OR, 0)
	g.Connect(p1, 1, other)
	p2 := g.AddGate(OR, 0)
	g.Connect(p2, 1, other)

	root := g.AddGate(OR, 0)
	g.Connect(root, 1, dest)
	g.Connect(root, 1, p1)
	g.Connect(root, 1, p2)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.DecomposeCommonNodes()

	_, stillThere := dest.VarArgs[n.Index()]
	require.False(t, stillThere, "n's true-valued absorption at the AND destination must drop it from dest's args")
	_, otherStillHasN := other.VarArgs[n.Index()]
	require.True(t, otherStillHasN, "other is a shared destination and must be left alone")
}

// TestDecomposeCommonNodesClonesSharedDestination ensures a destination
// referenced by more than one ancestor is no longer skipped: each
// ancestor gets its own private clone of the destination, independently
// decomposed, and the original destination gate is fully reclaimed once
// every ancestor has been redirected to its own clone.
func TestDecomposeCommonNodesClonesSharedDestination(t *testing.T) {
	g := NewEmptyGraph()
	n := g.AddVariable("n")
	x := g.AddVariable("x")
	dest := g.AddGate(AND, 0)
	g.Connect(dest, 1, n)
	g.Connect(dest, 1, x)

	p1 := g.AddGate(OR, 0)
	g.Connect(p1, 1, dest)
	p2 := g.AddGate(OR, 0)
	g.Connect(p2, 1, dest)

	y := g.AddVariable("y")
	other := g.AddGate(OR, 0)
	g.Connect(other, 1, n)
	g.Connect(other, 1, y)

	root := g.AddGate(OR, 0)
	g.Connect(root, 1, p1)
	g.Connect(root, 1, p2)
	g.Connect(root, 1, other)
	g.Finish(root)

	destIndex := dest.index
	p := NewPreprocessor(g)
	p.DecomposeCommonNodes()

	_, destStillLive := g.Gates[destIndex]
	require.False(t, destStillLive, "a destination shared by two ancestors must be fully decomposed, not skipped")

	for _, parent := range []*Gate{p1, p2} {
		require.False(t, parent.hasArg(destIndex) || parent.hasArg(-destIndex), "parent must no longer reference the original shared destination")
		require.Equal(t, 1, parent.argCount(), "parent should reference exactly one private clone in place of dest")
		var clone *Gate
		for _, c := range parent.GateArgs {
			clone = c
		}
		require.NotNil(t, clone, "parent's one argument must be a gate (dest's clone)")
		require.Equal(t, NULL, clone.Kind, "dest's clone, with n absorbed as TRUE, degenerates to a single-argument passthrough")
		_, hasX := clone.VarArgs[x.Index()]
		require.True(t, hasX, "the clone must still carry dest's other argument x")
	}
}
