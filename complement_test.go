// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPropagateComplementsInvertsSingleParentChild builds
// AND(a, -OR(b,c)) and checks the negative gate reference is pushed down
// into AND(a, AND(-b,-c)): the inner OR becomes an AND and its own
// arguments' signs flip, while the edge into it from root turns positive.
func TestPropagateComplementsInvertsSingleParentChild(t *testing.T) {
	g := NewEmptyGraph()
	inner := g.AddGate(OR, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	c := g.AddVariable("c")
	g.Connect(inner, 1, b)
	g.Connect(inner, 1, c)
	root := g.AddGate(AND, 0)
	g.Connect(root, 1, a)
	g.Connect(root, -1, inner)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.PropagateComplements()

	require.Equal(t, AND, inner.Kind)
	for s := range inner.VarArgs {
		require.Less(t, s, 0, "every argument of the inverted gate must now carry a negative sign")
	}
	found := false
	for s, child := range root.GateArgs {
		if child == inner {
			require.Greater(t, s, 0, "root's reference to the inverted gate must now be positive")
			found = true
		}
	}
	require.True(t, found)
}

// TestPropagateComplementsClonesSharedNegativeTarget ensures a gate
// referenced with both polarities from two different parents is cloned
// rather than inverted in place, which would silently corrupt the
// positively-signed reference.
func TestPropagateComplementsClonesSharedNegativeTarget(t *testing.T) {
	g := NewEmptyGraph()
	shared := g.AddGate(OR, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	g.Connect(shared, 1, a)
	g.Connect(shared, 1, b)

	posUser := g.AddGate(AND, 0)
	c := g.AddVariable("c")
	g.Connect(posUser, 1, shared)
	g.Connect(posUser, 1, c)

	negUser := g.AddGate(AND, 0)
	d := g.AddVariable("d")
	g.Connect(negUser, -1, shared)
	g.Connect(negUser, 1, d)

	root := g.AddGate(OR, 0)
	g.Connect(root, 1, posUser)
	g.Connect(root, 1, negUser)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.PropagateComplements()

	require.Equal(t, OR, shared.Kind, "the positively-referenced original must be left untouched")
	require.Equal(t, 1, len(shared.Parents()), "negUser's edge was redirected to a clone, leaving only posUser's positive reference")

	var negTarget *Gate
	for s, child := range negUser.GateArgs {
		if s > 0 {
			negTarget = child
		}
	}
	require.NotNil(t, negTarget, "negUser's reference to the former negative target must now be positive")
	require.NotSame(t, shared, negTarget, "the inverted target must be a clone, not the shared original")
	require.Equal(t, AND, negTarget.Kind)
}
