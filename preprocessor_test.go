// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCheckRootGateDetectsConstantRoot checks the early-exit condition
// directly against the shape collapseRoot installs.
func TestCheckRootGateDetectsConstantRoot(t *testing.T) {
	g := NewEmptyGraph()
	a := g.AddVariable("a")
	root := g.AddGate(AND, 0)
	g.Connect(root, 1, a)
	g.Finish(root)

	p := NewPreprocessor(g)
	require.False(t, p.CheckRootGate())

	p.collapseRoot(true)
	require.True(t, p.CheckRootGate())
}

// TestPhaseIAbsorbsInitialConstantLeaf builds AND(a, TRUE) directly (a
// literal Constant argument present from construction, not one arising
// from a mid-run collapse) and checks PhaseI alone removes it.
func TestPhaseIAbsorbsInitialConstantLeaf(t *testing.T) {
	g := NewEmptyGraph()
	a := g.AddVariable("a")
	c := g.AddConstant(true)
	root := g.AddGate(AND, 0)
	g.Connect(root, 1, a)
	g.Connect(root, 1, c)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.PhaseI()

	require.Equal(t, 0, len(g.Root.ConstArgs), "a TRUE arg of an AND gate must be absorbed away entirely")
}

// TestPhaseICollapsesRootToFalseConstant builds AND(a, FALSE) and checks
// the whole graph collapses to a constant-FALSE root, which CheckRootGate
// must then report.
func TestPhaseICollapsesRootToFalseConstant(t *testing.T) {
	g := NewEmptyGraph()
	a := g.AddVariable("a")
	c := g.AddConstant(false)
	root := g.AddGate(AND, 0)
	g.Connect(root, 1, a)
	g.Connect(root, 1, c)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.PhaseI()

	require.True(t, p.CheckRootGate())
	for _, rc := range g.Root.ConstArgs {
		require.Equal(t, false, rc.Value)
	}
}

// TestProcessFullyNormalizesAndCoherentGraph runs Process on a graph
// built with a NAND gate and checks the postcondition phase boundaries
// are meant to guarantee: no NAND/NOR/XOR/NOT/ATLEAST gate survives, and
// the result reports itself Normal and Coherent.
func TestProcessFullyNormalizesAndCoherentGraph(t *testing.T) {
	g := NewEmptyGraph()
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	inner := g.AddGate(NAND, 0)
	g.Connect(inner, 1, a)
	g.Connect(inner, 1, b)
	root := g.AddGate(OR, 0)
	c := g.AddVariable("c")
	g.Connect(root, 1, inner)
	g.Connect(root, 1, c)
	g.Finish(root)

	p := NewPreprocessor(g)
	result := p.Process()

	require.True(t, result.Normal)
	require.True(t, result.Coherent)
	for _, gt := range result.Gates {
		switch gt.Kind {
		case NOT, NOR, NAND, XOR, ATLEAST:
			t.Fatalf("fully processed graph must not contain a %s gate", gt.Kind)
		}
	}
}

// TestWithStatsCollectsOnePerPhase checks the WithStats option makes
// Process accumulate a non-empty, phase-labeled Stats slice.
func TestWithStatsCollectsOnePerPhase(t *testing.T) {
	g := NewEmptyGraph()
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	root := g.AddGate(AND, 0)
	g.Connect(root, 1, a)
	g.Connect(root, 1, b)
	g.Finish(root)

	p := NewPreprocessor(g, WithStats(true))
	p.Process()

	stats := p.Stats()
	require.NotEmpty(t, stats)
	require.Equal(t, "PhaseI", stats[0].Phase)
}
