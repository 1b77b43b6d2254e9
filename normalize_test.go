// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotifyParentsOfNegativeGatesRewritesNand(t *testing.T) {
	g := NewEmptyGraph()
	root := g.AddGate(AND, 0)
	inner := g.AddGate(NAND, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	g.Connect(inner, 1, a)
	g.Connect(inner, 1, b)
	g.Connect(root, 1, inner)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.notifyParentsOfNegativeGates()

	require.Equal(t, AND, inner.Kind)
	require.True(t, root.hasArg(-inner.index), "the parent's edge to the rewritten gate must now be complemented")
}

func TestNormalizeXorGatePreservesSemantics(t *testing.T) {
	g := NewEmptyGraph()
	root := g.AddGate(XOR, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	g.Connect(root, 1, a)
	g.Connect(root, 1, b)
	g.Finish(root)

	before := snapshotEval(g.Root, []int{a.index, b.index})

	p := NewPreprocessor(g)
	p.normalizeXorGate(root)

	require.Equal(t, OR, root.Kind)
	after := snapshotEval(g.Root, []int{a.index, b.index})
	require.Equal(t, before, after)
}

func TestNormalizeAtleastGateBaseCases(t *testing.T) {
	g := NewEmptyGraph()
	root := g.AddGate(ATLEAST, 1)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	g.Connect(root, 1, a)
	g.Connect(root, 1, b)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.normalizeAtleastGate(root)
	require.Equal(t, OR, root.Kind, "k=1 degenerates to OR")
}

func TestNormalizeAtleastGateGeneralCasePreservesSemantics(t *testing.T) {
	g := NewEmptyGraph()
	root := g.AddGate(ATLEAST, 2)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	c := g.AddVariable("c")
	g.Connect(root, 1, a)
	g.Connect(root, 1, b)
	g.Connect(root, 1, c)
	g.Finish(root)

	before := snapshotEval(g.Root, []int{a.index, b.index, c.index})

	p := NewPreprocessor(g)
	p.normalizeAtleastGate(root)

	require.Equal(t, OR, root.Kind)
	after := snapshotEval(g.Root, []int{a.index, b.index, c.index})
	require.Equal(t, before, after)
}

// snapshotEval records gt's value over every assignment to vars, as a
// bit per assignment index, so a destructive in-place rewrite of the same
// graph can be checked for semantic equivalence against the pre-rewrite
// shape without needing a second, independent graph to compare against.
// (internal/truth's exhaustive comparator serves the same purpose for
// tests outside this package; it can't be imported here without an
// import cycle, since it itself imports this package.)
func snapshotEval(gt *Gate, vars []int) []bool {
	n := len(vars)
	total := 1 << uint(n)
	out := make([]bool, total)
	for mask := 0; mask < total; mask++ {
		assign := make(map[int]bool, n)
		for i, idx := range vars {
			assign[idx] = mask&(1<<uint(i)) != 0
		}
		out[mask] = evalLocal(gt, assign, make(map[int]bool))
	}
	return out
}

func evalLocal(gt *Gate, assign map[int]bool, memo map[int]bool) bool {
	if v, ok := memo[gt.index]; ok {
		return v
	}
	switch gt.State {
	case Unity:
		return true
	case Null:
		return false
	}
	var lits []bool
	for s, c := range gt.GateArgs {
		lits = append(lits, signAdjustLocal(s, evalLocal(c, assign, memo)))
	}
	for s, v := range gt.VarArgs {
		lits = append(lits, signAdjustLocal(s, assign[v.index]))
	}
	for s, c := range gt.ConstArgs {
		lits = append(lits, signAdjustLocal(s, c.Value))
	}
	var result bool
	switch gt.Kind {
	case AND:
		result = true
		for _, l := range lits {
			result = result && l
		}
	case OR:
		for _, l := range lits {
			result = result || l
		}
	case XOR:
		count := 0
		for _, l := range lits {
			if l {
				count++
			}
		}
		result = count%2 == 1
	case ATLEAST:
		count := 0
		for _, l := range lits {
			if l {
				count++
			}
		}
		result = count >= gt.VoteNumber
	case NOT:
		result = len(lits) == 1 && !lits[0]
	case NULL:
		result = len(lits) == 1 && lits[0]
	}
	memo[gt.index] = result
	return result
}

func signAdjustLocal(signed int, v bool) bool {
	if signed < 0 {
		return !v
	}
	return v
}
