// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestComputeStatsMatchesExpectedSnapshot builds a small fixed graph and
// checks computeStats' output field-by-field, using cmp.Diff so a
// mismatch prints a structural diff rather than a flat "not equal".
func TestComputeStatsMatchesExpectedSnapshot(t *testing.T) {
	g := NewEmptyGraph()
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	sub := g.AddGate(OR, 0)
	g.Connect(sub, 1, a)
	g.Connect(sub, 1, b)
	c := g.AddVariable("c")
	root := g.AddGate(AND, 0)
	g.Connect(root, 1, sub)
	g.Connect(root, 1, c)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.DetectModules()

	got := g.computeStats("PhaseII")
	want := Stats{
		Phase:     "PhaseII",
		Gates:     2,
		Variables: 3,
		Constants: 0,
		Modules:   2, // sub is an exclusive subtree, and the root is unconditionally tagged a module too
		Normal:    g.Normal,
		Coherent:  g.Coherent,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("computeStats mismatch (-want +got):\n%s", diff)
	}
}
