// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// Graph is a Boolean graph: a DAG of Gates rooted at a single parentless
// Root, over leaf Variables and Constants. A Graph is built externally
// (see internal/builder) and then owned exclusively by a Preprocessor for
// the duration of Process (SPEC_FULL.md §5).
type Graph struct {
	Root     *Gate
	RootSign int // +1, or -1 when the root's own complement has been pulled out (a NOT/NOR/NAND root rewritten to its dual, or a NULL root spliced through a negative edge)

	// Coherent is inferred on construction: true iff no negative literals
	// and no non-monotone gate kinds (XOR/NOT/NAND/NOR) occur. PhaseIV sets
	// it once complements are pushed down to the leaves; negative variable
	// literals may remain after that.
	Coherent bool
	// Normal is inferred on construction: true iff only OR/AND/NULL kinds
	// occur. PhaseIII sets it once XOR and ATLEAST gates have been
	// decomposed.
	Normal bool

	Gates     map[int]*Gate
	Variables map[int]*Variable
	Constants map[int]*Constant

	// worklists of weak references; an entry whose referent has already
	// been detached from the graph is silently skipped when drained.
	constGates []*Gate
	nullGates  []*Gate

	nextIndex int
}

// NewGraph wraps root as the root gate of a fresh Graph, inferring the
// Coherent and Normal flags from its structure. Constant leaves reachable
// from root are registered in Constants, and NULL-kind gates are queued on
// the null-gate worklist; no gate is queued on the constant worklist here.
func NewGraph(root *Gate) *Graph {
	g := &Graph{
		Root:      root,
		RootSign:  1,
		Gates:     make(map[int]*Gate),
		Variables: make(map[int]*Variable),
		Constants: make(map[int]*Constant),
	}
	g.index(root, make(map[int]bool))
	g.Coherent = g.computeCoherent()
	g.Normal = g.computeNormal()
	return g
}

// index walks the graph reachable from n and registers every node by
// index in the appropriate table, seeding the constant/null worklists.
func (g *Graph) index(n Node, seen map[int]bool) {
	if seen[n.Index()] {
		return
	}
	seen[n.Index()] = true
	switch v := n.(type) {
	case *Gate:
		g.Gates[v.index] = v
		if v.index >= g.nextIndex {
			g.nextIndex = v.index + 1
		}
		if v.Kind == NULL {
			g.nullGates = append(g.nullGates, v)
		}
		for _, c := range v.GateArgs {
			g.index(c, seen)
		}
		for _, c := range v.VarArgs {
			g.index(c, seen)
		}
		for _, c := range v.ConstArgs {
			g.index(c, seen)
		}
	case *Variable:
		g.Variables[v.index] = v
		if v.index >= g.nextIndex {
			g.nextIndex = v.index + 1
		}
	case *Constant:
		g.Constants[v.index] = v
		if v.index >= g.nextIndex {
			g.nextIndex = v.index + 1
		}
	}
}

func (g *Graph) freshIndex() int {
	if g.nextIndex == 0 {
		g.nextIndex = 1 // index 0 has no distinct complement (-0 == 0)
	}
	g.nextIndex++
	return g.nextIndex - 1
}

// newGate allocates a fresh Gate with a graph-unique index and registers
// it, the counterpart of the teacher's arena-slot allocation adapted to a
// map-indexed graph instead of a recyclable array (SPEC_FULL.md, DESIGN.md).
func (g *Graph) newGate(kind Kind) *Gate {
	gt := newGate(g.freshIndex(), kind)
	g.Gates[gt.index] = gt
	return gt
}

func (g *Graph) computeCoherent() bool {
	coherent := true
	g.walkGates(func(gt *Gate) {
		switch gt.Kind {
		case XOR, NOT, NAND, NOR:
			coherent = false
		}
		for k := range gt.GateArgs {
			if k < 0 {
				coherent = false
			}
		}
		for k := range gt.VarArgs {
			if k < 0 {
				coherent = false
			}
		}
	})
	return coherent
}

func (g *Graph) computeNormal() bool {
	normal := true
	g.walkGates(func(gt *Gate) {
		switch gt.Kind {
		case NOT, NAND, NOR, XOR, ATLEAST:
			normal = false
		}
	})
	return normal
}

// walkGates visits every gate reachable from the root exactly once, in DFS
// preorder with each gate's children taken by ascending signed index, so
// rewrites driven by it are deterministic. A child removed by an earlier
// visit is skipped.
func (g *Graph) walkGates(visit func(*Gate)) {
	seen := make(map[int]bool)
	var rec func(gt *Gate)
	rec = func(gt *Gate) {
		if seen[gt.index] {
			return
		}
		seen[gt.index] = true
		visit(gt)
		for _, s := range gt.gateArgIndices() {
			if c, ok := gt.GateArgs[s]; ok {
				rec(c)
			}
		}
	}
	rec(g.Root)
}

// detach removes a node from the graph's index tables once it has no
// remaining parents, allowing the Go garbage collector to reclaim it and
// anything it alone kept alive. This is the Go-idiomatic analogue of the
// teacher's refcount-triggered node death.
func (g *Graph) detach(n Node) {
	if len(n.Parents()) > 0 {
		return
	}
	switch v := n.(type) {
	case *Gate:
		if v == g.Root {
			return
		}
		if _, live := g.Gates[v.index]; !live {
			return
		}
		delete(g.Gates, v.index)
		// A gate's own outgoing edges are its children's only reason to
		// list it as a parent; once it is itself unreachable, sever them
		// too so the cascade of "last reference dropped" (§3 Ownership)
		// reaches every descendant it alone kept alive.
		for _, s := range v.sortedArgs() {
			g.eraseArg(v, s)
		}
	case *Variable:
		delete(g.Variables, v.index)
	case *Constant:
		delete(g.Constants, v.index)
	}
}

// pushConstGate schedules g for constant-propagation handling. Duplicate
// scheduling is harmless: propagateConstants skips gates already Normal.
func (g *Graph) pushConstGate(gt *Gate) {
	g.constGates = append(g.constGates, gt)
}

func (g *Graph) pushNullGate(gt *Gate) {
	g.nullGates = append(g.nullGates, gt)
}

// worklistsEmpty reports whether both the constant and null-gate
// worklists have been fully drained. No phase checks it on entry or exit;
// it is available to tests and debugging code.
func (g *Graph) worklistsEmpty() bool {
	return len(g.constGates) == 0 && len(g.nullGates) == 0
}
