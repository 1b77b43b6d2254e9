// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import "sort"

// BooleanOptimization looks for redundancy among shared nodes: a node N
// referenced by more than one gate, where N's value is already implied at
// some ancestor ("destination") regardless of what N itself evaluates to.
// At every other parent, N can simply be dropped; at a non-OR destination,
// N is instead pulled out and the destination is wrapped in OR(D, N), so
// its contribution is expressed exactly once (SPEC_FULL.md §4.D).
func (p *Preprocessor) BooleanOptimization() {
	for _, n := range sharedNodes(p.graph) {
		p.optimizeCommonNode(n)
	}
}

// sharedNodes returns every non-module, non-root node with more than one
// parent, in index order (for deterministic output given deterministic
// input, per SPEC_FULL.md §5).
func sharedNodes(g *Graph) []Node {
	var out []Node
	g.walkGates(func(gt *Gate) {
		if gt != g.Root && len(gt.Parents()) > 1 && !gt.isModule() {
			out = append(out, gt)
		}
	})
	for _, v := range g.Variables {
		if len(v.Parents()) > 1 {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}

func clearOpti(g *Graph) {
	g.walkGates(func(gt *Gate) { gt.opti = 0 })
	for _, v := range g.Variables {
		v.opti = 0
	}
}

func (p *Preprocessor) optimizeCommonNode(n Node) {
	g := p.graph
	clearOpti(g)
	destinations := p.propagateFailure(n)
	if len(destinations) == 0 {
		return
	}
	destSet := make(map[int]bool, len(destinations))
	for _, d := range destinations {
		destSet[d.index] = true
	}
	for _, parent := range gatherParents(n) {
		if destSet[parent.index] {
			continue
		}
		if !parent.hasArg(n.Index()) && !parent.hasArg(-n.Index()) {
			continue
		}
		p.removeRedundantArg(parent, signedIndexOf(parent, n))
	}
	for _, d := range destinations {
		if d.Kind == OR {
			continue // an OR destination already keeps N as a direct argument; nothing to wrap
		}
		p.wrapDestinationWithN(d, n)
	}
}

// propagateFailure runs a post-order pass over the whole graph treating n
// as already "failed" (true, in the failure-propagation sense used by
// fault-tree Boolean optimization), and tags every gate as failed (opti=1)
// or not (opti=2) accordingly. It returns n's direct parents that failed:
// the points where N's own contribution is already implied by its
// siblings, making N itself redundant there.
func (p *Preprocessor) propagateFailure(n Node) []*Gate {
	g := p.graph
	visited := make(map[int]bool)
	var visit func(gt *Gate) bool
	visit = func(gt *Gate) bool {
		if visited[gt.index] {
			return gt.opti == 1
		}
		visited[gt.index] = true
		if gt.index == n.Index() {
			gt.opti = 1
			return true
		}
		anyFailed := false
		total, failedCount := 0, 0
		for _, c := range gt.GateArgs {
			total++
			if visit(c) {
				anyFailed = true
				failedCount++
			}
		}
		for _, v := range gt.VarArgs {
			total++
			if v.Index() == n.Index() {
				anyFailed = true
				failedCount++
			}
		}
		total += len(gt.ConstArgs)

		var fails bool
		switch gt.Kind {
		case OR:
			fails = anyFailed
		case AND:
			fails = total > 0 && failedCount == total
		case ATLEAST:
			fails = failedCount >= gt.VoteNumber
		}
		if fails {
			gt.opti = 1
		} else {
			gt.opti = 2
		}
		return fails
	}
	visit(g.Root)

	var destinations []*Gate
	for _, parent := range n.Parents() {
		if parent.opti == 1 {
			destinations = append(destinations, parent)
		}
	}
	return destinations
}

func (p *Preprocessor) removeRedundantArg(parent *Gate, signed int) {
	p.graph.eraseArg(parent, signed)
	p.afterAbsorb(parent)
}

// wrapDestinationWithN replaces d, at every one of d's own parents, with
// a fresh OR gate containing d and n, folding n's effect in exactly once
// at the point where it was otherwise implied redundantly throughout d.
func (p *Preprocessor) wrapDestinationWithN(d *Gate, n Node) {
	g := p.graph
	nSign := n.Index()
	if d.hasArg(-n.Index()) {
		nSign = -n.Index()
	}
	if d.hasArg(nSign) {
		g.eraseArg(d, nSign)
	}
	wrap := g.newGate(OR)
	g.addArg(wrap, nSign, n)
	if d == g.Root {
		g.addArg(wrap, d.index, d)
		g.Root = wrap
		return
	}
	for _, parent := range gatherParents(d) {
		signed := signedIndexOf(parent, d)
		sign := 1
		if signed < 0 {
			sign = -1
		}
		g.eraseArg(parent, signed)
		g.addArg(parent, sign*wrap.index, wrap)
	}
	g.addArg(wrap, d.index, d)
}

// replaceGate substitutes every parent reference to dup with an
// equally-signed reference to orig instead. Once dup loses its last
// parent it is detached and, if nothing else kept its own children
// alive, collected along with them.
func (p *Preprocessor) replaceGate(dup, orig *Gate) {
	g := p.graph
	for _, parent := range gatherParents(dup) {
		for _, signed := range []int{dup.index, -dup.index} {
			if !parent.hasArg(signed) {
				continue
			}
			sign := 1
			if signed < 0 {
				sign = -1
			}
			g.eraseArg(parent, signed)
			g.addArg(parent, sign*orig.index, orig)
		}
	}
}
