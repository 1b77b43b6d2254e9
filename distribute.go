// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import "sort"

// DetectDistributivity looks for a gate that can be factored by the
// distributive law — an AND (or NAND) with two or more OR-kind arguments
// that share a sub-argument, or the dual OR (or NOR) with shared AND
// arguments — and rewrites
//
//	AND(OR(a,x), OR(a,y), ...) -> AND(..., OR(a, AND(OR(x), OR(y), ...)))
//
// factoring the shared part a out of every candidate (SPEC_FULL.md §4.D).
func (p *Preprocessor) DetectDistributivity() {
	g := p.graph
	g.walkGates(func(gt *Gate) {
		p.distributeGate(gt)
	})
}

// distrKindFor reports the argument kind DetectDistributivity looks for
// inside a gate of kind k, i.e. the dual operator the distributive law
// pulls a common factor through.
func distrKindFor(k Kind) (Kind, bool) {
	switch k {
	case AND, NAND:
		return OR, true
	case OR, NOR:
		return AND, true
	default:
		return k, false
	}
}

func (p *Preprocessor) distributeGate(gt *Gate) {
	distr, ok := distrKindFor(gt.Kind)
	if !ok {
		return
	}
	var candidates []int
	for _, s := range gt.gateArgIndices() {
		if s < 0 {
			continue
		}
		c := gt.GateArgs[s]
		if c.Kind == distr && !c.isModule() {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) < 2 {
		return
	}
	for _, cluster := range groupBySharedSubArg(gt, candidates) {
		if len(cluster) >= 2 {
			p.factorGroup(gt, distr, cluster)
		}
	}
}

// groupBySharedSubArg clusters candidates (signed indices of gt's
// distr-kind children) that transitively share at least one sub-argument.
func groupBySharedSubArg(gt *Gate, candidates []int) [][]int {
	n := len(candidates)
	uf := make([]int, n)
	for i := range uf {
		uf[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if uf[x] != x {
			uf[x] = find(uf[x])
		}
		return uf[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			uf[ra] = rb
		}
	}
	argSets := make([]map[int]bool, n)
	for i, s := range candidates {
		c := gt.GateArgs[s]
		set := make(map[int]bool)
		for _, t := range c.sortedArgs() {
			set[t] = true
		}
		argSets[i] = set
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			shared := false
			for t := range argSets[i] {
				if argSets[j][t] {
					shared = true
					break
				}
			}
			if shared {
				union(i, j)
			}
		}
	}
	groups := make(map[int][]int)
	order := make([]int, 0, n)
	for i, s := range candidates {
		r := find(i)
		if _, ok := groups[r]; !ok {
			order = append(order, r)
		}
		groups[r] = append(groups[r], s)
	}
	out := make([][]int, 0, len(order))
	for _, r := range order {
		out = append(out, groups[r])
	}
	return out
}

// factorGroup pulls the sub-arguments genuinely common to every candidate
// in group out into a fresh distr-kind gate, wraps it together with the
// remaining, now-smaller candidates in a fresh gt-kind inner gate, and
// replaces the whole cluster at gt with factored = distr(common, inner).
func (p *Preprocessor) factorGroup(gt *Gate, distr Kind, group []int) {
	g := p.graph

	var common map[int]bool
	for _, s := range group {
		c := gt.GateArgs[s]
		set := make(map[int]bool)
		for _, t := range c.sortedArgs() {
			set[t] = true
		}
		if common == nil {
			common = set
			continue
		}
		for t := range common {
			if !set[t] {
				delete(common, t)
			}
		}
	}
	if len(common) == 0 {
		return
	}
	commonList := make([]int, 0, len(common))
	for t := range common {
		commonList = append(commonList, t)
	}
	sort.Ints(commonList)

	// Candidates shared with some other parent must be cloned first, so
	// stripping the common part only affects this rewrite at gt.
	locals := make([]*Gate, len(group))
	for i, s := range group {
		c := gt.GateArgs[s]
		if len(c.Parents()) > 1 {
			clone := g.clone(c)
			g.eraseArg(gt, s)
			g.addArg(gt, clone.index, clone)
			locals[i] = clone
		} else {
			locals[i] = c
		}
	}

	factored := g.newGate(distr)
	for _, t := range commonList {
		g.shareArg(locals[0], t, factored)
	}

	inner := g.newGate(gt.Kind)
	for _, c := range locals {
		for _, t := range commonList {
			if c.hasArg(t) {
				g.eraseArg(c, t)
			}
		}
		// c is wired into inner before gt lets go of it, so a candidate gt
		// alone referenced is not detached in between.
		if c.argCount() > 0 {
			if c.argCount() == 1 {
				p.afterAbsorb(c)
				// c may now be a single-argument NULL passthrough; it is
				// wired into inner below, and the pending null-gate worklist
				// entry afterAbsorb queued will splice it out for its sole
				// child on the next propagateConstants pass.
			}
			g.addArg(inner, c.index, c)
		} // else the candidate was wholly the common part; nothing is added to inner
		if gt.hasArg(c.index) {
			g.eraseArg(gt, c.index)
		}
	}
	// Every candidate reference gt held was already unconditionally erased
	// above, so inner (0, 1, or more args) must be wired back in regardless
	// of how many candidates actually contributed to it; afterAbsorb
	// degenerates it to a constant or a NULL passthrough exactly as it
	// would for any other gate left with too few arguments post-absorption.
	p.afterAbsorb(inner)
	g.addArg(factored, inner.index, inner)
	g.addArg(gt, factored.index, factored)
	if gt.argCount() == 1 {
		// gt held only the candidates just factored away: it is now a
		// single-argument passthrough to factored, same as any other gate
		// left with one argument post-absorption.
		p.afterAbsorb(gt)
	}
}
