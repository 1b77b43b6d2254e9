// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// notifyParentsOfNegativeGates is a DFS over the graph: whenever a gate
// references a child of kind NOR, NAND, or NOT, the parent's edge sign is
// flipped and the child's kind is rewritten to its positive dual (NOR→OR,
// NAND→AND, NOT→NULL). The root's own negativity, having no parent to
// notify, is folded into Graph.RootSign instead (SPEC_FULL.md §4.C).
func (p *Preprocessor) notifyParentsOfNegativeGates() {
	g := p.graph
	visited := make(map[int]bool)
	var visit func(gt *Gate)
	visit = func(gt *Gate) {
		if visited[gt.index] {
			return
		}
		visited[gt.index] = true
		for _, s := range gt.gateArgIndices() {
			child, ok := gt.GateArgs[s]
			if !ok {
				continue // an earlier sibling rewrite already retargeted this slot
			}
			visit(child)
			if dual, ok := child.Kind.negativeDual(); ok {
				g.invertArg(gt, s)
				child.Kind = dual
				if dual == NULL {
					g.pushNullGate(child)
				}
			}
		}
	}
	visit(g.Root)
	if dual, ok := g.Root.Kind.negativeDual(); ok {
		g.RootSign = -g.RootSign
		g.Root.Kind = dual
		if dual == NULL {
			g.spliceNullRoot()
		}
	}
}

// NormalizeGates rewrites gate kinds into the restricted set the rest of
// the preprocessor assumes. Partial normalization (full=false, Phase I)
// only runs notifyParentsOfNegativeGates. Full normalization (full=true,
// Phase III) additionally decomposes every XOR and ATLEAST gate,
// draining a worklist since decomposition introduces fresh ATLEAST
// sub-gates that may themselves need decomposing.
func (p *Preprocessor) NormalizeGates(full bool) {
	p.notifyParentsOfNegativeGates()
	if !full {
		return
	}
	p.graph.walkGates(func(gt *Gate) {
		if gt.Kind == XOR || gt.Kind == ATLEAST {
			p.enqueueNormalize(gt)
		}
	})
	for len(p.normalizeQueue) > 0 {
		n := len(p.normalizeQueue) - 1
		gt := p.normalizeQueue[n]
		p.normalizeQueue = p.normalizeQueue[:n]
		if len(gt.Parents()) == 0 && gt != p.graph.Root {
			continue
		}
		switch gt.Kind {
		case XOR:
			p.normalizeXorGate(gt)
		case ATLEAST:
			p.normalizeAtleastGate(gt)
		}
	}
}

func (p *Preprocessor) enqueueNormalize(gt *Gate) {
	p.normalizeQueue = append(p.normalizeQueue, gt)
}

// normalizeXorGate rewrites XOR(a,b) into OR(AND(a,¬b), AND(¬a,b)) using
// two fresh AND gates, preserving whatever sign gt's own two arguments
// already carried.
func (p *Preprocessor) normalizeXorGate(gt *Gate) {
	g := p.graph
	args := gt.sortedArgs()
	assertf(len(args) == 2, "normalizeXorGate", "XOR gate %d has %d args, expected 2", gt.index, len(args))
	s1, s2 := args[0], args[1]
	c1, c2 := gt.childAt(s1), gt.childAt(s2)

	and1 := g.newGate(AND) // a, ¬b
	g.shareArg(gt, s1, and1)
	g.addArg(and1, -s2, c2)

	and2 := g.newGate(AND) // ¬a, b
	g.addArg(and2, -s1, c1)
	g.shareArg(gt, s2, and2)

	g.eraseArg(gt, s1)
	g.eraseArg(gt, s2)
	gt.Kind = OR
	g.addArg(gt, and1.index, and1)
	g.addArg(gt, and2.index, and2)
}

// normalizeAtleastGate decomposes ATLEAST(k; x1..xn) into
// OR(AND(x1, ATLEAST(k-1; x2..xn)), ATLEAST(k; x2..xn)), applying the
// base cases k=1→OR and k=n→AND directly instead of recursing. Freshly
// created ATLEAST sub-gates are queued by NormalizeGates' caller via
// enqueueNormalize so they get the same treatment.
func (p *Preprocessor) normalizeAtleastGate(gt *Gate) {
	g := p.graph
	args := gt.sortedArgs()
	n := len(args)
	k := gt.VoteNumber
	assertf(n >= k && k >= 1, "normalizeAtleastGate", "ATLEAST gate %d: invalid k=%d for n=%d args", gt.index, k, n)

	if k == 1 {
		gt.Kind = OR
		return
	}
	if k == n {
		gt.Kind = AND
		return
	}

	x1 := args[0]
	rest := args[1:]

	withX1 := g.newGate(AND)
	g.shareArg(gt, x1, withX1)

	subA := g.newGate(ATLEAST)
	subA.VoteNumber = k - 1
	for _, s := range rest {
		g.shareArg(gt, s, subA)
	}
	g.addArg(withX1, subA.index, subA)

	subB := g.newGate(ATLEAST)
	subB.VoteNumber = k
	for _, s := range rest {
		g.shareArg(gt, s, subB)
	}

	for _, s := range args {
		g.eraseArg(gt, s)
	}
	gt.Kind = OR
	g.addArg(gt, withX1.index, withX1)
	g.addArg(gt, subB.index, subB)

	p.enqueueNormalize(subA)
	p.enqueueNormalize(subB)
}
