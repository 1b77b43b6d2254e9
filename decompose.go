// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// DecomposeCommonNodes looks for a shared node N and, at each of N's
// AND/OR-kind direct parents, substitutes N by the constant value that
// parent's kind already implies for it there (TRUE under an AND, FALSE
// under an OR), letting ordinary constant propagation fold the rest
// (SPEC_FULL.md §4.E). A destination that is itself shared by more than
// one ancestor is first split into one private clone per ancestor, so
// every path to it gets its own independent substitution instead of
// being skipped outright (original_source/src/preprocessor.cc's
// MarkDecompositionDestinations/ProcessDecompositionAncestors clone a
// shared ancestor's path the same way before substituting — see
// DESIGN.md for how this Go version departs from the original's
// visit-mark bookkeeping while keeping the same clone-then-substitute
// shape).
//
// By the phase this runs in, NAND/NOR gates have already been rewritten
// to AND/OR by notifyParentsOfNegativeGates, so only those two kinds ever
// qualify as a destination.
func (p *Preprocessor) DecomposeCommonNodes() {
	for _, n := range sharedNodes(p.graph) {
		for _, parent := range gatherParents(n) {
			if parent.Kind != AND && parent.Kind != OR {
				continue
			}
			if !parent.hasArg(n.Index()) && !parent.hasArg(-n.Index()) {
				continue // an earlier destination in this pass already resolved this reference
			}
			p.decomposeAtDestination(parent, n)
		}
	}
}

// decomposeAtDestination substitutes n at destination d. The root and any
// single-parent gate can be substituted in place; anything else is shared
// by more than one ancestor, so it is cloned once per ancestor first —
// each clone inherits d's own reference to n (and every other argument)
// via Graph.clone, and only that clone is substituted, leaving d's other
// uses untouched until the redirect loop below drains its last parent and
// the ordinary zero-parent cascade (Graph.detach) reclaims it.
func (p *Preprocessor) decomposeAtDestination(d *Gate, n Node) {
	g := p.graph
	if d == g.Root || len(d.Parents()) <= 1 {
		p.substituteAtDestination(d, n)
		return
	}
	for _, up := range gatherParents(d) {
		if !up.hasArg(d.index) && !up.hasArg(-d.index) {
			continue // an earlier clone redirect in this same loop already consumed this edge
		}
		signed := signedIndexOf(up, d)
		sign := 1
		if signed < 0 {
			sign = -1
		}
		clone := g.clone(d)
		g.eraseArg(up, signed)
		g.addArg(up, sign*clone.index, clone)
		p.substituteAtDestination(clone, n)
	}
}

func (p *Preprocessor) substituteAtDestination(d *Gate, n Node) {
	signed := signedIndexOf(d, n)
	literal := d.Kind == AND // an AND destination implies TRUE for the literal there; an OR implies FALSE
	value := literal
	if signed < 0 {
		value = !value // applyConstantArg re-applies the sign; pre-adjust so the literal comes out as intended
	}
	p.applyConstantArg(d, signed, value)
}
