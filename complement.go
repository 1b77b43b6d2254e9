// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// PropagateComplements pushes every remaining negative gate reference
// down through De Morgan's laws so that, once it returns, only leaf
// (Variable/Constant) arguments carry a negative sign — no gate is ever
// referenced with a complemented edge. This is what Phase IV runs for a
// non-coherent graph (SPEC_FULL.md §4.C); coherent graphs already satisfy
// the postcondition and the pass is a no-op for them.
//
// A gate referenced with both polarities by different parents cannot be
// inverted in place for one of them without breaking the other, so it is
// cloned first — the same "clone to keep a rewrite local" discipline used
// by distributivity and decomposition.
func (p *Preprocessor) PropagateComplements() {
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
				continue
			}
			if s >= 0 {
				visit(child)
				continue
			}
			target := child
			if len(child.Parents()) > 1 {
				target = g.clone(child)
			}
			invertGateKind(target)
			g.invertArgs(target)
			if target == child {
				g.invertArg(gt, s)
			} else {
				g.addArg(gt, target.index, target)
				g.eraseArg(gt, s)
			}
			visited[target.index] = true
			visit(target)
		}
	}
	visit(g.Root)
}

// invertGateKind swaps AND and OR, the only two kinds PropagateComplements
// ever needs to invert: it only runs after full normalization, by which
// point NOT/NOR/NAND/XOR/ATLEAST have already been rewritten away.
func invertGateKind(gt *Gate) {
	switch gt.Kind {
	case AND:
		gt.Kind = OR
	case OR:
		gt.Kind = AND
	default:
		violate("invertGateKind", "cannot invert gate %d of kind %s; expected AND/OR", gt.index, gt.Kind)
	}
}
