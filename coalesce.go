// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// Coalesce merges a gate with any same-kind, non-complemented, non-module
// gate argument directly into itself, recursively, top-down from the root
// (SPEC_FULL.md §4.D). In non-common mode (layered=false, Phase II) only a
// child with exactly one parent is folded in, since folding a shared child
// would duplicate its effect at every other parent; layered mode
// (layered=true, Phase V) folds in any same-kind child regardless of how
// many parents it has, trading duplication for a flatter final graph.
func (p *Preprocessor) Coalesce(layered bool) {
	g := p.graph
	visited := make(map[int]bool)
	var visit func(gt *Gate)
	visit = func(gt *Gate) {
		if visited[gt.index] {
			return
		}
		visited[gt.index] = true
		for {
			folded := false
			for _, s := range gt.gateArgIndices() {
				if s < 0 {
					continue
				}
				child, ok := gt.GateArgs[s]
				if !ok || child.Kind != gt.Kind || child.isModule() {
					continue
				}
				if !layered && len(child.Parents()) > 1 {
					continue
				}
				g.joinGate(gt, s)
				folded = true
				if gt.State != Normal {
					return
				}
				break // gateArgIndices() is a stale snapshot once joinGate rewrites gt's args
			}
			if !folded {
				break
			}
		}
		for _, c := range gt.GateArgs {
			visit(c)
		}
	}
	visit(g.Root)
}
