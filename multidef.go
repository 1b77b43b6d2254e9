// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// DetectMultipleDefinitions finds gates that are structurally identical —
// same kind, vote number, and argument set — and collapses every
// duplicate into a single shared definition (SPEC_FULL.md §4.D). Modules
// and the root are never merged away: a module's whole point is to stay
// independently addressable, and the root has no parent to redirect.
// Collapsing one pair of duplicates can expose another (a parent of both
// duplicates may itself now be a duplicate of some other gate), so the
// scan restarts from scratch until a full pass finds nothing new to merge.
func (p *Preprocessor) DetectMultipleDefinitions() {
	g := p.graph
	for {
		changed := false
		seen := make(map[fingerprint]*Gate)
		g.walkGates(func(gt *Gate) {
			if changed || gt == g.Root || gt.isModule() {
				return
			}
			fp := gt.fingerprint()
			if orig, ok := seen[fp]; ok {
				p.replaceGate(gt, orig)
				changed = true
				return
			}
			seen[fp] = gt
		})
		if !changed {
			return
		}
	}
}
