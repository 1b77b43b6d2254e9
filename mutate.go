// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// This file implements the Graph Model's mutation primitives
// (SPEC_FULL.md §4.A), the vocabulary every structural rewrite in the
// preprocessor is built from. Every primitive maintains invariants 1-3 of
// §3 as a postcondition; callers are responsible for invariants that span
// more than one gate (acyclicity, module single-parent-ness, ...).

// complementCollapse reports the constant a gate of kind collapses to
// when one of its arguments is added a second time with the opposite
// sign (p and ¬p both present). NULL and NOT never reach this case
// because they hold at most one argument; ATLEAST reports no collapse,
// so addArg inserts the complement alongside the existing argument.
func complementCollapse(kind Kind) (State, bool) {
	switch kind {
	case OR, NAND, XOR:
		return Unity, true
	case AND, NOR:
		return Null, true
	default:
		return Normal, false
	}
}

func (g *Graph) insertArg(parent *Gate, signed int, child Node) {
	switch c := child.(type) {
	case *Gate:
		parent.GateArgs[signed] = c
	case *Variable:
		parent.VarArgs[signed] = c
	case *Constant:
		parent.ConstArgs[signed] = c
	default:
		violate("insertArg", "unknown node type for signed index %d", signed)
	}
	child.addParent(parent)
}

func (g *Graph) removeArgEntry(parent *Gate, signed int, child Node) {
	switch child.(type) {
	case *Gate:
		delete(parent.GateArgs, signed)
	case *Variable:
		delete(parent.VarArgs, signed)
	case *Constant:
		delete(parent.ConstArgs, signed)
	}
	child.removeParent(parent.index)
	if len(child.Parents()) == 0 {
		g.detach(child)
	}
}

// addArg inserts signed as a new argument of parent, referencing child.
// An exact duplicate is a no-op; a duplicate of opposite sign collapses
// parent to a constant state and schedules it for propagation.
func (g *Graph) addArg(parent *Gate, signed int, child Node) {
	if parent.hasArg(signed) {
		return
	}
	if parent.hasComplement(signed) {
		if state, ok := complementCollapse(parent.Kind); ok {
			parent.State = state
			g.pushConstGate(parent)
			return
		}
	}
	g.insertArg(parent, signed, child)
}

// eraseArg removes parent's reference to signed, dropping the argument's
// contribution to parent's semantics and releasing parent's ownership of
// its child. If the child is thereby left with no parents it is detached
// from the graph and becomes eligible for garbage collection.
func (g *Graph) eraseArg(parent *Gate, signed int) {
	child := parent.childAt(signed)
	if child == nil {
		return
	}
	g.removeArgEntry(parent, signed, child)
}

// shareArg copies the argument signed from `from` into `to`, without
// transferring ownership: both gates end up strongly referencing the
// same child, and the child gains `to` as an additional parent. Used
// when the same subterm must be factored into two places at once, e.g.
// distributivity and common-argument merging.
func (g *Graph) shareArg(from *Gate, signed int, to *Gate) {
	child := from.childAt(signed)
	if child == nil {
		violate("shareArg", "gate %d has no argument %d", from.index, signed)
	}
	g.addArg(to, signed, child)
}

// transferArg moves the argument signed from `from` to `to`: `to` becomes
// the sole strong reference-holder in place of `from`.
func (g *Graph) transferArg(from *Gate, signed int, to *Gate) {
	child := from.childAt(signed)
	if child == nil {
		violate("transferArg", "gate %d has no argument %d", from.index, signed)
	}
	g.addArg(to, signed, child)
	g.removeArgEntry(from, signed, child)
}

// invertArg flips the sign of parent's reference to signed in place, used
// when propagating a complement through a gate that survives
// normalization (e.g. re-signing an argument shared by a negated parent).
func (g *Graph) invertArg(parent *Gate, signed int) {
	child := parent.childAt(signed)
	if child == nil {
		violate("invertArg", "gate %d has no argument %d", parent.index, signed)
	}
	// Drop the old entry without detaching: parent keeps referencing child.
	switch child.(type) {
	case *Gate:
		delete(parent.GateArgs, signed)
	case *Variable:
		delete(parent.VarArgs, signed)
	case *Constant:
		delete(parent.ConstArgs, signed)
	}
	child.removeParent(parent.index)
	g.addArg(parent, -signed, child)
}

// invertArgs flips the sign of every argument of g. Used when a complement
// is pushed down through g during non-coherent-graph complement
// propagation (SPEC_FULL.md §4.C, PropagateComplements).
func (g *Graph) invertArgs(gt *Gate) {
	for _, s := range gt.sortedArgs() {
		g.invertArg(gt, s)
	}
}

// joinGate inlines the arguments of the same-kind gate child referenced by
// parent at signed (signed must be positive: only a plain, non-complemented
// same-kind child can be inlined this way) directly into parent, then
// drops parent's reference to child. May trigger a state collapse on
// parent through the ordinary addArg duplicate-detection path.
func (g *Graph) joinGate(parent *Gate, signed int) {
	child, ok := parent.GateArgs[signed]
	if !ok {
		violate("joinGate", "gate %d has no gate argument %d", parent.index, signed)
	}
	assertf(signed > 0, "joinGate", "cannot inline complemented child %d into gate %d", signed, parent.index)
	assertf(child.Kind == parent.Kind, "joinGate", "cannot join gate %d (kind %s) into gate %d (kind %s)", child.index, child.Kind, parent.index, parent.Kind)
	for _, s := range child.sortedArgs() {
		g.shareArg(child, s, parent)
		if parent.State != Normal {
			return
		}
	}
	g.eraseArg(parent, signed)
}

// joinNullGate replaces parent's reference to the NULL-kind gate at
// signed with a direct reference to that gate's sole argument, with sign
// multiplied through. This is how NULL gates get spliced out of the
// graph during constant/null propagation.
func (g *Graph) joinNullGate(parent *Gate, signed int) {
	child, ok := parent.GateArgs[signed]
	if !ok {
		violate("joinNullGate", "gate %d has no gate argument %d", parent.index, signed)
	}
	assertf(child.Kind == NULL, "joinNullGate", "gate %d is not a NULL gate", child.index)
	assertf(child.argCount() == 1, "joinNullGate", "NULL gate %d has %d args, expected 1", child.index, child.argCount())
	inner := child.sortedArgs()[0]
	grandchild := child.childAt(inner)
	sign := 1
	if signed < 0 {
		sign = -1
	}
	if inner < 0 {
		sign = -sign
	}
	newSigned := sign * abs(inner)
	g.addArg(parent, newSigned, grandchild)
	g.eraseArg(parent, signed)
}

// spliceNullRoot promotes a NULL-kind root's sole argument to be the
// graph's new root, folding the connecting edge's sign into RootSign.
// This is joinNullGate's root-level counterpart: the root has no parent
// to splice it out from, so the graph's own Root pointer is moved
// instead (mirroring collapseRoot's "replace g.Root with a fresh gate"
// precedent, but with the old root's bookkeeping properly torn down
// since, unlike collapseRoot, further phases still run after this). A
// leaf (Variable/Constant) argument is left untouched: a NULL root
// wrapping a single leaf is already the accepted terminal representation
// produced elsewhere (e.g. a root degenerating via afterAbsorb).
func (g *Graph) spliceNullRoot() {
	root := g.Root
	assertf(root.Kind == NULL, "spliceNullRoot", "gate %d is not a NULL gate", root.index)
	assertf(root.argCount() == 1, "spliceNullRoot", "NULL root %d has %d args, expected 1", root.index, root.argCount())
	signed := root.sortedArgs()[0]
	child, ok := root.GateArgs[signed]
	if !ok {
		return
	}
	if signed < 0 {
		g.RootSign = -g.RootSign
	}
	g.Root = child
	g.removeArgEntry(root, signed, child)
	g.detach(root)
}

// makeUnity collapses g to the constant true state, discarding every
// argument (invariant 3, §3: a non-Normal gate contributes no
// arguments to semantics) and scheduling it for propagation.
func (g *Graph) makeUnity(gt *Gate) {
	g.collapse(gt, Unity)
}

// nullify collapses g to the constant false state.
func (g *Graph) nullify(gt *Gate) {
	g.collapse(gt, Null)
}

func (g *Graph) collapse(gt *Gate, state State) {
	for _, s := range gt.sortedArgs() {
		g.eraseArg(gt, s)
	}
	gt.State = state
	g.pushConstGate(gt)
}

// turnModule tags g as a module: an independently analyzable subtree
// whose descendants are exclusive to it (SPEC_FULL.md §4.D, module detection).
func (g *Graph) turnModule(gt *Gate) {
	gt.Module = true
}

// clone yields a structurally identical gate with a fresh identity,
// sharing ownership of every child with the original rather than
// duplicating the subgraph below it. The clone starts with no parents;
// the caller attaches it wherever the transformation requires a local
// copy (e.g. Decomposition, distributivity's shared-candidate cloning).
func (g *Graph) clone(gt *Gate) *Gate {
	c := g.newGate(gt.Kind)
	c.VoteNumber = gt.VoteNumber
	c.State = gt.State
	for _, s := range gt.sortedArgs() {
		g.shareArg(gt, s, c)
	}
	return c
}
