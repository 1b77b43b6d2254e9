// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// assignTiming stamps every reachable node with a DFS visit interval
// [enter, exit]. A leaf (Variable/Constant) is stamped once, on its first
// visit, so enter == exit for it. A gate visited more than once (because
// it is shared) has its interval widened to cover every visit, so "this node's entire
// interval lies inside the parent's" is exactly the test DetectModules
// needs for "this node is never reached except through the parent"
// (SPEC_FULL.md §4.D, module detection).
func (g *Graph) assignTiming() {
	clock := 0
	visited := make(map[int]bool)
	var visit func(n Node)
	visit = func(n Node) {
		clock++
		if _, isGate := n.(*Gate); !isGate {
			if !visited[n.Index()] {
				visited[n.Index()] = true
				n.setTiming(clock, clock)
			}
			return
		}
		if !visited[n.Index()] {
			visited[n.Index()] = true
			n.setTiming(clock, clock)
			if gt, ok := n.(*Gate); ok {
				for _, s := range gt.sortedArgs() {
					visit(gt.childAt(s))
				}
			}
		}
		clock++
		enter, exit := n.enterTime(), n.exitTime()
		if enter == 0 || clock < enter {
			enter = clock
		}
		if clock > exit {
			exit = clock
		}
		n.setTiming(enter, exit)
	}
	visit(g.Root)
}

// DetectModules re-times the graph and then, bottom-up, tags every gate
// whose entire reachable subgraph is exclusive to it as a module, and
// splits out sub-modules from a gate's non-shared or interval-confined
// arguments where a whole gate does not already qualify (SPEC_FULL.md
// §4.D). The root is always a module: it has no parent to share anything
// with.
func (p *Preprocessor) DetectModules() {
	g := p.graph
	g.assignTiming()
	visited := make(map[int]bool)
	var visit func(gt *Gate)
	visit = func(gt *Gate) {
		if visited[gt.index] {
			return
		}
		visited[gt.index] = true
		for _, c := range gt.GateArgs {
			visit(c)
		}
		p.classifyAndModularize(gt)
	}
	visit(g.Root)
	g.turnModule(g.Root)
}

// classifyAndModularize implements the per-gate step of DetectModules: it
// decides whether gt itself qualifies as a module, then carves any
// qualifying cluster of its arguments out into a fresh sub-module gate of
// the same kind so that future passes can analyze that cluster on its own.
func (p *Preprocessor) classifyAndModularize(gt *Gate) {
	g := p.graph
	if gt.Kind != AND && gt.Kind != OR && gt.Kind != NAND && gt.Kind != NOR {
		return
	}

	var nonShared, modular []int
	allInside := true
	for _, s := range gt.gateArgIndices() {
		c := gt.GateArgs[s]
		if len(c.Parents()) == 1 {
			nonShared = append(nonShared, s)
			continue
		}
		if c.enterTime() > gt.enter && c.exitTime() < gt.exit {
			modular = append(modular, s)
		} else {
			allInside = false
		}
	}
	for _, v := range gt.VarArgs {
		if len(v.Parents()) > 1 {
			allInside = false
		}
	}

	if !gt.isModule() && allInside && gt.argCount() > 0 && len(gt.Parents()) <= 1 {
		g.turnModule(gt)
		return // gt is already a module in full; no need to carve out a sub-module too
	}

	if len(nonShared) >= 2 && len(nonShared) < gt.argCount() {
		sub := g.newGate(gt.Kind)
		for _, s := range nonShared {
			g.transferArg(gt, s, sub)
		}
		g.turnModule(sub)
		g.addArg(gt, sub.index, sub)
	}

	for _, cluster := range groupByInterval(gt, modular) {
		if len(cluster) < 2 {
			continue
		}
		sub := g.newGate(gt.Kind)
		for _, s := range cluster {
			g.transferArg(gt, s, sub)
		}
		g.turnModule(sub)
		g.addArg(gt, sub.index, sub)
	}
}

// groupByInterval clusters args (signed indices of gt's gate children)
// that mutually overlap in DFS interval, using union-find. Clusters with
// overlapping intervals are kept together because DetectOverlap must
// never split apart nodes that jointly share some deeper descendant.
func groupByInterval(gt *Gate, args []int) [][]int {
	n := len(args)
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
	intervals := make([][2]int, n)
	for i, s := range args {
		c := gt.childAt(s)
		intervals[i] = [2]int{c.enterTime(), c.exitTime()}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := intervals[i], intervals[j]
			if a[0] <= b[1] && b[0] <= a[1] {
				union(i, j)
			}
		}
	}
	groups := make(map[int][]int)
	order := make([]int, 0, n)
	for i, s := range args {
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
