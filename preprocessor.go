// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// Preprocessor owns a Graph for the duration of Process and drives it
// through the five-phase simplification pipeline described in
// SPEC_FULL.md §4 and §5. It is not safe for concurrent use: all state
// (the graph, the normalization worklist, per-run statistics) is private
// to a single Process call.
type Preprocessor struct {
	graph *Graph
	cfg   *config

	normalizeQueue []*Gate

	stats []Stats
}

// NewPreprocessor wraps g for processing, applying any Options supplied.
func NewPreprocessor(g *Graph, opts ...Option) *Preprocessor {
	cfg := makeconfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Preprocessor{graph: g, cfg: cfg}
}

// Graph returns the graph being (or having been) processed.
func (p *Preprocessor) Graph() *Graph { return p.graph }

// Stats returns the per-phase statistics snapshots collected during
// Process, if WithStats was supplied; nil otherwise.
func (p *Preprocessor) Stats() []Stats { return p.stats }

// Process runs the full preprocessing pipeline to a fixed point, following
// the phase orchestration of SPEC_FULL.md §4:
//
//	PhaseI
//	if root collapsed to a constant: done
//	loop:
//	  PhaseII
//	  switch {
//	  case !Normal:   PhaseIII; continue
//	  case !Coherent: PhaseIV;  continue
//	  default:        break loop
//	  }
//	PhaseV
//
// A phase may start with a constant/null worklist backlog, which it
// drains; every phase checks on exit that both worklists are empty
// (ContractViolation otherwise), so the next phase never inherits
// unresolved entries.
func (p *Preprocessor) Process() *Graph {
	p.traceOp("PhaseI")
	p.PhaseI()
	p.snapshot("PhaseI")
	if p.CheckRootGate() {
		return p.graph
	}
	for {
		p.traceOp("PhaseII")
		p.PhaseII()
		p.snapshot("PhaseII")
		if p.CheckRootGate() {
			return p.graph
		}
		switch {
		case !p.graph.Normal:
			p.traceOp("PhaseIII")
			p.PhaseIII()
			p.snapshot("PhaseIII")
			continue
		case !p.graph.Coherent:
			p.traceOp("PhaseIV")
			p.PhaseIV()
			p.snapshot("PhaseIV")
			continue
		}
		break
	}
	p.traceOp("PhaseV")
	p.PhaseV()
	p.snapshot("PhaseV")
	return p.graph
}

// CheckRootGate reports whether the root has collapsed to a pure
// constant, the early-exit condition every phase boundary checks for.
func (p *Preprocessor) CheckRootGate() bool {
	return p.graph.Root.Kind == NULL && len(p.graph.Root.ConstArgs) == 1 && p.graph.Root.argCount() == 1
}

// PhaseI removes constant leaves, partially normalizes negative gates,
// and splices out NULL gates, bringing the graph to the state every
// later phase assumes on entry: no constant or NULL-gate worklist
// backlog, and every negative-gate reference already folded into its
// parent's edge sign.
func (p *Preprocessor) PhaseI() {
	p.assertWorklistsDrainable()
	p.absorbInitialConstantArgs()
	p.propagateConstants()
	p.NormalizeGates(false)
	p.propagateConstants()
	p.assertWorklistsEmpty("PhaseI")
}

// PhaseII runs the structural simplifiers that do not require the graph
// to already be Normal or Coherent: multiple-definition detection, module
// detection, common-argument merging, Boolean optimization, decomposition
// of common nodes, distributivity, and ordinary (non-layered)
// coalescence, interleaved with constant propagation since each of these
// can expose new collapses. Module detection runs both before and after
// the rest, since the rewrites below can both create and destroy
// single-parent-ness.
func (p *Preprocessor) PhaseII() {
	p.assertWorklistsDrainable()
	g := p.graph

	p.DetectModules()
	p.DetectMultipleDefinitions()
	p.propagateConstants()

	p.MergeCommonArgs()
	p.propagateConstants()

	p.BooleanOptimization()
	p.propagateConstants()

	p.DecomposeCommonNodes()
	p.propagateConstants()

	p.DetectDistributivity()
	p.propagateConstants()

	p.Coalesce(false)
	p.propagateConstants()

	p.DetectModules()
	_ = g

	p.assertWorklistsEmpty("PhaseII")
}

// PhaseIII fully normalizes the graph (decomposing every XOR and ATLEAST
// gate) and drains the worklists the decomposition may have populated,
// then marks the graph Normal.
func (p *Preprocessor) PhaseIII() {
	p.assertWorklistsDrainable()
	p.NormalizeGates(true)
	p.propagateConstants()
	p.graph.Normal = true
	p.assertWorklistsEmpty("PhaseIII")
}

// PhaseIV propagates complements through a non-coherent graph so that
// only leaves carry a negative sign, marks the graph Coherent, then drains
// the resulting worklists.
func (p *Preprocessor) PhaseIV() {
	p.assertWorklistsDrainable()
	p.PropagateComplements()
	p.graph.Coherent = true
	p.propagateConstants()
	p.assertWorklistsEmpty("PhaseIV")
}

// PhaseV performs a final layered coalescence pass, bracketing a last run
// of PhaseII's structural simplifiers with layered coalescence so that any
// new same-kind nesting they expose is flattened too.
func (p *Preprocessor) PhaseV() {
	p.assertWorklistsDrainable()
	layered := p.cfg.coalesceAll
	p.Coalesce(layered)
	p.propagateConstants()
	if !p.CheckRootGate() {
		p.PhaseII()
		p.Coalesce(layered)
		p.propagateConstants()
	}
	p.assertWorklistsEmpty("PhaseV")
}

func (p *Preprocessor) assertWorklistsDrainable() {
	// Entry state is allowed to carry a backlog (propagateConstants drains
	// it as the first step of every phase); nothing to assert here beyond
	// documenting the contract. Kept as a named no-op so every phase has a
	// matching entry/exit pair to read.
}

func (p *Preprocessor) assertWorklistsEmpty(phase string) {
	assertf(p.graph.worklistsEmpty(), phase, "left %d constant-gate and %d null-gate entries undrained", len(p.graph.constGates), len(p.graph.nullGates))
}

func (p *Preprocessor) snapshot(phase string) {
	if !p.cfg.collectStat {
		return
	}
	p.stats = append(p.stats, p.graph.computeStats(phase))
}
