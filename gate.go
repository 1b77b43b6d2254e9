// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import "sort"

// Gate is an inner node of a Boolean graph: a logical operator over a set
// of signed arguments. A positive signed index is a plain reference to a
// child; a negative one is complemented. Arguments are partitioned by the
// concrete type of their child so that algorithms that only care about
// one leaf kind (e.g. the module detector only ever descends into gate
// args) never pay for a type switch over the whole argument set.
type Gate struct {
	nodeHeader

	Kind       Kind
	State      State
	VoteNumber int // meaningful only when Kind == ATLEAST; k ≥ 2

	Module bool // true once turnModule has tagged this gate as independently analyzable

	GateArgs  map[int]*Gate    // signed index -> gate child
	VarArgs   map[int]*Variable // signed index -> variable child
	ConstArgs map[int]*Constant // signed index -> constant child
}

func newGate(index int, kind Kind) *Gate {
	return &Gate{
		nodeHeader: newNodeHeader(index),
		Kind:       kind,
		State:      Normal,
		GateArgs:   make(map[int]*Gate),
		VarArgs:    make(map[int]*Variable),
		ConstArgs:  make(map[int]*Constant),
	}
}

// argCount returns the total number of arguments across all three
// partitions, i.e. |args(g)| as used throughout SPEC_FULL.md §4.
func (g *Gate) argCount() int {
	return len(g.GateArgs) + len(g.VarArgs) + len(g.ConstArgs)
}

// sortedArgs returns every signed index referenced by g, in ascending
// order. Structural simplifiers rely on this stable order to make
// rewriting deterministic given a deterministic input (SPEC_FULL.md §5).
func (g *Gate) sortedArgs() []int {
	out := make([]int, 0, g.argCount())
	for k := range g.GateArgs {
		out = append(out, k)
	}
	for k := range g.VarArgs {
		out = append(out, k)
	}
	for k := range g.ConstArgs {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// childAt resolves a signed index to its Node, or nil if g has no such
// argument.
func (g *Gate) childAt(signed int) Node {
	idx := abs(signed)
	if c, ok := g.GateArgs[signed]; ok {
		_ = idx
		return c
	}
	if c, ok := g.VarArgs[signed]; ok {
		return c
	}
	if c, ok := g.ConstArgs[signed]; ok {
		return c
	}
	return nil
}

// hasArg reports whether g directly references signed.
func (g *Gate) hasArg(signed int) bool {
	return g.childAt(signed) != nil
}

// hasComplement reports whether g references -signed, the complement of
// signed — the duplicate case add_arg must detect (invariant 1, §3).
func (g *Gate) hasComplement(signed int) bool {
	return g.childAt(-signed) != nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// isModule reports whether this gate has been tagged as a module by a
// prior DetectModules pass.
func (g *Gate) isModule() bool { return g.Module }

// gateArgIndices returns the signed indices of g's gate-kind arguments
// only, sorted — the partition most of the structural simplifiers walk.
func (g *Gate) gateArgIndices() []int {
	out := make([]int, 0, len(g.GateArgs))
	for k := range g.GateArgs {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// fingerprint is the canonical description of a gate's logical content
// used by multiple-definition detection (SPEC_FULL.md §4.D): its kind,
// vote number (if ATLEAST), and the sorted signed-argument multiset.
type fingerprint struct {
	kind Kind
	vote int
	args string // sorted signed args, joined; strings compare/hash cheaply and avoid slice-key limitations
}

func (g *Gate) fingerprint() fingerprint {
	args := g.sortedArgs()
	buf := make([]byte, 0, len(args)*6)
	for i, a := range args {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendInt(buf, a)
	}
	vote := 0
	if g.Kind == ATLEAST {
		vote = g.VoteNumber
	}
	return fingerprint{kind: g.Kind, vote: vote, args: string(buf)}
}

func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		buf = append(buf, '-')
		n = -n
	}
	if n == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
