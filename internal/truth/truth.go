// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package truth is a small, deliberately independent evaluator for
// Boolean graphs, used by the test suite to check that a transformation
// preserves semantics: build the graph, record its truth table over all
// assignments to its variables, transform it, and confirm the truth
// table didn't change (the property tests of SPEC_FULL.md §8 exercise
// this directly). It is kept independent of the preprocessor's own
// traversal helpers on purpose — a bug shared between the code under test
// and its oracle would never show up.
package truth

import (
	"math/big"

	"github.com/rakhimov/boolgraph"
)

// Evaluate computes the value of the sub-graph rooted at gt under
// assign, a map from variable index to truth value. A variable absent
// from assign is treated as false. Evaluation is memoized per gate index
// so a DAG with heavy sharing is only walked once.
func Evaluate(gt *boolgraph.Gate, assign map[int]bool) bool {
	memo := make(map[int]bool)
	return evalGate(gt, assign, memo)
}

func evalGate(gt *boolgraph.Gate, assign map[int]bool, memo map[int]bool) bool {
	if v, ok := memo[gt.Index()]; ok {
		return v
	}
	switch gt.State {
	case boolgraph.Unity:
		memo[gt.Index()] = true
		return true
	case boolgraph.Null:
		memo[gt.Index()] = false
		return false
	}

	var literals []bool
	for signed, c := range gt.GateArgs {
		literals = append(literals, signAdjust(signed, evalGate(c, assign, memo)))
	}
	for signed, v := range gt.VarArgs {
		literals = append(literals, signAdjust(signed, assign[v.Index()]))
	}
	for signed, c := range gt.ConstArgs {
		literals = append(literals, signAdjust(signed, c.Value))
	}

	var result bool
	switch gt.Kind {
	case boolgraph.AND:
		result = all(literals)
	case boolgraph.NAND:
		result = !all(literals)
	case boolgraph.OR:
		result = any(literals)
	case boolgraph.NOR:
		result = !any(literals)
	case boolgraph.XOR:
		result = countTrue(literals)%2 == 1
	case boolgraph.NOT:
		result = len(literals) == 1 && !literals[0]
	case boolgraph.NULL:
		result = len(literals) == 1 && literals[0]
	case boolgraph.ATLEAST:
		result = countTrue(literals) >= gt.VoteNumber
	}
	memo[gt.Index()] = result
	return result
}

func signAdjust(signed int, v bool) bool {
	if signed < 0 {
		return !v
	}
	return v
}

func all(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

func any(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}
	return false
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// Equivalent exhaustively compares a and b over every assignment to vars,
// returning true iff they compute the same value on all 2^len(vars)
// assignments. Intended for test use only, over the small variable counts
// (≤20) a unit test's fixtures have — the combinatorial blow-up makes it
// unsuitable for anything larger.
func Equivalent(a, b *boolgraph.Gate, vars []int) bool {
	n := len(vars)
	total := uint64(1) << uint(n)
	for mask := uint64(0); mask < total; mask++ {
		assign := make(map[int]bool, n)
		for i, idx := range vars {
			assign[idx] = mask&(1<<uint(i)) != 0
		}
		if Evaluate(a, assign) != Evaluate(b, assign) {
			return false
		}
	}
	return true
}

// SatisfyingAssignments returns the exact count of satisfying assignments
// over vars as a big.Int, purely for diagnostic reporting in tests. The
// count is at most 2^len(vars), the number of assignments enumerated.
func SatisfyingAssignments(gt *boolgraph.Gate, vars []int) *big.Int {
	n := len(vars)
	total := uint64(1) << uint(n)
	count := new(big.Int)
	for mask := uint64(0); mask < total; mask++ {
		assign := make(map[int]bool, n)
		for i, idx := range vars {
			assign[idx] = mask&(1<<uint(i)) != 0
		}
		if Evaluate(gt, assign) {
			count.Add(count, big.NewInt(1))
		}
	}
	return count
}
