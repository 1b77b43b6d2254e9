// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import "github.com/bits-and-blooms/bitset"

// Support computes the variable-support set of gt: the bitset of variable
// indices reachable below it, memoized per gate so that a repeated query
// over a DAG with heavy sharing does the recursive work at most once per
// gate. This is an independent, exact check a caller can run alongside
// (or instead of) the timing-interval approximation DetectModules relies
// on internally — two gates are guaranteed support-disjoint iff their
// Support() bitsets don't intersect, which module detection's interval
// test only approximates when sharing crosses several levels.
func Support(gt *Gate) *bitset.BitSet {
	memo := make(map[int]*bitset.BitSet)
	return support(gt, memo)
}

func support(gt *Gate, memo map[int]*bitset.BitSet) *bitset.BitSet {
	if b, ok := memo[gt.index]; ok {
		return b
	}
	b := bitset.New(0)
	for _, v := range gt.VarArgs {
		b.Set(uint(v.index))
	}
	for _, c := range gt.GateArgs {
		b = b.Union(support(c, memo))
	}
	memo[gt.index] = b
	return b
}

// SupportDisjoint reports whether a and b share no variable.
func SupportDisjoint(a, b *Gate) bool {
	return Support(a).IntersectionCardinality(Support(b)) == 0
}
