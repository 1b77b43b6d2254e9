// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// Constant is a leaf Node carrying a fixed truth value. Constants exist
// only transiently: the constant propagator walks each Constant's
// parents, absorbs the value, and detaches the Constant once every
// reference to it has been removed. A well-formed output graph contains
// none (SPEC_FULL.md §6 output contract).
type Constant struct {
	nodeHeader
	Value bool
}

func newConstant(index int, value bool) *Constant {
	return &Constant{nodeHeader: newNodeHeader(index), Value: value}
}
