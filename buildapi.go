// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// This file is the narrow, exported surface internal/builder (and any
// other external collaborator) uses to assemble a Graph node by node,
// without reaching into the package's unexported construction helpers
// directly. The Preprocessor itself never uses these: its own rewrites go
// through Graph's unexported newGate/addArg/etc., which additionally
// maintain the constant/null worklists these exported wrappers don't
// bother with (a freshly built graph has no backlog to seed).

// NewEmptyGraph returns a Graph with no nodes yet, ready for a builder to
// populate via AddVariable/AddConstant/AddGate/Connect before calling
// Finish.
func NewEmptyGraph() *Graph {
	return &Graph{
		RootSign:  1,
		Gates:     make(map[int]*Gate),
		Variables: make(map[int]*Variable),
		Constants: make(map[int]*Constant),
	}
}

// AddVariable registers a fresh named Variable leaf and returns it.
func (g *Graph) AddVariable(name string) *Variable {
	v := newVariable(g.freshIndex(), name)
	g.Variables[v.index] = v
	return v
}

// AddConstant registers a fresh Constant leaf and returns it.
func (g *Graph) AddConstant(value bool) *Constant {
	c := newConstant(g.freshIndex(), value)
	g.Constants[c.index] = c
	return c
}

// AddGate registers a fresh Gate of the given kind (and, for ATLEAST,
// vote number) with no arguments yet, and returns it.
func (g *Graph) AddGate(kind Kind, voteNumber int) *Gate {
	gt := g.newGate(kind)
	gt.VoteNumber = voteNumber
	return gt
}

// Connect adds child as an argument of parent, under the given sign
// (positive for a plain reference, negative for a complemented one).
func (g *Graph) Connect(parent *Gate, sign int, child Node) {
	signed := child.Index()
	if sign < 0 {
		signed = -signed
	}
	g.addArg(parent, signed, child)
}

// Finish designates root as the graph's root and derives the Coherent and
// Normal flags from the graph's final shape, the last step of assembling
// a Graph from outside the package.
func (g *Graph) Finish(root *Gate) *Graph {
	g.Root = root
	g.Coherent = g.computeCoherent()
	g.Normal = g.computeNormal()
	return g
}
