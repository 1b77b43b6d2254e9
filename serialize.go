// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// The Graph's in-memory representation is a cyclic, pointer-based DAG
// (weak parent back-references alongside strong child ownership), which
// cbor (like any encoder) cannot walk directly. wireGraph is the acyclic,
// index-addressed DTO that actually gets encoded; MarshalBinary/
// UnmarshalGraph translate to and from it.
type wireVariable struct {
	Index int    `cbor:"1,keyasint"`
	Name  string `cbor:"2,keyasint"`
}

type wireConstant struct {
	Index int  `cbor:"1,keyasint"`
	Value bool `cbor:"2,keyasint"`
}

type wireGate struct {
	Index      int   `cbor:"1,keyasint"`
	Kind       Kind  `cbor:"2,keyasint"`
	State      State `cbor:"3,keyasint"`
	VoteNumber int   `cbor:"4,keyasint"`
	Module     bool  `cbor:"5,keyasint"`
	Args       []int `cbor:"6,keyasint"` // signed indices into the shared Variable/Constant/Gate index space
}

type wireGraph struct {
	RootIndex int            `cbor:"1,keyasint"`
	RootSign  int            `cbor:"2,keyasint"`
	Variables []wireVariable `cbor:"3,keyasint"`
	Constants []wireConstant `cbor:"4,keyasint"`
	Gates     []wireGate     `cbor:"5,keyasint"`
}

// MarshalBinary encodes g as CBOR, the wire format SPEC_FULL.md §6
// specifies for handing a processed graph to a downstream consumer (e.g.
// a BDD or cut-set encoder).
func (g *Graph) MarshalBinary() ([]byte, error) {
	w := wireGraph{RootIndex: g.Root.index, RootSign: g.RootSign}

	varIdx := make([]int, 0, len(g.Variables))
	for i := range g.Variables {
		varIdx = append(varIdx, i)
	}
	sort.Ints(varIdx)
	for _, i := range varIdx {
		v := g.Variables[i]
		w.Variables = append(w.Variables, wireVariable{Index: v.index, Name: v.Name})
	}

	constIdx := make([]int, 0, len(g.Constants))
	for i := range g.Constants {
		constIdx = append(constIdx, i)
	}
	sort.Ints(constIdx)
	for _, i := range constIdx {
		c := g.Constants[i]
		w.Constants = append(w.Constants, wireConstant{Index: c.index, Value: c.Value})
	}

	gateIdx := make([]int, 0, len(g.Gates))
	for i := range g.Gates {
		gateIdx = append(gateIdx, i)
	}
	sort.Ints(gateIdx)
	for _, i := range gateIdx {
		gt := g.Gates[i]
		w.Gates = append(w.Gates, wireGate{
			Index:      gt.index,
			Kind:       gt.Kind,
			State:      gt.State,
			VoteNumber: gt.VoteNumber,
			Module:     gt.Module,
			Args:       gt.sortedArgs(),
		})
	}

	return cbor.Marshal(w)
}

// UnmarshalGraph decodes a graph previously produced by
// (*Graph).MarshalBinary.
func UnmarshalGraph(data []byte) (*Graph, error) {
	var w wireGraph
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	g := &Graph{
		RootSign:  w.RootSign,
		Gates:     make(map[int]*Gate),
		Variables: make(map[int]*Variable),
		Constants: make(map[int]*Constant),
	}

	for _, wv := range w.Variables {
		g.Variables[wv.Index] = newVariable(wv.Index, wv.Name)
	}
	for _, wc := range w.Constants {
		g.Constants[wc.Index] = newConstant(wc.Index, wc.Value)
	}
	for _, wg := range w.Gates {
		gt := newGate(wg.Index, wg.Kind)
		gt.State = wg.State
		gt.VoteNumber = wg.VoteNumber
		gt.Module = wg.Module
		g.Gates[wg.Index] = gt
	}
	for _, idx := range []int{w.RootIndex} {
		if _, ok := g.Gates[idx]; !ok {
			violate("UnmarshalGraph", "root index %d is not a gate", idx)
		}
	}

	for _, wg := range w.Gates {
		gt := g.Gates[wg.Index]
		for _, signed := range wg.Args {
			idx := abs(signed)
			switch {
			case g.Gates[idx] != nil:
				g.addArg(gt, signed, g.Gates[idx])
			case g.Variables[idx] != nil:
				g.addArg(gt, signed, g.Variables[idx])
			case g.Constants[idx] != nil:
				g.addArg(gt, signed, g.Constants[idx])
			default:
				violate("UnmarshalGraph", "gate %d references unknown index %d", wg.Index, idx)
			}
		}
		if gt.index >= g.nextIndex {
			g.nextIndex = gt.index + 1
		}
	}
	for idx := range g.Variables {
		if idx >= g.nextIndex {
			g.nextIndex = idx + 1
		}
	}
	for idx := range g.Constants {
		if idx >= g.nextIndex {
			g.nextIndex = idx + 1
		}
	}

	g.Root = g.Gates[w.RootIndex]
	g.Coherent = g.computeCoherent()
	g.Normal = g.computeNormal()
	return g, nil
}
