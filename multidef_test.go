// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectMultipleDefinitionsMergesIdenticalGates(t *testing.T) {
	g := NewEmptyGraph()
	root := g.AddGate(OR, 0)
	dup1 := g.AddGate(AND, 0)
	dup2 := g.AddGate(AND, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	g.Connect(dup1, 1, a)
	g.Connect(dup1, 1, b)
	g.Connect(dup2, 1, a)
	g.Connect(dup2, 1, b)
	g.Connect(root, 1, dup1)
	g.Connect(root, 1, dup2)
	g.Finish(root)

	p := NewPreprocessor(g)
	p.DetectMultipleDefinitions()

	require.Equal(t, 1, root.argCount(), "both references to the duplicate gates must collapse onto one shared gate")
	_, stillLive := g.Gates[dup2.index]
	require.False(t, stillLive, "the duplicate that lost its last parent must be detached")
}

func TestDetectMultipleDefinitionsSparesModules(t *testing.T) {
	g := NewEmptyGraph()
	root := g.AddGate(OR, 0)
	dup1 := g.AddGate(AND, 0)
	dup2 := g.AddGate(AND, 0)
	a := g.AddVariable("a")
	b := g.AddVariable("b")
	g.Connect(dup1, 1, a)
	g.Connect(dup1, 1, b)
	g.Connect(dup2, 1, a)
	g.Connect(dup2, 1, b)
	g.Connect(root, 1, dup1)
	g.Connect(root, 1, dup2)
	g.Finish(root)
	g.turnModule(dup2)

	p := NewPreprocessor(g)
	p.DetectMultipleDefinitions()

	require.Equal(t, 2, root.argCount(), "a module must never be merged away even if structurally identical to another gate")
}
