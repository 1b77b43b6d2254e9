// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package builder_test

import (
	"testing"

	"github.com/rakhimov/boolgraph"
	"github.com/rakhimov/boolgraph/internal/builder"
	"github.com/stretchr/testify/require"
)

func TestBuildSimpleAndGate(t *testing.T) {
	b := builder.New("top").
		Var("a").
		Var("b").
		Gate(builder.GateDef{Name: "top", Kind: boolgraph.AND, Args: []string{"a", "b"}})

	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, boolgraph.AND, g.Root.Kind)
	require.Equal(t, 2, len(g.Variables))
}

func TestBuildRejectsUndefinedArgument(t *testing.T) {
	b := builder.New("top").
		Var("a").
		Gate(builder.GateDef{Name: "top", Kind: boolgraph.AND, Args: []string{"a", "ghost"}})

	_, err := b.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ghost")
}

func TestBuildRejectsMissingRoot(t *testing.T) {
	b := builder.New("top").Var("a")
	_, err := b.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "top")
}

func TestBuildRejectsBadAtleastVote(t *testing.T) {
	b := builder.New("top").
		Var("a").Var("b").
		Gate(builder.GateDef{Name: "top", Kind: boolgraph.ATLEAST, VoteNumber: 5, Args: []string{"a", "b"}})

	_, err := b.Build()
	require.Error(t, err)
}

func TestBuildAggregatesMultipleErrors(t *testing.T) {
	b := builder.New("top").
		Gate(builder.GateDef{Name: "top", Kind: boolgraph.AND, Args: []string{"ghost1", "ghost2"}})

	_, err := b.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ghost1")
	require.Contains(t, err.Error(), "ghost2")
}

func TestBuildComplementedArgument(t *testing.T) {
	b := builder.New("top").
		Var("a").Var("b").
		Gate(builder.GateDef{Name: "top", Kind: boolgraph.OR, Args: []string{"a", "-b"}})

	g, err := b.Build()
	require.NoError(t, err)
	found := false
	for s := range g.Root.VarArgs {
		if s < 0 {
			found = true
		}
	}
	require.True(t, found, "a '-' prefixed argument name must produce a complemented edge")
}
