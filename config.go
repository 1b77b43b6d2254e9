// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"github.com/rs/zerolog"
)

// config holds the tunable parameters of a Preprocessor.
type config struct {
	logger      zerolog.Logger
	maxDepth    int  // stored by WithMaxDepth; no pass reads it, and every DFS pass recurses without a depth limit
	collectStat bool // whether Process accumulates a Stats snapshot per phase
	coalesceAll bool // whether Phase V uses layered coalescence (default true); WithNonCommonCoalescence clears it
}

func makeconfig() *config {
	return &config{
		logger:      zerolog.Nop(),
		maxDepth:    4096,
		collectStat: false,
		coalesceAll: true,
	}
}

// Option configures a Preprocessor. The pattern mirrors the functional
// options used to size and tune the BDD node/cache tables in the BDD
// library this package's ambient code is adapted from.
type Option func(*config)

// WithLogger sets the logger used for per-phase DEBUG/TRACE diagnostics.
// The default is a no-op logger, matching the contract that the
// preprocessor emits diagnostics only through an injected sink (SPEC_FULL.md §6).
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMaxDepth records a recursion depth for DFS passes. The value is
// stored in the configuration only: the DFS passes (timing, module
// detection, PropagateComplements, normalization) always recurse and
// have no explicit-stack traversal to switch to.
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}

// WithStats enables collection of a Stats snapshot after every phase.
func WithStats(enabled bool) Option {
	return func(c *config) { c.collectStat = enabled }
}

// WithNonCommonCoalescence restricts coalescence to single-parent
// children only, even during Phase V. Used by tests that want to observe
// the narrower, "non-common" coalescence mode described in SPEC_FULL.md §4.D.
func WithNonCommonCoalescence() Option {
	return func(c *config) { c.coalesceAll = false }
}
