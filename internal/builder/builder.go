// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package builder is the external collaborator that turns a flat,
// textual description of a fault tree (as a parser or a user's own code
// might produce) into a boolgraph.Graph, validating it as it goes
// (SPEC_FULL.md §6, External Interfaces). A boolgraph.Graph built any
// other way is only as well-formed as its caller made it; Builder is
// where that caller-side responsibility actually lives.
package builder

import (
	"fmt"

	"github.com/rakhimov/boolgraph"
	"go.uber.org/multierr"
)

// GateDef describes one gate to add to the tree under construction: a
// stable name, its operator kind, its vote number (ATLEAST only), and the
// signed names of its arguments (a leading '-' marks a complemented
// reference).
type GateDef struct {
	Name       string
	Kind       boolgraph.Kind
	VoteNumber int
	Args       []string
}

// Builder accumulates gate, variable, and constant definitions by name
// and resolves them into a boolgraph.Graph on Build.
type Builder struct {
	root  string
	gates map[string]GateDef
	vars  map[string]bool
	err   error
}

// New returns a Builder whose top gate is named root.
func New(root string) *Builder {
	return &Builder{root: root, gates: make(map[string]GateDef), vars: make(map[string]bool)}
}

// Gate registers a gate definition. Redefining an already-registered name
// is recorded as a validation error but does not stop the builder from
// accepting further definitions, so Build can report every problem in one
// pass instead of just the first.
func (b *Builder) Gate(def GateDef) *Builder {
	if _, dup := b.gates[def.Name]; dup {
		b.err = multierr.Append(b.err, fmt.Errorf("gate %q defined more than once", def.Name))
		return b
	}
	b.gates[def.Name] = def
	return b
}

// Var declares name as a basic event (variable leaf).
func (b *Builder) Var(name string) *Builder {
	b.vars[name] = true
	return b
}

// Build validates the accumulated definitions and, if they are
// consistent, assembles and returns a boolgraph.Graph. All structural
// problems found are returned together via multierr, not just the first.
func (b *Builder) Build() (*boolgraph.Graph, error) {
	var errs error
	if _, ok := b.gates[b.root]; !ok {
		errs = multierr.Append(errs, fmt.Errorf("root gate %q is not defined", b.root))
	}
	for name, def := range b.gates {
		errs = multierr.Append(errs, b.validateGate(name, def))
	}
	if b.err != nil {
		errs = multierr.Append(errs, b.err)
	}
	if errs != nil {
		return nil, errs
	}

	g := boolgraph.NewEmptyGraph()
	gates := make(map[string]*boolgraph.Gate, len(b.gates))
	variables := make(map[string]*boolgraph.Variable, len(b.vars))
	for name := range b.gates {
		gates[name] = g.AddGate(b.gates[name].Kind, b.gates[name].VoteNumber)
	}
	for name := range b.vars {
		variables[name] = g.AddVariable(name)
	}
	for name, def := range b.gates {
		gt := gates[name]
		for _, arg := range def.Args {
			sign, bare := 1, arg
			if len(arg) > 0 && arg[0] == '-' {
				sign, bare = -1, arg[1:]
			}
			if child, ok := gates[bare]; ok {
				g.Connect(gt, sign, child)
				continue
			}
			g.Connect(gt, sign, variables[bare])
		}
	}
	return g.Finish(gates[b.root]), nil
}

// validateGate checks a single gate definition's internal consistency:
// every argument name resolves to something declared, ATLEAST carries a
// sane vote number, and no argument names itself.
func (b *Builder) validateGate(name string, def GateDef) error {
	var errs error
	if def.Kind == boolgraph.ATLEAST {
		if def.VoteNumber < 1 || def.VoteNumber >= len(def.Args) {
			errs = multierr.Append(errs, fmt.Errorf("gate %q: vote number %d invalid for %d args", name, def.VoteNumber, len(def.Args)))
		}
	}
	if def.Kind == boolgraph.NOT && len(def.Args) != 1 {
		errs = multierr.Append(errs, fmt.Errorf("gate %q: NOT must have exactly one argument, got %d", name, len(def.Args)))
	}
	seen := make(map[string]bool)
	for _, arg := range def.Args {
		bare := arg
		if len(bare) > 0 && bare[0] == '-' {
			bare = bare[1:]
		}
		if bare == name {
			errs = multierr.Append(errs, fmt.Errorf("gate %q references itself", name))
		}
		if seen[arg] {
			errs = multierr.Append(errs, fmt.Errorf("gate %q: duplicate argument %q", name, arg))
		}
		seen[arg] = true
		if _, ok := b.gates[bare]; ok {
			continue
		}
		if b.vars[bare] {
			continue
		}
		errs = multierr.Append(errs, fmt.Errorf("gate %q: argument %q is neither a gate nor a declared variable", name, bare))
	}
	return errs
}
