// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package boolgraph implements a Boolean-graph preprocessor: a multi-phase
structural rewriter that takes a well-formed Boolean graph derived from a
fault tree and returns a semantically equivalent graph in a normalized
form suitable for BDD/ZBDD/MOCUS evaluation.

Basics

A Graph is a DAG of Gates over leaf Variables and Constants. Every Gate
carries a kind (AND, OR, NAND, NOR, NOT, NULL, XOR, ATLEAST) and a set of
signed arguments: a positive signed index denotes a plain reference to a
child, a negative one a complemented reference. Gates own their argument
references; children hold only weak, non-owning back-references to their
parents for navigation.

Preprocessing

Preprocessor.Process runs five phases (PhaseI..PhaseV) that absorb constants and
single-argument gates, normalize gate kinds, merge duplicate
definitions, detect independent modules, merge common arguments, factor
distributive terms, remove Boolean redundancy, and decompose shared
nodes — converging on a graph restricted to OR, AND, and NULL gates.

Use of build tags

Compiling with the build tag `debug` switches the phase and gate traces
to Trace-level records carrying gate and variable counts, the Normal and
Coherent flags, and each traced gate's index, kind, state and argument
count, mirroring the original BuDDy-derived debug
facility this library borrows its tracing idiom from.

Automatic memory management

The library is written in pure Go. A gate's children are kept alive only
as long as some parent's strong argument reference exists; the garbage
collector reclaims a detached subgraph on its own once the last such
reference is dropped, with no manual reference counting required.
*/
package boolgraph
