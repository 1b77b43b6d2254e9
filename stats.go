// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Stats is a snapshot of a graph's size, taken after a phase of Process
// when WithStats is enabled. The counts are a superset of what the
// teacher's stdio.go reported for a BDD manager (node/table counts),
// adapted to the fields a Boolean graph actually has.
type Stats struct {
	Phase     string
	Gates     int
	Variables int
	Constants int
	Modules   int
	Normal    bool
	Coherent  bool
}

// computeStats walks the current graph state and produces a Stats value
// tagged with phase.
func (g *Graph) computeStats(phase string) Stats {
	s := Stats{
		Phase:     phase,
		Gates:     len(g.Gates),
		Variables: len(g.Variables),
		Constants: len(g.Constants),
		Normal:    g.Normal,
		Coherent:  g.Coherent,
	}
	for _, gt := range g.Gates {
		if gt.isModule() {
			s.Modules++
		}
	}
	return s
}

// WriteStats renders a sequence of Stats as an aligned table, in the
// tabwriter style the teacher's stdio.go used for its own diagnostics.
func WriteStats(w io.Writer, stats []Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tGATES\tVARIABLES\tCONSTANTS\tMODULES\tNORMAL\tCOHERENT")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%t\t%t\n",
			s.Phase, s.Gates, s.Variables, s.Constants, s.Modules, s.Normal, s.Coherent)
	}
	return tw.Flush()
}
