// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

import (
	"fmt"
	"io"
)

// WriteDot renders g in the Graphviz dot language, the same diagnostic
// format the teacher's stdio.go produced for a BDD, adapted to a Boolean
// graph's node kinds and signed edges (a complemented edge is drawn
// dashed).
func WriteDot(w io.Writer, g *Graph) error {
	fmt.Fprintln(w, "digraph BooleanGraph {")
	fmt.Fprintln(w, "  rankdir=TB;")
	fmt.Fprintf(w, "  root [shape=point]; root -> n%d;\n", g.Root.index)

	visited := make(map[int]bool)
	var visit func(gt *Gate)
	visit = func(gt *Gate) {
		if visited[gt.index] {
			return
		}
		visited[gt.index] = true
		label := gt.Kind.String()
		if gt.Kind == ATLEAST {
			label = fmt.Sprintf("ATLEAST(%d)", gt.VoteNumber)
		}
		if gt.State != Normal {
			label = gt.State.String()
		}
		shape := "box"
		if gt.isModule() {
			shape = "box,peripheries=2"
		}
		fmt.Fprintf(w, "  n%d [label=%q shape=%s];\n", gt.index, label, shape)
		for _, s := range gt.sortedArgs() {
			child := gt.childAt(s)
			style := "solid"
			if s < 0 {
				style = "dashed"
			}
			switch c := child.(type) {
			case *Gate:
				fmt.Fprintf(w, "  n%d -> n%d [style=%s];\n", gt.index, c.index, style)
				visit(c)
			case *Variable:
				fmt.Fprintf(w, "  v%d [label=%q shape=ellipse];\n", c.index, c.Name)
				fmt.Fprintf(w, "  n%d -> v%d [style=%s];\n", gt.index, c.index, style)
			case *Constant:
				fmt.Fprintf(w, "  c%d [label=%q shape=diamond];\n", c.index, boolLabel(c.Value))
				fmt.Fprintf(w, "  n%d -> c%d [style=%s];\n", gt.index, c.index, style)
			}
		}
	}
	visit(g.Root)

	fmt.Fprintln(w, "}")
	return nil
}

func boolLabel(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
