// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package boolgraph

// Variable is a leaf Node corresponding to a basic event in the source
// fault tree. Variables have no arguments of their own; enter == exit
// always holds for them once timing is assigned.
type Variable struct {
	nodeHeader
	Name string
}

func newVariable(index int, name string) *Variable {
	return &Variable{nodeHeader: newNodeHeader(index), Name: name}
}
