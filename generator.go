// Copyright (c) 2025 Visvasity LLC

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"maps"
	"slices"

	"github.com/visvasity/nonmaxgen/typecheck"
)

type Generator struct {
	pkgName string

	bufferMap map[string]*bytes.Buffer
}

func newGenerator(pkgName string) *Generator {
	return &Generator{
		pkgName:   pkgName,
		bufferMap: make(map[string]*bytes.Buffer),
	}
}

func (g *Generator) getBuffer(fileName string) *bytes.Buffer {
	if b, ok := g.bufferMap[fileName]; ok {
		return b
	}
	b := new(bytes.Buffer)
	g.bufferMap[fileName] = b
	return b
}

// P writes a formatted line into the named file's buffer.
func (g *Generator) P(fileName, line string, args ...any) {
	buf := g.getBuffer(fileName)
	fmt.Fprintf(buf, line, args...)
	fmt.Fprintln(buf)
}

// Files returns the base names of all generated files in sorted order.
func (g *Generator) Files() []string {
	return slices.Sorted(maps.Keys(g.bufferMap))
}

// GetSource returns the named file's content as formatted Go source.
func (g *Generator) GetSource(fileName string) []byte {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "// Copyright (c) 2025 Visvasity LLC\n\n")
	fmt.Fprintf(buf, "// Code generated by nonmaxgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", g.pkgName)
	buf.Write(g.getBuffer(fileName).Bytes())

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// Should never happen, but can arise when developing this code.
		// The user can compile the output to see the error.
		log.Printf("warning: internal error: invalid Go generated: %s", err)
		log.Printf("warning: compile the package to analyze the error")
		return buf.Bytes()
	}
	return src
}

// generateTypes emits the named type aliases with their checked and
// unchecked constructors into the "types" file.
func (g *Generator) generateTypes(grid []*typecheck.TypeData) {
	const file = "types"
	for _, td := range grid {
		g.P(file, "// %s is an integer of type %s that is known to not equal %s.", td.Name, td.Prim, td.SentinelDoc)
		g.P(file, "type %s = %s[%s]", td.Name, td.Generic, td.Prim)
		g.P(file, "")
		g.P(file, "// New%s returns v as a %s, or false if v is %s.", td.Name, td.Name, td.SentinelDoc)
		g.P(file, "func New%s(v %s) (%s, bool) { return New%s(v) }", td.Name, td.Prim, td.Name, td.Generic)
		g.P(file, "")
		g.P(file, "// Unchecked%s returns v as a %s without validating it.", td.Name, td.Name)
		g.P(file, "//")
		g.P(file, "// Precondition: v != %s.", td.SentinelDoc)
		g.P(file, "func Unchecked%s(v %s) %s { return Unchecked%s(v) }", td.Name, td.Prim, td.Name, td.Generic)
		g.P(file, "")
	}
}

// generateOptions emits the named option aliases with their checked
// constructors into the "options" file.
func (g *Generator) generateOptions(grid []*typecheck.TypeData) {
	const file = "options"
	for _, td := range grid {
		g.P(file, "// %s is an optional %s that takes the same space as %s itself.", td.OptionName, td.Name, td.Prim)
		g.P(file, "// The zero value is None.")
		g.P(file, "type %s = %s[%s]", td.OptionName, td.OptionGeneric, td.Prim)
		g.P(file, "")
		g.P(file, "// New%s returns v as a %s. Returns None if v is %s.", td.OptionName, td.OptionName, td.SentinelDoc)
		g.P(file, "func New%s(v %s) %s { return New%s(v) }", td.OptionName, td.Prim, td.OptionName, td.OptionGeneric)
		g.P(file, "")
	}
}
