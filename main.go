// Copyright (c) 2025 Visvasity LLC

// Command nonmaxgen generates the named single-width type declarations
// for the sentinel-excluded integer types in the nonmax package.
//
// For every primitive integer type (uint8 through uint64, int8 through
// int64, and the pointer-sized uint/int) and both sentinel choices
// (minimum and maximum value), running
//
//	nonmaxgen -outdir ./nonmax
//
// writes types.nonmaxgen.go and options.nonmaxgen.go containing
// declarations like
//
//	type NonMaxUint8 = NonMax[uint8]
//
//	func NewNonMaxUint8(v uint8) (NonMaxUint8, bool)
//	func UncheckedNonMaxUint8(v uint8) NonMaxUint8
//
//	type NonMaxUint8Option = MaxOption[uint8]
//
//	func NewNonMaxUint8Option(v uint8) NonMaxUint8Option
//
// The generator loads the runtime package and validates the
// instantiation table against it before writing any files, so a rename
// or a signature change in the generic runtime types fails loudly here
// instead of producing uncompilable output.
//
// The 128-bit types are not generated; Go has no 128-bit integer kind,
// so they are written out by hand in the nonmax package over the
// num.U128/num.I128 value types.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/visvasity/nonmaxgen/typecheck"
)

var (
	outPkg     = flag.String("outpkg", "nonmax", "package name for the generated files")
	outDir     = flag.String("outdir", "", "output directory for the generated files")
	runtimePkg = flag.String("runtimepkg", "github.com/visvasity/nonmaxgen/nonmax", "package path holding the generic runtime types")
)

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of nonmaxgen:\n")
	fmt.Fprintf(os.Stderr, "\tnonmaxgen -outdir '...' [-outpkg '...'] [-runtimepkg '...']\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("nonmaxgen: ")

	flag.Usage = Usage
	flag.Parse()

	if *outDir == "" {
		log.Fatalf("output directory must be set with -outdir flag")
	}

	pkg, err := loadPackage(*runtimePkg)
	if err != nil {
		log.Fatal(err)
	}

	grid := typecheck.Grid()
	checker := typecheck.New()
	if err := checker.Check(pkg.Types, grid); err != nil {
		log.Fatal(err)
	}

	g := newGenerator(*outPkg)
	g.generateTypes(grid)
	g.generateOptions(grid)

	for _, file := range g.Files() {
		src := g.GetSource(file)

		outputName := filepath.Join(*outDir, file+".nonmaxgen.go")
		if err := os.WriteFile(outputName, src, 0644); err != nil {
			log.Fatalf("writing output: %s", err)
		}
	}
}

func loadPackage(pkg string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.LoadTypes | packages.NeedTypesInfo | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, pkg)
	if err != nil {
		return nil, err
	}
	if len(pkgs[0].Errors) != 0 {
		return nil, fmt.Errorf("loading %q: %v", pkg, pkgs[0].Errors[0])
	}
	return pkgs[0], nil
}
