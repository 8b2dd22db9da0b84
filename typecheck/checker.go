// Copyright (c) 2025 Visvasity LLC

package typecheck

import (
	"fmt"
	"go/types"
	"runtime"
	"strings"
)

// TypeData describes one named instantiation of the sentinel-excluded
// integer grid: a generated type name, the primitive type backing it,
// and which of the two sentinels (minimum or maximum) it excludes.
type TypeData struct {
	Name string // generated type name, e.g. "NonMaxUint8"
	Prim string // backing primitive type, e.g. "uint8"

	Bits   int // primitive width in bits; 0 for pointer-sized int/uint
	Signed bool

	Sentinel    string // one of ["min","max"]
	SentinelDoc string // how the excluded value reads in doc comments, e.g. "math.MaxUint8"

	Generic       string // backing generic type, one of ["NonMax","NonMin"]
	OptionName    string // generated option alias name, e.g. "NonMaxUint8Option"
	OptionGeneric string // backing generic option type, one of ["MaxOption","MinOption"]
}

type primData struct {
	name   string
	bits   int
	signed bool
}

var prims = []primData{
	{"uint8", 8, false},
	{"uint16", 16, false},
	{"uint32", 32, false},
	{"uint64", 64, false},
	{"uint", 0, false},
	{"int8", 8, true},
	{"int16", 16, true},
	{"int32", 32, true},
	{"int64", 64, true},
	{"int", 0, true},
}

func title(s string) string {
	return strings.ToUpper(s[:1]) + s[1:]
}

func sentinelDoc(p primData, sentinel string) string {
	if sentinel == "max" {
		return "math.Max" + title(p.name)
	}
	if !p.signed {
		return "0"
	}
	return "math.Min" + title(p.name)
}

// Grid returns the full instantiation table: every primitive integer
// width and signedness, for both sentinel choices.
func Grid() []*TypeData {
	var grid []*TypeData
	for _, sentinel := range []string{"max", "min"} {
		generic, optionGeneric := "NonMax", "MaxOption"
		if sentinel == "min" {
			generic, optionGeneric = "NonMin", "MinOption"
		}
		for _, p := range prims {
			name := generic + title(p.name)
			grid = append(grid, &TypeData{
				Name:          name,
				Prim:          p.name,
				Bits:          p.bits,
				Signed:        p.signed,
				Sentinel:      sentinel,
				SentinelDoc:   sentinelDoc(p, sentinel),
				Generic:       generic,
				OptionName:    name + "Option",
				OptionGeneric: optionGeneric,
			})
		}
	}
	return grid
}

type Checker struct {
	typeDataMap map[string]*TypeData

	sizer types.Sizes
}

func New() *Checker {
	return &Checker{
		typeDataMap: make(map[string]*TypeData),
		sizer:       types.SizesFor(runtime.Compiler, runtime.GOARCH),
	}
}

func (c *Checker) TypeDataMap() map[string]*TypeData {
	return c.typeDataMap
}

// Check validates every grid entry against the runtime package: the
// primitive must be an integer basic type of the declared width and
// signedness, and the backing generic types must exist in the package
// with a single type parameter.
func (c *Checker) Check(pkg *types.Package, grid []*TypeData) error {
	for _, td := range grid {
		if err := c.checkPrim(td); err != nil {
			return err
		}
		if err := c.checkGeneric(pkg, td.Generic); err != nil {
			return err
		}
		if err := c.checkGeneric(pkg, td.OptionGeneric); err != nil {
			return err
		}
		if x, ok := c.typeDataMap[td.Name]; ok && x != td {
			return fmt.Errorf("duplicate instantiation name %q", td.Name)
		}
		c.typeDataMap[td.Name] = td
	}
	return nil
}

func (c *Checker) checkPrim(td *TypeData) error {
	object := types.Universe.Lookup(td.Prim)
	if object == nil {
		return fmt.Errorf("primitive type %q for %q not found", td.Prim, td.Name)
	}
	basic, ok := object.Type().Underlying().(*types.Basic)
	if !ok {
		return fmt.Errorf("primitive type %q for %q is not a basic type", td.Prim, td.Name)
	}
	if basic.Info()&types.IsInteger == 0 {
		return fmt.Errorf("primitive type %q for %q is not an integer type", td.Prim, td.Name)
	}
	if unsigned := basic.Info()&types.IsUnsigned != 0; unsigned == td.Signed {
		return fmt.Errorf("primitive type %q for %q has wrong signedness", td.Prim, td.Name)
	}
	if td.Bits != 0 {
		if size := c.sizer.Sizeof(basic); size != int64(td.Bits/8) {
			return fmt.Errorf("primitive type %q for %q has size %d, want %d", td.Prim, td.Name, size, td.Bits/8)
		}
	}
	return nil
}

func (c *Checker) checkGeneric(pkg *types.Package, name string) error {
	object := pkg.Scope().Lookup(name)
	if object == nil {
		return fmt.Errorf("generic type %q not found in package %q", name, pkg.Path())
	}
	named, ok := object.Type().(*types.Named)
	if !ok {
		return fmt.Errorf("%q in package %q is not a named type", name, pkg.Path())
	}
	if n := named.TypeParams().Len(); n != 1 {
		return fmt.Errorf("%q in package %q has %d type parameters, want 1", name, pkg.Path(), n)
	}
	return nil
}
