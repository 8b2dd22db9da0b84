// Copyright (c) 2025 Visvasity LLC

package nonmax

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/visvasity/nonmaxgen/nonzero"
)

// isSigned reports whether the type parameter is a signed integer type.
func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// maxOf returns the maximum representable value of T.
func maxOf[T constraints.Integer]() T {
	var zero T
	if isSigned[T]() {
		return ^minOf[T]()
	}
	return ^zero
}

// minOf returns the minimum representable value of T.
func minOf[T constraints.Integer]() T {
	var zero T
	if isSigned[T]() {
		shift := unsafe.Sizeof(zero)*8 - 1
		return T(1) << shift
	}
	return zero
}

// primName returns the type parameter's name with the first letter
// upper-cased, for use in debug formatting ("uint8" -> "Uint8").
func primName[T constraints.Integer]() string {
	name := reflect.TypeFor[T]().Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

// NonMax holds an integer of type T that is never the maximum value of
// T. The value is stored XORed with the maximum, so the excluded value
// is the only input that would produce zero storage.
type NonMax[T constraints.Integer] struct {
	v nonzero.NonZero[T]
}

// NewNonMax returns v as a NonMax value. Returns false if v is the
// maximum value of T.
func NewNonMax[T constraints.Integer](v T) (NonMax[T], bool) {
	if v == maxOf[T]() {
		return NonMax[T]{}, false
	}
	return UncheckedNonMax(v), true
}

// UncheckedNonMax returns v as a NonMax value without validating it.
//
// Precondition: v is not the maximum value of T. Violating it stores
// the zero bit pattern, which option types read as absent and which
// breaks the Get round trip.
func UncheckedNonMax[T constraints.Integer](v T) NonMax[T] {
	return NonMax[T]{v: nonzero.Unchecked(v ^ maxOf[T]())}
}

// Get returns the integer value.
func (x NonMax[T]) Get() T {
	return x.v.Get() ^ maxOf[T]()
}

// Compare returns -1, 0 or +1 depending on whether x is less than,
// equal to or greater than y. Comparison is over the integer values,
// not the stored bits; XOR masking does not preserve numeric order.
func (x NonMax[T]) Compare(y NonMax[T]) int {
	return cmp.Compare(x.Get(), y.Get())
}

// Less returns true if x's integer value is less than y's.
func (x NonMax[T]) Less(y NonMax[T]) bool {
	return x.Get() < y.Get()
}

// String returns the integer value in its default formatting.
func (x NonMax[T]) String() string {
	return fmt.Sprintf("%d", x.Get())
}

// GoString returns a representation of the form NonMaxUint8(123).
func (x NonMax[T]) GoString() string {
	return fmt.Sprintf("NonMax%s(%d)", primName[T](), x.Get())
}

// NonMin holds an integer of type T that is never the minimum value of
// T. The value is stored XORed with the minimum, so the excluded value
// is the only input that would produce zero storage. For unsigned types
// the minimum is zero, so NonMin stores the value as-is.
type NonMin[T constraints.Integer] struct {
	v nonzero.NonZero[T]
}

// NewNonMin returns v as a NonMin value. Returns false if v is the
// minimum value of T.
func NewNonMin[T constraints.Integer](v T) (NonMin[T], bool) {
	if v == minOf[T]() {
		return NonMin[T]{}, false
	}
	return UncheckedNonMin(v), true
}

// UncheckedNonMin returns v as a NonMin value without validating it.
//
// Precondition: v is not the minimum value of T. Violating it stores
// the zero bit pattern, which option types read as absent and which
// breaks the Get round trip.
func UncheckedNonMin[T constraints.Integer](v T) NonMin[T] {
	return NonMin[T]{v: nonzero.Unchecked(v ^ minOf[T]())}
}

// Get returns the integer value.
func (x NonMin[T]) Get() T {
	return x.v.Get() ^ minOf[T]()
}

// Compare returns -1, 0 or +1 depending on whether x is less than,
// equal to or greater than y. Comparison is over the integer values,
// not the stored bits; XOR masking does not preserve numeric order.
func (x NonMin[T]) Compare(y NonMin[T]) int {
	return cmp.Compare(x.Get(), y.Get())
}

// Less returns true if x's integer value is less than y's.
func (x NonMin[T]) Less(y NonMin[T]) bool {
	return x.Get() < y.Get()
}

// String returns the integer value in its default formatting.
func (x NonMin[T]) String() string {
	return fmt.Sprintf("%d", x.Get())
}

// GoString returns a representation of the form NonMinInt32(123).
func (x NonMin[T]) GoString() string {
	return fmt.Sprintf("NonMin%s(%d)", primName[T](), x.Get())
}
