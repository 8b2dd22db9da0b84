// Copyright (c) 2025 Visvasity LLC

package nonmax

import (
	"fmt"
	"math"

	num "github.com/shabbyrobe/go-num"

	"github.com/visvasity/nonmaxgen/nonzero"
)

// The 128-bit widths cannot go through the generic NonMax/NonMin
// implementation because Go has no 128-bit integer kind, so they are
// written out explicitly over num.U128/num.I128. Storage is always the
// unsigned bit pattern; signed values convert on the way in and out.

var (
	// Bit patterns of the excluded sentinels.
	maxU128Bits = num.U128FromRaw(math.MaxUint64, math.MaxUint64)
	maxI128Bits = num.U128FromRaw(math.MaxInt64, math.MaxUint64)
	minI128Bits = num.U128FromRaw(1<<63, 0)
)

// NonMaxU128 is a num.U128 that is known to not equal the maximum
// 128-bit unsigned value.
type NonMaxU128 struct {
	v nonzero.U128
}

// NewNonMaxU128 returns v as a NonMaxU128, or false if v is the maximum
// 128-bit unsigned value.
func NewNonMaxU128(v num.U128) (NonMaxU128, bool) {
	if v == maxU128Bits {
		return NonMaxU128{}, false
	}
	return UncheckedNonMaxU128(v), true
}

// UncheckedNonMaxU128 returns v as a NonMaxU128 without validating it.
//
// Precondition: v is not the maximum 128-bit unsigned value.
func UncheckedNonMaxU128(v num.U128) NonMaxU128 {
	return NonMaxU128{v: nonzero.UncheckedU128(v.Xor(maxU128Bits))}
}

// Get returns the integer value.
func (x NonMaxU128) Get() num.U128 {
	return x.v.Get().Xor(maxU128Bits)
}

// Compare returns -1, 0 or +1 depending on whether x is less than,
// equal to or greater than y. Comparison is over the integer values,
// not the stored bits.
func (x NonMaxU128) Compare(y NonMaxU128) int {
	return x.Get().Cmp(y.Get())
}

// Less returns true if x's integer value is less than y's.
func (x NonMaxU128) Less(y NonMaxU128) bool {
	return x.Get().Cmp(y.Get()) < 0
}

// String returns the integer value in its default formatting.
func (x NonMaxU128) String() string {
	return x.Get().String()
}

// GoString returns a representation of the form NonMaxU128(123).
func (x NonMaxU128) GoString() string {
	return fmt.Sprintf("NonMaxU128(%s)", x.Get())
}

// NonMinU128 is a num.U128 that is known to not equal zero, the minimum
// 128-bit unsigned value. The sentinel mask is zero, so values are
// stored as-is.
type NonMinU128 struct {
	v nonzero.U128
}

// NewNonMinU128 returns v as a NonMinU128, or false if v is zero.
func NewNonMinU128(v num.U128) (NonMinU128, bool) {
	if v == (num.U128{}) {
		return NonMinU128{}, false
	}
	return UncheckedNonMinU128(v), true
}

// UncheckedNonMinU128 returns v as a NonMinU128 without validating it.
//
// Precondition: v != 0.
func UncheckedNonMinU128(v num.U128) NonMinU128 {
	return NonMinU128{v: nonzero.UncheckedU128(v)}
}

// Get returns the integer value.
func (x NonMinU128) Get() num.U128 {
	return x.v.Get()
}

// Compare returns -1, 0 or +1 depending on whether x is less than,
// equal to or greater than y.
func (x NonMinU128) Compare(y NonMinU128) int {
	return x.Get().Cmp(y.Get())
}

// Less returns true if x's integer value is less than y's.
func (x NonMinU128) Less(y NonMinU128) bool {
	return x.Get().Cmp(y.Get()) < 0
}

// String returns the integer value in its default formatting.
func (x NonMinU128) String() string {
	return x.Get().String()
}

// GoString returns a representation of the form NonMinU128(123).
func (x NonMinU128) GoString() string {
	return fmt.Sprintf("NonMinU128(%s)", x.Get())
}

// NonMaxI128 is a num.I128 that is known to not equal the maximum
// 128-bit signed value.
type NonMaxI128 struct {
	v nonzero.U128
}

// NewNonMaxI128 returns v as a NonMaxI128, or false if v is the maximum
// 128-bit signed value.
func NewNonMaxI128(v num.I128) (NonMaxI128, bool) {
	if v.AsU128() == maxI128Bits {
		return NonMaxI128{}, false
	}
	return UncheckedNonMaxI128(v), true
}

// UncheckedNonMaxI128 returns v as a NonMaxI128 without validating it.
//
// Precondition: v is not the maximum 128-bit signed value.
func UncheckedNonMaxI128(v num.I128) NonMaxI128 {
	return NonMaxI128{v: nonzero.UncheckedU128(v.AsU128().Xor(maxI128Bits))}
}

// Get returns the integer value.
func (x NonMaxI128) Get() num.I128 {
	return x.v.Get().Xor(maxI128Bits).AsI128()
}

// Compare returns -1, 0 or +1 depending on whether x is less than,
// equal to or greater than y. Comparison is over the integer values,
// not the stored bits.
func (x NonMaxI128) Compare(y NonMaxI128) int {
	return x.Get().Cmp(y.Get())
}

// Less returns true if x's integer value is less than y's.
func (x NonMaxI128) Less(y NonMaxI128) bool {
	return x.Get().Cmp(y.Get()) < 0
}

// String returns the integer value in its default formatting.
func (x NonMaxI128) String() string {
	return x.Get().String()
}

// GoString returns a representation of the form NonMaxI128(-123).
func (x NonMaxI128) GoString() string {
	return fmt.Sprintf("NonMaxI128(%s)", x.Get())
}

// NonMinI128 is a num.I128 that is known to not equal the minimum
// 128-bit signed value.
type NonMinI128 struct {
	v nonzero.U128
}

// NewNonMinI128 returns v as a NonMinI128, or false if v is the minimum
// 128-bit signed value.
func NewNonMinI128(v num.I128) (NonMinI128, bool) {
	if v.AsU128() == minI128Bits {
		return NonMinI128{}, false
	}
	return UncheckedNonMinI128(v), true
}

// UncheckedNonMinI128 returns v as a NonMinI128 without validating it.
//
// Precondition: v is not the minimum 128-bit signed value.
func UncheckedNonMinI128(v num.I128) NonMinI128 {
	return NonMinI128{v: nonzero.UncheckedU128(v.AsU128().Xor(minI128Bits))}
}

// Get returns the integer value.
func (x NonMinI128) Get() num.I128 {
	return x.v.Get().Xor(minI128Bits).AsI128()
}

// Compare returns -1, 0 or +1 depending on whether x is less than,
// equal to or greater than y. Comparison is over the integer values,
// not the stored bits.
func (x NonMinI128) Compare(y NonMinI128) int {
	return x.Get().Cmp(y.Get())
}

// Less returns true if x's integer value is less than y's.
func (x NonMinI128) Less(y NonMinI128) bool {
	return x.Get().Cmp(y.Get()) < 0
}

// String returns the integer value in its default formatting.
func (x NonMinI128) String() string {
	return x.Get().String()
}

// GoString returns a representation of the form NonMinI128(-123).
func (x NonMinI128) GoString() string {
	return fmt.Sprintf("NonMinI128(%s)", x.Get())
}
