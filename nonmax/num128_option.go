// Copyright (c) 2025 Visvasity LLC

package nonmax

import (
	num "github.com/shabbyrobe/go-num"

	"github.com/visvasity/nonmaxgen/nonzero"
)

// Option types for the 128-bit widths. Same zero niche layout as the
// generic MaxOption/MinOption: only the XORed bits are stored and the
// all-zero pattern means absent, so each option is 16 bytes.

// NonMaxU128Option represents an optional NonMaxU128. The zero value is
// None.
type NonMaxU128Option struct {
	bits num.U128
}

// SomeNonMaxU128 returns an option holding the given value.
func SomeNonMaxU128(x NonMaxU128) NonMaxU128Option {
	return NonMaxU128Option{bits: x.v.Get()}
}

// NewNonMaxU128Option validates v and returns it as an option. Returns
// None if v is the maximum 128-bit unsigned value.
func NewNonMaxU128Option(v num.U128) NonMaxU128Option {
	return NonMaxU128Option{bits: v.Xor(maxU128Bits)}
}

// IsSome returns true if the option holds a value.
func (o NonMaxU128Option) IsSome() bool { return o.bits != (num.U128{}) }

// IsNone returns true if the option is empty.
func (o NonMaxU128Option) IsNone() bool { return o.bits == (num.U128{}) }

// Get returns the value and a boolean indicating whether the option
// holds a value.
func (o NonMaxU128Option) Get() (NonMaxU128, bool) {
	if o.bits == (num.U128{}) {
		return NonMaxU128{}, false
	}
	return NonMaxU128{v: nonzero.UncheckedU128(o.bits)}, true
}

// NonMinU128Option represents an optional NonMinU128. The zero value is
// None.
type NonMinU128Option struct {
	bits num.U128
}

// SomeNonMinU128 returns an option holding the given value.
func SomeNonMinU128(x NonMinU128) NonMinU128Option {
	return NonMinU128Option{bits: x.v.Get()}
}

// NewNonMinU128Option validates v and returns it as an option. Returns
// None if v is zero.
func NewNonMinU128Option(v num.U128) NonMinU128Option {
	return NonMinU128Option{bits: v}
}

// IsSome returns true if the option holds a value.
func (o NonMinU128Option) IsSome() bool { return o.bits != (num.U128{}) }

// IsNone returns true if the option is empty.
func (o NonMinU128Option) IsNone() bool { return o.bits == (num.U128{}) }

// Get returns the value and a boolean indicating whether the option
// holds a value.
func (o NonMinU128Option) Get() (NonMinU128, bool) {
	if o.bits == (num.U128{}) {
		return NonMinU128{}, false
	}
	return NonMinU128{v: nonzero.UncheckedU128(o.bits)}, true
}

// NonMaxI128Option represents an optional NonMaxI128. The zero value is
// None.
type NonMaxI128Option struct {
	bits num.U128
}

// SomeNonMaxI128 returns an option holding the given value.
func SomeNonMaxI128(x NonMaxI128) NonMaxI128Option {
	return NonMaxI128Option{bits: x.v.Get()}
}

// NewNonMaxI128Option validates v and returns it as an option. Returns
// None if v is the maximum 128-bit signed value.
func NewNonMaxI128Option(v num.I128) NonMaxI128Option {
	return NonMaxI128Option{bits: v.AsU128().Xor(maxI128Bits)}
}

// IsSome returns true if the option holds a value.
func (o NonMaxI128Option) IsSome() bool { return o.bits != (num.U128{}) }

// IsNone returns true if the option is empty.
func (o NonMaxI128Option) IsNone() bool { return o.bits == (num.U128{}) }

// Get returns the value and a boolean indicating whether the option
// holds a value.
func (o NonMaxI128Option) Get() (NonMaxI128, bool) {
	if o.bits == (num.U128{}) {
		return NonMaxI128{}, false
	}
	return NonMaxI128{v: nonzero.UncheckedU128(o.bits)}, true
}

// NonMinI128Option represents an optional NonMinI128. The zero value is
// None.
type NonMinI128Option struct {
	bits num.U128
}

// SomeNonMinI128 returns an option holding the given value.
func SomeNonMinI128(x NonMinI128) NonMinI128Option {
	return NonMinI128Option{bits: x.v.Get()}
}

// NewNonMinI128Option validates v and returns it as an option. Returns
// None if v is the minimum 128-bit signed value.
func NewNonMinI128Option(v num.I128) NonMinI128Option {
	return NonMinI128Option{bits: v.AsU128().Xor(minI128Bits)}
}

// IsSome returns true if the option holds a value.
func (o NonMinI128Option) IsSome() bool { return o.bits != (num.U128{}) }

// IsNone returns true if the option is empty.
func (o NonMinI128Option) IsNone() bool { return o.bits == (num.U128{}) }

// Get returns the value and a boolean indicating whether the option
// holds a value.
func (o NonMinI128Option) Get() (NonMinI128, bool) {
	if o.bits == (num.U128{}) {
		return NonMinI128{}, false
	}
	return NonMinI128{v: nonzero.UncheckedU128(o.bits)}, true
}
