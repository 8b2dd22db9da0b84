// Copyright (c) 2025 Visvasity LLC

package nonzero

import (
	num "github.com/shabbyrobe/go-num"
)

// Go has no 128-bit integer kind, so the 128-bit widths cannot share
// the generic NonZero implementation. They are written out explicitly
// over the num.U128/num.I128 value types instead.

// U128 holds a num.U128 that is never zero.
type U128 struct {
	bits num.U128
}

// NewU128 returns v as a U128 value. Returns false if v is zero.
func NewU128(v num.U128) (U128, bool) {
	if v == (num.U128{}) {
		return U128{}, false
	}
	return U128{bits: v}, true
}

// UncheckedU128 returns v as a U128 value without validating it.
//
// Precondition: v != 0.
func UncheckedU128(v num.U128) U128 {
	return U128{bits: v}
}

// Get returns the integer value.
func (z U128) Get() num.U128 {
	return z.bits
}

// I128 holds a num.I128 that is never zero.
type I128 struct {
	bits num.I128
}

// NewI128 returns v as an I128 value. Returns false if v is zero.
func NewI128(v num.I128) (I128, bool) {
	if v == (num.I128{}) {
		return I128{}, false
	}
	return I128{bits: v}, true
}

// UncheckedI128 returns v as an I128 value without validating it.
//
// Precondition: v != 0.
func UncheckedI128(v num.I128) I128 {
	return I128{bits: v}
}

// Get returns the integer value.
func (z I128) Get() num.I128 {
	return z.bits
}

// OptionU128 represents an optional U128. The zero bit pattern is the
// absent marker, so an OptionU128 is the same size as a num.U128.
//
// The zero value of OptionU128 is None.
type OptionU128 struct {
	bits num.U128
}

// SomeU128 returns an OptionU128 holding the given value.
func SomeU128(z U128) OptionU128 {
	return OptionU128{bits: z.bits}
}

// NoneU128 returns an empty OptionU128.
func NoneU128() OptionU128 {
	return OptionU128{}
}

// IsSome returns true if the Option holds a value.
func (o OptionU128) IsSome() bool {
	return o.bits != (num.U128{})
}

// IsNone returns true if the Option is empty.
func (o OptionU128) IsNone() bool {
	return o.bits == (num.U128{})
}

// Get returns the value and a boolean indicating whether the Option
// holds a value.
func (o OptionU128) Get() (U128, bool) {
	return U128{bits: o.bits}, o.bits != (num.U128{})
}

// OptionI128 represents an optional I128. The zero bit pattern is the
// absent marker, so an OptionI128 is the same size as a num.I128.
//
// The zero value of OptionI128 is None.
type OptionI128 struct {
	bits num.I128
}

// SomeI128 returns an OptionI128 holding the given value.
func SomeI128(z I128) OptionI128 {
	return OptionI128{bits: z.bits}
}

// NoneI128 returns an empty OptionI128.
func NoneI128() OptionI128 {
	return OptionI128{}
}

// IsSome returns true if the Option holds a value.
func (o OptionI128) IsSome() bool {
	return o.bits != (num.I128{})
}

// IsNone returns true if the Option is empty.
func (o OptionI128) IsNone() bool {
	return o.bits == (num.I128{})
}

// Get returns the value and a boolean indicating whether the Option
// holds a value.
func (o OptionI128) Get() (I128, bool) {
	return I128{bits: o.bits}, o.bits != (num.I128{})
}
