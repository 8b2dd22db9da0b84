// Copyright (c) 2025 Visvasity LLC

// Package nonzero provides integer value types that are known to never
// hold the all-zero bit pattern.
//
// The Go standard library has no equivalent of these types, so they are
// implemented here as the building block for the sentinel-excluded
// types in the nonmax package. Because a valid value never stores zero,
// the all-zero bit pattern is free to mean something else: the Option
// types in this package reuse it as their "no value" marker, so an
// optional non-zero integer takes exactly as much space as the bare
// integer.
//
// The zero value of NonZero is not a valid value. Values must be
// created through New or Unchecked.
package nonzero

import (
	"golang.org/x/exp/constraints"
)

// NonZero holds an integer of type T that is never zero.
type NonZero[T constraints.Integer] struct {
	bits T
}

// New returns v as a NonZero value. Returns false if v is zero.
func New[T constraints.Integer](v T) (NonZero[T], bool) {
	if v == 0 {
		return NonZero[T]{}, false
	}
	return NonZero[T]{bits: v}, true
}

// Unchecked returns v as a NonZero value without validating it.
//
// Precondition: v != 0. Storing zero breaks the invariant that every
// consumer of this type relies on; in particular, Option values built
// from it will read as absent.
func Unchecked[T constraints.Integer](v T) NonZero[T] {
	return NonZero[T]{bits: v}
}

// Get returns the integer value.
func (z NonZero[T]) Get() T {
	return z.bits
}
