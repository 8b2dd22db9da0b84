// Copyright (c) 2025 Visvasity LLC

package nonzero

import (
	"golang.org/x/exp/constraints"
)

// Option represents an optional NonZero value.
//
// Option stores only the value's bits and treats the all-zero bit
// pattern as the absent marker, which a valid NonZero can never
// produce. An Option[T] is therefore exactly the size of T itself;
// there is no presence flag.
//
// The zero value of Option is None.
type Option[T constraints.Integer] struct {
	bits T
}

// Some returns an Option holding the given value.
func Some[T constraints.Integer](z NonZero[T]) Option[T] {
	return Option[T]{bits: z.bits}
}

// None returns an empty Option.
func None[T constraints.Integer]() Option[T] {
	return Option[T]{}
}

// OptionOf returns v as an Option. A zero v yields None; no separate
// check is needed because zero already is the absent marker.
func OptionOf[T constraints.Integer](v T) Option[T] {
	return Option[T]{bits: v}
}

// IsSome returns true if the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.bits != 0
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return o.bits == 0
}

// Get returns the value and a boolean indicating whether the Option
// holds a value.
func (o Option[T]) Get() (NonZero[T], bool) {
	return NonZero[T]{bits: o.bits}, o.bits != 0
}

// GetOrDefault returns the contained value if the Option holds one,
// otherwise returns the provided default value.
func (o Option[T]) GetOrDefault(v NonZero[T]) NonZero[T] {
	if o.bits == 0 {
		return v
	}
	return NonZero[T]{bits: o.bits}
}
