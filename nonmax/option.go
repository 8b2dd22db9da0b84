// Copyright (c) 2025 Visvasity LLC

package nonmax

import (
	"golang.org/x/exp/constraints"

	"github.com/visvasity/nonmaxgen/nonzero"
)

// MaxOption represents an optional NonMax value.
//
// MaxOption stores only the value's XORed bits and treats the all-zero
// bit pattern as the absent marker, which a valid NonMax can never
// produce. A MaxOption[T] is therefore exactly the size of T itself.
//
// The zero value of MaxOption is None.
type MaxOption[T constraints.Integer] struct {
	bits T
}

// SomeMax returns a MaxOption holding the given value.
func SomeMax[T constraints.Integer](x NonMax[T]) MaxOption[T] {
	return MaxOption[T]{bits: x.v.Get()}
}

// NoneMax returns an empty MaxOption.
func NoneMax[T constraints.Integer]() MaxOption[T] {
	return MaxOption[T]{}
}

// NewMaxOption validates v and returns it as a MaxOption. Returns None
// if v is the maximum value of T.
func NewMaxOption[T constraints.Integer](v T) MaxOption[T] {
	return MaxOption[T]{bits: v ^ maxOf[T]()}
}

// IsSome returns true if the option holds a value.
func (o MaxOption[T]) IsSome() bool {
	return o.bits != 0
}

// IsNone returns true if the option is empty.
func (o MaxOption[T]) IsNone() bool {
	return o.bits == 0
}

// Get returns the value and a boolean indicating whether the option
// holds a value.
func (o MaxOption[T]) Get() (NonMax[T], bool) {
	if o.bits == 0 {
		return NonMax[T]{}, false
	}
	return NonMax[T]{v: nonzero.Unchecked(o.bits)}, true
}

// GetOrDefault returns the contained value if the option holds one,
// otherwise returns the provided default value.
func (o MaxOption[T]) GetOrDefault(v NonMax[T]) NonMax[T] {
	if x, ok := o.Get(); ok {
		return x
	}
	return v
}

// MinOption represents an optional NonMin value, with the same zero
// niche layout as MaxOption.
//
// The zero value of MinOption is None.
type MinOption[T constraints.Integer] struct {
	bits T
}

// SomeMin returns a MinOption holding the given value.
func SomeMin[T constraints.Integer](x NonMin[T]) MinOption[T] {
	return MinOption[T]{bits: x.v.Get()}
}

// NoneMin returns an empty MinOption.
func NoneMin[T constraints.Integer]() MinOption[T] {
	return MinOption[T]{}
}

// NewMinOption validates v and returns it as a MinOption. Returns None
// if v is the minimum value of T.
func NewMinOption[T constraints.Integer](v T) MinOption[T] {
	return MinOption[T]{bits: v ^ minOf[T]()}
}

// IsSome returns true if the option holds a value.
func (o MinOption[T]) IsSome() bool {
	return o.bits != 0
}

// IsNone returns true if the option is empty.
func (o MinOption[T]) IsNone() bool {
	return o.bits == 0
}

// Get returns the value and a boolean indicating whether the option
// holds a value.
func (o MinOption[T]) Get() (NonMin[T], bool) {
	if o.bits == 0 {
		return NonMin[T]{}, false
	}
	return NonMin[T]{v: nonzero.Unchecked(o.bits)}, true
}

// GetOrDefault returns the contained value if the option holds one,
// otherwise returns the provided default value.
func (o MinOption[T]) GetOrDefault(v NonMin[T]) NonMin[T] {
	if x, ok := o.Get(); ok {
		return x
	}
	return v
}
