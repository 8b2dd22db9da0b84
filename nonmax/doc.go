// Copyright (c) 2025 Visvasity LLC

// Package nonmax provides integer types that cannot be their minimum or
// maximum value.
//
// For every integer width, NonMaxXxx is an integer known to not equal
// the type's maximum value, and NonMinXxx is an integer known to not
// equal the type's minimum value. For example:
//
//	x, ok := nonmax.NewNonMinInt32(123)   // ok == true, x.Get() == 123
//	_, ok = nonmax.NewNonMinInt32(math.MinInt32) // ok == false
//
// # Memory layout
//
// Internally a value stores its integer XORed with the excluded
// sentinel, so the excluded value is the only one that would map to the
// all-zero bit pattern. Since a valid value never stores zero, the
// option types in this package reuse the zero pattern as their "no
// value" marker instead of carrying a presence flag:
//
//	unsafe.Sizeof(nonmax.NonMaxUint32Option{}) == unsafe.Sizeof(uint32(0))
//
// This matters when holding large slices of optional integers, where a
// separate presence flag would double the footprint.
//
// Decoding costs a single XOR on each Get call.
//
// # Zero values
//
// The zero value of a NonMax/NonMin type is not a valid value; it is
// the reserved niche. Values must be created through the New or
// Unchecked constructors. The zero value of an option type is the
// canonical None.
//
// The named single-width types in the *.nonmaxgen.go files are
// generated by the nonmaxgen command in the repository root.
package nonmax
