// Copyright (c) 2025 Visvasity LLC

package nonmax_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/visvasity/nonmaxgen/nonmax"
)

func TestNewNonMax(t *testing.T) {
	assert := assert.New(t)

	x, ok := nonmax.NewNonMaxUint8(123)
	assert.True(ok)
	assert.Equal(uint8(123), x.Get())

	_, ok = nonmax.NewNonMaxUint8(math.MaxUint8)
	assert.False(ok, "maximum value must be rejected")
}

func TestNewNonMin(t *testing.T) {
	assert := assert.New(t)

	x, ok := nonmax.NewNonMinInt32(123)
	assert.True(ok)
	assert.Equal(int32(123), x.Get())

	_, ok = nonmax.NewNonMinInt32(math.MinInt32)
	assert.False(ok, "minimum value must be rejected")

	// For unsigned types the minimum is zero.
	_, ok = nonmax.NewNonMinUint8(0)
	assert.False(ok)

	y, ok := nonmax.NewNonMinUint8(1)
	assert.True(ok)
	assert.Equal(uint8(1), y.Get())
}

func TestUncheckedAgreement(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []int8{math.MinInt8 + 1, -1, 0, 1, 123, math.MaxInt8} {
		want, ok := nonmax.NewNonMinInt8(v)
		assert.True(ok)
		assert.Equal(want, nonmax.UncheckedNonMinInt8(v))
		assert.Equal(v, nonmax.UncheckedNonMinInt8(v).Get())
	}

	for _, v := range []uint8{0, 1, 123, math.MaxUint8 - 1} {
		want, ok := nonmax.NewNonMaxUint8(v)
		assert.True(ok)
		assert.Equal(want, nonmax.UncheckedNonMaxUint8(v))
		assert.Equal(v, nonmax.UncheckedNonMaxUint8(v).Get())
	}
}

func TestBoundaries(t *testing.T) {
	assert := assert.New(t)

	// The value adjacent to the sentinel must round-trip exactly.
	x, ok := nonmax.NewNonMaxUint64(math.MaxUint64 - 1)
	assert.True(ok)
	assert.Equal(uint64(math.MaxUint64-1), x.Get())

	y, ok := nonmax.NewNonMinInt64(math.MinInt64 + 1)
	assert.True(ok)
	assert.Equal(int64(math.MinInt64+1), y.Get())

	// The opposite extreme is not excluded.
	z, ok := nonmax.NewNonMaxInt16(math.MinInt16)
	assert.True(ok)
	assert.Equal(int16(math.MinInt16), z.Get())

	w, ok := nonmax.NewNonMinInt16(math.MaxInt16)
	assert.True(ok)
	assert.Equal(int16(math.MaxInt16), w.Get())
}

func TestEquality(t *testing.T) {
	assert := assert.New(t)

	a, _ := nonmax.NewNonMaxUint32(7)
	b, _ := nonmax.NewNonMaxUint32(7)
	c, _ := nonmax.NewNonMaxUint32(8)

	assert.True(a == b)
	assert.False(a == c)

	// Values are usable as map keys; equal integers hash equal.
	m := map[nonmax.NonMaxUint32]string{a: "seven"}
	assert.Equal("seven", m[b])
}

func TestOrdering(t *testing.T) {
	assert := assert.New(t)

	// XOR against an all-ones mask inverts every bit, so the stored
	// representation of NonMax values is ordered opposite to the
	// integers. Less/Compare must follow the integers.
	a, _ := nonmax.NewNonMaxUint8(1)
	b, _ := nonmax.NewNonMaxUint8(2)
	assert.True(a.Less(b))
	assert.False(b.Less(a))
	assert.Equal(-1, a.Compare(b))
	assert.Equal(1, b.Compare(a))
	assert.Equal(0, a.Compare(a))

	// The min mask flips the sign bit, which swaps the order of
	// negative and non-negative values in storage.
	c, _ := nonmax.NewNonMinInt8(-1)
	d, _ := nonmax.NewNonMinInt8(1)
	assert.True(c.Less(d))
	assert.False(d.Less(c))

	// The max mask of a signed type flips the sign bit too.
	e, _ := nonmax.NewNonMaxInt8(-1)
	f, _ := nonmax.NewNonMaxInt8(1)
	assert.True(e.Less(f))
	assert.Equal(-1, e.Compare(f))
}

func TestFormatting(t *testing.T) {
	assert := assert.New(t)

	x, _ := nonmax.NewNonMaxUint8(123)
	assert.Equal("123", x.String())
	assert.Equal("NonMaxUint8(123)", x.GoString())
	assert.Equal("123", fmt.Sprintf("%v", x))
	assert.Equal("NonMaxUint8(123)", fmt.Sprintf("%#v", x))

	y, _ := nonmax.NewNonMinInt32(-123)
	assert.Equal("-123", y.String())
	assert.Equal("NonMinInt32(-123)", y.GoString())
}
