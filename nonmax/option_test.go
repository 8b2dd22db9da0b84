// Copyright (c) 2025 Visvasity LLC

package nonmax_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/visvasity/nonmaxgen/nonmax"
)

func TestMaxOption(t *testing.T) {
	assert := assert.New(t)

	opt := nonmax.NewNonMaxUint8Option(123)
	assert.True(opt.IsSome())
	assert.False(opt.IsNone())

	x, ok := opt.Get()
	assert.True(ok)
	assert.Equal(uint8(123), x.Get())

	// The sentinel maps straight to None; there is no invalid Some.
	none := nonmax.NewNonMaxUint8Option(math.MaxUint8)
	assert.True(none.IsNone())
	_, ok = none.Get()
	assert.False(ok)

	// The zero value of an option is None.
	var zero nonmax.NonMaxUint8Option
	assert.Equal(zero, none)
}

func TestMinOption(t *testing.T) {
	assert := assert.New(t)

	opt := nonmax.NewNonMinInt32Option(-123)
	assert.True(opt.IsSome())

	x, ok := opt.Get()
	assert.True(ok)
	assert.Equal(int32(-123), x.Get())

	none := nonmax.NewNonMinInt32Option(math.MinInt32)
	assert.True(none.IsNone())

	// NonMinUint stores values unmasked; zero is both the sentinel and
	// the absent marker.
	assert.True(nonmax.NewNonMinUint8Option(0).IsNone())
	assert.True(nonmax.NewNonMinUint8Option(1).IsSome())
}

func TestOptionSomeNone(t *testing.T) {
	assert := assert.New(t)

	x, _ := nonmax.NewNonMaxInt64(5)
	opt := nonmax.SomeMax(x)
	assert.True(opt.IsSome())

	got, ok := opt.Get()
	assert.True(ok)
	assert.Equal(x, got)

	assert.True(nonmax.NoneMax[int64]().IsNone())
	assert.True(nonmax.NoneMin[int64]().IsNone())

	y, _ := nonmax.NewNonMinInt64(5)
	assert.Equal(y, nonmax.SomeMin(y).GetOrDefault(y))
}

func TestOptionGetOrDefault(t *testing.T) {
	assert := assert.New(t)

	def, _ := nonmax.NewNonMaxUint16(9)

	some := nonmax.NewNonMaxUint16Option(5)
	assert.Equal(uint16(5), some.GetOrDefault(def).Get())

	none := nonmax.NoneMax[uint16]()
	assert.Equal(uint16(9), none.GetOrDefault(def).Get())
}

func TestOptionEquality(t *testing.T) {
	assert := assert.New(t)

	a := nonmax.NewNonMaxUint32Option(7)
	b := nonmax.NewNonMaxUint32Option(7)
	c := nonmax.NewNonMaxUint32Option(8)

	assert.True(a == b)
	assert.False(a == c)
	assert.True(nonmax.NewNonMaxUint32Option(math.MaxUint32) == nonmax.NoneMax[uint32]())
}

func TestOptionSizes(t *testing.T) {
	assert := assert.New(t)

	// An optional sentinel-excluded integer is the same size as the
	// primitive; the excluded bit pattern doubles as the absent marker.
	assert.Equal(unsafe.Sizeof(uint8(0)), unsafe.Sizeof(nonmax.NonMaxUint8Option{}))
	assert.Equal(unsafe.Sizeof(uint16(0)), unsafe.Sizeof(nonmax.NonMaxUint16Option{}))
	assert.Equal(unsafe.Sizeof(uint32(0)), unsafe.Sizeof(nonmax.NonMaxUint32Option{}))
	assert.Equal(unsafe.Sizeof(uint64(0)), unsafe.Sizeof(nonmax.NonMaxUint64Option{}))
	assert.Equal(unsafe.Sizeof(uint(0)), unsafe.Sizeof(nonmax.NonMaxUintOption{}))
	assert.Equal(unsafe.Sizeof(int8(0)), unsafe.Sizeof(nonmax.NonMinInt8Option{}))
	assert.Equal(unsafe.Sizeof(int16(0)), unsafe.Sizeof(nonmax.NonMinInt16Option{}))
	assert.Equal(unsafe.Sizeof(int32(0)), unsafe.Sizeof(nonmax.NonMinInt32Option{}))
	assert.Equal(unsafe.Sizeof(int64(0)), unsafe.Sizeof(nonmax.NonMinInt64Option{}))
	assert.Equal(unsafe.Sizeof(int(0)), unsafe.Sizeof(nonmax.NonMinIntOption{}))
}
