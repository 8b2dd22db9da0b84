// Copyright (c) 2025 Visvasity LLC

package nonmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSigned(t *testing.T) {
	assert := assert.New(t)

	assert.False(isSigned[uint8]())
	assert.False(isSigned[uint16]())
	assert.False(isSigned[uint32]())
	assert.False(isSigned[uint64]())
	assert.False(isSigned[uint]())
	assert.False(isSigned[uintptr]())

	assert.True(isSigned[int8]())
	assert.True(isSigned[int16]())
	assert.True(isSigned[int32]())
	assert.True(isSigned[int64]())
	assert.True(isSigned[int]())
}

func TestMaxOf(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(math.MaxUint8), maxOf[uint8]())
	assert.Equal(uint16(math.MaxUint16), maxOf[uint16]())
	assert.Equal(uint32(math.MaxUint32), maxOf[uint32]())
	assert.Equal(uint64(math.MaxUint64), maxOf[uint64]())
	assert.Equal(uint(math.MaxUint), maxOf[uint]())

	assert.Equal(int8(math.MaxInt8), maxOf[int8]())
	assert.Equal(int16(math.MaxInt16), maxOf[int16]())
	assert.Equal(int32(math.MaxInt32), maxOf[int32]())
	assert.Equal(int64(math.MaxInt64), maxOf[int64]())
	assert.Equal(int(math.MaxInt), maxOf[int]())
}

func TestMinOf(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0), minOf[uint8]())
	assert.Equal(uint16(0), minOf[uint16]())
	assert.Equal(uint32(0), minOf[uint32]())
	assert.Equal(uint64(0), minOf[uint64]())
	assert.Equal(uint(0), minOf[uint]())

	assert.Equal(int8(math.MinInt8), minOf[int8]())
	assert.Equal(int16(math.MinInt16), minOf[int16]())
	assert.Equal(int32(math.MinInt32), minOf[int32]())
	assert.Equal(int64(math.MinInt64), minOf[int64]())
	assert.Equal(int(math.MinInt), minOf[int]())
}

func TestPrimName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Uint8", primName[uint8]())
	assert.Equal("Int64", primName[int64]())
	assert.Equal("Uintptr", primName[uintptr]())
}
