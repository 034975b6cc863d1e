package primvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashMatchesEquality(t *testing.T) {
	a := Of[int32](1, 2, 3)
	b := NewWithCapacity[int32](64)
	b.AddAll(a)
	assert.Equal(t, a.Hash(), b.Hash())

	reversed := Of[int32](3, 2, 1)
	assert.NotEqual(t, a.Hash(), reversed.Hash(), "hash is order sensitive")

	// stale slots do not contribute
	b.Push(4)
	b.RemoveAt(3)
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashNegativeZero(t *testing.T) {
	pos := Of[float64](0, 1)
	neg := Of(math.Copysign(0, -1), 1)
	assert.True(t, pos.Equal(neg))
	assert.Equal(t, pos.Hash(), neg.Hash())

	pos32 := Of[float32](0)
	neg32 := Of(float32(math.Copysign(0, -1)))
	assert.Equal(t, pos32.Hash(), neg32.Hash())
}

func TestHashEmpty(t *testing.T) {
	assert.Equal(t, New[bool]().Hash(), NewWithCapacity[bool](0).Hash())
}

func TestAppendScalar(t *testing.T) {
	assert.Equal(t, []byte{1}, appendScalar(nil, true))
	assert.Equal(t, []byte{0xff}, appendScalar(nil, int8(-1)))
	assert.Equal(t, []byte{0x34, 0x12}, appendScalar(nil, uint16(0x1234)))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, appendScalar(nil, int32(0x01020304)))
	assert.Len(t, appendScalar(nil, uint64(1)), 8)
	assert.Equal(t, appendScalar(nil, float32(0)), appendScalar(nil, float32(math.Copysign(0, -1))))
}
