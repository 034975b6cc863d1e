package primvec

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAll(t *testing.T) {
	v := NewWithCapacity[int32](2)
	v.Push(1)
	v.AddAll(Values[int32]{2, 3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8, 9}, v.ToArray())
	assert.Equal(t, 9, v.Cap(), "a bulk insert grows once, to exactly the needed size")

	other := Of[int32](10, 11)
	v.AddAll(other)
	assert.Equal(t, int32(11), v.space[v.Len()-1])
	assert.Equal(t, []int32{10, 11}, other.ToArray())

	// the vector may be its own source
	self := Of[int32](1, 2)
	self.AddAll(self)
	assert.Equal(t, []int32{1, 2, 1, 2}, self.ToArray())
}

func TestAddAllAt(t *testing.T) {
	v := Of[int64](1, 2, 5)
	require.NoError(t, v.AddAllAt(2, Values[int64]{3, 4}))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, v.ToArray())

	require.NoError(t, v.AddAllAt(v.Len(), Of[int64](6)))
	require.NoError(t, v.AddAllAt(0, Values[int64]{0}))
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6}, v.ToArray())

	before := v.Cap()
	err := v.AddAllAt(v.Len()+1, Values[int64]{9, 9, 9, 9, 9, 9, 9, 9})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, v.AddAllAt(-1, Values[int64]{9}), ErrIndexOutOfRange)
	assert.Equal(t, before, v.Cap())
	assert.Equal(t, 7, v.Len())

	self := Of[int64](1, 2, 3)
	require.NoError(t, self.AddAllAt(1, self))
	assert.Equal(t, []int64{1, 1, 2, 3, 2, 3}, self.ToArray())
}

func TestRemoveAll(t *testing.T) {
	v := Of[int32](1, 2, 3, 4, 5)
	assert.False(t, v.RemoveAll(Values[int32]{20, 30, 40}))
	assert.True(t, v.RemoveAll(Values[int32]{2, 3, 4}))
	assert.Equal(t, []int32{1, 5}, v.ToArray())
	assert.Equal(t, int32(0), v.space[2], "vacated tail is zeroed")

	dups := Of[int32](7, 1, 7, 7, 2, 7)
	assert.True(t, dups.RemoveAll(Of[int32](7)))
	assert.Equal(t, []int32{1, 2}, dups.ToArray())

	empty := New[int32]()
	assert.False(t, empty.RemoveAll(Values[int32]{1}))
}

func TestRetainAll(t *testing.T) {
	v := Of[int32](1, 2, 3, 4, 5)
	assert.True(t, v.RetainAll(Values[int32]{2, 3, 4}))
	assert.Equal(t, []int32{2, 3, 4}, v.ToArray())
	assert.False(t, v.RetainAll(Values[int32]{2, 3, 4}))

	// adjacent drops are not skipped
	w := Of[int16](9, 9, 1, 9, 9, 2, 9)
	assert.True(t, w.RetainAll(Values[int16]{1, 2}))
	assert.Equal(t, []int16{1, 2}, w.ToArray())

	assert.True(t, w.RetainAll(Values[int16]{}))
	assert.True(t, w.IsEmpty())
}

func TestBulkWithLargeValueSets(t *testing.T) {
	var evens Values[uint32]
	v := New[uint32]()
	for i := uint32(0); i < 1000; i++ {
		v.Push(i)
		if i%2 == 0 {
			evens = append(evens, i)
		}
	}
	require.Len(t, evens, 500)

	odds := Of(v.ToArray()...)
	assert.True(t, odds.RemoveAll(evens))
	assert.Equal(t, 500, odds.Len())
	for x := range odds.Values() {
		require.Equal(t, uint32(1), x%2)
	}

	assert.True(t, v.RetainAll(evens))
	assert.Equal(t, []uint32(evens), v.ToArray())
	assert.True(t, v.ContainsAll(evens))
	assert.False(t, v.ContainsAll(Values[uint32]{0, 1}))
}

func TestBulkFloatZeroes(t *testing.T) {
	negZero := Values[float64]{0}
	negZero[0] = -negZero[0]
	v := Of[float64](0, 1, 0, 2)
	assert.True(t, v.ContainsAll(negZero))
	assert.True(t, v.RemoveAll(negZero))
	assert.Equal(t, []float64{1, 2}, v.ToArray())

	nan := Values[float64]{math.NaN()}
	v.Push(nan[0])
	assert.False(t, v.ContainsAll(nan), "NaN is never a member")
	assert.False(t, v.RemoveAll(nan))
	assert.Equal(t, 3, v.Len())
}

func TestContainsAll(t *testing.T) {
	v := Of[bool](true, true)
	assert.True(t, v.ContainsAll(Values[bool]{true}))
	assert.False(t, v.ContainsAll(Values[bool]{true, false}))
	assert.True(t, v.ContainsAll(Values[bool]{}))
}

func TestSubList(t *testing.T) {
	v := Of[int32](1, 2, 3, 4, 5)
	sub, err := v.SubList(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3, 4}, sub.ToArray())

	v.Set(1, 20)
	v.Clear()
	v.AddAll(Values[int32]{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7})
	assert.Equal(t, []int32{2, 3, 4}, sub.ToArray(), "sub list does not alias its source")

	sub.Push(5)
	assert.Equal(t, 12, v.Len())

	empty, err := v.SubList(3, 3)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	for _, bounds := range [][2]int{{0, 13}, {4, 3}, {-1, 2}, {0, -1}} {
		_, err := v.SubList(bounds[0], bounds[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "bounds %v", bounds)
	}
}

func TestRoundTripThroughAddAll(t *testing.T) {
	v := Of[int8](3, -1, 4, -1, 5, -9)
	fresh := NewWithCapacity[int8](0)
	fresh.AddAll(Values[int8](v.ToArray()))
	assert.True(t, v.Equal(fresh))
}

func TestSeqSource(t *testing.T) {
	v := Of[uint64](1, 2)
	v.AddAll(Seq(slices.Values([]uint64{3, 4})))
	assert.Equal(t, []uint64{1, 2, 3, 4}, v.ToArray())
	assert.Equal(t, 0, Seq(slices.Values([]uint64(nil))).Len())
}
