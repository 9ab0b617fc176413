package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolSlice_SetTestClear(t *testing.T) {
	b := NewBoolSlice(4)
	assert.Equal(t, uint64(4), b.Len())

	b.Set(1)
	assert.True(t, b.Test(1))
	assert.False(t, b.Test(0))

	b.Clear(1)
	assert.False(t, b.Test(1))
}

func TestBoolSlice_Growth(t *testing.T) {
	b := NewBoolSlice(2)
	require.Equal(t, uint64(2), b.Len())

	b.Set(5)
	assert.Equal(t, uint64(6), b.Len())
	assert.True(t, b.Test(5))

	// Positions created by the growth start clear.
	for ix := uint64(0); ix < 5; ix++ {
		assert.False(t, b.Test(ix), "index %d", ix)
	}
	assert.Equal(t, []bool{false, false, false, false, false, true}, b.Bools())
}

func TestBoolSlice_OutOfRange(t *testing.T) {
	b := NewBoolSlice(3)

	assert.False(t, b.Test(99))

	b.Clear(99)
	assert.Equal(t, uint64(3), b.Len())
}

func TestBoolSlice_Count(t *testing.T) {
	b := NewBoolSlice(8)
	assert.Equal(t, uint64(0), b.Count())

	b.Set(0)
	b.Set(3)
	b.Set(7)
	assert.Equal(t, uint64(3), b.Count())
	assert.Equal(t, ScanCount(b), b.Count())
}

func TestBoolSlice_Clone(t *testing.T) {
	b := NewBoolSlice(4)
	b.Set(2)

	c := b.Clone()
	c.Set(0)
	c.Clear(2)

	assert.True(t, b.Test(2))
	assert.False(t, b.Test(0))
	assert.Equal(t, uint64(1), b.Count())
	assert.Equal(t, uint64(1), c.Count())
}

func TestBoolSlice_Indices(t *testing.T) {
	b := NewBoolSlice(8)
	b.Set(1)
	b.Set(4)
	b.Set(6)

	var got []uint64
	for ix := range b.Indices() {
		got = append(got, ix)
	}
	assert.Equal(t, []uint64{1, 4, 6}, got)

	// Early break must not panic and the iterator must restart fresh.
	for range b.Indices() {
		break
	}
	var again []uint64
	for ix := range b.Indices() {
		again = append(again, ix)
	}
	assert.Equal(t, got, again)
}
