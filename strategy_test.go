package bitgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitgen/bitset"
	"github.com/hupe1980/bitgen/testutil"
)

func TestRangeStrategy_ValuesWithinBounds(t *testing.T) {
	src := NewRandSource(0xdefa)
	s := WordBetween[uint32](4, 8)

	for i := 0; i < 256; i++ {
		tree, err := s.NewTree(src)
		require.NoError(t, err)

		v := tree.Current().Value()
		assert.Zero(t, v&^uint32(0xF0), "draw %d: %#x has bits outside 4..8", i, v)
	}
}

func TestRangeStrategy_MaskCoverage(t *testing.T) {
	const mask = uint32(0xdeadbeef)

	src := NewRandSource(0xbeef)
	s := WordMasked[uint32](mask)

	var union, intersection uint32
	intersection = ^uint32(0)

	for i := 0; i < 1024; i++ {
		tree, err := s.NewTree(src)
		require.NoError(t, err)

		v := tree.Current().Value()
		require.Zero(t, v&^mask, "draw %d: %#x escapes the mask", i, v)
		union |= v
		intersection &= v
	}

	// Over 1024 draws every mask bit shows up both set and clear.
	assert.Equal(t, mask, union)
	assert.Zero(t, intersection)
}

func TestRangeStrategy_MaskBoundsSparse(t *testing.T) {
	mask := bitset.NewSparse(0)
	mask.Set(0)
	mask.Set(2)

	src := NewRandSource(0x51)
	s := SparseMasked(mask)

	var seen0, seen2 bool
	for i := 0; i < 32; i++ {
		tree, err := s.NewTree(src)
		require.NoError(t, err)

		v := tree.Current()
		assert.Equal(t, uint64(3), v.Len())
		assert.False(t, v.Test(1))
		seen0 = seen0 || v.Test(0)
		seen2 = seen2 || v.Test(2)
	}
	assert.True(t, seen0)
	assert.True(t, seen2)
}

func TestRangeStrategy_MaskBoundsBoolSlice(t *testing.T) {
	mask := bitset.NewBoolSlice(4)
	mask.Set(0)
	mask.Set(2)

	src := NewRandSource(0x52)
	s := BoolSliceMasked(mask)

	var seen0, seen2 bool
	for i := 0; i < 32; i++ {
		tree, err := s.NewTree(src)
		require.NoError(t, err)

		v := tree.Current()
		assert.Equal(t, uint64(4), v.Len())
		assert.False(t, v.Test(1))
		assert.False(t, v.Test(3))
		seen0 = seen0 || v.Test(0)
		seen2 = seen2 || v.Test(2)
	}
	assert.True(t, seen0)
	assert.True(t, seen2)
}

func TestRangeStrategy_ScriptedDraws(t *testing.T) {
	src := &testutil.ScriptSource{Bools: []bool{true, false, true, false}}

	tree, err := BoolSliceBetween(0, 4).NewTree(src)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false, true, false}, tree.Current().Bools())
	assert.Equal(t, 4, src.BoolsUsed())
}

func TestRangeStrategy_MaskSkipsCoinFlips(t *testing.T) {
	mask := bitset.NewBoolSlice(4)
	mask.Set(0)
	mask.Set(2)

	// Only the two mask bits may consume a coin.
	src := &testutil.ScriptSource{Bools: []bool{true, true}}

	tree, err := BoolSliceMasked(mask).NewTree(src)
	require.NoError(t, err)

	v := tree.Current()
	assert.True(t, v.Test(0))
	assert.False(t, v.Test(1))
	assert.True(t, v.Test(2))
	assert.False(t, v.Test(3))
	assert.Equal(t, 2, src.BoolsUsed())
}

func TestRangeStrategy_EmptyRange(t *testing.T) {
	src := &testutil.ScriptSource{}

	tree, err := NewRange(bitset.NewBoolSlice, 5, 2).NewTree(src)
	require.NoError(t, err)

	v := tree.Current()
	assert.Equal(t, uint64(2), v.Len())
	assert.Zero(t, v.Count())
	assert.Zero(t, src.BoolsUsed())
	assert.False(t, tree.Simplify())
}

func TestRangeStrategy_VarBits(t *testing.T) {
	src := NewRandSource(0x77)

	tree, err := VarBitsBetween(0, 16).NewTree(src)
	require.NoError(t, err)

	v := tree.Current()
	assert.Equal(t, uint64(16), v.Len())
	for ix := range v.Indices() {
		assert.Less(t, ix, uint64(16))
	}
}

func TestRangeStrategy_SparseHighBounds(t *testing.T) {
	src := NewRandSource(0x60)

	tree, err := SparseBetween(100, 104).NewTree(src)
	require.NoError(t, err)

	v := tree.Current()
	assert.Equal(t, uint64(104), v.Len())
	for ix := range v.Indices() {
		assert.True(t, ix >= 100 && ix < 104, "bit %d", ix)
	}
}

func TestRangeStrategy_VarBitsMasked(t *testing.T) {
	mask := bitset.VarBitsOf(1, 3)

	src := NewRandSource(0x61)
	for i := 0; i < 16; i++ {
		tree, err := VarBitsMasked(mask).NewTree(src)
		require.NoError(t, err)

		v := tree.Current()
		assert.False(t, v.Test(0))
		assert.False(t, v.Test(2))
		require.LessOrEqual(t, v.Count(), uint64(2), "draw %d", i)
	}
}

func TestRangeStrategy_MetricsCollected(t *testing.T) {
	mc := &BasicMetricsCollector{}
	src := NewRandSource(3)

	s := WordAny[uint8](WithMetricsCollector(mc))
	tree, err := s.NewTree(src)
	require.NoError(t, err)

	for tree.Simplify() {
	}
	tree.Complicate()

	stats := mc.GetStats()
	assert.EqualValues(t, 1, stats.GenerateCount)
	assert.Positive(t, stats.SimplifyCount)
	assert.EqualValues(t, 1, stats.ComplicateCount)
}
