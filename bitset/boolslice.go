package bitset

import "iter"

var _ Container[*BoolSlice] = (*BoolSlice)(nil)

// BoolSlice is a growable bit-container backed by a boolean slice.
// It suits small widths where the dense representation is cheap and
// the exact length matters.
type BoolSlice struct {
	flags []bool
}

// NewBoolSlice returns an all-clear BoolSlice of the given length.
// Setting a bit past the end grows the slice to cover it.
func NewBoolSlice(capacity uint64) *BoolSlice {
	return &BoolSlice{flags: make([]bool, capacity)}
}

// Len returns the current slice length.
func (b *BoolSlice) Len() uint64 {
	return uint64(len(b.flags))
}

// Test reports whether the bit at ix is set. Out-of-range indices
// report false.
func (b *BoolSlice) Test(ix uint64) bool {
	if ix >= uint64(len(b.flags)) {
		return false
	}
	return b.flags[ix]
}

// Set sets the bit at ix, extending the slice to ix+1 entries first if
// needed. New entries are false.
func (b *BoolSlice) Set(ix uint64) {
	if ix >= uint64(len(b.flags)) {
		grown := make([]bool, ix+1)
		copy(grown, b.flags)
		b.flags = grown
	}
	b.flags[ix] = true
}

// Clear clears the bit at ix. Out-of-range indices are a no-op.
func (b *BoolSlice) Clear(ix uint64) {
	if ix < uint64(len(b.flags)) {
		b.flags[ix] = false
	}
}

// Count returns the number of true entries.
func (b *BoolSlice) Count() uint64 {
	var n uint64
	for _, f := range b.flags {
		if f {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (b *BoolSlice) Clone() *BoolSlice {
	c := make([]bool, len(b.flags))
	copy(c, b.flags)
	return &BoolSlice{flags: c}
}

// Bools returns a copy of the underlying slice.
func (b *BoolSlice) Bools() []bool {
	c := make([]bool, len(b.flags))
	copy(c, b.flags)
	return c
}

// Indices returns an iterator over the set indices in ascending order.
func (b *BoolSlice) Indices() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for ix, f := range b.flags {
			if f && !yield(uint64(ix)) {
				return
			}
		}
	}
}
