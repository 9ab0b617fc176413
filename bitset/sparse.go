package bitset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

var _ Container[*Sparse] = (*Sparse)(nil)

// Sparse is a bit-container backed by a compressed Roaring bitmap.
// It suits large or unknown index spaces where a dense representation
// would waste memory.
//
// Len reports the tracked capacity, not the highest set index: it
// starts at the construction hint and grows when Set lands at or past
// it. Clear never shrinks it.
type Sparse struct {
	rb  *roaring64.Bitmap
	cap uint64
}

// NewSparse returns an all-clear Sparse with the given capacity hint.
func NewSparse(capacity uint64) *Sparse {
	return &Sparse{rb: roaring64.New(), cap: capacity}
}

// Len returns the tracked capacity in bits.
func (s *Sparse) Len() uint64 {
	return s.cap
}

// Test reports whether the bit at ix is set.
func (s *Sparse) Test(ix uint64) bool {
	return s.rb.Contains(ix)
}

// Set sets the bit at ix, growing the tracked capacity to cover it.
func (s *Sparse) Set(ix uint64) {
	s.rb.Add(ix)
	if ix >= s.cap {
		s.cap = ix + 1
	}
}

// Clear clears the bit at ix. The tracked capacity is unchanged.
func (s *Sparse) Clear(ix uint64) {
	s.rb.Remove(ix)
}

// Count returns the bitmap cardinality.
func (s *Sparse) Count() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns an independent deep copy.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{rb: s.rb.Clone(), cap: s.cap}
}

// Indices returns an iterator over the set indices in ascending order.
func (s *Sparse) Indices() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
