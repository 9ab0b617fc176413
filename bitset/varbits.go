package bitset

import "iter"

var _ Container[*VarBits] = (*VarBits)(nil)

// varStore selects the dynamic representation backing VarBits. The
// choice is resolved once here at compile time; swap the alias and
// newVarStore to *BoolSlice to trade compressed storage for a dense
// slice. Both backings expose the same surface, including Indices.
type varStore = *Sparse

func newVarStore(capacity uint64) varStore {
	return NewSparse(capacity)
}

// VarBits is a bit-container whose width is not known up front: it
// grows as bits are set, delegating storage to one of the dynamic
// representations. Use it where the needed bit count is discovered
// during generation.
type VarBits struct {
	inner varStore
}

// NewVarBits returns an all-clear VarBits with the given capacity hint.
func NewVarBits(capacity uint64) *VarBits {
	return &VarBits{inner: newVarStore(capacity)}
}

// VarBitsOf returns a VarBits with exactly the given indices set. The
// index count serves as the capacity hint.
func VarBitsOf(ixs ...uint64) *VarBits {
	v := NewVarBits(uint64(len(ixs)))
	for _, ix := range ixs {
		v.Set(ix)
	}
	return v
}

// CollectVarBits gathers every index yielded by seq into a VarBits.
func CollectVarBits(seq iter.Seq[uint64]) *VarBits {
	v := NewVarBits(0)
	for ix := range seq {
		v.Set(ix)
	}
	return v
}

// SaturatedVarBits returns a VarBits with the first n indices set.
func SaturatedVarBits(n uint64) *VarBits {
	v := NewVarBits(n)
	for ix := uint64(0); ix < n; ix++ {
		v.Set(ix)
	}
	return v
}

// Len returns the addressable length of the backing store.
func (v *VarBits) Len() uint64 {
	return v.inner.Len()
}

// Test reports whether the bit at ix is set.
func (v *VarBits) Test(ix uint64) bool {
	return v.inner.Test(ix)
}

// Set sets the bit at ix, growing the backing store to cover it.
func (v *VarBits) Set(ix uint64) {
	v.inner.Set(ix)
}

// Clear clears the bit at ix.
func (v *VarBits) Clear(ix uint64) {
	v.inner.Clear(ix)
}

// Count returns the number of set bits.
func (v *VarBits) Count() uint64 {
	return v.inner.Count()
}

// Clone returns an independent deep copy.
func (v *VarBits) Clone() *VarBits {
	return &VarBits{inner: v.inner.Clone()}
}

// Indices returns an iterator over the set indices in ascending order.
// The iteration is lazy and restartable.
func (v *VarBits) Indices() iter.Seq[uint64] {
	return v.inner.Indices()
}
