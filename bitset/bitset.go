package bitset

// Container is the capability shared by every bit-container
// representation. The type parameter is the implementing type itself,
// so Clone stays fully typed and strategies can be instantiated with
// any representation without reflection.
//
// Indices are zero-based. Len is an upper bound on the highest set
// index plus one: exact for fixed-width representations, an
// allocation/capacity size for dynamic ones.
type Container[B any] interface {
	// Len returns the addressable length in bits.
	Len() uint64

	// Test reports whether the bit at ix is set. Growable
	// representations return false for ix at or beyond Len.
	Test(ix uint64) bool

	// Set sets the bit at ix. Growable representations extend
	// themselves first, filling new positions with false.
	Set(ix uint64)

	// Clear clears the bit at ix. Clearing at or beyond the
	// addressable length is a no-op.
	Clear(ix uint64)

	// Count returns the number of set bits.
	Count() uint64

	// Clone returns an independent deep copy.
	Clone() B
}

// ScanCount counts set bits by testing every index in [0, Len()). It is
// the correctness baseline for Count: every representation's native
// count must agree with it.
func ScanCount[B Container[B]](c B) uint64 {
	var n uint64
	for ix := uint64(0); ix < c.Len(); ix++ {
		if c.Test(ix) {
			n++
		}
	}
	return n
}
