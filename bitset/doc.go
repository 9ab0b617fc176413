// Package bitset provides the bit-container representations consumed by
// the bitgen strategies.
//
// All representations implement the same Container capability: test, set
// and clear individual bits, report an addressable length and count the
// set population. They differ only in storage:
//
//   - Word[T]: a single machine integer, width fixed at the type's bit size
//   - BoolSlice: a growable boolean slice for small dynamic widths
//   - Sparse: a Roaring-Bitmap-backed set for large or unknown index spaces
//   - VarBits: a size-agnostic wrapper whose width is discovered as bits
//     are set, delegating to one dynamic representation
//
// # Choosing a Representation
//
//	w := bitset.NewWord[uint32](0)   // bits 0..31, stack-friendly
//	b := bitset.NewBoolSlice(16)     // bits 0..15, grows on demand
//	s := bitset.NewSparse(1 << 20)   // large universe, compressed storage
//	v := bitset.VarBitsOf(3, 400, 9) // width follows the highest set index
//
// # Capability Contract
//
// Testing an index at or beyond Len returns false, never an error, and
// clearing one is a no-op. Setting an index beyond Len on a growable
// representation first extends it, filling new positions with false.
// Count is always derived from the live bits; ScanCount provides the
// linear-scan baseline every native count must agree with.
package bitset
