package bitset

import (
	"math/bits"
	"unsafe"
)

// Integer constrains Word to the native integer types. Signed types are
// treated as raw two's-complement bit patterns, so the sign bit is just
// the highest addressable index.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the bit width of T: 8 for uint8, 64 for int64, the
// platform word size for int, uint and uintptr.
func Width[T Integer]() uint64 {
	var z T
	return uint64(unsafe.Sizeof(z)) * 8
}

var _ Container[*Word[uint64]] = (*Word[uint64])(nil)

// Word is a fixed-width bit-container backed by a single machine
// integer, treated as a little-endian vector of Width[T] flag bits.
// The capacity hint is meaningless for it: the width is intrinsic.
//
// Indices at or beyond the width fall out of the shift operand, so
// Test reports false and Set/Clear are no-ops there.
type Word[T Integer] struct {
	bits T
}

// NewWord returns an all-clear Word. The capacity hint is ignored.
func NewWord[T Integer](_ uint64) *Word[T] {
	return &Word[T]{}
}

// WordOf returns a Word holding the given bit pattern.
func WordOf[T Integer](v T) *Word[T] {
	return &Word[T]{bits: v}
}

// Value returns the underlying integer bit pattern.
func (w *Word[T]) Value() T {
	return w.bits
}

// Len returns the bit width of T.
func (w *Word[T]) Len() uint64 {
	return Width[T]()
}

// Test reports whether the bit at ix is set.
func (w *Word[T]) Test(ix uint64) bool {
	return w.bits&(T(1)<<ix) != 0
}

// Set sets the bit at ix.
func (w *Word[T]) Set(ix uint64) {
	w.bits |= T(1) << ix
}

// Clear clears the bit at ix.
func (w *Word[T]) Clear(ix uint64) {
	w.bits &^= T(1) << ix
}

// Count returns the population count of the word.
func (w *Word[T]) Count() uint64 {
	// Signed values sign-extend in the uint64 conversion; mask the
	// extension off so only the true width is counted.
	u := uint64(w.bits)
	if width := Width[T](); width < 64 {
		u &= uint64(1)<<width - 1
	}
	return uint64(bits.OnesCount64(u))
}

// Clone returns an independent copy.
func (w *Word[T]) Clone() *Word[T] {
	c := *w
	return &c
}
