package bitgen

import (
	"github.com/hupe1980/bitgen/bitset"
)

// WordAny returns a strategy generating every bit pattern of T with
// equal probability.
func WordAny[T bitset.Integer](optFns ...Option) *RangeStrategy[*bitset.Word[T]] {
	return NewRange(bitset.NewWord[T], 0, bitset.Width[T](), optFns...)
}

// WordBetween returns a strategy generating T values whose set bits
// all lie in [min, max).
func WordBetween[T bitset.Integer](min, max uint64, optFns ...Option) *RangeStrategy[*bitset.Word[T]] {
	return NewRange(bitset.NewWord[T], min, max, optFns...)
}

// WordMasked returns a strategy generating T values whose set bits are
// subsets of mask's set bits.
func WordMasked[T bitset.Integer](mask T, optFns ...Option) *RangeStrategy[*bitset.Word[T]] {
	return NewMasked(bitset.NewWord[T], bitset.WordOf(mask), optFns...)
}

// WordSampled returns a sampled strategy over T-backed containers.
func WordSampled[T bitset.Integer](size, bits Range, optFns ...Option) *SampledStrategy[*bitset.Word[T]] {
	return NewSampled(bitset.NewWord[T], size, bits, optFns...)
}

// BoolSliceBetween returns a strategy generating boolean slices whose
// set bits all lie in [min, max).
func BoolSliceBetween(min, max uint64, optFns ...Option) *RangeStrategy[*bitset.BoolSlice] {
	return NewRange(bitset.NewBoolSlice, min, max, optFns...)
}

// BoolSliceMasked returns a strategy generating subsets of mask.
func BoolSliceMasked(mask *bitset.BoolSlice, optFns ...Option) *RangeStrategy[*bitset.BoolSlice] {
	return NewMasked(bitset.NewBoolSlice, mask, optFns...)
}

// BoolSliceSampled returns a sampled strategy over boolean slices.
func BoolSliceSampled(size, bits Range, optFns ...Option) *SampledStrategy[*bitset.BoolSlice] {
	return NewSampled(bitset.NewBoolSlice, size, bits, optFns...)
}

// SparseBetween returns a strategy generating sparse bitmaps whose set
// bits all lie in [min, max).
func SparseBetween(min, max uint64, optFns ...Option) *RangeStrategy[*bitset.Sparse] {
	return NewRange(bitset.NewSparse, min, max, optFns...)
}

// SparseMasked returns a strategy generating subsets of mask.
func SparseMasked(mask *bitset.Sparse, optFns ...Option) *RangeStrategy[*bitset.Sparse] {
	return NewMasked(bitset.NewSparse, mask, optFns...)
}

// SparseSampled returns a sampled strategy over sparse bitmaps. Suits
// large index ranges where only a few bits end up set.
func SparseSampled(size, bits Range, optFns ...Option) *SampledStrategy[*bitset.Sparse] {
	return NewSampled(bitset.NewSparse, size, bits, optFns...)
}

// VarBitsBetween returns a strategy generating variable-width
// containers whose set bits all lie in [min, max).
func VarBitsBetween(min, max uint64, optFns ...Option) *RangeStrategy[*bitset.VarBits] {
	return NewRange(bitset.NewVarBits, min, max, optFns...)
}

// VarBitsMasked returns a strategy generating subsets of mask.
func VarBitsMasked(mask *bitset.VarBits, optFns ...Option) *RangeStrategy[*bitset.VarBits] {
	return NewMasked(bitset.NewVarBits, mask, optFns...)
}

// VarBitsSampled returns a sampled strategy over variable-width
// containers.
func VarBitsSampled(size, bits Range, optFns ...Option) *SampledStrategy[*bitset.VarBits] {
	return NewSampled(bitset.NewVarBits, size, bits, optFns...)
}
