package bitgen

import (
	"fmt"
	"iter"
	"math/rand"
)

// Source supplies the randomness the strategies consume: a fair coin,
// a uniform integer draw over an inclusive range, and a uniform
// without-replacement selection from an index sequence.
//
// Implementations need not be safe for concurrent use. Each generation
// call receives exclusive access to its source for the duration of the
// call, and seeding/determinism is the implementation's business.
type Source interface {
	// Bool returns a fair coin flip.
	Bool() bool

	// Uint64Range returns a uniform value in the inclusive range
	// [lo, hi]. lo must not exceed hi.
	Uint64Range(lo, hi uint64) uint64

	// Choose returns n distinct values selected uniformly from seq,
	// or every value when seq yields fewer than n. The order of the
	// returned values is unspecified.
	Choose(seq iter.Seq[uint64], n uint64) []uint64
}

// IndexRange returns an iterator over [lo, hi) in ascending order. An
// empty or reversed range yields nothing.
func IndexRange(lo, hi uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for ix := lo; ix < hi; ix++ {
			if !yield(ix) {
				return
			}
		}
	}
}

var _ Source = (*RandSource)(nil)

// RandSource is a seeded pseudo-random Source. Two RandSources created
// with the same seed produce identical draw sequences, which is what
// makes failing generations reproducible.
type RandSource struct {
	rand *rand.Rand
	seed int64
}

// NewRandSource creates a RandSource with the given seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (s *RandSource) Seed() int64 {
	return s.seed
}

// Reset rewinds the source to its initial seed.
func (s *RandSource) Reset() {
	s.rand.Seed(s.seed)
}

// Bool returns a fair coin flip.
func (s *RandSource) Bool() bool {
	return s.rand.Uint64()&1 == 1
}

// Uint64Range returns a uniform value in the inclusive range [lo, hi].
func (s *RandSource) Uint64Range(lo, hi uint64) uint64 {
	if lo > hi {
		panic(fmt.Errorf("%w: reversed draw range %d..%d", ErrInternal, lo, hi))
	}
	span := hi - lo + 1
	if span == 0 {
		// [0, MaxUint64]: the span wraps to zero, every value is valid.
		return s.rand.Uint64()
	}
	return lo + s.uint64n(span)
}

// uint64n returns a uniform value in [0, n) without modulo bias.
// n must be nonzero.
func (s *RandSource) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 {
		return s.rand.Uint64() & (n - 1)
	}
	// Reject the uneven remainder of the 64-bit space.
	thresh := -n % n
	for {
		v := s.rand.Uint64()
		if v >= thresh {
			return v % n
		}
	}
}

// Choose returns n distinct values selected uniformly from seq via
// reservoir sampling, or every value when seq yields fewer than n.
func (s *RandSource) Choose(seq iter.Seq[uint64], n uint64) []uint64 {
	if n == 0 {
		return nil
	}
	picked := make([]uint64, 0, n)
	var seen uint64
	for v := range seq {
		seen++
		if uint64(len(picked)) < n {
			picked = append(picked, v)
			continue
		}
		if j := s.uint64n(seen); j < n {
			picked[j] = v
		}
	}
	return picked
}
