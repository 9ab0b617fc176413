package bitgen

import (
	"github.com/hupe1980/bitgen/bitset"
)

// Factory allocates an all-clear container with the given capacity
// hint. Fixed-width representations ignore the hint; dynamic ones use
// it as the initial allocation and may grow past it.
type Factory[B bitset.Container[B]] func(capacity uint64) B

// Strategy produces shrinkable bit-container values from a random
// source. It is the contract the surrounding test loop consumes.
//
// NewTree never fails for the strategies in this package: illegal
// configurations abort at construction time instead (see NewSampled).
// The error result keeps the contract shape for strategies whose
// sources can fail.
type Strategy[B bitset.Container[B]] interface {
	NewTree(src Source) (*Tree[B], error)
}

// Range is a half-open interval [Min, Max) over bit indices or
// set-counts.
type Range struct {
	Min uint64 // inclusive
	Max uint64 // exclusive
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v uint64) bool {
	return v >= r.Min && v < r.Max
}

// Width returns the number of values in the range, zero when the
// range is empty or reversed.
func (r Range) Width() uint64 {
	if r.Max <= r.Min {
		return 0
	}
	return r.Max - r.Min
}
