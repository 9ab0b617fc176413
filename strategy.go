package bitgen

import (
	"time"

	"github.com/hupe1980/bitgen/bitset"
)

var _ Strategy[*bitset.BoolSlice] = (*RangeStrategy[*bitset.BoolSlice])(nil)

// RangeStrategy generates containers where every allowed index is
// included independently with probability one half. Without a mask the
// allowed indices are [min, max); with one they are the mask's set
// bits. The induced distribution is uniform over the power set of the
// allowed indices, with an expected set-count of half their number.
//
// Shrinking starts at min with a floor of zero, so values shrink all
// the way to the empty container.
type RangeStrategy[B bitset.Container[B]] struct {
	newContainer Factory[B]
	min, max     uint64
	mask         B
	hasMask      bool
	opts         options
}

// NewRange returns a strategy generating containers with bits drawn
// from [min, max). A reversed range is treated as empty and always
// generates the all-clear container.
func NewRange[B bitset.Container[B]](f Factory[B], min, max uint64, optFns ...Option) *RangeStrategy[B] {
	return &RangeStrategy[B]{
		newContainer: f,
		min:          min,
		max:          max,
		opts:         applyOptions(optFns),
	}
}

// NewMasked returns a strategy whose generated values are subsets of
// mask's set bits. The index bounds are exactly [0, mask.Len()).
func NewMasked[B bitset.Container[B]](f Factory[B], mask B, optFns ...Option) *RangeStrategy[B] {
	return &RangeStrategy[B]{
		newContainer: f,
		min:          0,
		max:          mask.Len(),
		mask:         mask,
		hasMask:      true,
		opts:         applyOptions(optFns),
	}
}

// NewTree draws a fresh value from src. The returned error is always
// nil; it satisfies the Strategy contract.
func (s *RangeStrategy[B]) NewTree(src Source) (*Tree[B], error) {
	start := time.Now()

	value := s.newContainer(s.max)
	for ix := s.min; ix < s.max; ix++ {
		// Masked-out indices consume no coin flip.
		if s.hasMask && !s.mask.Test(ix) {
			continue
		}
		if src.Bool() {
			value.Set(ix)
		}
	}

	count := value.Count()
	s.opts.metricsCollector.RecordGenerate(time.Since(start), count)
	s.opts.logger.LogGenerate("range", count, value.Len())

	return newTree(value, s.min, 0, s.opts.metricsCollector), nil
}
