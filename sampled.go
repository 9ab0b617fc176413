package bitgen

import (
	"fmt"
	"time"

	"github.com/hupe1980/bitgen/bitset"
)

var _ Strategy[*bitset.Sparse] = (*SampledStrategy[*bitset.Sparse])(nil)

// SampledStrategy generates containers with an exact set-count drawn
// uniformly from a size range, the bits chosen uniformly without
// replacement from an index range.
//
// Shrinking starts at the index range's lower bound with a floor of
// the size range's lower bound, so values never shrink below the
// smallest legal set-count.
type SampledStrategy[B bitset.Container[B]] struct {
	newContainer Factory[B]
	size         Range
	bits         Range
	opts         options
}

// NewSampled returns a sampled strategy drawing set-counts from size
// and indices from bits.
//
// It panics with an error wrapping ErrInvalidConfig when the
// configuration is illegal: a reversed bits range, an empty or
// reversed size range, or a maximum requested set-count that exceeds
// the available index count. Misconfiguration is detected here, never
// deferred to generation time.
func NewSampled[B bitset.Container[B]](f Factory[B], size, bits Range, optFns ...Option) *SampledStrategy[B] {
	available := bits.Width()
	if bits.Min > bits.Max || size.Min >= size.Max || size.Max-1 > available {
		panic(&ErrIllegalSampleConfig{Available: available, Size: size, Bits: bits})
	}
	return &SampledStrategy[B]{
		newContainer: f,
		size:         size,
		bits:         bits,
		opts:         applyOptions(optFns),
	}
}

// NewTree draws a fresh value from src. The returned error is always
// nil; it satisfies the Strategy contract.
//
// A defensive check panics wrapping ErrInternal if the allocated
// container cannot address the drawn count. That guards against a
// factory whose fixed width is narrower than the index range needs,
// which the constructor cannot see.
func (s *SampledStrategy[B]) NewTree(src Source) (*Tree[B], error) {
	start := time.Now()

	value := s.newContainer(s.bits.Max)
	count := src.Uint64Range(s.size.Min, s.size.Max-1)
	if value.Len() < count {
		panic(fmt.Errorf("%w: not enough bits to sample: container holds %d, want %d",
			ErrInternal, value.Len(), count))
	}
	for _, ix := range src.Choose(IndexRange(s.bits.Min, s.bits.Max), count) {
		value.Set(ix)
	}

	s.opts.metricsCollector.RecordGenerate(time.Since(start), count)
	s.opts.logger.LogGenerate("sampled", count, value.Len())

	return newTree(value, s.bits.Min, s.size.Min, s.opts.metricsCollector), nil
}
