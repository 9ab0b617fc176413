package bitgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig marks a strategy configuration rejected at
	// construction time. It is delivered by panicking: an illegal
	// configuration is a programmer error, not a runtime condition.
	ErrInvalidConfig = errors.New("invalid strategy configuration")

	// ErrInternal marks a defensive consistency check that tripped
	// during generation, also delivered by panicking.
	ErrInternal = errors.New("internal consistency check failed")
)

// ErrIllegalSampleConfig reports a sampled-strategy configuration whose
// size range cannot be satisfied: the maximum requested set-count
// exceeds the indices available, or one of the ranges is empty or
// reversed.
//
// It unwraps to ErrInvalidConfig for errors.Is classification.
type ErrIllegalSampleConfig struct {
	Available uint64 // number of indices in the bits range
	Size      Range  // requested set-count range
	Bits      Range  // allowed index range
}

func (e *ErrIllegalSampleConfig) Error() string {
	return fmt.Sprintf("illegal sampled strategy: have %d bits available, but requested size is %d..%d",
		e.Available, e.Size.Min, e.Size.Max)
}

func (e *ErrIllegalSampleConfig) Unwrap() error { return ErrInvalidConfig }
