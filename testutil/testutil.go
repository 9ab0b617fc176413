package testutil

import (
	"fmt"
	"iter"
)

// ScriptSource is a randomness source with fully scripted answers. It
// implements the bitgen Source contract without any actual randomness:
// Bool pops the next entry of Bools, Uint64Range pops the next entry
// of Uints, and Choose deterministically takes the first n values of
// the sequence.
//
// Exhausting a script panics. Scripts double as draw-count assertions
// that way: size them to exactly the draws the code under test should
// make.
type ScriptSource struct {
	// Bools holds the answers for Bool, consumed front to back.
	Bools []bool

	// Uints holds the answers for Uint64Range, consumed front to
	// back. Each answer must lie inside the range it is asked for.
	Uints []uint64

	boolAt int
	uintAt int
}

// Bool returns the next scripted coin flip.
func (s *ScriptSource) Bool() bool {
	if s.boolAt >= len(s.Bools) {
		panic(fmt.Sprintf("testutil: bool script exhausted after %d draws", s.boolAt))
	}
	v := s.Bools[s.boolAt]
	s.boolAt++
	return v
}

// Uint64Range returns the next scripted integer. It panics when the
// scripted value falls outside [lo, hi], which flags a script that got
// out of sync with the code under test.
func (s *ScriptSource) Uint64Range(lo, hi uint64) uint64 {
	if s.uintAt >= len(s.Uints) {
		panic(fmt.Sprintf("testutil: uint script exhausted after %d draws", s.uintAt))
	}
	v := s.Uints[s.uintAt]
	s.uintAt++
	if v < lo || v > hi {
		panic(fmt.Sprintf("testutil: scripted value %d outside requested range %d..%d", v, lo, hi))
	}
	return v
}

// Choose returns the first n values of seq, or every value when seq
// yields fewer. The deterministic selection keeps sampled-generation
// tests exact.
func (s *ScriptSource) Choose(seq iter.Seq[uint64], n uint64) []uint64 {
	if n == 0 {
		return nil
	}
	picked := make([]uint64, 0, n)
	for v := range seq {
		picked = append(picked, v)
		if uint64(len(picked)) == n {
			break
		}
	}
	return picked
}

// BoolsUsed returns how many coin flips have been consumed.
func (s *ScriptSource) BoolsUsed() int {
	return s.boolAt
}

// UintsUsed returns how many integer draws have been consumed.
func (s *ScriptSource) UintsUsed() int {
	return s.uintAt
}
