// Package bitgen generates and shrinks bit-set values for property
// based testing.
//
// A strategy draws an initial bit-container from a random source and
// hands back a value tree. The surrounding test loop queries the tree
// and, when a test fails, drives it toward a minimal counterexample:
//
//	src := bitgen.NewRandSource(42)
//	tree, _ := bitgen.WordMasked[uint32](0xdeadbeef).NewTree(src)
//	for failing(tree.Current()) && tree.Simplify() {
//	}
//	tree.Complicate() // step back over the last shrink if it went too far
//
// # Strategies
//
// Two strategies cover the usual shapes of "some subset of bits":
//
//   - Range: every index in [min, max) is included independently with
//     probability one half, optionally restricted to a mask. The result
//     is uniform over the power set of the allowed indices.
//   - Sampled: an exact set-count is drawn from a size range, then that
//     many distinct indices are chosen uniformly without replacement
//     from an index range.
//
// Typed constructors exist per representation: WordBetween, WordMasked,
// WordSampled and WordAny for machine integers, and the BoolSlice*,
// Sparse* and VarBits* families for the dynamic containers in the
// bitset subpackage.
//
// # Shrinking
//
// Both strategies share one shrink machine. Simplify clears the lowest
// remaining set bit at or after a forward-only cursor, one bit per
// step, never below the strategy's floor (zero for Range, the size
// range's lower bound for Sampled). Complicate undoes exactly the most
// recent Simplify; only one undo slot exists.
//
// # Errors
//
// Misconfiguration is a programmer error and panics at construction
// time with an error satisfying errors.Is(err, ErrInvalidConfig). A
// consistency check that trips during generation panics wrapping
// ErrInternal. Simplify and Complicate never fail; they only report
// whether they changed anything.
//
// # Observability
//
// Strategies accept functional options: WithLogger attaches a
// slog-backed Logger, WithMetricsCollector counts generation and
// shrink outcomes. Both default to no-ops.
package bitgen
