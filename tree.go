package bitgen

import (
	"github.com/hupe1980/bitgen/bitset"
)

// Tree holds a generated bit-container and drives its shrinking. Both
// strategies produce the same tree shape; they differ only in the
// initial value, the cursor start and the floor.
//
// Shrinking clears one bit per step, scanning upward from the cursor.
// The cursor never moves backward, so an index the shrinker decided to
// keep is never revisited, and the set-count decreases strictly
// monotonically until it reaches the floor. Exactly one undo slot is
// kept: Complicate can revert the most recent Simplify and nothing
// older.
//
// A Tree is owned by a single test loop and is not safe for concurrent
// use. Current hands out independent copies, so the held value can
// evolve safely even while a caller retains an earlier snapshot.
type Tree[B bitset.Container[B]] struct {
	value   B
	cursor  uint64
	undo    uint64
	hasUndo bool
	floor   uint64
	metrics MetricsCollector
}

func newTree[B bitset.Container[B]](value B, cursor, floor uint64, mc MetricsCollector) *Tree[B] {
	return &Tree[B]{
		value:   value,
		cursor:  cursor,
		floor:   floor,
		metrics: mc,
	}
}

// Current returns an independent copy of the held value. Callers may
// retain or mutate the copy freely without affecting shrink state.
func (t *Tree[B]) Current() B {
	return t.value.Clone()
}

// Simplify attempts one shrink step: clear the lowest set bit at or
// after the cursor. It reports false, leaving the value unchanged,
// when the set-count is already at the floor or no candidate bit
// remains.
func (t *Tree[B]) Simplify() bool {
	ok := t.shrinkStep()
	t.metrics.RecordSimplify(ok)
	return ok
}

func (t *Tree[B]) shrinkStep() bool {
	if t.value.Count() <= t.floor {
		// At the floor; a pending undo stays revertible.
		return false
	}

	for t.cursor < t.value.Len() && !t.value.Test(t.cursor) {
		t.cursor++
	}
	if t.cursor >= t.value.Len() {
		// No candidate left; the pending undo is no longer valid.
		t.hasUndo = false
		return false
	}

	t.undo, t.hasUndo = t.cursor, true
	t.value.Clear(t.cursor)
	t.cursor++
	return true
}

// Complicate reverts the most recent successful Simplify by re-setting
// the bit it cleared. It reports false when no step is pending. The
// cursor is not rewound: the restored bit is kept from then on.
func (t *Tree[B]) Complicate() bool {
	ok := t.undoStep()
	t.metrics.RecordComplicate(ok)
	return ok
}

func (t *Tree[B]) undoStep() bool {
	if !t.hasUndo {
		return false
	}
	t.value.Set(t.undo)
	t.hasUndo = false
	return true
}
