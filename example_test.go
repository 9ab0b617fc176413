package bitgen_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/bitgen"
	"github.com/hupe1980/bitgen/testutil"
)

// Example_masked demonstrates generating subsets of a fixed bit mask.
func Example_masked() {
	// A scripted source makes the draws reproducible here; use
	// bitgen.NewRandSource for real generation.
	src := &testutil.ScriptSource{Bools: []bool{true, true}}

	tree, err := bitgen.WordMasked[uint8](0b1010).NewTree(src)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%04b\n", tree.Current().Value())
	// Output: 1010
}

// Example_shrink walks a failing value down to the empty container one
// bit at a time.
func Example_shrink() {
	src := &testutil.ScriptSource{Bools: []bool{true, false, true, true}}

	tree, err := bitgen.BoolSliceBetween(0, 4).NewTree(src)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tree.Current().Bools())
	for tree.Simplify() {
		fmt.Println(tree.Current().Bools())
	}
	// Output:
	// [true false true true]
	// [false false true true]
	// [false false false true]
	// [false false false false]
}

// Example_sampled demonstrates drawing a fixed number of distinct
// indices from a range.
func Example_sampled() {
	// The scripted source fixes the set-count at four; the scripted
	// chooser then picks the first four candidates.
	src := &testutil.ScriptSource{Uints: []uint64{4}}

	size := bitgen.Range{Min: 4, Max: 8}
	bits := bitgen.Range{Min: 10, Max: 20}

	tree, err := bitgen.WordSampled[uint32](size, bits).NewTree(src)
	if err != nil {
		log.Fatal(err)
	}

	v := tree.Current()
	fmt.Printf("%d bits set: %#x\n", v.Count(), v.Value())
	// Output: 4 bits set: 0x3c00
}

// Example_replay demonstrates that equal seeds reproduce equal values.
func Example_replay() {
	s := bitgen.WordAny[uint64]()

	a, err := s.NewTree(bitgen.NewRandSource(42))
	if err != nil {
		log.Fatal(err)
	}
	b, err := s.NewTree(bitgen.NewRandSource(42))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("replayed:", a.Current().Value() == b.Current().Value())
	// Output: replayed: true
}

// Example_metrics demonstrates collecting generation statistics.
func Example_metrics() {
	mc := &bitgen.BasicMetricsCollector{}
	src := &testutil.ScriptSource{Bools: []bool{true, true, false}}

	s := bitgen.BoolSliceBetween(0, 3, bitgen.WithMetricsCollector(mc))
	tree, err := s.NewTree(src)
	if err != nil {
		log.Fatal(err)
	}

	for tree.Simplify() {
	}

	stats := mc.GetStats()
	fmt.Printf("%d generated, %d bits set, %d successful shrink steps\n",
		stats.GenerateCount, stats.GeneratedBits, stats.SimplifyCount-stats.SimplifyFailed)
	// Output: 1 generated, 2 bits set, 2 successful shrink steps
}
