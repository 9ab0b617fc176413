// Package testutil provides testing utilities for bitgen.
//
// This package is intended for use in tests and examples only. Its
// ScriptSource replays canned randomness so generation and shrink
// behavior can be asserted exactly, draw by draw.
//
// # Scripted Generation
//
//	src := &testutil.ScriptSource{
//	    Bools: []bool{true, false, true, false},
//	}
//	tree, _ := bitgen.WordBetween[uint8](0, 4).NewTree(src)
//	// bits 0 and 2 are set, nothing else
//
// A script that runs dry panics, which turns an unexpected extra draw
// into a loud test failure.
package testutil
