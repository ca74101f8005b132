// Package engine computes minimal input sequences ("finesse") for placing a
// tetromino at a target column and orientation, and grades a player's actual
// inputs against that optimum.
//
// The package is a pure library: every entry point is a function of an
// immutable Board snapshot and plain values, returns definite results and
// never blocks or performs I/O. Boards are copy-on-write, so one snapshot
// can back any number of concurrent analyses without locks.
package engine
