// Package exercise contains the algorithm exercise corpus: standalone pure
// functions, each solving one classic algorithmic problem over primitive or
// simple container inputs.
//
// Every function in this package is deterministic, retains no state between
// calls, and performs no I/O. Functions with a restricted domain reject
// invalid input with an explicit error instead of producing an undefined
// result; sentinel errors such as [ErrNegativeInput] support errors.Is checks.
package exercise
