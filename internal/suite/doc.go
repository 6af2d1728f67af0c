// Package suite defines the test-case model for the exercise corpus: the
// immutable (input, expected) case records, the registry that maps exercise
// names to dynamically invocable adapters, the builtin case corpus, and the
// result comparison rules (exact equality for integral, boolean and sequence
// results; tolerance-bounded equality for floating-point results).
//
// The dynamic dispatch layer validates arity and argument types before
// touching an exercise function, so malformed cases fail with a structured
// [apperrors.ArgumentError] instead of a panic.
package suite
