// Package reconcile pairs and separates the elements of two collections
// using a caller-supplied equivalence predicate rather than structural
// equality.
//
// Real-world reconciliation, such as matching rows exported from two systems
// with renamed or misspelled identifiers, needs partial or fuzzy
// keys. Every operation here therefore takes an Equivalence[T], a plain
// func(a, b T) bool. It does not need to be symmetric or transitive; it
// is always called as equiv(elementOfFirst, elementOfSecond).
//
// # Operations
//
//   - Match: for each a in first, the first b in second with equiv(a, b).
//     Matched b are not consumed, so one b may pair with several a.
//   - MissingFrom: every a in first with no equivalent b in second.
//   - Reconcile: both directions at once, collected into a Report.
//
// Match and MissingFrom are lazy: they return iterators that compute each
// element when the consumer advances. Ranging over the same iterator again
// recomputes from scratch; nothing is cached. Stopping early (break) is the
// only cancellation needed.
//
// # Equivalence builders
//
//   - ByKey: equal derived keys.
//   - WithinDistance: Levenshtein distance ≤ max (strings).
//   - SimilarAtLeast: similarity score ≥ threshold (strings, any metric).
//   - Flip: swaps the argument order of another equivalence.
//
// # Complexity
//
// Each operation performs O(|first|·|second|) predicate evaluations in the
// worst case. Inputs are never retained beyond the returned iterator nor
// mutated.
package reconcile
