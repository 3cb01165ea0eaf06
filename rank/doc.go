// Package rank selects a single key from a collection by a derived
// ranking key.
//
// MostCommon keeps the behavior its name does not suggest: it returns the
// MAXIMUM rank key, i.e. the key of the first element of a stable
// descending ordering. It does not count frequencies. Use Mode when the
// most frequent key is wanted.
//
//	MostCommon([3, 1, 2], id) == 3
//	Mode([1, 2, 2, 3, 3], id) == (2, 2) // first of the tied keys wins
//
// Both fail with ErrEmptyInput on empty input.
package rank
