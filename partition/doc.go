// Package partition reorganizes one collection: Split divides it in two by
// a predicate, Group buckets it by a projected key.
//
// Both operations are eager. Results are freshly allocated slices that
// never alias the input, and the input is never mutated.
//
// Split and duplicates:
//
//	The false partition is the set difference source − trueList by value
//	equality, not a re-evaluation of the predicate. A value that matched
//	once is therefore removed from the false partition everywhere, and the
//	false partition holds each remaining value once:
//
//	  Split([1, 2, 1], p) where p accepts only the 2nd "1" seen
//	    trueList  = [1]
//	    falseList = [2]      // both 1s are gone
//
//	Callers needing multiset semantics should filter twice instead.
//
// Group keeps keys in first-seen order and members in encounter order; the
// Groups type exposes that order through Keys and All.
package partition
