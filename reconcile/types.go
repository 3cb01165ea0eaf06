package reconcile

import (
	"fmt"

	"github.com/katalvlaran/lvseq"
)

// ErrNilEquivalence is returned when no equivalence predicate is supplied.
var ErrNilEquivalence = fmt.Errorf("%w: reconcile: equivalence predicate is nil", lvseq.ErrInvalidArgument)

// Equivalence decides whether a (from the first collection) corresponds to
// b (from the second). It must be pure and defined for every pair.
type Equivalence[T any] func(a, b T) bool

// Pair is one correspondence produced by Match.
type Pair[T any] struct {
	First  T `json:"first"`
	Second T `json:"second"`
}

// Report is the eager, two-way result of Reconcile.
type Report[T any] struct {
	// Matched holds, in order of the first collection, each element of
	// first paired with its first equivalent in second.
	Matched []Pair[T] `json:"matched"`

	// MissingFromSecond holds the elements of first with no equivalent in second.
	MissingFromSecond []T `json:"missing_from_second"`

	// MissingFromFirst holds the elements of second that no element of
	// first is equivalent to.
	MissingFromFirst []T `json:"missing_from_first"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate counts for a Report.
type Summary struct {
	First             int `json:"first"`
	Second            int `json:"second"`
	Matched           int `json:"matched"`
	MissingFromSecond int `json:"missing_from_second"`
	MissingFromFirst  int `json:"missing_from_first"`
}
