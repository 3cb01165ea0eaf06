package reconcile

import (
	"iter"
	"slices"
)

// Reconcile runs Match and MissingFrom in both directions and collects the
// results. MissingFromFirst is computed with the flipped predicate, so
// equiv is always called as equiv(elementOfFirst, elementOfSecond).
//
// Returns ErrNilEquivalence if equiv is nil.
func Reconcile[S ~[]T, T any](first, second S, equiv Equivalence[T]) (*Report[T], error) {
	matched, err := Match(first, second, equiv)
	if err != nil {
		return nil, err
	}
	missingSecond, err := MissingFrom(first, second, equiv)
	if err != nil {
		return nil, err
	}
	missingFirst, err := MissingFrom(second, first, Flip(equiv))
	if err != nil {
		return nil, err
	}

	report := &Report[T]{
		Matched:           Pairs(matched),
		MissingFromSecond: collect(missingSecond),
		MissingFromFirst:  collect(missingFirst),
	}
	if report.Matched == nil {
		report.Matched = []Pair[T]{}
	}
	report.Summary = Summary{
		First:             len(first),
		Second:            len(second),
		Matched:           len(report.Matched),
		MissingFromSecond: len(report.MissingFromSecond),
		MissingFromFirst:  len(report.MissingFromFirst),
	}

	return report, nil
}

// Complete reports whether every element on both sides found a counterpart.
func (r *Report[T]) Complete() bool {
	return r.Summary.MissingFromFirst == 0 && r.Summary.MissingFromSecond == 0
}

// collect is slices.Collect with a non-nil result, so empty reports
// serialize as [] rather than null.
func collect[T any](seq iter.Seq[T]) []T {
	out := slices.Collect(seq)
	if out == nil {
		out = []T{}
	}

	return out
}
