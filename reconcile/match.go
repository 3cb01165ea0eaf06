package reconcile

import "iter"

// Match yields, for each a in first (in order), the pair (a, b) where b is
// the first element of second with equiv(a, b). Elements of first without
// a match are skipped. second is rescanned for every a and nothing is
// consumed, so the same b may appear in several pairs.
//
// A matched b is reported even when it is the zero value of T.
//
// The returned iterator is lazy and may be ranged over repeatedly; each
// range recomputes from the inputs. Returns ErrNilEquivalence (and a nil
// iterator) if equiv is nil.
func Match[S ~[]T, T any](first, second S, equiv Equivalence[T]) (iter.Seq2[T, T], error) {
	if equiv == nil {
		return nil, ErrNilEquivalence
	}

	return func(yield func(T, T) bool) {
		for _, a := range first {
			b, ok := firstEquivalent(a, second, equiv)
			if !ok {
				continue
			}
			if !yield(a, b) {
				return
			}
		}
	}, nil
}

// MissingFrom yields every a in first for which no b in second satisfies
// equiv(a, b). It is the dual of Match: together they partition first.
//
// Same laziness and error contract as Match.
func MissingFrom[S ~[]T, T any](first, second S, equiv Equivalence[T]) (iter.Seq[T], error) {
	if equiv == nil {
		return nil, ErrNilEquivalence
	}

	return func(yield func(T) bool) {
		for _, a := range first {
			if _, ok := firstEquivalent(a, second, equiv); ok {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}, nil
}

// Pairs drains a Match iterator into a slice. A nil iterator yields nil.
func Pairs[T any](seq iter.Seq2[T, T]) []Pair[T] {
	if seq == nil {
		return nil
	}

	var out []Pair[T]
	for a, b := range seq {
		out = append(out, Pair[T]{First: a, Second: b})
	}

	return out
}

// firstEquivalent scans second in order and stops at the first hit.
func firstEquivalent[S ~[]T, T any](a T, second S, equiv Equivalence[T]) (T, bool) {
	for _, b := range second {
		if equiv(a, b) {
			return b, true
		}
	}

	var zero T

	return zero, false
}
