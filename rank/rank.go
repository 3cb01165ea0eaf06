package rank

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvseq"
)

// Sentinel errors for ranking.
var (
	// ErrEmptyInput is returned when source has no elements.
	ErrEmptyInput = fmt.Errorf("%w: rank: source is empty", lvseq.ErrEmptyInput)

	// ErrNilRankKey is returned when the key function is nil.
	ErrNilRankKey = fmt.Errorf("%w: rank: rank key is nil", lvseq.ErrInvalidArgument)

	// ErrNilCompare is returned by MostCommonFunc when compare is nil.
	ErrNilCompare = fmt.Errorf("%w: rank: compare is nil", lvseq.ErrInvalidArgument)
)

// MostCommon returns the largest rankKey over source, which is the key of
// the front element after a stable descending sort. Despite the name this
// is a maximum, not a frequency count; see Mode.
//
// Keys are ordered by cmp.Compare, so a NaN key ranks below every number.
//
// Returns ErrEmptyInput for an empty source and ErrNilRankKey for a nil key.
func MostCommon[S ~[]T, T any, K cmp.Ordered](source S, rankKey func(T) K) (K, error) {
	return MostCommonFunc(source, rankKey, cmp.Compare[K])
}

// MostCommonFunc is MostCommon for keys ordered by an explicit three-way
// comparator (negative, zero, positive for less, equal, greater).
//
// On ties the earliest element wins, matching a stable descending sort.
func MostCommonFunc[S ~[]T, T any, K any](source S, rankKey func(T) K, compare func(a, b K) int) (K, error) {
	var best K
	switch {
	case rankKey == nil:
		return best, ErrNilRankKey
	case compare == nil:
		return best, ErrNilCompare
	case len(source) == 0:
		return best, ErrEmptyInput
	}

	best = rankKey(source[0])
	for _, v := range source[1:] {
		if k := rankKey(v); compare(k, best) > 0 {
			best = k
		}
	}

	return best, nil
}

// Mode returns the most frequent key over source and its count. Ties are
// broken by the key's first occurrence. Keys that are not equal to
// themselves (NaN) are counted together.
//
// Returns ErrEmptyInput for an empty source and ErrNilRankKey for a nil key.
func Mode[S ~[]T, T any, K comparable](source S, key func(T) K) (K, int, error) {
	var zero K
	if key == nil {
		return zero, 0, ErrNilRankKey
	}
	if len(source) == 0 {
		return zero, 0, ErrEmptyInput
	}

	var (
		order  []K
		counts []int
		index  = make(map[K]int)
		nan    = -1
	)
	for _, v := range source {
		k := key(v)
		i, ok := index[k]
		if k != k {
			i, ok = nan, nan >= 0
		}
		if !ok {
			i = len(order)
			order = append(order, k)
			counts = append(counts, 0)
			if k != k {
				nan = i
			} else {
				index[k] = i
			}
		}
		counts[i]++
	}

	best, bestCount := order[0], counts[0]
	for i, c := range counts[1:] {
		if c > bestCount {
			best, bestCount = order[i+1], c
		}
	}

	return best, bestCount, nil
}
