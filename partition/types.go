package partition

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvseq"
)

// Sentinel errors for partitioning.
var (
	// ErrNilPredicate is returned by Split when predicate is nil.
	ErrNilPredicate = fmt.Errorf("%w: partition: predicate is nil", lvseq.ErrInvalidArgument)

	// ErrNilProjection is returned by Group when projection is nil.
	ErrNilProjection = fmt.Errorf("%w: partition: projection is nil", lvseq.ErrInvalidArgument)
)

// Groups is an insertion-ordered mapping from key to bucket.
//
// Keys that are not equal to themselves (a float NaN, or a struct or array
// holding one) share a single bucket, so no element becomes unreachable.
type Groups[K comparable, T any] struct {
	keys    []K
	buckets [][]T
	index   map[K]int
	nan     int // bucket of self-unequal keys, -1 if none
}

func newGroups[K comparable, T any]() *Groups[K, T] {
	return &Groups[K, T]{index: make(map[K]int), nan: -1}
}

// slot returns the bucket index of k.
func (g *Groups[K, T]) slot(k K) (int, bool) {
	if k != k {
		return g.nan, g.nan >= 0
	}
	i, ok := g.index[k]

	return i, ok
}

func (g *Groups[K, T]) add(k K, v T) {
	i, ok := g.slot(k)
	if !ok {
		i = len(g.keys)
		g.keys = append(g.keys, k)
		g.buckets = append(g.buckets, nil)
		if k != k {
			g.nan = i
		} else {
			g.index[k] = i
		}
	}
	g.buckets[i] = append(g.buckets[i], v)
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int { return len(g.keys) }

// Keys returns the keys in first-seen order. The slice is a copy.
func (g *Groups[K, T]) Keys() []K {
	return slices.Clone(g.keys)
}

// Get returns a copy of the bucket for k and whether k is present.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	i, ok := g.slot(k)
	if !ok {
		return nil, false
	}

	return slices.Clone(g.buckets[i]), true
}

// All iterates over (key, bucket) in first-seen key order. Each bucket is
// a copy.
func (g *Groups[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for i, k := range g.keys {
			if !yield(k, slices.Clone(g.buckets[i])) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the buckets. A NaN key is present but,
// as with any Go map, cannot be looked up; range over the map to reach it.
func (g *Groups[K, T]) Map() map[K][]T {
	out := make(map[K][]T, len(g.keys))
	for i, k := range g.keys {
		out[k] = slices.Clone(g.buckets[i])
	}

	return out
}
