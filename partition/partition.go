package partition

// Split returns the elements satisfying predicate, in order, and the
// set difference of source minus those values.
//
// The predicate is called exactly once per element, in order. trueList
// keeps duplicates; falseList holds each non-matching value once, in
// first-occurrence order, and excludes every value that appears in
// trueList. Values that are not equal to themselves (NaN) are treated as
// one value. Both results are non-nil and independent of source.
//
// Returns ErrNilPredicate if predicate is nil.
func Split[S ~[]T, T comparable](source S, predicate func(T) bool) (trueList, falseList []T, err error) {
	if predicate == nil {
		return nil, nil, ErrNilPredicate
	}

	trueList = make([]T, 0, len(source))
	matched := make(map[T]struct{})
	matchedNaN := false
	for _, v := range source {
		if predicate(v) {
			trueList = append(trueList, v)
			if v != v {
				matchedNaN = true
			} else {
				matched[v] = struct{}{}
			}
		}
	}

	falseList = make([]T, 0, len(source)-len(trueList))
	seen := make(map[T]struct{}, len(source))
	seenNaN := matchedNaN
	for _, v := range source {
		if v != v {
			if !seenNaN {
				seenNaN = true
				falseList = append(falseList, v)
			}
			continue
		}
		if _, ok := matched[v]; ok {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		falseList = append(falseList, v)
	}

	return trueList, falseList, nil
}

// Group buckets source by projection. Keys keep first-seen order; each
// bucket keeps encounter order.
//
// Returns ErrNilProjection if projection is nil.
func Group[S ~[]T, T any, K comparable](source S, projection func(T) K) (*Groups[K, T], error) {
	if projection == nil {
		return nil, ErrNilProjection
	}

	g := newGroups[K, T]()
	for _, v := range source {
		g.add(projection(v), v)
	}

	return g, nil
}
