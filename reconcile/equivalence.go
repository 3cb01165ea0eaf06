package reconcile

import "github.com/katalvlaran/lvseq/editdistance"

// ByKey treats a and b as equivalent when key(a) == key(b).
// A nil key yields a nil Equivalence, which the operations reject.
func ByKey[T any, K comparable](key func(T) K) Equivalence[T] {
	if key == nil {
		return nil
	}

	return func(a, b T) bool { return key(a) == key(b) }
}

// WithinDistance matches strings whose Levenshtein distance (in runes) is at
// most maxEdits. A negative maxEdits matches nothing.
func WithinDistance(maxEdits int) Equivalence[string] {
	return func(a, b string) bool {
		if maxEdits < 0 {
			return false
		}

		return editdistance.Strings(a, b) <= maxEdits
	}
}

// SimilarAtLeast matches strings whose similarity under algo is at least
// threshold. A metric error (e.g. Hamming on unequal lengths) counts as no
// match.
func SimilarAtLeast(threshold float64, algo editdistance.Algorithm) Equivalence[string] {
	return func(a, b string) bool {
		score, err := editdistance.StringsSimilarity(a, b, algo)

		return err == nil && score >= threshold
	}
}

// Flip returns an equivalence with swapped arguments. Flip(nil) is nil.
func Flip[T any](equiv Equivalence[T]) Equivalence[T] {
	if equiv == nil {
		return nil
	}

	return func(a, b T) bool { return equiv(b, a) }
}
