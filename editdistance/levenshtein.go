package editdistance

// Levenshtein — Wagner–Fischer dynamic program
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(source), m = len(target).
//     If source and target are identical, or either is empty,
//     return |n - m| without allocating anything.
//  2. Allocate (n+1)x(m+1) matrix D and seed the borders:
//     D[i][0] = i for i=0..n (delete the whole prefix)
//     D[0][j] = j for j=0..m (insert the whole prefix)
//  3. For i = 1..n, j = 1..m:
//     cost    = 0 if source[i-1] == target[j-1] else 1
//     D[i][j] = min(D[i-1][j]+1, D[i][j-1]+1, D[i-1][j-1]+cost)
//  4. distance = D[n][m].
//  5. If ReturnScript, backtrack from (n,m) to (0,0) preferring
//     keep/substitute, then delete, then insert.
//
// Complexity:
//
//	Time   = O(n·m), no early termination
//	Memory = O(n·m) (FullMatrix) or O(min(n,m)) (TwoRows)

// Distance returns the Levenshtein distance between source and target.
// It is total: empty inputs are allowed and it never fails.
func Distance[S ~[]E, E comparable](source, target S) int {
	return distance(source, target, equal[E])
}

// Strings returns the Levenshtein distance between two strings, counted in
// runes. Comparison is case-sensitive and byte-exact per rune.
func Strings(source, target string) int {
	if source == target {
		return 0
	}

	return Distance([]rune(source), []rune(target))
}

// DistanceFunc is Distance with a caller-supplied symbol equality. It is the
// building block for case-insensitive or tolerance-based comparisons.
//
// Returns ErrNilEquality if equal is nil.
func DistanceFunc[S ~[]E, E any](source, target S, equal func(a, b E) bool) (int, error) {
	if equal == nil {
		return 0, ErrNilEquality
	}

	return distance(source, target, equal), nil
}

// Levenshtein computes the distance with explicit options and, on request,
// the edit script that realizes it. Returns (distance, script, error).
//
// A nil opts behaves like DefaultOptions(). The script is nil unless
// opts.ReturnScript is true; replaying it over source yields target, and the
// number of non-Keep edits equals the distance.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.ReturnScript = true
//	dist, script, err := Levenshtein([]rune("kitten"), []rune("sitting"), &opts)
func Levenshtein[S ~[]E, E comparable](source, target S, opts *Options) (int, []Edit, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return 0, nil, err
	}

	if o.MemoryMode == TwoRows {
		return twoRows(source, target, equal[E]), nil, nil
	}
	if !o.ReturnScript {
		return distance(source, target, equal[E]), nil, nil
	}

	// The script needs the full matrix even for the trivial cases.
	d := fill(source, target, equal[E])

	return d[len(source)][len(target)], backtrack(d, source, target, equal[E]), nil
}

// distance applies the fast path, then falls back to the full matrix.
func distance[S ~[]E, E any](source, target S, eq func(a, b E) bool) int {
	n, m := len(source), len(target)
	if n == 0 || m == 0 || identical(source, target, eq) {
		return abs(n - m)
	}

	return fill(source, target, eq)[n][m]
}

// fill builds the complete (n+1)x(m+1) DP matrix.
func fill[S ~[]E, E any](source, target S, eq func(a, b E) bool) [][]int {
	n, m := len(source), len(target)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if eq(source[i-1], target[j-1]) {
				cost = 0
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution or match
			)
		}
	}

	return d
}

// twoRows computes the same recurrence keeping only two rows sized by the
// shorter input. The distance is symmetric, so swapping is safe.
func twoRows[S ~[]E, E any](source, target S, eq func(a, b E) bool) int {
	n, m := len(source), len(target)
	if n == 0 || m == 0 || identical(source, target, eq) {
		return abs(n - m)
	}

	// inner loop runs over the shorter sequence
	outer, inner := source, target
	swapped := false
	if m > n {
		outer, inner = target, source
		swapped = true
	}

	prev := make([]int, len(inner)+1)
	curr := make([]int, len(inner)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(outer); i++ {
		curr[0] = i
		for j := 1; j <= len(inner); j++ {
			var same bool
			if swapped {
				same = eq(inner[j-1], outer[i-1])
			} else {
				same = eq(outer[i-1], inner[j-1])
			}
			cost := 1
			if same {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(inner)]
}

// backtrack walks the matrix from (n,m) to (0,0) and returns the edits in
// source order.
func backtrack[S ~[]E, E any](d [][]int, source, target S, eq func(a, b E) bool) []Edit {
	i, j := len(source), len(target)
	script := make([]Edit, 0, max(i, j))

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && eq(source[i-1], target[j-1]) && d[i][j] == d[i-1][j-1]:
			script = append(script, Edit{Op: Keep, SourceIndex: i - 1, TargetIndex: j - 1})
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			script = append(script, Edit{Op: Substitute, SourceIndex: i - 1, TargetIndex: j - 1})
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			script = append(script, Edit{Op: Delete, SourceIndex: i - 1, TargetIndex: j})
			i--
		default:
			script = append(script, Edit{Op: Insert, SourceIndex: i, TargetIndex: j - 1})
			j--
		}
	}

	// reverse in-place
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script
}

// identical reports whether both sequences have the same length and
// pairwise-equal symbols.
func identical[S ~[]E, E any](source, target S, eq func(a, b E) bool) bool {
	if len(source) != len(target) {
		return false
	}
	for i := range source {
		if !eq(source[i], target[i]) {
			return false
		}
	}

	return true
}

func equal[E comparable](a, b E) bool { return a == b }

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
