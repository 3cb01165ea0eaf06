package dtw

import "math"

// DTW — Dynamic Time Warping
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and |i-j| ≤ Window, if constrained):
//     c     = cost(a[i-1], b[j-1])
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = c + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (1,1) following the cheapest
//     predecessor (diagonal first on ties).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows)

// DTW computes the Dynamic Time Warping distance between a and b under the
// given local cost. Returns (distance, path, error).
//
// A nil opts behaves like DefaultOptions(). When the window makes the
// corner unreachable the distance is +Inf and the path is nil.
//
// Errors:
//   - ErrEmptyInput      — either input is empty.
//   - ErrNilCost         — cost is nil.
//   - ErrBadInput        — Window < -1, negative SlopePenalty or unknown mode.
//   - ErrPathNeedsMatrix — ReturnPath with TwoRows.
func DTW[S ~[]T, T any](a, b S, cost CostFunc[T], opts *Options) (distance float64, path []Coord, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = o.validate(); err != nil {
		return 0, nil, err
	}
	if cost == nil {
		return 0, nil, ErrNilCost
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	if o.MemoryMode == TwoRows {
		return twoRows(a, b, cost, o), nil, nil
	}

	dp := fullMatrix(a, b, cost, o)
	distance = dp[n][m]
	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(dp, o.SlopePenalty)
	}

	return distance, path, nil
}

func fullMatrix[S ~[]T, T any](a, b S, cost CostFunc[T], o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			dp[i][j] = cost(a[i-1], b[j-1]) + min3(
				dp[i-1][j]+o.SlopePenalty,
				dp[i][j-1]+o.SlopePenalty,
				dp[i-1][j-1],
			)
		}
	}

	return dp
}

func twoRows[S ~[]T, T any](a, b S, cost CostFunc[T], o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			curr[j] = cost(a[i-1], b[j-1]) + min3(
				prev[j]+o.SlopePenalty,
				curr[j-1]+o.SlopePenalty,
				prev[j-1],
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack recovers the optimal path from the filled matrix.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)

	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			diag := dp[i-1][j-1]
			up := dp[i-1][j] + penalty
			left := dp[i][j-1] + penalty
			switch {
			case diag <= up && diag <= left:
				i--
				j--
			case up <= left:
				i--
			default:
				j--
			}
		}
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// outside reports whether (i, j) falls outside the Sakoe–Chiba band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
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
