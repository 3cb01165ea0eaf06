// Package dtw computes Dynamic Time Warping (DTW) distances between two
// sequences of any element type, with an optional alignment path.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize the cumulative cost of aligned elements. Where the
//	edit distance counts discrete edits, DTW sums a caller-defined cost:
//	  • numeric series (sensor readings, prices) via AbsDiff
//	  • token streams with a graded mismatch cost
//	  • sequences of records compared field by field
//
// ✨ Key features:
//   - generic over the element type; cost is a plain func(a, b T) float64
//   - full-matrix mode: exact O(N·M) time & memory, optional path
//   - two-row mode: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvseq/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10        // Sakoe–Chiba band ±10
//	opts.SlopePenalty = 0.5 // penalty for non-diagonal steps
//	opts.ReturnPath = true  // also return the warp path
//
//	dist, path, err := dtw.DTW(a, b, dtw.AbsDiff, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
package dtw
