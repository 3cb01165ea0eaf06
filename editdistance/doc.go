// Package editdistance computes the Levenshtein (edit) distance between two
// finite sequences, together with optional edit scripts and normalized
// similarity scores.
//
// 🚀 What is edit distance?
//
//	The minimum number of single-symbol insertions, deletions or
//	substitutions that turns one sequence into another. Typical uses:
//	  • fuzzy matching of names, identifiers and record keys
//	  • typo detection & "did you mean" suggestions
//	  • reconciling rows exported from two heterogeneous systems
//
// ✨ Key features:
//   - generic over any comparable symbol type (runes, bytes, tokens, IDs)
//   - custom symbol equality via DistanceFunc
//   - full-matrix mode with on-demand edit script (ReturnScript=true)
//   - two-row mode: O(min(N,M)) memory when only the distance matters
//   - string similarity in [0,1], plus Jaro, Jaro–Winkler, Damerau, LCS,
//     Q-gram & friends through go-edlib
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvseq/editdistance"
//
//	d := editdistance.Strings("kitten", "sitting") // 3
//
//	opts := editdistance.DefaultOptions()
//	opts.ReturnScript = true
//	dist, script, err := editdistance.Levenshtein([]rune("flaw"), []rune("lawn"), &opts)
//
//	score, err := editdistance.StringsSimilarity("martha", "marhta", editdistance.AlgoJaroWinkler)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
//
// No normalization is performed: case folding, trimming or Unicode
// normalization are the caller's responsibility.
package editdistance
