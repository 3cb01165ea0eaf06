// Package lvseq is your in-memory toolkit for comparing, reconciling and
// reorganizing sequences, from classic edit distance to fuzzy two-way
// reconciliation of heterogeneous collections.
//
// 🚀 What is lvseq?
//
//	A small, generic, side-effect-free library that brings together:
//		• Edit distance: Levenshtein (Wagner–Fischer), edit scripts, similarity scores
//		• Alignment: Dynamic Time Warping over any element type
//		• Reconciliation: Match / MissingFrom with caller-supplied equivalence
//		• Partitioning: Split by predicate, Group by projection
//		• Ranking: MostCommon (maximum rank key) and Mode (frequency)
//
// ✨ Why choose lvseq?
//
//   - Generic – works on any slice type, with predicates as plain closures
//   - Lazy where it matters – reconciliation results are iter.Seq values
//   - Pure – no global state, no goroutines, inputs are never mutated
//
// Under the hood, everything is organized under five subpackages:
//
//	editdistance/ — Levenshtein distance, edit scripts & string similarity
//	dtw/          — Dynamic Time Warping with windows & slope penalties
//	reconcile/    — Match, MissingFrom, two-way reports & equivalence builders
//	partition/    — Split & Group
//	rank/         — MostCommon & Mode
//
// This root package only declares the error categories shared by all of
// them; see errors.go.
//
// Quick example:
//
//	d := editdistance.Strings("kitten", "sitting") // 3
//
//	pairs, _ := reconcile.Match(oldNames, newNames, reconcile.WithinDistance(1))
//	for a, b := range pairs {
//		fmt.Println(a, "→", b)
//	}
//
//	go get github.com/katalvlaran/lvseq
package lvseq
