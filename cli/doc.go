// Package cli implements the lvseq command tree.
//
//	lvseq distance   <a> <b>                 edit distance (+ --script)
//	lvseq similarity <a> <b>                 similarity score in [0,1]
//	lvseq reconcile  <first> <second>        fuzzy line reconciliation of two files
//	lvseq align      <series-a> <series-b>   dynamic time warping of numeric series
//
// Defaults come from internal/config (environment and .env); flags win.
package cli
