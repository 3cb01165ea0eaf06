package editdistance_test

import (
	"fmt"

	"github.com/katalvlaran/lvseq/editdistance"
)

// ExampleStrings shows the two textbook pairs.
func ExampleStrings() {
	fmt.Println(editdistance.Strings("kitten", "sitting"))
	fmt.Println(editdistance.Strings("flaw", "lawn"))
	// Output:
	// 3
	// 2
}

// ExampleDistance compares token sequences rather than characters.
func ExampleDistance() {
	before := []string{"GET", "/users", "HTTP/1.1"}
	after := []string{"GET", "/accounts", "HTTP/1.1"}
	fmt.Println(editdistance.Distance(before, after))
	// Output:
	// 1
}

// ExampleLevenshtein recovers the edit script for "flaw" → "lawn".
//
// Options:
//   - MemoryMode   = FullMatrix (required for the script)
//   - ReturnScript = true
func ExampleLevenshtein() {
	opts := editdistance.DefaultOptions()
	opts.ReturnScript = true

	dist, script, err := editdistance.Levenshtein([]rune("flaw"), []rune("lawn"), &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%d\nscript=%v\n", dist, script)
	// Output:
	// distance=2
	// script=[delete(0,0) keep(1,0) keep(2,1) keep(3,2) insert(4,3)]
}

// ExampleSimilarity normalizes the distance into [0,1].
func ExampleSimilarity() {
	fmt.Printf("%.3f\n", editdistance.Similarity("kitten", "sitting"))
	// Output:
	// 0.571
}
