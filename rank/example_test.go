package rank_test

import (
	"fmt"

	"github.com/katalvlaran/lvseq/rank"
)

// ExampleMostCommon returns the maximum rank key, not the most frequent one.
func ExampleMostCommon() {
	top, _ := rank.MostCommon([]int{3, 1, 2, 1, 1}, func(x int) int { return x })
	fmt.Println(top)
	// Output:
	// 3
}

// ExampleMode returns the most frequent key and its count.
func ExampleMode() {
	k, n, _ := rank.Mode([]int{3, 1, 2, 1, 1}, func(x int) int { return x })
	fmt.Println(k, n)
	// Output:
	// 1 3
}
