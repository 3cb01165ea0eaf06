// Command lvseq is the command-line front end of the lvseq toolkit.
package main

import "github.com/katalvlaran/lvseq/cli"

func main() {
	cli.Execute()
}
