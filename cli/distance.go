package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvseq/editdistance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDistanceCmd(a *app) *cobra.Command {
	var (
		script     bool
		ignoreCase bool
	)

	cmd := &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Print the Levenshtein distance between two strings",
		Long: `Print the Levenshtein distance between two strings, counted in runes.

Examples:
  lvseq distance kitten sitting
  lvseq distance --script flaw lawn
  lvseq distance --ignore-case CustomerID customerid`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := []rune(args[0]), []rune(args[1])
			fold := ignoreCase || a.cfg.Match.IgnoreCase
			out := cmd.OutOrStdout()

			if fold {
				d, err := editdistance.DistanceFunc(src, dst, func(x, y rune) bool {
					return unicode.ToLower(x) == unicode.ToLower(y)
				})
				if err != nil {
					return err
				}
				a.log.Debug("distance computed", zap.Int("distance", d), zap.Bool("ignore_case", true))
				fmt.Fprintln(out, d)

				return nil
			}

			opts := editdistance.DefaultOptions()
			opts.ReturnScript = script
			d, edits, err := editdistance.Levenshtein(src, dst, &opts)
			if err != nil {
				return err
			}
			a.log.Debug("distance computed", zap.Int("distance", d), zap.Int("edits", len(edits)))

			fmt.Fprintln(out, d)
			for _, e := range edits {
				fmt.Fprintln(out, describeEdit(e, src, dst))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&script, "script", false, "Also print the edit script")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "Compare runes case-insensitively")
	cmd.MarkFlagsMutuallyExclusive("script", "ignore-case")

	return cmd
}

// describeEdit renders one edit as "op  'x' -> 'y'".
func describeEdit(e editdistance.Edit, src, dst []rune) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s ", e.Op)
	switch e.Op {
	case editdistance.Keep:
		fmt.Fprintf(&sb, "%q", src[e.SourceIndex])
	case editdistance.Substitute:
		fmt.Fprintf(&sb, "%q -> %q", src[e.SourceIndex], dst[e.TargetIndex])
	case editdistance.Insert:
		fmt.Fprintf(&sb, "+ %q", dst[e.TargetIndex])
	case editdistance.Delete:
		fmt.Fprintf(&sb, "- %q", src[e.SourceIndex])
	}

	return strings.TrimRight(sb.String(), " ")
}
