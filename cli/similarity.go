package cli

import (
	"fmt"

	"github.com/katalvlaran/lvseq/editdistance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSimilarityCmd(a *app) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "similarity <a> <b>",
		Short: "Print a similarity score in [0,1] between two strings",
		Long: `Print a similarity score in [0,1] between two strings.

Algorithms: levenshtein, damerau-levenshtein, osa, lcs, hamming, jaro,
jaro-winkler, cosine, jaccard, sorensen-dice, qgram.

Examples:
  lvseq similarity kitten sitting
  lvseq similarity --algorithm jaro-winkler martha marhta`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := algorithm
			if name == "" {
				name = a.cfg.Match.Algorithm
			}
			algo, err := editdistance.ParseAlgorithm(name)
			if err != nil {
				return err
			}

			score, err := editdistance.StringsSimilarity(args[0], args[1], algo)
			if err != nil {
				return err
			}
			a.log.Debug("similarity computed", zap.Stringer("algorithm", algo), zap.Float64("score", score))
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", score)

			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Similarity algorithm (default from LVSEQ_MATCH_ALGORITHM)")

	return cmd
}
