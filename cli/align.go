package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvseq/dtw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAlignCmd(a *app) *cobra.Command {
	var (
		window  int
		penalty float64
		path    bool
	)

	cmd := &cobra.Command{
		Use:   "align <series-a> <series-b>",
		Short: "Dynamic time warping distance between two numeric series",
		Long: `Align two comma-separated numeric series with dynamic time warping.

Examples:
  lvseq align 1,2,3 1,2,2,3 --path
  lvseq align --window 1 --penalty 1 10,11,12,13 10,11,13`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseSeries(args[0])
			if err != nil {
				return err
			}
			ys, err := parseSeries(args[1])
			if err != nil {
				return err
			}

			opts := dtw.DefaultOptions()
			opts.Window = a.cfg.Align.Window
			opts.SlopePenalty = a.cfg.Align.Penalty
			if cmd.Flags().Changed("window") {
				opts.Window = window
			}
			if cmd.Flags().Changed("penalty") {
				opts.SlopePenalty = penalty
			}
			opts.ReturnPath = path

			dist, warp, err := dtw.DTW(xs, ys, dtw.AbsDiff, &opts)
			if err != nil {
				return err
			}
			a.log.Debug("aligned",
				zap.Int("len_a", len(xs)), zap.Int("len_b", len(ys)),
				zap.Float64("distance", dist), zap.Int("path_len", len(warp)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "distance=%g\n", dist)
			if path {
				fmt.Fprintf(out, "path=%v\n", warp)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", -1, "Sakoe-Chiba window, -1 for none (default from LVSEQ_ALIGN_WINDOW)")
	cmd.Flags().Float64Var(&penalty, "penalty", 0, "Slope penalty (default from LVSEQ_ALIGN_PENALTY)")
	cmd.Flags().BoolVar(&path, "path", false, "Also print the warping path")

	return cmd
}

// parseSeries parses "1, 2.5,3" into floats.
func parseSeries(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse series %q: %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
