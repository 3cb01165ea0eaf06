package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvseq/editdistance"
	"github.com/katalvlaran/lvseq/reconcile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type reconcileFlags struct {
	maxDistance int
	threshold   float64
	algorithm   string
	ignoreCase  bool
	output      string
}

func newReconcileCmd(a *app) *cobra.Command {
	f := &reconcileFlags{}

	cmd := &cobra.Command{
		Use:   "reconcile <first-file> <second-file>",
		Short: "Fuzzy-match the lines of two files and report what is missing",
		Long: `Read the non-empty lines of two files and reconcile them.

Each line of the first file is paired with the first line of the second
file it matches. Lines are matched by edit distance when --max-distance is
given, otherwise by a similarity threshold.

Examples:
  # lines at most one edit apart
  lvseq reconcile --max-distance 1 old.txt new.txt

  # Jaro-Winkler similarity of at least 0.92, JSON report
  lvseq reconcile --algorithm jaro-winkler --threshold 0.92 --output json old.txt new.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReconcile(cmd, args, f)
		},
	}

	cmd.Flags().IntVar(&f.maxDistance, "max-distance", -1, "Match lines at most N edits apart (overrides --threshold)")
	cmd.Flags().Float64Var(&f.threshold, "threshold", -1, "Minimum similarity for a match (default from LVSEQ_MATCH_THRESHOLD)")
	cmd.Flags().StringVar(&f.algorithm, "algorithm", "", "Similarity algorithm (default from LVSEQ_MATCH_ALGORITHM)")
	cmd.Flags().BoolVar(&f.ignoreCase, "ignore-case", false, "Lower-case lines before comparing")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "Output format (text, json)")

	return cmd
}

func (a *app) runReconcile(cmd *cobra.Command, args []string, f *reconcileFlags) error {
	first, err := readLines(args[0])
	if err != nil {
		return err
	}
	second, err := readLines(args[1])
	if err != nil {
		return err
	}

	equiv, err := a.lineEquivalence(cmd, f)
	if err != nil {
		return err
	}

	report, err := reconcile.Reconcile(first, second, equiv)
	if err != nil {
		return err
	}
	a.log.Info("reconciled",
		zap.Int("first", report.Summary.First),
		zap.Int("second", report.Summary.Second),
		zap.Int("matched", report.Summary.Matched),
		zap.Int("missing_from_second", report.Summary.MissingFromSecond),
		zap.Int("missing_from_first", report.Summary.MissingFromFirst),
	)

	out := cmd.OutOrStdout()
	switch f.output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(report)
	case "text":
		writeReport(out, report, filepath.Base(args[0]), filepath.Base(args[1]))

		return nil
	default:
		return fmt.Errorf("unknown output format %q", f.output)
	}
}

// lineEquivalence resolves flags over config into a string predicate.
func (a *app) lineEquivalence(cmd *cobra.Command, f *reconcileFlags) (reconcile.Equivalence[string], error) {
	match := a.cfg.Match
	if cmd.Flags().Changed("max-distance") {
		match.MaxDistance = f.maxDistance
	}
	if cmd.Flags().Changed("threshold") {
		match.Threshold = f.threshold
	}
	if f.algorithm != "" {
		match.Algorithm = f.algorithm
	}
	if f.ignoreCase {
		match.IgnoreCase = true
	}

	var equiv reconcile.Equivalence[string]
	if match.MaxDistance >= 0 {
		equiv = reconcile.WithinDistance(match.MaxDistance)
		a.log.Debug("matching by edit distance", zap.Int("max_distance", match.MaxDistance))
	} else {
		algo, err := editdistance.ParseAlgorithm(match.Algorithm)
		if err != nil {
			return nil, err
		}
		equiv = reconcile.SimilarAtLeast(match.Threshold, algo)
		a.log.Debug("matching by similarity", zap.Stringer("algorithm", algo), zap.Float64("threshold", match.Threshold))
	}

	if match.IgnoreCase {
		inner := equiv
		equiv = func(x, y string) bool { return inner(strings.ToLower(x), strings.ToLower(y)) }
	}

	return equiv, nil
}

// readLines returns the trimmed, non-empty lines of path.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}

func writeReport(w io.Writer, r *reconcile.Report[string], firstName, secondName string) {
	fmt.Fprintf(w, "matched (%d):\n", r.Summary.Matched)
	for _, p := range r.Matched {
		fmt.Fprintf(w, "  %s -> %s\n", p.First, p.Second)
	}
	fmt.Fprintf(w, "missing from %s (%d):\n", secondName, r.Summary.MissingFromSecond)
	for _, s := range r.MissingFromSecond {
		fmt.Fprintf(w, "  %s\n", s)
	}
	fmt.Fprintf(w, "missing from %s (%d):\n", firstName, r.Summary.MissingFromFirst)
	for _, s := range r.MissingFromFirst {
		fmt.Fprintf(w, "  %s\n", s)
	}
}
