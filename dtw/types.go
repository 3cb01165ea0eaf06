package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvseq"
)

// Sentinel errors for DTW.
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = fmt.Errorf("%w: dtw: input sequences must be non-empty", lvseq.ErrEmptyInput)

	// ErrBadInput indicates an out-of-range option (Window < -1, negative penalty, unknown mode).
	ErrBadInput = fmt.Errorf("%w: dtw: bad option", lvseq.ErrInvalidArgument)

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = fmt.Errorf("%w: dtw: ReturnPath requires MemoryMode=FullMatrix", lvseq.ErrInvalidArgument)

	// ErrNilCost indicates that no cost function was supplied.
	ErrNilCost = fmt.Errorf("%w: dtw: cost function is nil", lvseq.ErrInvalidArgument)
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//
//   - TwoRows    — only keep the previous and current rows.
//     Memory drops to O(m), but the path cannot be recovered.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports ReturnPath.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only two rows; distance only.
	TwoRows
)

// CostFunc returns the non-negative local cost of aligning a with b.
type CostFunc[T any] func(a, b T) float64

// AbsDiff is the usual cost for numeric series: |a - b|.
func AbsDiff(a, b float64) float64 { return math.Abs(a - b) }

// Coord is one cell (I, J) of a warping path, 0-based into a and b.
type Coord struct {
	I, J int
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     -1 means no constraint; values below -1 are rejected.
//   - SlopePenalty — extra cost for insertion/deletion steps, ≥ 0.
//   - ReturnPath   — if true, backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, full-matrix
// configuration without path recovery.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

func (o Options) validate() error {
	switch {
	case o.Window < -1:
		return fmt.Errorf("%w: Window must be >= -1 (%d)", ErrBadInput, o.Window)
	case o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty):
		return fmt.Errorf("%w: SlopePenalty must be >= 0 (%v)", ErrBadInput, o.SlopePenalty)
	case o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows:
		return fmt.Errorf("%w: unknown MemoryMode (%d)", ErrBadInput, o.MemoryMode)
	case o.ReturnPath && o.MemoryMode != FullMatrix:
		return ErrPathNeedsMatrix
	}

	return nil
}
