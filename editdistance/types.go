package editdistance

import (
	"fmt"

	"github.com/katalvlaran/lvseq"
)

// Sentinel errors for edit-distance computations.
var (
	// ErrNilEquality is returned by DistanceFunc when no symbol equality is supplied.
	ErrNilEquality = fmt.Errorf("%w: editdistance: equality function is nil", lvseq.ErrInvalidArgument)

	// ErrScriptNeedsMatrix indicates that edit-script recovery requires FullMatrix mode.
	ErrScriptNeedsMatrix = fmt.Errorf("%w: editdistance: ReturnScript requires MemoryMode=FullMatrix", lvseq.ErrInvalidArgument)

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = fmt.Errorf("%w: editdistance: unknown memory mode", lvseq.ErrInvalidArgument)

	// ErrUnknownAlgorithm indicates an Algorithm value or name this package does not know.
	ErrUnknownAlgorithm = fmt.Errorf("%w: editdistance: unknown similarity algorithm", lvseq.ErrInvalidArgument)
)

// MemoryMode controls how Levenshtein stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + edit-script backtrace. Memory: O(n·m).
//
//   - TwoRows    — only keep the previous and current rows.
//     Memory: O(min(n, m)), but no edit script can be recovered.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports ReturnScript.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only two rows; distance only.
	TwoRows
)

// Options configures Levenshtein.
//
// Fields:
//   - MemoryMode   — FullMatrix (default) or TwoRows.
//   - ReturnScript — if true, the optimal edit script is backtracked from
//     the full matrix and returned. Requires MemoryMode=FullMatrix.
type Options struct {
	MemoryMode   MemoryMode
	ReturnScript bool
}

// DefaultOptions returns Options with FullMatrix storage and no script.
func DefaultOptions() Options {
	return Options{
		MemoryMode:   FullMatrix,
		ReturnScript: false,
	}
}

func (o Options) validate() error {
	switch o.MemoryMode {
	case FullMatrix:
	case TwoRows:
		if o.ReturnScript {
			return ErrScriptNeedsMatrix
		}
	default:
		return fmt.Errorf("%w (%d)", ErrBadMemoryMode, o.MemoryMode)
	}

	return nil
}

// Op is a single edit operation kind.
type Op int

const (
	// Keep copies a source symbol that already equals the target symbol.
	Keep Op = iota
	// Substitute replaces a source symbol with a different target symbol.
	Substitute
	// Insert emits a target symbol with no source counterpart.
	Insert
	// Delete drops a source symbol.
	Delete
)

// String returns the lower-case operation name.
func (o Op) String() string {
	switch o {
	case Keep:
		return "keep"
	case Substitute:
		return "substitute"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Edit is one step of an edit script, with 0-based indices.
//
// Keep and Substitute refer to source[SourceIndex] and target[TargetIndex].
// Insert refers to target[TargetIndex]; its SourceIndex is the number of
// source symbols consumed before it. Delete refers to source[SourceIndex];
// its TargetIndex is the number of target symbols produced before it.
type Edit struct {
	Op          Op
	SourceIndex int
	TargetIndex int
}

// String renders the edit as "op(i,j)".
func (e Edit) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Op, e.SourceIndex, e.TargetIndex)
}
