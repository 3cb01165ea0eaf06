package lvseq

import "errors"

// Error categories shared by every subpackage. Package-level sentinels
// (e.g. reconcile.ErrNilEquivalence) wrap one of these, so callers may
// test either the precise cause or the broad category with errors.Is.
var (
	// ErrInvalidArgument indicates that a required function argument is nil
	// or an option lies outside its documented range.
	ErrInvalidArgument = errors.New("lvseq: invalid argument")

	// ErrEmptyInput indicates that an operation defined only over non-empty
	// input received an empty sequence.
	ErrEmptyInput = errors.New("lvseq: empty input")
)
