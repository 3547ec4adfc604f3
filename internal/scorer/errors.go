package scorer

import "errors"

var (
	// ErrInvalidJudgment reports a judgment reaching the matcher that
	// is outside the closed code set. It indicates a corrupted table
	// invariant, not a data-quality problem, and aborts the run.
	ErrInvalidJudgment = errors.New("invalid judgment in table")

	// errNILProvenance marks key lines whose doc id is NIL; they are
	// skipped without a warning.
	errNILProvenance = errors.New("judged record has NIL provenance")
)
