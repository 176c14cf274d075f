package assign

import "errors"

// Sentinel errors for the four kinds spec.md §7 names. Wrap with fmt.Errorf
// and %w when a coordinate or dimension needs to travel with the error;
// callers should compare with errors.Is rather than string matching.
var (
	// ErrShape indicates a non-square matrix or mismatched row lengths.
	ErrShape = errors.New("assign: matrix is not square")

	// ErrDomain indicates a NaN or non-finite (±Inf) matrix entry.
	ErrDomain = errors.New("assign: matrix entry is not finite")

	// ErrCapacity indicates BruteForce was invoked with N too large to
	// enumerate in practice.
	ErrCapacity = errors.New("assign: matrix too large for brute-force enumeration")

	// ErrInternalInvariant indicates a solver detected a broken invariant,
	// e.g. no augmenting path where one must exist. This is a bug surface:
	// it is never expected to occur on valid input and is never swallowed.
	ErrInternalInvariant = errors.New("assign: internal invariant violated")

	// ErrUnknownVariant indicates Solve was called with a Variant value
	// that does not name one of the five solvers.
	ErrUnknownVariant = errors.New("assign: unknown solver variant")
)
