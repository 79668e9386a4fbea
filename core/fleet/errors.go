package fleet

import "errors"

// Error taxonomy of the orchestration layer. The classifier, aggregator and
// recommendation engine are total functions and never fail; only mutations
// can, and only for these reasons.
var (
	// ErrNotFound reports a mutation referencing a vehicle or maintenance
	// item that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation reports malformed or out-of-range input.
	ErrValidation = errors.New("invalid input")
	// ErrPersistence reports a failed snapshot write. The in-memory state is
	// still applied; the caller is told the save did not durably succeed.
	ErrPersistence = errors.New("persistence failure")
)
