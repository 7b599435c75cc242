package sampling

import "errors"

// Failure classes of an estimator run. All failures are fatal to the
// single invocation; there is no retry and no partial result.
var (
	// ErrInvalidParameter indicates an out-of-range invocation parameter.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNumericDegeneracy indicates parameters for which the estimate
	// is mathematically undefined (e.g. a zero true mean).
	ErrNumericDegeneracy = errors.New("numerically degenerate parameter")

	// ErrResourceFetch indicates a failure loading the cost table.
	ErrResourceFetch = errors.New("cost resource fetch failed")
)
