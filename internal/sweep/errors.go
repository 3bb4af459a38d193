package sweep

import "errors"

// Sentinel errors returned by Compute. Matching the module's convention of
// named, wrapped sentinels (see internal/envelope) rather than ad hoc
// fmt.Errorf strings for conditions callers may want to branch on.
var (
	ErrNilCache        = errors.New("sweep: cache is nil")
	ErrInvalidDistance = errors.New("sweep: distance must be positive")
	ErrInvalidRadius   = errors.New("sweep: radius must be positive and no greater than distance")
)
