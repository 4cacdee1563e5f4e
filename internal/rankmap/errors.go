package rankmap

import "errors"

// Custom errors
var (
	ErrInvalidDistribution = errors.New("invalid points distribution kind")
	ErrTableTooSmall       = errors.New("ranking table needs at least two entries")
	ErrInvalidVariance     = errors.New("points variance must be positive")
	ErrShapeMismatch       = errors.New("rank means and variances have different lengths")
	ErrInvalidConfidence   = errors.New("confidence must be between 0 and 1")
	ErrNoConvergence       = errors.New("rank variance minimization did not converge")
)
