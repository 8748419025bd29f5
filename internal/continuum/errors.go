package continuum

import "errors"

// Domain errors for run parameters. The integration core itself never
// returns these; they are raised by the layers that validate input before
// calling it.
var (
	// ErrInvalidStep indicates a non-positive or non-finite step size.
	ErrInvalidStep = errors.New("continuum: step size must be positive")

	// ErrInvalidDuration indicates a negative or non-finite total time.
	ErrInvalidDuration = errors.New("continuum: total time must be non-negative")

	// ErrInvalidCount indicates a point count or grid extent out of range.
	ErrInvalidCount = errors.New("continuum: count out of valid range")

	// ErrInvalidRadius indicates a non-positive body radius.
	ErrInvalidRadius = errors.New("continuum: radius must be positive")

	// ErrNonSequentialID indicates a body whose point identifiers do not
	// match their creation index.
	ErrNonSequentialID = errors.New("continuum: point identifiers must match their index")
)

// IDError reports the first point whose identifier breaks the body invariant.
type IDError struct {
	Index int
	ID    int
}

func (e *IDError) Error() string {
	return ErrNonSequentialID.Error()
}

func (e *IDError) Unwrap() error {
	return ErrNonSequentialID
}
