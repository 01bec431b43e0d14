package peakfit

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPeaks reports that detection found no usable candidates at all.
	ErrNoPeaks = errors.New("no peaks detected")

	// ErrNotFitted reports a prediction or tuning request against a model that has not
	// been fit yet.
	ErrNotFitted = errors.New("model has not been fitted")

	// ErrBadParams reports a malformed parameter vector or detector configuration.
	ErrBadParams = errors.New("invalid fit parameters")
)

func badParams(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadParams, fmt.Sprintf(format, args...))
}
