package spectrum

import (
	"errors"
	"fmt"
)

// ErrShape reports mismatched or empty domain/signal sequences.
var ErrShape = errors.New("domain and signal lengths differ")

// ErrHistory reports an unrecognized history entry during replay.
var ErrHistory = errors.New("unrecognized history entry")

func shapeErr(nx, ny int) error {
	return fmt.Errorf("%w: %d domain points, %d signal points", ErrShape, nx, ny)
}
