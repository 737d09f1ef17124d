package progress

import (
	"errors"
	"fmt"
)

// ErrMisconfigured marks a track config that would break the fill invariant
var ErrMisconfigured = errors.New("progress indicator misconfigured")

func errInvalidInitial(v float64) error {
	return fmt.Errorf("%w: initial fill %v outside [0,1]", ErrMisconfigured, v)
}

func errInvalidSpeed(v float64) error {
	return fmt.Errorf("%w: default speed %v", ErrMisconfigured, v)
}
