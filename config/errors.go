package config

import (
	"errors"
	"fmt"
)

// ErrMalformedSchedule is returned by ParseLRSchedule when a phase does
// not match the "epochs:lr:wd" shape.
var ErrMalformedSchedule = errors.New("config: malformed learning-rate schedule")

// ErrInvalidLossMode is returned when -c names anything other than the
// two recognized loss modes.
var ErrInvalidLossMode = errors.New("config: invalid loss mode")

// ErrInvalidStateMode is returned when -S names anything other than
// "stateful" or "stateless".
var ErrInvalidStateMode = errors.New("config: invalid state mode")

func malformedPhase(phase, reason string) error {
	return fmt.Errorf("%w: phase %q: %s", ErrMalformedSchedule, phase, reason)
}
