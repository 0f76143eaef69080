package driver

import "errors"

// ErrEmptyChain is returned when a Driver is built with no layers.
var ErrEmptyChain = errors.New("driver: layer chain is empty")

// ErrNoSequences is returned when TrainEpoch or Evaluate is given a
// dataset with zero sequences.
var ErrNoSequences = errors.New("driver: dataset has no sequences")
