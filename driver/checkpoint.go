package driver

import (
	"math"
	"os"

	"github.com/katalvlaran/seqrnn/modelio"
)

// Checkpoint periodically persists the layer chain every `every` epochs
// (1-indexed epoch numbers); every <= 0 disables it. Save is a no-op when
// the current epoch isn't a multiple of every.
func (d *Driver) Checkpoint(epoch, every int, path string) error {
	if every <= 0 || epoch%every != 0 {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	chain := make([]any, len(d.Layers))
	for i, l := range d.Layers {
		chain[i] = l
	}
	return modelio.Save(f, chain)
}

// EarlyStop tracks the best loss seen so far and how many epochs have
// passed without improvement. A patience of 0 disables it permanently.
type EarlyStop struct {
	patience int
	best     float64
	wait     int
	Stopped  bool
}

// NewEarlyStop builds a tracker with the given patience, in epochs.
func NewEarlyStop(patience int) *EarlyStop {
	return &EarlyStop{patience: patience, best: math.Inf(1)}
}

// Update records one epoch's loss and reports whether training should
// stop now.
func (e *EarlyStop) Update(loss float64) bool {
	if e.patience <= 0 {
		return false
	}
	if loss < e.best {
		e.best = loss
		e.wait = 0
		return false
	}
	e.wait++
	if e.wait >= e.patience {
		e.Stopped = true
	}
	return e.Stopped
}
