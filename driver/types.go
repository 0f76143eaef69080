package driver

import (
	"github.com/katalvlaran/seqrnn/config"
	"github.com/katalvlaran/seqrnn/ctc"
)

// Layer is the narrow contract every layer kernel in the chain satisfies.
// layers.Dense and layers.LSTM implement it structurally; driver never
// imports layers directly so a caller can mix in any type meeting this
// shape.
type Layer interface {
	Forward(x [][]float64) [][]float64
	Backward(dLdy [][]float64) [][]float64
	ApplyGradients(lr, wd float64)
	ResetState()
	SetBatchSize(b int)
}

// Driver owns a layer chain and the configuration governing how it is
// trained and evaluated.
type Driver struct {
	Layers     []Layer
	NumClasses int
	Blank      int
	LossMode   config.LossMode
	StateMode  config.StateMode

	lastBatchSize int // tracked so stateful training only resets on an actual size change

	// ctcCtx is the CTC forward/backward context for this training run: per
	// §3's ownership invariant it is allocated once, sized to the largest
	// sequence length the run will ever see, and reused across every batch
	// slot and epoch rather than reallocated per call.
	ctcCtx *ctc.Context
}

// New builds a Driver over the given layer chain. The head (last) layer
// is expected to produce class probabilities (softmax) over NumClasses
// columns.
func New(chain []Layer, numClasses, blank int, lossMode config.LossMode, stateMode config.StateMode) (*Driver, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	return &Driver{
		Layers:     chain,
		NumClasses: numClasses,
		Blank:      blank,
		LossMode:   lossMode,
		StateMode:  stateMode,
	}, nil
}

// Metrics holds the three per-sequence similarity numbers §4.6 reports at
// test time.
type Metrics struct {
	FrameSimilarity   float64
	PhonemeSimilarity float64
	BeamSimilarity    float64
}

// EpochResult summarizes one training epoch.
type EpochResult struct {
	AvgLoss     float64
	AvgAccuracy float64
	SkippedBatches int
}
