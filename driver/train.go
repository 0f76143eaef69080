package driver

import (
	"math"

	"github.com/katalvlaran/seqrnn/config"
	"github.com/katalvlaran/seqrnn/ctc"
	"github.com/katalvlaran/seqrnn/dataset"
)

// TrainEpoch runs one training epoch over data: batches sequences
// time-major (§4.7), forwards each time step through the layer chain,
// computes loss and dL/dy per batch slot once the batch's time axis is
// exhausted, backpropagates through time, then takes one optimizer step
// per layer. Batch slots with no valid frames or a non-finite loss are
// skipped from the running average, per the numeric-degenerate
// error-handling contract; EpochResult.SkippedBatches counts those slots.
func (d *Driver) TrainEpoch(data *dataset.Dataset, batchSize int, lr, wd float64) (EpochResult, error) {
	if data.NumSequences() == 0 {
		return EpochResult{}, ErrNoSequences
	}

	if d.LossMode == config.CTC && d.ctcCtx == nil {
		maxLen := 0
		for _, l := range data.Lengths {
			if l > maxLen {
				maxLen = l
			}
		}
		d.ctcCtx = ctc.NewContext(maxLen, d.NumClasses, d.Blank)
	}

	batches := dataset.MakeBatches(data, batchSize, d.NumClasses, d.Blank)

	var totalLoss, totalAcc float64
	var counted int
	var skipped int

	for _, batch := range batches {
		b := len(batch.SeqIdx)
		switch d.StateMode {
		case config.Stateless:
			// LSTM.SetBatchSize resets state as a side effect, which is
			// exactly what stateless training wants between every batch.
			d.setBatchSize(b)
		default: // Stateful: only reset when the batch shape actually changes.
			if b != d.lastBatchSize {
				d.setBatchSize(b)
			}
		}
		d.lastBatchSize = b

		tmax := len(batch.X[0])
		outputs := make([][][]float64, tmax)
		for t := 0; t < tmax; t++ {
			xt := make([][]float64, b)
			for row := 0; row < b; row++ {
				xt[row] = batch.X[row][t]
			}
			outputs[t] = d.forward(xt)
		}

		dLdy := make([][][]float64, tmax)
		for t := range dLdy {
			dLdy[t] = make([][]float64, b)
			for row := 0; row < b; row++ {
				dLdy[t][row] = make([]float64, len(outputs[t][row]))
			}
		}

		for row := 0; row < b; row++ {
			validLen := batch.ValidLen[row]
			if validLen == 0 {
				skipped++
				continue
			}
			yp := make([][]float64, validLen)
			yt := make([][]float64, validLen)
			for t := 0; t < validLen; t++ {
				yp[t] = outputs[t][row]
				yt[t] = batch.Y[row][t]
			}

			var loss float64
			var grad [][]float64
			if d.LossMode == config.CTC {
				l, err := ctcLoss(d.ctcCtx, yp, yt)
				if err != nil {
					return EpochResult{}, err
				}
				loss = l
				if math.IsInf(loss, 1) {
					skipped++
					continue
				}
				grad, err = d.ctcCtx.Gradient()
				if err != nil {
					return EpochResult{}, err
				}
				totalAcc += d.ctcCtx.Accuracy()
			} else {
				loss, grad = crossEntropyLoss(yp, yt)
				totalAcc += frameArgmaxAccuracy(yp, yt)
			}

			totalLoss += loss
			counted++
			for t := 0; t < validLen; t++ {
				dLdy[t][row] = grad[t]
			}
		}

		for t := tmax - 1; t >= 0; t-- {
			d.backward(dLdy[t])
		}
		d.applyGradients(lr, wd)
	}

	if counted == 0 {
		return EpochResult{SkippedBatches: skipped}, nil
	}
	return EpochResult{
		AvgLoss:        totalLoss / float64(counted),
		AvgAccuracy:    totalAcc / float64(counted),
		SkippedBatches: skipped,
	}, nil
}
