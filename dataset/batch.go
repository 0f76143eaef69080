package dataset

import (
	"sort"

	"github.com/katalvlaran/seqrnn/onehot"
)

// MakeBatches groups the dataset's sequences into batches of at most
// batchSize, sorting by descending length first so that consecutive groups
// share similar lengths and total padding is minimized. Each batch's
// tensors are padded to that batch's own Tmax; padded X rows are all-zero
// and padded Y rows are a blank one-hot, so a caller masking loss/gradient
// on t >= ValidLen[slot] needs no extra bookkeeping beyond ValidLen.
func MakeBatches(d *Dataset, batchSize, c, blank int) []Batch {
	n := d.NumSequences()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return d.Lengths[order[i]] > d.Lengths[order[j]]
	})

	var batches []Batch
	for start := 0; start < n; start += batchSize {
		end := start + batchSize
		if end > n {
			end = n
		}
		group := order[start:end]

		tmax := 0
		for _, idx := range group {
			if d.Lengths[idx] > tmax {
				tmax = d.Lengths[idx]
			}
		}

		batch := Batch{
			X:        make([][][]float64, len(group)),
			Y:        make([][][]float64, len(group)),
			ValidLen: make([]int, len(group)),
			SeqIdx:   make([]int, len(group)),
		}
		blankRow := onehot.Encode(blank, c)

		for slot, idx := range group {
			frames, labels := d.Sequence(idx)
			d0 := 0
			if len(frames) > 0 {
				d0 = len(frames[0])
			}
			x := make([][]float64, tmax)
			y := make([][]float64, tmax)
			for t := 0; t < tmax; t++ {
				if t < len(frames) {
					x[t] = frames[t]
					y[t] = onehot.Encode(labels[t], c)
				} else {
					x[t] = make([]float64, d0)
					y[t] = append([]float64(nil), blankRow...)
				}
			}
			batch.X[slot] = x
			batch.Y[slot] = y
			batch.ValidLen[slot] = len(frames)
			batch.SeqIdx[slot] = idx
		}

		batches = append(batches, batch)
	}

	return batches
}
