package driver

import "github.com/katalvlaran/seqrnn/dataset"

// StripEOP separates the end-of-phoneme marker featfile.BuildDataset
// encodes into the label stream (last frame of a phoneme gets
// class+numClasses) back into a plain class index in [0, numClasses),
// per the contract that the driver — not the feature-file parser —
// undoes this encoding before training or evaluation. Synthetic datasets
// that never encoded an EOP marker are left unchanged (label % numClasses
// is the identity when every label is already < numClasses).
func StripEOP(d *dataset.Dataset, numClasses int) *dataset.Dataset {
	labels := make([]int, len(d.Labels))
	for i, l := range d.Labels {
		labels[i] = l % numClasses
	}
	return &dataset.Dataset{
		Frames:  d.Frames,
		Labels:  labels,
		Lengths: d.Lengths,
	}
}
