package dataset

// Dataset holds every sequence's frames and labels back-to-back in flat
// buffers, plus the length of each sequence.
type Dataset struct {
	Frames  [][]float64 // flat, all sequences concatenated; D columns/row
	Labels  []int       // flat, one class in [0,C) per frame
	Lengths []int       // length of each sequence, in frame-row order
}

// NumSequences returns the number of sequences in the dataset.
func (d *Dataset) NumSequences() int { return len(d.Lengths) }

// offset returns the starting row offset of sequence i in the flat
// buffers.
func (d *Dataset) offset(i int) int {
	off := 0
	for k := 0; k < i; k++ {
		off += d.Lengths[k]
	}
	return off
}

// Sequence returns sequence i's frames and labels as sub-slices of the flat
// buffers (no copying).
func (d *Dataset) Sequence(i int) (frames [][]float64, labels []int) {
	off := d.offset(i)
	n := d.Lengths[i]
	return d.Frames[off : off+n], d.Labels[off : off+n]
}

// Validate checks that Lengths sums to the size of Frames/Labels.
func (d *Dataset) Validate() error {
	total := 0
	for _, l := range d.Lengths {
		total += l
	}
	if total != len(d.Frames) || total != len(d.Labels) {
		return ErrLengthMismatch
	}
	return nil
}

// Batch is one time-major mini-batch: B sequences aligned along a shared
// time axis of length Tmax (the maximum sequence length in this batch).
type Batch struct {
	X        [][][]float64 // [B][Tmax][D], zero-padded past each slot's valid length
	Y        [][][]float64 // [B][Tmax][C], blank-one-hot past each slot's valid length
	ValidLen []int         // [B], the real (unpadded) length of each slot
	SeqIdx   []int         // [B], original dataset sequence index of each slot
}
