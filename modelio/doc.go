// Package modelio saves and loads a trained layer chain (an ordered list
// of *layers.Dense and *layers.LSTM) to a compact binary format: a small
// versioned header followed by one tagged record per layer, every number
// written little-endian via encoding/binary. There is no reflection-based
// codec and no JSON: the format exists purely to round-trip the weight
// tensors the driver already holds, in the same explicit, hand-framed
// style the reference codec implementation in this corpus uses for its
// own binary container format.
package modelio
