// Package dataset adapts a flat buffer of feature frames plus per-sequence
// lengths into fixed-size, time-major training batches.
//
// A Dataset stores every sequence's frames back-to-back in one flat slice,
// alongside a parallel per-frame label slice and a length-per-sequence
// slice; Sequence(i) slices the flat buffer to recover sequence i without
// copying. MakeBatches groups sequences into batches of batchSize,
// choosing membership to minimize total padding by sorting sequences by
// descending length before grouping them consecutively, and pads each
// batch's tensors up to that batch's own maximum length.
package dataset
