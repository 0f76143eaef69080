// Package deltas computes first- and second-order temporal derivatives
// ("delta" and "delta-delta" features) of feature frames in place, and
// assembles the expanded frame layout consumed by the rest of the pipeline:
// columns [0,F) raw, [F,2F) short-window delta, [2F,3F) short-window
// delta-delta, [3F,4F) long-window delta, [4F,5F) long-window delta-delta
// (or just [0,F),[F,2F),[2F,3F) when only one window size is configured).
//
// Boundary frames are handled by clamping: a request for frame t+k or t-k
// outside [0,T) is replaced by the nearest valid frame (replicate-edge).
package deltas
