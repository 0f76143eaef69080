// Package align performs Needleman-Wunsch global alignment of two integer
// token sequences under fixed scores (match +1, mismatch/indel -1).
//
// Align writes two equal-length, gap-padded sequences into caller-supplied
// buffers and returns their edit distance. Traceback ties are broken in
// diagonal > up > left order, so a match is always preferred over an
// insertion or deletion when several moves achieve the same score.
package align
