// Package ctc implements the Connectionist Temporal Classification loss and
// gradient: a log-space forward/backward dynamic program over a
// blank-padded label lattice, plus the frame-accuracy metric derived from
// it.
//
// A Context is allocated once per training run with upper bounds on the
// time dimension (Tmax) and class count (L), and reused across every call
// to Loss within that run: it owns the forward (alpha) and backward (beta)
// tables, the per-step marginal, the padded label, and the decoded compact
// label sequences, and is not safe for concurrent use.
package ctc
