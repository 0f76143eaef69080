package dataset

import "errors"

var (
	// ErrLengthMismatch indicates the sum of Lengths does not match the
	// number of rows in Frames/Labels.
	ErrLengthMismatch = errors.New("dataset: sum of sequence lengths does not match buffer size")

	// ErrCapacityExceeded indicates a batching or split request exceeded a
	// configured capacity bound; the caller should truncate and log a
	// warning rather than abort, per the error-handling design.
	ErrCapacityExceeded = errors.New("dataset: capacity exceeded")
)
