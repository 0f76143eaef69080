package ctc

import "errors"

var (
	// ErrDimensionMismatch indicates yp or yt does not have the shape the
	// Context was constructed for.
	ErrDimensionMismatch = errors.New("ctc: yp/yt shape does not match context bounds")

	// ErrGradientBeforeLoss indicates Gradient was called before any
	// successful call to Loss.
	ErrGradientBeforeLoss = errors.New("ctc: Gradient called before Loss")
)
