package align

import "errors"

// ErrInsufficientBuffer is returned by Align when the caller-supplied output
// buffers are shorter than 2*max(len(p), len(t)), the worst case where every
// position of the shorter sequence aligns against a gap.
var ErrInsufficientBuffer = errors.New("align: output buffers shorter than 2*max(len(p), len(t))")
