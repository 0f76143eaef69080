package beam

import "errors"

// ErrInvalidWidth is returned by Search when B <= 0.
var ErrInvalidWidth = errors.New("beam: width must be > 0")
