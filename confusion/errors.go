package confusion

import "errors"

// ErrClassOutOfRange is returned by Accumulate when a class index falls
// outside [0, len(ClassNames)).
var ErrClassOutOfRange = errors.New("confusion: class index out of range")
