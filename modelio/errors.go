package modelio

import "errors"

// ErrBadMagic is returned by Load when the stream does not begin with the
// expected magic number, i.e. it is not a checkpoint produced by Save.
var ErrBadMagic = errors.New("modelio: bad magic number")

// ErrUnsupportedVersion is returned by Load when the checkpoint's format
// version is newer than this package understands.
var ErrUnsupportedVersion = errors.New("modelio: unsupported checkpoint version")

// ErrUnknownLayerKind is returned by Load when a layer record's kind tag
// does not match any known layer type.
var ErrUnknownLayerKind = errors.New("modelio: unknown layer kind")
