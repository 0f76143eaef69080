package modelio

// magic identifies a seqrnn checkpoint stream; version gates the record
// layout below so a future format change can be detected rather than
// silently misparsed.
const (
	magic   uint32 = 0x53514e31 // "SQN1"
	version uint32 = 1
)

// layerKind tags each record so Load knows which concrete layer type to
// reconstruct. The set is closed: Dense and LSTM are the only layer
// kernels this module ships.
type layerKind byte

const (
	kindDense layerKind = iota
	kindLSTM
)
