package align

// Fixed Needleman-Wunsch scores used by Align.
const (
	scoreMatch    = 1
	scoreMismatch = -1
	scoreIndel    = -1
)
