package beam

// Candidate is one surviving prefix of a beam search: a collapsed,
// blank-stripped label sequence and its accumulated log-probability.
type Candidate struct {
	Prefix []int
	Score  float64
}

// state tracks, for one candidate prefix, the log-probability mass of
// every raw path that collapses to it ending on a blank (pBlank) versus
// ending on a repeatable non-blank symbol (pNonBlank).
type state struct {
	pBlank    float64
	pNonBlank float64
}

func (s state) total() float64 {
	return logSumExp2(s.pBlank, s.pNonBlank)
}
