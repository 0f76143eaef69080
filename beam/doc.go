// Package beam implements CTC prefix beam search: given a per-time-step
// class-probability matrix, it searches for the B highest-probability
// output prefixes under CTC's collapsing rules (adjacent-duplicate merge,
// blank removal), tracking each candidate prefix's blank-ending and
// non-blank-ending probability mass separately so that a repeated class
// can either start a new instance of the symbol (after a blank) or
// continue the current one (no blank in between).
package beam
