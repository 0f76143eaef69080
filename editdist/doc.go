// Package editdist computes the Levenshtein edit distance between two
// integer token sequences: the minimum number of insertions, deletions, and
// substitutions needed to turn one sequence into the other.
//
// The implementation is an iterative two-row dynamic program (O(n+m) memory,
// O(n*m) time). Row storage is always heap-allocated with make, at every
// sequence length, so arbitrarily long sequences never risk a stack
// overflow.
package editdist
