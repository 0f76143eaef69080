// Package phonemap holds the TIMIT-to-CMU phoneme lookup table: a literal,
// immutable array injected as configuration rather than computed. Treated
// here as the external collaborator the spec calls out — a flat lookup,
// not an algorithm.
package phonemap
