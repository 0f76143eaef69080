// Package driver is the training/inference runtime: it batches sequences
// time-major, runs them forward and backward through a configured layer
// chain, drives the loss (CTC or cross-entropy) and optimizer step, and
// reports test-time similarity metrics plus a confusion matrix. The layer
// chain, the optimizer, and model persistence are all external
// collaborators consumed through narrow interfaces — layers.Dense and
// layers.LSTM satisfy the Layer contract structurally, and modelio.Save
// serializes whatever concrete layers the caller hands it.
package driver
