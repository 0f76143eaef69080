// Package layers implements the Dense (affine + activation) and LSTM
// (standard four-gate recurrent cell) layer kernels consumed by the
// training/inference driver through its narrow Layer interface: Forward,
// Backward, ApplyGradients, ResetState, SetBatchSize. Layer internals
// (forward/backward math, parameter storage) are an external collaborator
// to the driver's training loop, not part of its hard core, so the
// implementation favors plain nested loops over []float64/[][]float64
// matrices — no computation-graph/autodiff framework — in a manual,
// explicitly-indexed style.
// Parameter updates are delegated to one optim.AdamW instance per weight
// tensor (Dense.W/B, LSTM.Wx/Wh/Bias), so ApplyGradients only averages
// accumulated gradients over the batch before handing them off.
package layers
