// Package optim implements AdamW: Adam with decoupled weight decay,
// applied directly to parameters rather than folded into the gradient.
// Like the layer kernels, the optimizer is an external collaborator the
// training driver calls through a narrow interface, not part of its hard
// core.
package optim
