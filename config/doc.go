// Package config parses the command-line surface shared by the training
// entry points (cmd/timit-train, cmd/har-train) with the standard
// library's flag package, and parses the comma-separated learning-rate
// schedule string into a sequence of (epochs, lr, weight decay) phases.
package config
