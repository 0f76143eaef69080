package layers

import "math"

// Activation names supported by Dense.
const (
	Linear  = "linear"
	Tanh    = "tanh"
	Sigmoid = "sigmoid"
	Softmax = "softmax"
)

func applyActivation(name string, z []float64) []float64 {
	switch name {
	case Tanh:
		out := make([]float64, len(z))
		for i, v := range z {
			out[i] = math.Tanh(v)
		}
		return out
	case Sigmoid:
		out := make([]float64, len(z))
		for i, v := range z {
			out[i] = sigmoid(v)
		}
		return out
	case Softmax:
		return softmax(z)
	default: // Linear
		out := make([]float64, len(z))
		copy(out, z)
		return out
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func softmax(z []float64) []float64 {
	maxZ := z[0]
	for _, v := range z[1:] {
		if v > maxZ {
			maxZ = v
		}
	}
	out := make([]float64, len(z))
	var sum float64
	for i, v := range z {
		out[i] = math.Exp(v - maxZ)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
