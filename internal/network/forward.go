package network

import (
	"fmt"
	"math"
)

// activate is the transfer function applied at every non-input node.
//
// Note the positive exponent: this is the mirror image of the canonical
// logistic 1/(1+e^-x). Outputs stay in (0, 1) but fall as the weighted sum
// grows.
func activate(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(x))
}

// Run feeds one image through the network and returns the output layer's
// activations, in node order. Outputs lie in the transfer function's range
// and are not normalized into a probability distribution.
//
// The image must have at least InputSize bytes; each input activation is
// the corresponding byte mapped from [0, 255] to [0.0, 1.0]. Activations
// live in buffers local to the call, so Run may be invoked concurrently on
// one network.
func (n *Network) Run(image []byte) ([]float64, error) {
	inputSize := n.InputSize()
	if len(image) < inputSize {
		return nil, fmt.Errorf("%w: image has %d bytes, input layer has %d nodes",
			ErrShortImage, len(image), inputSize)
	}

	prev := make([]float64, inputSize)
	for i := range prev {
		prev[i] = float64(image[i]) / 255.0
	}

	// Each layer depends on the previous layer's finished activations.
	for _, layer := range n.layers[1:] {
		next := make([]float64, layer.Size())
		for i := range layer.Nodes {
			node := &layer.Nodes[i]
			sum := node.Bias
			for j, weight := range node.Weights {
				sum += weight * prev[j]
			}
			next[i] = activate(sum)
		}
		prev = next
	}
	return prev, nil
}
