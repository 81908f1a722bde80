package network

import "fmt"

// Cost returns the elementwise difference between a one-hot target vector
// with 1.0 at answer and the given output activations, typically the result
// of a Run call. It is a building block for a training loop; nothing in
// this package updates weights from it.
func (n *Network) Cost(output []float64, answer int) ([]float64, error) {
	outputSize := n.OutputSize()
	if len(output) != outputSize {
		return nil, fmt.Errorf("output has %d entries, output layer has %d nodes", len(output), outputSize)
	}
	if answer < 0 || answer >= outputSize {
		return nil, &IndexError{Index: answer, Len: outputSize}
	}

	cost := make([]float64, outputSize)
	for i, activation := range output {
		target := 0.0
		if i == answer {
			target = 1.0
		}
		cost[i] = target - activation
	}
	return cost, nil
}
