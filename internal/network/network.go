// Package network implements a fully connected feed-forward network over
// raw image bytes: seeded random construction, a reentrant forward pass and
// a one-hot cost primitive.
package network

import (
	"errors"
	"fmt"
	"math/rand"
)

// Common errors.
var (
	ErrIndex      = errors.New("index out of range")
	ErrShortImage = fmt.Errorf("%w: image shorter than input layer", ErrIndex)
)

// IndexError reports an out-of-range index at inference time.
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap makes errors.Is(err, ErrIndex) work.
func (e *IndexError) Unwrap() error { return ErrIndex }

// Node holds the parameters of one unit: a weight per node in the previous
// layer and an additive bias. Activations live in per-call buffers inside
// Run, not on the node, so a constructed network is read-only.
type Node struct {
	Weights []float64
	Bias    float64
}

// Layer is an ordered collection of nodes.
type Layer struct {
	Nodes []Node
}

// Size returns the number of nodes in the layer.
func (l *Layer) Size() int { return len(l.Nodes) }

// newLayer allocates nodeCount nodes with prevCount weights each, weights
// and biases drawn uniformly from [-1.0, 1.0). The input layer is built
// with prevCount = 0 and carries empty weight vectors.
func newLayer(nodeCount, prevCount int, rng *rand.Rand) Layer {
	nodes := make([]Node, nodeCount)
	for i := range nodes {
		weights := make([]float64, prevCount)
		for j := range weights {
			weights[j] = rng.Float64()*2 - 1
		}
		nodes[i] = Node{
			Weights: weights,
			Bias:    rng.Float64()*2 - 1,
		}
	}
	return Layer{Nodes: nodes}
}

// Config sets the shape of the layers behind the input layer.
type Config struct {
	HiddenLayers int // number of hidden layers
	HiddenNodes  int // nodes per hidden layer
	OutputNodes  int // nodes in the output layer
}

// Network is an ordered sequence of layers: input, hidden, output. Weights
// and biases are fixed at construction; Run never mutates the network, so
// concurrent runs on one network are safe.
type Network struct {
	layers []Layer
}

// New builds a network for images of pixelCount bytes. Layer sizes are
// [pixelCount, HiddenNodes × HiddenLayers, OutputNodes], so the total layer
// count is HiddenLayers+2. Each node is wired to every node of the previous
// layer. Zero-valued parameters are legal and produce degenerate layers.
//
// rng is the source for weight and bias initialization; seed it for
// reproducible networks.
func New(pixelCount int, cfg Config, rng *rand.Rand) *Network {
	layers := make([]Layer, 0, cfg.HiddenLayers+2)

	// The input layer only stages normalized pixels, it computes nothing.
	layers = append(layers, newLayer(pixelCount, 0, rng))

	prev := pixelCount
	for i := 0; i < cfg.HiddenLayers; i++ {
		layers = append(layers, newLayer(cfg.HiddenNodes, prev, rng))
		prev = cfg.HiddenNodes
	}
	layers = append(layers, newLayer(cfg.OutputNodes, prev, rng))

	return &Network{layers: layers}
}

// Layers returns the layer sequence. Callers must not modify it.
func (n *Network) Layers() []Layer { return n.layers }

// InputSize returns the node count of the input layer.
func (n *Network) InputSize() int { return n.layers[0].Size() }

// OutputSize returns the node count of the output layer.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].Size() }
