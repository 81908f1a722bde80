// Copyright 2026 The Digit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"math/rand"

	"github.com/digit-ml/digit/internal/network"
)

// Node holds one unit's weight vector and bias.
type Node = network.Node

// Layer is an ordered collection of nodes.
type Layer = network.Layer

// Network is an immutable sequence of layers: input, hidden, output.
type Network = network.Network

// Config sets the shape of the layers behind the input layer.
type Config = network.Config

// IndexError reports an out-of-range index at inference time.
type IndexError = network.IndexError

// Sentinel errors for errors.Is matching.
var (
	ErrIndex      = network.ErrIndex
	ErrShortImage = network.ErrShortImage
)

// New builds a randomly initialized network for images of pixelCount bytes.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	net := network.New(ds.PixelCount(), network.Config{
//	    HiddenLayers: 2,
//	    HiddenNodes:  16,
//	    OutputNodes:  10,
//	}, rng)
func New(pixelCount int, cfg Config, rng *rand.Rand) *Network {
	return network.New(pixelCount, cfg, rng)
}
