// Copyright 2026 The Digit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides a fully connected feed-forward network over raw
// image bytes.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42))
//	net := network.New(ds.PixelCount(), network.Config{
//	    HiddenLayers: 2,
//	    HiddenNodes:  16,
//	    OutputNodes:  10,
//	}, rng)
//
//	img, _ := ds.Image(0)
//	out, err := net.Run(img) // output activations, one per output node
//
//	label, _ := ds.Label(0)
//	cost, err := net.Cost(out, int(label))
//
// Weights and biases are fixed at construction and drawn uniformly from
// [-1.0, 1.0) using the caller's seedable rand source. Run keeps all
// activation state in per-call buffers, so one network can serve
// concurrent runs without locking.
//
// Outputs are raw transfer-function values; there is no softmax or other
// probability normalization, and no training loop consumes Cost.
package network
