// Copyright 2026 The Digit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"github.com/digit-ml/digit/internal/dataset"
	"github.com/digit-ml/digit/internal/idx"
)

// Dataset holds a loaded split: image geometry, raw image bytes and class
// labels. Immutable after load.
type Dataset = dataset.Dataset

// CountError reports image and label files that disagree on item count.
type CountError = dataset.CountError

// IndexError reports an out-of-range item access.
type IndexError = dataset.IndexError

// Sentinel errors for errors.Is matching. ErrFormat and ErrTruncated
// surface IDX container problems from the underlying reader.
var (
	ErrCountMismatch = dataset.ErrCountMismatch
	ErrIndex         = dataset.ErrIndex
	ErrFormat        = idx.ErrFormat
	ErrTruncated     = idx.ErrTruncated
)

// Load reads an image file and a label file and combines them into one
// Dataset. The files must agree on the item count.
func Load(imagePath, labelPath string) (*Dataset, error) {
	return dataset.Load(imagePath, labelPath)
}

// LoadTraining loads the training split from dir using the canonical MNIST
// file names.
func LoadTraining(dir string) (*Dataset, error) {
	return dataset.LoadTraining(dir)
}

// LoadTest loads the test split from dir using the canonical MNIST file
// names.
func LoadTest(dir string) (*Dataset, error) {
	return dataset.LoadTest(dir)
}
