// Copyright 2026 The Digit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset loads MNIST-style IDX image/label file pairs.
//
// # Basic Usage
//
//	ds, err := dataset.LoadTest("./data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ds.Len(), ds.Rows(), ds.Cols())
//
//	img, _ := ds.Image(0)   // raw pixel bytes, len == ds.PixelCount()
//	label, _ := ds.Label(0) // class label byte
//
// # Errors
//
// Loading failures are typed: bad magic numbers match ErrFormat, short
// payloads match ErrTruncated, mismatched image/label counts match
// ErrCountMismatch, and underlying filesystem failures are wrapped and
// matchable with errors.Is (for example os.ErrNotExist). Out-of-range item
// access matches ErrIndex.
package dataset
