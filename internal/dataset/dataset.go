// Package dataset loads the paired MNIST image and label files into an
// immutable in-memory container.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/digit-ml/digit/internal/idx"
)

// Canonical MNIST file names, relative to the data directory.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// Common errors.
var (
	ErrCountMismatch = errors.New("image/label count mismatch")
	ErrIndex         = errors.New("index out of range")
)

// CountError reports image and label files that disagree on how many items
// they hold.
type CountError struct {
	Images int
	Labels int
}

// Error implements the error interface.
func (e *CountError) Error() string {
	return fmt.Sprintf("image/label count mismatch: %d images, %d labels", e.Images, e.Labels)
}

// Unwrap makes errors.Is(err, ErrCountMismatch) work.
func (e *CountError) Unwrap() error { return ErrCountMismatch }

// IndexError reports an out-of-range item access.
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

// Dataset holds a loaded split: the image geometry, the raw image bytes and
// the class labels. It is created once by Load and never mutated.
type Dataset struct {
	rows   int
	cols   int
	images [][]byte
	labels []byte
}

// Load reads an image file and a label file and combines them. The two
// files must agree on the item count.
func Load(imagePath, labelPath string) (*Dataset, error) {
	set, err := idx.ReadImagesFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("load images: %w", err)
	}
	labels, err := idx.ReadLabelsFile(labelPath)
	if err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}
	if len(set.Images) != len(labels) {
		return nil, &CountError{Images: len(set.Images), Labels: len(labels)}
	}

	return &Dataset{
		rows:   set.Rows,
		cols:   set.Cols,
		images: set.Images,
		labels: labels,
	}, nil
}

// LoadTraining loads the 60,000-item training split from dir using the
// canonical MNIST file names.
func LoadTraining(dir string) (*Dataset, error) {
	return Load(filepath.Join(dir, TrainImagesFile), filepath.Join(dir, TrainLabelsFile))
}

// LoadTest loads the 10,000-item test split from dir using the canonical
// MNIST file names.
func LoadTest(dir string) (*Dataset, error) {
	return Load(filepath.Join(dir, TestImagesFile), filepath.Join(dir, TestLabelsFile))
}

// Rows returns the image height in pixels.
func (d *Dataset) Rows() int { return d.rows }

// Cols returns the image width in pixels.
func (d *Dataset) Cols() int { return d.cols }

// PixelCount returns the number of bytes in one image.
func (d *Dataset) PixelCount() int { return d.rows * d.cols }

// Len returns the number of image/label pairs.
func (d *Dataset) Len() int { return len(d.images) }

// Image returns the raw pixel bytes of item i. Callers must not modify the
// returned slice.
func (d *Dataset) Image(i int) ([]byte, error) {
	if i < 0 || i >= len(d.images) {
		return nil, &IndexError{Index: i, Len: len(d.images)}
	}
	return d.images[i], nil
}

// Label returns the class label of item i.
func (d *Dataset) Label(i int) (byte, error) {
	if i < 0 || i >= len(d.labels) {
		return 0, &IndexError{Index: i, Len: len(d.labels)}
	}
	return d.labels[i], nil
}
