// Package idx reads the IDX binary container format used by the MNIST
// image and label files.
//
// Both variants share a big-endian header: a magic number identifying the
// file kind, an item count, and (for images only) the row and column counts.
// The payload follows immediately after the header.
//
// Reference: http://yann.lecun.com/exdb/mnist/
package idx

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Magic numbers for the two IDX file kinds.
const (
	MagicImages uint32 = 2051
	MagicLabels uint32 = 2049
)

// ImageSet is the decoded contents of an IDX image file.
type ImageSet struct {
	Rows   int
	Cols   int
	Images [][]byte // each of length Rows*Cols
}

// PixelCount returns the number of bytes in one image.
func (s *ImageSet) PixelCount() int { return s.Rows * s.Cols }

// readHeader reads the magic word, the item count and dims extra dimension
// words, all big-endian int32. Image and label files differ only in the
// expected magic and the number of dimension words, so both readers share
// this routine.
func readHeader(r io.Reader, wantMagic uint32, dims int) (count int, sizes []int, err error) {
	var magic uint32
	if err := binary.Read(r, binary.BigEndian, &magic); err != nil {
		return 0, nil, fmt.Errorf("read magic: %w", err)
	}
	if magic != wantMagic {
		return 0, nil, &FormatError{Want: wantMagic, Got: magic}
	}

	var n int32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return 0, nil, fmt.Errorf("read item count: %w", err)
	}
	if n < 0 {
		return 0, nil, &HeaderError{Field: "item count", Value: int(n)}
	}

	sizes = make([]int, dims)
	for i := range sizes {
		var d int32
		if err := binary.Read(r, binary.BigEndian, &d); err != nil {
			return 0, nil, fmt.Errorf("read dimension %d: %w", i, err)
		}
		if d < 0 {
			return 0, nil, &HeaderError{Field: fmt.Sprintf("dimension %d", i), Value: int(d)}
		}
		sizes[i] = int(d)
	}
	return int(n), sizes, nil
}

// ReadImages decodes an IDX image stream: magic 2051, item count, rows,
// cols, then count images of exactly rows*cols bytes each.
func ReadImages(r io.Reader) (*ImageSet, error) {
	count, sizes, err := readHeader(r, MagicImages, 2)
	if err != nil {
		return nil, err
	}
	rows, cols := sizes[0], sizes[1]
	pixels := rows * cols

	images := make([][]byte, count)
	for i := range images {
		images[i] = make([]byte, pixels)
		n, err := io.ReadFull(r, images[i])
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, &TruncatedError{Item: i, Want: pixels, Got: n}
		}
		if err != nil {
			return nil, fmt.Errorf("read image %d: %w", i, err)
		}
	}

	return &ImageSet{Rows: rows, Cols: cols, Images: images}, nil
}

// ReadLabels decodes an IDX label stream: magic 2049, item count, then one
// byte per label. The remaining stream length must equal the declared count.
func ReadLabels(r io.Reader) ([]byte, error) {
	count, _, err := readHeader(r, MagicLabels, 0)
	if err != nil {
		return nil, err
	}

	labels, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	if len(labels) != count {
		return nil, &TruncatedError{Item: -1, Want: count, Got: len(labels)}
	}
	return labels, nil
}

// ReadImagesFile decodes an IDX image file from disk.
//
//nolint:gosec // G304: path comes from trusted caller, not user input.
func ReadImagesFile(path string) (*ImageSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image file: %w", err)
	}
	defer func() {
		_ = f.Close() // Ignore close error on read-only file.
	}()

	set, err := ReadImages(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ReadLabelsFile decodes an IDX label file from disk.
//
//nolint:gosec // G304: path comes from trusted caller, not user input.
func ReadLabelsFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open label file: %w", err)
	}
	defer func() {
		_ = f.Close() // Ignore close error on read-only file.
	}()

	labels, err := ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}
