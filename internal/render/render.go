// Package render draws dataset images as ASCII art for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/digit-ml/digit/internal/dataset"
)

// Threshold above which a pixel prints as ink.
const inkThreshold = 50

// ASCII renders raw pixel bytes as rows of 'X' (pixel > 50) and '.'
// characters, one line per image row. The image should hold rows*cols
// bytes; any missing trailing bytes render as background.
func ASCII(image []byte, rows, cols int) string {
	var b strings.Builder
	b.Grow(rows * (cols + 1))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i < len(image) && image[i] > inkThreshold {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Sprint renders dataset item i with its label as a footer.
func Sprint(ds *dataset.Dataset, i int) (string, error) {
	image, err := ds.Image(i)
	if err != nil {
		return "", err
	}
	label, err := ds.Label(i)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(ASCII(image, ds.Rows(), ds.Cols()))
	fmt.Fprintf(&b, "\n^ This image is labeled \"%d\"\n", label)
	return b.String(), nil
}
