package dataset

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/digit-ml/digit/internal/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSplit writes a well-formed image/label file pair and returns their
// paths.
func writeSplit(t *testing.T, dir, imageName, labelName string, rows, cols int, images [][]byte, labels []byte) (string, string) {
	t.Helper()
	order := binary.BigEndian

	imgBuf := new(bytes.Buffer)
	require.NoError(t, binary.Write(imgBuf, order, idx.MagicImages))
	require.NoError(t, binary.Write(imgBuf, order, int32(len(images))))
	require.NoError(t, binary.Write(imgBuf, order, int32(rows)))
	require.NoError(t, binary.Write(imgBuf, order, int32(cols)))
	for _, img := range images {
		imgBuf.Write(img)
	}

	lblBuf := new(bytes.Buffer)
	require.NoError(t, binary.Write(lblBuf, order, idx.MagicLabels))
	require.NoError(t, binary.Write(lblBuf, order, int32(len(labels))))
	lblBuf.Write(labels)

	imagePath := filepath.Join(dir, imageName)
	labelPath := filepath.Join(dir, labelName)
	require.NoError(t, os.WriteFile(imagePath, imgBuf.Bytes(), 0o600))
	require.NoError(t, os.WriteFile(labelPath, lblBuf.Bytes(), 0o600))
	return imagePath, labelPath
}

func TestLoad(t *testing.T) {
	images := [][]byte{
		{0, 50, 100, 150},
		{200, 250, 10, 20},
		{1, 2, 3, 4},
	}
	labels := []byte{3, 1, 4}
	imagePath, labelPath := writeSplit(t, t.TempDir(), "img", "lbl", 2, 2, images, labels)

	ds, err := Load(imagePath, labelPath)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Rows())
	assert.Equal(t, 2, ds.Cols())
	assert.Equal(t, 4, ds.PixelCount())
	require.Equal(t, 3, ds.Len())

	for i := range images {
		img, err := ds.Image(i)
		require.NoError(t, err)
		assert.Equal(t, images[i], img, "image %d", i)
		assert.Len(t, img, ds.PixelCount(), "image %d", i)

		label, err := ds.Label(i)
		require.NoError(t, err)
		assert.Equal(t, labels[i], label, "label %d", i)
	}
}

func TestLoadCountMismatch(t *testing.T) {
	images := [][]byte{{1}, {2}}
	labels := []byte{0, 1, 2}
	imagePath, labelPath := writeSplit(t, t.TempDir(), "img", "lbl", 1, 1, images, labels)

	_, err := Load(imagePath, labelPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCountMismatch)

	var countErr *CountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, 2, countErr.Images)
	assert.Equal(t, 3, countErr.Labels)
}

func TestLoadPropagatesFormatError(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "img")
	labelPath := filepath.Join(dir, "lbl")

	// A label header where the image header should be.
	buf := new(bytes.Buffer)
	require.NoError(t, binary.Write(buf, binary.BigEndian, idx.MagicLabels))
	require.NoError(t, binary.Write(buf, binary.BigEndian, int32(0)))
	require.NoError(t, os.WriteFile(imagePath, buf.Bytes(), 0o600))
	require.NoError(t, os.WriteFile(labelPath, nil, 0o600))

	_, err := Load(imagePath, labelPath)
	assert.ErrorIs(t, err, idx.ErrFormat)
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "img"), filepath.Join(dir, "lbl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadTrainingAndTest(t *testing.T) {
	dir := t.TempDir()
	writeSplit(t, dir, TrainImagesFile, TrainLabelsFile, 1, 2, [][]byte{{1, 2}}, []byte{7})
	writeSplit(t, dir, TestImagesFile, TestLabelsFile, 1, 2, [][]byte{{3, 4}, {5, 6}}, []byte{0, 9})

	train, err := LoadTraining(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, train.Len())

	test, err := LoadTest(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, test.Len())
}

func TestIndexErrors(t *testing.T) {
	imagePath, labelPath := writeSplit(t, t.TempDir(), "img", "lbl", 1, 1, [][]byte{{42}}, []byte{5})
	ds, err := Load(imagePath, labelPath)
	require.NoError(t, err)

	for _, index := range []int{-1, 1, 100} {
		_, err := ds.Image(index)
		assert.ErrorIs(t, err, ErrIndex, "image index %d", index)

		_, err = ds.Label(index)
		assert.ErrorIs(t, err, ErrIndex, "label index %d", index)
	}

	var indexErr *IndexError
	_, err = ds.Image(100)
	require.ErrorAs(t, err, &indexErr)
	assert.Equal(t, 100, indexErr.Index)
	assert.Equal(t, 1, indexErr.Len)
}
