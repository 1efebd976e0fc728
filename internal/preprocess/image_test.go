package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x * 255) / max(w-1, 1))
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestDecodeFeatures(t *testing.T) {
	t.Run("fixed length unit norm output", func(t *testing.T) {
		data := encodePNG(t, gradientImage(64, 48))
		features, err := DecodeFeatures(data, 32)
		require.NoError(t, err)
		require.Len(t, features, 1024)
		assert.InDelta(t, 1, floats.Norm(features, 2), 1e-9)
	})

	t.Run("all black image fails with zero norm", func(t *testing.T) {
		data := encodePNG(t, image.NewRGBA(image.Rect(0, 0, 8, 8)))
		_, err := DecodeFeatures(data, 32)
		assert.ErrorIs(t, err, ErrZeroNorm)
	})

	t.Run("garbage bytes fail to decode", func(t *testing.T) {
		_, err := DecodeFeatures([]byte("not an image"), 32)
		assert.Error(t, err)
	})

	t.Run("invalid size rejected", func(t *testing.T) {
		data := encodePNG(t, gradientImage(4, 4))
		_, err := DecodeFeatures(data, 0)
		assert.Error(t, err)
	})
}

func TestLoadFeatures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, gradientImage(32, 32)), 0o644))

	features, err := LoadFeatures(path, 32)
	require.NoError(t, err)
	assert.Len(t, features, 1024)

	_, err = LoadFeatures(filepath.Join(dir, "missing.png"), 32)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	t.Run("unit norm within tolerance", func(t *testing.T) {
		out, err := Normalize([]float64{3, 4})
		require.NoError(t, err)
		assert.InDelta(t, 1, floats.Norm(out, 2), 1e-9)
		assert.InDelta(t, 0.6, out[0], 1e-9)
		assert.InDelta(t, 0.8, out[1], 1e-9)
	})

	t.Run("input not mutated", func(t *testing.T) {
		in := []float64{2, 0}
		_, err := Normalize(in)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 0}, in)
	})

	t.Run("zero vector fails", func(t *testing.T) {
		_, err := Normalize(make([]float64, 16))
		assert.ErrorIs(t, err, ErrZeroNorm)
	})
}

func TestFlattenRowMajor(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(0, 0, color.Gray{Y: 255})
	gray.SetGray(1, 0, color.Gray{Y: 0})
	gray.SetGray(0, 1, color.Gray{Y: 0})
	gray.SetGray(1, 1, color.Gray{Y: 255})

	out := flatten(gray)
	require.Len(t, out, 4)
	assert.Equal(t, []float64{1, 0, 0, 1}, out)
}
