// Package preprocess turns image files into normalized feature vectors:
// grayscale, fixed-size resize, row-major flatten, unit L2 norm.
package preprocess

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"gonum.org/v1/gonum/floats"
)

// ErrZeroNorm is returned for images with no luminance at all; an all-black
// image carries no information the encoder could represent.
var ErrZeroNorm = errors.New("preprocess: feature vector has zero norm")

// LoadFeatures reads an image file and returns its normalized feature vector
// of length size*size.
func LoadFeatures(path string, size int) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return DecodeFeatures(data, size)
}

// DecodeFeatures decodes image bytes and returns the normalized feature
// vector. Any format registered with image.Decode is accepted.
func DecodeFeatures(data []byte, size int) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid target size %d", size)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	gray := resizeGray(img, size)
	return Normalize(flatten(gray))
}

// resizeGray scales to size x size; writing into a Gray destination performs
// the grayscale conversion during the same pass.
func resizeGray(img image.Image, size int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// flatten reads pixels row-major into [0,1] floats.
func flatten(gray *image.Gray) []float64 {
	bounds := gray.Bounds()
	out := make([]float64, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out = append(out, float64(gray.GrayAt(x, y).Y)/255.0)
		}
	}
	return out
}

// Normalize scales v to unit L2 norm, returning a new slice.
func Normalize(v []float64) ([]float64, error) {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return nil, ErrZeroNorm
	}
	out := make([]float64, len(v))
	copy(out, v)
	floats.Scale(1.0/norm, out)
	return out, nil
}
