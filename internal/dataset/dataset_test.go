package dataset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImagePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 16)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestManifestValidate(t *testing.T) {
	valid := &Manifest{
		ClassNames: []string{"Spiral", "Elliptical"},
		Samples:    []Sample{{Path: "a.png", Label: 0}, {Path: "b.png", Label: 1}},
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		m    Manifest
	}{
		{"too few classes", Manifest{ClassNames: []string{"only"}, Samples: []Sample{{Path: "a", Label: 0}}}},
		{"no samples", Manifest{ClassNames: []string{"a", "b"}}},
		{"label out of range", Manifest{ClassNames: []string{"a", "b"}, Samples: []Sample{{Path: "x", Label: 2}}}},
		{"negative label", Manifest{ClassNames: []string{"a", "b"}, Samples: []Sample{{Path: "x", Label: -1}}}},
		{"missing path", Manifest{ClassNames: []string{"a", "b"}, Samples: []Sample{{Label: 0}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.m.Validate())
		})
	}
}

func TestLoadManifestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "train.json")
	payload := `{"class_names":["Spiral","Elliptical"],"samples":[{"path":"spiral.png","label":0},{"path":"elliptical.png","label":1}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Spiral", "Elliptical"}, m.ClassNames)
	require.Len(t, m.Samples, 2)
	assert.Equal(t, 1, m.Samples[1].Label)

	_, err = LoadManifest(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoadManifestRemote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"class_names":["Spiral","Elliptical"],"samples":[{"path":"s.png","label":0}]}`))
	}))
	defer ts.Close()

	m, err := LoadManifest(ts.URL + "/train.json")
	require.NoError(t, err)
	assert.Len(t, m.Samples, 1)
}

func TestLoadManifestRemoteNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := LoadManifest(ts.URL + "/train.json")
	assert.Error(t, err)
}

func TestLoaderLocalExamples(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spiral.png"), testImagePNG(t), 0o644))

	m := &Manifest{
		ClassNames: []string{"Spiral", "Elliptical"},
		Samples:    []Sample{{Path: "spiral.png", Label: 0}},
	}

	loader := NewLoader(dir, 32)
	examples, err := loader.LoadExamples(m)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Len(t, examples[0].Features, 1024)
	assert.Equal(t, 0, examples[0].Label)
}

func TestLoaderRemoteExamples(t *testing.T) {
	img := testImagePNG(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(img)
	}))
	defer ts.Close()

	m := &Manifest{
		ClassNames: []string{"Spiral", "Elliptical"},
		Samples:    []Sample{{Path: ts.URL + "/spiral.png", Label: 1}},
	}

	loader := NewLoader("", 8)
	examples, err := loader.LoadExamples(m)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Len(t, examples[0].Features, 64)
}

func TestLoaderMissingSampleFailsWholeLoad(t *testing.T) {
	m := &Manifest{
		ClassNames: []string{"Spiral", "Elliptical"},
		Samples:    []Sample{{Path: "does-not-exist.png", Label: 0}},
	}
	loader := NewLoader(t.TempDir(), 32)
	_, err := loader.LoadExamples(m)
	assert.Error(t, err)
}
