package asset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, name string, width, height int, fill color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, fill)
		}
	}

	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, png.Encode(file, img))

	return path
}

func TestLoadScaled(t *testing.T) {
	t.Run("Resamples to the requested size", func(t *testing.T) {
		// Given: a 20x10 red picture
		path := writePNG(t, "red.png", 20, 10, color.RGBA{R: 255, A: 255})

		// When: loading it at 50x50
		img, err := LoadScaled(path, 50, 50)

		// Then: it is 50x50 and still red
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())
		px := img.RGBAAt(25, 25)
		assert.InDelta(t, 255, int(px.R), 2)
		assert.InDelta(t, 0, int(px.G), 2)
		assert.InDelta(t, 255, int(px.A), 2)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadScaled(filepath.Join(t.TempDir(), "absent.png"), 10, 10)

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Not an image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "text.png")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

		_, err := LoadScaled(path, 10, 10)

		require.ErrorIs(t, err, image.ErrFormat)
	})

	t.Run("Zero size", func(t *testing.T) {
		path := writePNG(t, "dot.png", 1, 1, color.White)

		_, err := LoadScaled(path, 0, 10)

		require.ErrorIs(t, err, ErrInvalidSize)
	})
}

func TestLoadSet(t *testing.T) {
	board := writePNG(t, "board.png", 30, 30, color.White)
	markerO := writePNG(t, "o.png", 8, 8, color.RGBA{B: 255, A: 255})
	markerX := writePNG(t, "x.png", 8, 8, color.RGBA{R: 255, A: 255})

	t.Run("All three pictures load at their sizes", func(t *testing.T) {
		set, err := LoadSet(board, markerO, markerX, 90, 10)

		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 90, 90), set.Board.Bounds())
		assert.Equal(t, image.Rect(0, 0, 10, 10), set.MarkerO.Bounds())
		assert.Equal(t, image.Rect(0, 0, 10, 10), set.MarkerX.Bounds())
	})

	t.Run("A missing marker fails the whole set", func(t *testing.T) {
		_, err := LoadSet(board, markerO, filepath.Join(t.TempDir(), "nope.png"), 90, 10)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "X marker")
	})
}
