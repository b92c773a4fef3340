// Package asset loads the board and marker pictures from disk, scaled to the
// size they are drawn at.
package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // board and markers ship as PNG
	"os"

	"golang.org/x/image/draw"
)

var ErrInvalidSize = errors.New("invalid image size")

// Set holds the three pictures the board is drawn from.
type Set struct {
	Board   image.Image
	MarkerO image.Image
	MarkerX image.Image
}

// LoadSet reads the board picture scaled to boardSize and both markers
// scaled to cellSize, all square.
func LoadSet(boardPath, markerOPath, markerXPath string, boardSize, cellSize int) (*Set, error) {
	board, err := LoadScaled(boardPath, boardSize, boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load board image: %w", err)
	}

	markerO, err := LoadScaled(markerOPath, cellSize, cellSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load O marker: %w", err)
	}

	markerX, err := LoadScaled(markerXPath, cellSize, cellSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load X marker: %w", err)
	}

	return &Set{Board: board, MarkerO: markerO, MarkerX: markerX}, nil
}

// LoadScaled decodes the image at path and resamples it to width x height.
func LoadScaled(path string, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open image: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("can't decode %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}
