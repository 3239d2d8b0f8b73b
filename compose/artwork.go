// Package compose turns an accepted caption and a piece of artwork into the
// finished 1080x1920 frame: pick an image, build the canvas, render the
// positioned text the layout engine hands over.
package compose

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// ErrNoArtwork means the artwork directory holds no usable images. There is
// nothing to compose onto, so the run fails.
var ErrNoArtwork = errors.New("no artwork images found")

// PickArtwork selects a random png/jpg from dir and decodes it.
func PickArtwork(dir string) (image.Image, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("read artwork dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, "", fmt.Errorf("%w in %s", ErrNoArtwork, dir)
	}

	name := files[rand.Intn(len(files))]
	path := filepath.Join(dir, name)

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open artwork %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode artwork %s: %w", path, err)
	}
	return img, path, nil
}

// Canvas scales the artwork to fit a width x height canvas, preserving
// aspect ratio, and centers it on black.
func Canvas(artwork image.Image, width, height int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)

	b := artwork.Bounds()
	scale := minf(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)

	x := (width - w) / 2
	y := (height - h) / 2
	dst := image.Rect(x, y, x+w, y+h)
	draw.CatmullRom.Scale(canvas, dst, artwork, b, draw.Over, nil)
	return canvas
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
