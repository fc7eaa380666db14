package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ThumbnailOptions control thumbnail generation.
type ThumbnailOptions struct {
	// Side of the square box the thumbnail must fit in
	Size        int
	JPEGQuality int
	// Upper bound for width*height*4 of the source; zero or less disables it
	MaxDecodedSize int64
}

// Thumbnail decodes an image and renders it as a JPEG that fits in a
// Size x Size box. The aspect ratio is kept, small images are not upscaled
// and transparent areas become white.
func Thumbnail(data []byte, opts ThumbnailOptions) ([]byte, error) {
	// A crafted header can claim huge dimensions, so check them before decoding.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image dimensions: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("image has no pixels")
	}
	if opts.MaxDecodedSize > 0 && int64(cfg.Width)*int64(cfg.Height)*4 > opts.MaxDecodedSize {
		return nil, fmt.Errorf("image too large: %dx%d pixels, decoded size would exceed %d bytes limit", cfg.Width, cfg.Height, opts.MaxDecodedSize)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := FitInBox(bounds.Dx(), bounds.Dy(), opts.Size)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// FitInBox scales width and height down to fit a size x size box. Sides never
// shrink below one pixel and never grow.
func FitInBox(width, height, size int) (int, int) {
	if width <= size && height <= size {
		return width, height
	}
	if width >= height {
		return size, max(1, height*size/width)
	}
	return max(1, width*size/height), size
}
