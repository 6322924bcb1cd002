// Package preview converts images into frontend-friendly JPEG previews.
package preview

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultQuality is the JPEG quality the desktop frontend expects.
const DefaultQuality = 85

type (
	// Options controls a conversion.
	Options struct {
		// MaxDimension bounds the longest side in pixels; 0 keeps the
		// original size.
		MaxDimension int
		// Quality is the JPEG quality, 1-100. 0 means DefaultQuality.
		Quality int
	}

	// Result describes a finished conversion.
	Result struct {
		Format  string
		Width   int
		Height  int
		Resized bool
	}
)

// Convert decodes the image at inputPath, downscales it so the longest side
// fits Options.MaxDimension when one exceeds it, and writes a JPEG to
// outputPath. Images are never upscaled.
func Convert(inputPath, outputPath string, opts Options) (Result, error) {
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}
	if opts.Quality > 100 {
		opts.Quality = 100
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open input image: %w", err)
	}
	defer in.Close()

	src, format, err := image.Decode(in)
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode input image: %s - %w", inputPath, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	resized := false
	if opts.MaxDimension > 0 && (width > opts.MaxDimension || height > opts.MaxDimension) {
		width, height = fitDimensions(width, height, opts.MaxDimension)
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		src = dst
		resized = true
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create output file: %w", err)
	}

	if err := jpeg.Encode(out, src, &jpeg.Options{Quality: opts.Quality}); err != nil {
		out.Close()
		return Result{}, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	if err := out.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to write output file: %w", err)
	}

	return Result{
		Format:  format,
		Width:   width,
		Height:  height,
		Resized: resized,
	}, nil
}

// fitDimensions scales (width, height) proportionally so the longest side
// equals maxDimension.
func fitDimensions(width, height, maxDimension int) (int, int) {
	ratio := min(
		float64(maxDimension)/float64(width),
		float64(maxDimension)/float64(height),
	)

	newWidth := int(math.Round(float64(width) * ratio))
	newHeight := int(math.Round(float64(height) * ratio))
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	return newWidth, newHeight
}
