package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// upperHalfBlock draws the top pixel in the foreground colour and the
// bottom pixel in the background colour of one terminal cell.
const upperHalfBlock = "▀"

// ImageService provides image processing operations for cover images.
//
// ImageService is used to:
//   - Resize and re-encode covers as JPEG before caching
//   - Render images as coloured half-block text for album cards
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. If the image is already smaller than the
// maximum dimensions, it will still be processed (re-encoded as JPEG).
//
// Returns the resized image as JPEG-encoded bytes.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// Resize to fit within 1000x1000, maintaining aspect ratio
//	resized, err := svc.ResizeImage(ctx, imageData, 1000, 1000)
//	// A 1500x1000 image becomes 1000x666
//	// A 800x600 image remains 800x600 (but re-encoded)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	width, height := fitWithin(img.Bounds().Dx(), img.Bounds().Dy(), maxWidth, maxHeight)
	dst := scale(img, width, height)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// RenderThumbnail renders an image as a block of cols x rows terminal cells.
//
// Each cell shows two vertically stacked pixels using the upper half block
// character, so the image is scaled to cols x (2*rows) pixels. The aspect
// ratio is preserved; unused space is padded with blank cells so every line
// has exactly cols cells.
func (s *ImageService) RenderThumbnail(ctx context.Context, data []byte, cols, rows int) (string, error) {
	if cols < 1 || rows < 1 {
		return "", fmt.Errorf("invalid thumbnail size %dx%d", cols, rows)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	width, height := fitWithin(img.Bounds().Dx(), img.Bounds().Dy(), cols, rows*2)
	dst := scale(img, width, height)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		for col := 0; col < cols; col++ {
			top, bottom := 2*row, 2*row+1
			if col >= width || top >= height {
				b.WriteString(" ")
				continue
			}
			style := lipgloss.NewStyle().Foreground(hexColor(dst.At(col, top)))
			if bottom < height {
				style = style.Background(hexColor(dst.At(col, bottom)))
			}
			b.WriteString(style.Render(upperHalfBlock))
		}
	}

	return b.String(), nil
}

// fitWithin scales width x height down to fit inside maxWidth x maxHeight.
// Images that already fit are returned unchanged.
func fitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return 1, 1
	}
	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			// Height is the limiting factor
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			// Width is the limiting factor
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

func scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
