package imageutil

import (
	"errors"
	"image"
	"image/draw"
)

const maxScaledWidth = 4096

var ErrInvalidSize = errors.New("invalid target size")

// ScaleToWidth resizes src to the given width, keeping its aspect ratio.
// Nearest-neighbour sampling keeps cell edges sharp.
func ScaleToWidth(src image.Image, width int) (*image.NRGBA, error) {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.New("source image has zero size")
	}
	if width <= 0 || width > maxScaledWidth {
		return nil, ErrInvalidSize
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	return Scale(src, width, height)
}

// Scale resizes src to width x height using nearest-neighbour sampling.
func Scale(src image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, errors.New("source image has zero size")
	}

	// Normalise to NRGBA so pixels can be copied directly.
	in, ok := src.(*image.NRGBA)
	if !ok || in.Bounds().Min != (image.Point{}) {
		in = image.NewNRGBA(image.Rect(0, 0, srcW, srcH))
		draw.Draw(in, in.Bounds(), src, b.Min, draw.Src)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		sy := y * srcH / height
		for x := 0; x < width; x++ {
			sx := x * srcW / width
			so := in.PixOffset(sx, sy)
			do := dst.PixOffset(x, y)
			copy(dst.Pix[do:do+4], in.Pix[so:so+4])
		}
	}
	return dst, nil
}
