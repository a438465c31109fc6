package imageutil

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/avg-cs-student/jcblocks/internal/canvas"
)

// Cell size limits for rendered boards, in pixels.
const (
	MinCellSize     = 4
	MaxCellSize     = 64
	DefaultCellSize = 24
)

var ErrInvalidCellSize = errors.New("invalid cell size")

// Board colours.
var (
	Background = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	EmptyCell  = color.NRGBA{R: 0x31, G: 0x32, B: 0x44, A: 0xff}
	FilledCell = color.NRGBA{R: 0xf9, G: 0xe2, B: 0xaf, A: 0xff}
	MarkedCell = color.NRGBA{R: 0xf3, G: 0x8b, B: 0xa8, A: 0xff}
)

// RenderBoard draws the canvas with each cell as a square of cellSize pixels
// separated by a one pixel gutter. Row 0 is drawn at the bottom.
func RenderBoard(c *canvas.Canvas, cellSize int) (*image.NRGBA, error) {
	if cellSize < MinCellSize || cellSize > MaxCellSize {
		return nil, ErrInvalidCellSize
	}
	pitch := cellSize + 1
	w := c.Columns*pitch + 1
	h := c.Rows*pitch + 1
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	for row := 0; row < c.Rows; row++ {
		top := (c.Rows-1-row)*pitch + 1
		for col := 0; col < c.Columns; col++ {
			left := col*pitch + 1
			status, _ := c.Status(col, row)
			fill := EmptyCell
			switch status {
			case canvas.Occupied:
				fill = FilledCell
			case canvas.MarkedForRemoval:
				fill = MarkedCell
			}
			r := image.Rect(left, top, left+cellSize, top+cellSize)
			draw.Draw(img, r, &image.Uniform{C: fill}, image.Point{}, draw.Src)
		}
	}
	return img, nil
}

// EncodePNG returns the PNG encoding of img.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BoardPNG renders the canvas and encodes it. A positive width scales the
// result to that many pixels across, keeping the aspect ratio.
func BoardPNG(c *canvas.Canvas, cellSize, width int) ([]byte, error) {
	img, err := RenderBoard(c, cellSize)
	if err != nil {
		return nil, err
	}
	if width <= 0 || width == img.Bounds().Dx() {
		return EncodePNG(img)
	}
	scaled, err := ScaleToWidth(img, width)
	if err != nil {
		return nil, err
	}
	return EncodePNG(scaled)
}
