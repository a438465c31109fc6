package block

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/avg-cs-student/jcblocks/internal/keys"
)

// Size limits for the parametric shapes.
const (
	MaxRectangleEdge  = 3
	MaxLineLength     = 5
	MinElleEdge       = 2
	MaxElleEdge       = 3
	MaxDiagonalLength = 5
)

// CellGlyph is the character used to draw an occupied cell.
const CellGlyph = '▅'

var (
	ErrEmptyBlock    = errors.New("block has no cells")
	ErrDuplicateCell = errors.New("block has duplicate cells")
)

// Dimension is the width and height of a block in cells.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Block is a playable piece: a set of cells relative to an origin.
//
// Rotation replaces the cell slice rather than editing it in place, so copies
// of a Block never observe each other's rotations.
type Block struct {
	coords  []Point
	variant Variant
}

// New builds a block from arbitrary cells, typically ones restored from
// storage.
func New(variant Variant, cells []Point) (Block, error) {
	if len(cells) == 0 {
		return Block{}, ErrEmptyBlock
	}
	seen := make(map[Point]struct{}, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			return Block{}, fmt.Errorf("%w: (%d,%d)", ErrDuplicateCell, c.X, c.Y)
		}
		seen[c] = struct{}{}
	}
	out := make([]Point, len(cells))
	copy(out, cells)
	return Block{coords: out, variant: variant}, nil
}

// NewTee returns the tee. Tees are always the same size.
func NewTee() Block {
	coords := make([]Point, 0, 4)
	for i := 0; i < 3; i++ {
		coords = append(coords, Point{X: i, Y: 0})
	}
	coords = append(coords, Point{X: 1, Y: 1})
	return Block{coords: coords, variant: Tee}
}

// NewRectangle returns a width x height rectangle. Both edges are clamped to
// [1, MaxRectangleEdge].
func NewRectangle(width, height int) Block {
	width = clamp(width, 1, MaxRectangleEdge)
	height = clamp(height, 1, MaxRectangleEdge)
	coords := make([]Point, 0, width*height)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			coords = append(coords, Point{X: i, Y: j})
		}
	}
	return Block{coords: coords, variant: Rectangle}
}

// NewLine returns a horizontal line. Length is clamped to [2, MaxLineLength].
func NewLine(length int) Block {
	length = clamp(length, 2, MaxLineLength)
	coords := make([]Point, 0, length)
	for i := 0; i < length; i++ {
		coords = append(coords, Point{X: i, Y: 0})
	}
	return Block{coords: coords, variant: Line}
}

// NewDiagonal returns a diagonal rising to the right. Length is clamped to
// [1, MaxDiagonalLength].
func NewDiagonal(length int) Block {
	length = clamp(length, 1, MaxDiagonalLength)
	coords := make([]Point, 0, length)
	for i := 0; i < length; i++ {
		coords = append(coords, Point{X: i, Y: i})
	}
	return Block{coords: coords, variant: Diagonal}
}

// NewElle returns an L shape. Both arms are clamped to [MinElleEdge,
// MaxElleEdge]. The horizontal arm is sized by height and the vertical arm by
// width, so NewElle(2, 3) is three cells wide and two tall.
func NewElle(width, height int) Block {
	coords := []Point{{X: 0, Y: 0}}
	for i := 1; i < clamp(height, MinElleEdge, MaxElleEdge); i++ {
		coords = append(coords, Point{X: i, Y: 0})
	}
	for i := 1; i < clamp(width, MinElleEdge, MaxElleEdge); i++ {
		coords = append(coords, Point{X: 0, Y: i})
	}
	return Block{coords: coords, variant: Elle}
}

// Random picks a variant uniformly and sizes it with edges in
// [1, MaxRectangleEdge].
func Random(rng *rand.Rand) Block {
	variant := Variants[rng.Intn(len(Variants))]
	width := rng.Intn(MaxRectangleEdge) + 1
	height := rng.Intn(MaxRectangleEdge) + 1

	switch variant {
	case Tee:
		return NewTee()
	case Elle:
		return NewElle(width, height)
	case Diagonal:
		return NewDiagonal(width)
	case Line:
		return NewLine(width)
	default:
		return NewRectangle(width, height)
	}
}

// Catalogue returns the fixed set of shapes offered to players.
func Catalogue() []Block {
	return []Block{
		NewRectangle(3, 3),
		NewRectangle(3, 2),
		NewRectangle(2, 3),
		NewRectangle(2, 2),
		NewRectangle(1, 1),
		NewTee(),
		NewLine(2),
		NewLine(3),
		NewLine(4),
		NewLine(5),
		NewElle(3, 3),
		NewElle(3, 2),
		NewElle(2, 3),
		NewElle(2, 2),
		NewDiagonal(2),
		NewDiagonal(3),
		NewDiagonal(4),
	}
}

// Coordinates returns a copy of the block's cells.
func (b Block) Coordinates() []Point {
	out := make([]Point, len(b.coords))
	copy(out, b.coords)
	return out
}

// Variant returns the family the block was built from.
func (b Block) Variant() Variant { return b.variant }

// Len is the number of cells in the block.
func (b Block) Len() int { return len(b.coords) }

// IsZero reports whether the block has no cells.
func (b Block) IsZero() bool { return len(b.coords) == 0 }

// Contains reports whether p is one of the block's cells.
func (b Block) Contains(p Point) bool {
	for _, c := range b.coords {
		if c == p {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the block.
func (b Block) Clone() Block {
	return Block{coords: b.Coordinates(), variant: b.variant}
}

// Dimensions reports the block's width and height. Diagonals are square;
// other shapes are measured by the largest number of cells sharing a row
// (width) or a column (height).
func (b Block) Dimensions() Dimension {
	if b.variant == Diagonal {
		return Dimension{Width: len(b.coords), Height: len(b.coords)}
	}

	perColumn := make(map[int]int)
	perRow := make(map[int]int)
	for _, c := range b.coords {
		perColumn[c.X]++
		perRow[c.Y]++
	}
	return Dimension{Width: maxCount(perRow), Height: maxCount(perColumn)}
}

// Bounds returns the lower-left and upper-right corners of the block's
// bounding box.
func (b Block) Bounds() (min, max Point) {
	if len(b.coords) == 0 {
		return Point{}, Point{}
	}
	min, max = b.coords[0], b.coords[0]
	for _, c := range b.coords[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max
}

// Normalized returns a copy translated so its lowest cells sit on x=0 and y=0.
func (b Block) Normalized() Block {
	min, _ := b.Bounds()
	out := make([]Point, len(b.coords))
	for i, c := range b.coords {
		out[i] = Point{X: c.X - min.X, Y: c.Y - min.Y}
	}
	return Block{coords: out, variant: b.variant}
}

// RotateRight rotates the block 90 degrees clockwise about the origin.
func (b *Block) RotateRight() *Block {
	out := make([]Point, len(b.coords))
	for i, c := range b.coords {
		out[i] = c.RotateRight()
	}
	b.coords = out
	return b
}

// RotateLeft rotates the block 90 degrees counter-clockwise about the origin.
func (b *Block) RotateLeft() *Block {
	out := make([]Point, len(b.coords))
	for i, c := range b.coords {
		out[i] = c.RotateLeft()
	}
	b.coords = out
	return b
}

// Rotated returns a copy turned by the given number of quarter turns.
// Positive values turn right, negative values turn left.
func (b Block) Rotated(quarterTurns int) Block {
	out := b.Clone()
	turns := quarterTurns % 4
	for ; turns > 0; turns-- {
		out.RotateRight()
	}
	for ; turns < 0; turns++ {
		out.RotateLeft()
	}
	return out
}

// Key returns a canonical identifier for the block's shape. Blocks covering
// the same cells (after translation) share a key.
func (b Block) Key() string {
	cells := make([][2]int, len(b.coords))
	for i, c := range b.coords {
		cells[i] = [2]int{c.X, c.Y}
	}
	return keys.ShapeKey(cells)
}

// String draws the block with one line per row, top row first.
func (b Block) String() string {
	if len(b.coords) == 0 {
		return ""
	}
	min, max := b.Bounds()
	width := max.X - min.X + 1
	height := max.Y - min.Y + 1

	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, width)
	}
	for _, c := range b.coords {
		grid[c.Y-min.Y][c.X-min.X] = true
	}

	var sb strings.Builder
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			if grid[y][x] {
				sb.WriteRune(CellGlyph)
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Describe returns the variant, dimensions and drawing of the block.
func (b Block) Describe() string {
	d := b.Dimensions()
	return fmt.Sprintf("%s: %dx%d\n%s", b.variant, d.Width, d.Height, b)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxCount(m map[int]int) int {
	best := 0
	for _, n := range m {
		if n > best {
			best = n
		}
	}
	return best
}
