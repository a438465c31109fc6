package canvas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avg-cs-student/jcblocks/internal/block"
)

// Default board size.
const (
	DefaultRows    = 8
	DefaultColumns = 8
)

var (
	ErrDoesNotFit   = errors.New("block does not fit at that position")
	ErrInvalidSize  = errors.New("canvas must have at least one row and one column")
	ErrInvalidBoard = errors.New("encoded board does not match canvas size")
)

// PointStatus is the state of a single cell on the board.
type PointStatus int

const (
	Empty PointStatus = iota
	Occupied
	MarkedForRemoval
)

func (s PointStatus) String() string {
	switch s {
	case Occupied:
		return "occupied"
	case MarkedForRemoval:
		return "marked"
	default:
		return "empty"
	}
}

// filled reports whether the cell counts towards a complete line.
func (s PointStatus) filled() bool {
	return s == Occupied || s == MarkedForRemoval
}

// Placement is a block anchored at a board position that was checked to fit.
type Placement struct {
	Block  block.Block
	Row    int
	Column int
}

// Cells returns the absolute board cells covered by the placement.
func (p Placement) Cells() []block.Point {
	anchor := block.Point{X: p.Column, Y: p.Row}
	coords := p.Block.Coordinates()
	for i := range coords {
		coords[i] = coords[i].Add(anchor)
	}
	return coords
}

// LineClear lists the rows and columns removed by ClearCompletedLines.
type LineClear struct {
	Rows    []int `json:"rows"`
	Columns []int `json:"columns"`
}

// Count is the number of lines removed.
func (l LineClear) Count() int { return len(l.Rows) + len(l.Columns) }

// Canvas holds the state of the board. Cells are stored row-major with row 0
// at the bottom.
type Canvas struct {
	Rows     int
	Columns  int
	contents []PointStatus
}

// New returns an empty canvas.
func New(rows, columns int) *Canvas {
	if rows < 0 {
		rows = 0
	}
	if columns < 0 {
		columns = 0
	}
	return &Canvas{
		Rows:     rows,
		Columns:  columns,
		contents: make([]PointStatus, rows*columns),
	}
}

// Default returns an empty DefaultRows x DefaultColumns canvas.
func Default() *Canvas {
	return New(DefaultRows, DefaultColumns)
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{Rows: c.Rows, Columns: c.Columns, contents: c.Contents()}
}

// Contents returns a copy of every cell, row-major.
func (c *Canvas) Contents() []PointStatus {
	out := make([]PointStatus, len(c.contents))
	copy(out, c.contents)
	return out
}

// ClearAll empties every cell.
func (c *Canvas) ClearAll() *Canvas {
	for i := range c.contents {
		c.contents[i] = Empty
	}
	return c
}

// Status returns the state of the cell at column x, row y. Cells off the
// board report Empty and ok=false.
func (c *Canvas) Status(x, y int) (PointStatus, bool) {
	idx, ok := c.positionToIndex(x, y)
	if !ok {
		return Empty, false
	}
	return c.contents[idx], true
}

// OccupiedCount is the number of occupied cells.
func (c *Canvas) OccupiedCount() int {
	n := 0
	for _, s := range c.contents {
		if s == Occupied {
			n++
		}
	}
	return n
}

func (c *Canvas) positionToIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.Columns || y >= c.Rows {
		return 0, false
	}
	return c.Columns*y + x, true
}

// CanFitAt reports whether every cell of b, anchored at (row, column), lands
// on an unoccupied cell of the board.
func (c *Canvas) CanFitAt(b block.Block, row, column int) bool {
	if b.IsZero() {
		return false
	}
	for _, p := range b.Coordinates() {
		idx, ok := c.positionToIndex(column+p.X, row+p.Y)
		if !ok {
			return false
		}
		if c.contents[idx] == Occupied {
			return false
		}
	}
	return true
}

// CanFit searches the board, bottom row first, for a position where b fits.
func (c *Canvas) CanFit(b block.Block) (Placement, bool) {
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Columns; col++ {
			if p, err := c.TryPlace(b, row, col); err == nil {
				return p, true
			}
		}
	}
	return Placement{}, false
}

// CanFitAnyRotation is CanFit over all four orientations of b.
func (c *Canvas) CanFitAnyRotation(b block.Block) (Placement, bool) {
	for turn := 0; turn < 4; turn++ {
		if p, ok := c.CanFit(b.Rotated(turn)); ok {
			return p, true
		}
	}
	return Placement{}, false
}

// TryPlace validates a placement without modifying the board.
func (c *Canvas) TryPlace(b block.Block, row, column int) (Placement, error) {
	if !c.CanFitAt(b, row, column) {
		return Placement{}, fmt.Errorf("%w: row %d column %d", ErrDoesNotFit, row, column)
	}
	return Placement{Block: b.Clone(), Row: row, Column: column}, nil
}

// Add marks the placement's cells as occupied.
func (c *Canvas) Add(p Placement) *Canvas {
	for _, cell := range p.Cells() {
		if idx, ok := c.positionToIndex(cell.X, cell.Y); ok {
			c.contents[idx] = Occupied
		}
	}
	return c
}

// ClearCompletedLines empties every complete row and column. A cell shared by
// a complete row and a complete column is counted towards both lines.
func (c *Canvas) ClearCompletedLines() LineClear {
	var cleared LineClear

	for col := 0; col < c.Columns; col++ {
		if complete, _ := c.IsCompleteColumn(col); complete {
			for row := 0; row < c.Rows; row++ {
				idx, _ := c.positionToIndex(col, row)
				c.contents[idx] = MarkedForRemoval
			}
			cleared.Columns = append(cleared.Columns, col)
		}
	}

	for row := 0; row < c.Rows; row++ {
		if complete, _ := c.IsCompleteRow(row); complete {
			for col := 0; col < c.Columns; col++ {
				idx, _ := c.positionToIndex(col, row)
				c.contents[idx] = MarkedForRemoval
			}
			cleared.Rows = append(cleared.Rows, row)
		}
	}

	for i, s := range c.contents {
		if s == MarkedForRemoval {
			c.contents[i] = Empty
		}
	}
	return cleared
}

// IsCompleteRow reports whether every cell in row is filled. ok is false for
// a row outside the board.
func (c *Canvas) IsCompleteRow(row int) (complete, ok bool) {
	if row < 0 || row >= c.Rows {
		return false, false
	}
	for col := 0; col < c.Columns; col++ {
		idx, _ := c.positionToIndex(col, row)
		if !c.contents[idx].filled() {
			return false, true
		}
	}
	return true, true
}

// IsCompleteColumn reports whether every cell in column is filled. ok is false
// for a column outside the board.
func (c *Canvas) IsCompleteColumn(column int) (complete, ok bool) {
	if column < 0 || column >= c.Columns {
		return false, false
	}
	for row := 0; row < c.Rows; row++ {
		idx, _ := c.positionToIndex(column, row)
		if !c.contents[idx].filled() {
			return false, true
		}
	}
	return true, true
}

// CompletedRows returns the indexes of all complete rows.
func (c *Canvas) CompletedRows() []int {
	var out []int
	for row := 0; row < c.Rows; row++ {
		if complete, _ := c.IsCompleteRow(row); complete {
			out = append(out, row)
		}
	}
	return out
}

// CompletedColumns returns the indexes of all complete columns.
func (c *Canvas) CompletedColumns() []int {
	var out []int
	for col := 0; col < c.Columns; col++ {
		if complete, _ := c.IsCompleteColumn(col); complete {
			out = append(out, col)
		}
	}
	return out
}

// String draws the board top row first, with row labels on the left and
// column labels underneath.
func (c *Canvas) String() string {
	var sb strings.Builder
	for row := c.Rows - 1; row >= 0; row-- {
		sb.WriteString(strconv.Itoa(row % 10))
		sb.WriteByte(' ')
		for col := 0; col < c.Columns; col++ {
			idx, _ := c.positionToIndex(col, row)
			switch c.contents[idx] {
			case Occupied:
				sb.WriteRune(block.CellGlyph)
			case MarkedForRemoval:
				sb.WriteRune('⏲')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < c.Columns; col++ {
		sb.WriteString(strconv.Itoa(col % 10))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}
