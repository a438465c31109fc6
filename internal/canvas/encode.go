package canvas

import "fmt"

const (
	encodedEmpty    = '.'
	encodedOccupied = '#'
)

// Encode serializes the board as one character per cell, row-major from the
// bottom row. Cells marked for removal are stored as empty.
func (c *Canvas) Encode() string {
	buf := make([]byte, len(c.contents))
	for i, s := range c.contents {
		if s == Occupied {
			buf[i] = encodedOccupied
		} else {
			buf[i] = encodedEmpty
		}
	}
	return string(buf)
}

// Decode rebuilds a canvas produced by Encode. An empty string decodes to an
// empty board.
func Decode(rows, columns int, s string) (*Canvas, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrInvalidSize
	}
	c := New(rows, columns)
	if s == "" {
		return c, nil
	}
	if len(s) != rows*columns {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, len(s), rows*columns)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case encodedOccupied:
			c.contents[i] = Occupied
		case encodedEmpty:
			c.contents[i] = Empty
		default:
			return nil, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidBoard, s[i], i)
		}
	}
	return c, nil
}
