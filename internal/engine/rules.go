package engine

import (
	"errors"
	"fmt"

	"github.com/avg-cs-student/jcblocks/internal/canvas"
)

// Default rule values.
const (
	DefaultHandSize      = 3
	DefaultPointsPerLine = 50
	maxBoardEdge         = 32
	maxHandSize          = 9
)

var ErrInvalidRules = errors.New("invalid rules")

// Rules are the tunable parameters of a game.
type Rules struct {
	Rows          int `json:"rows" yaml:"rows"`
	Columns       int `json:"columns" yaml:"columns"`
	HandSize      int `json:"hand_size" yaml:"hand_size"`
	PointsPerLine int `json:"points_per_line" yaml:"points_per_line"`
}

// DefaultRules returns the classic 8x8 board with a hand of three blocks.
func DefaultRules() Rules {
	return Rules{
		Rows:          canvas.DefaultRows,
		Columns:       canvas.DefaultColumns,
		HandSize:      DefaultHandSize,
		PointsPerLine: DefaultPointsPerLine,
	}
}

// WithDefaults fills zero fields from DefaultRules.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if r.Rows == 0 {
		r.Rows = d.Rows
	}
	if r.Columns == 0 {
		r.Columns = d.Columns
	}
	if r.HandSize == 0 {
		r.HandSize = d.HandSize
	}
	if r.PointsPerLine == 0 {
		r.PointsPerLine = d.PointsPerLine
	}
	return r
}

// Validate checks the rules are playable.
func (r Rules) Validate() error {
	if r.Rows < 3 || r.Rows > maxBoardEdge || r.Columns < 3 || r.Columns > maxBoardEdge {
		return fmt.Errorf("%w: board must be between 3 and %d cells on each side, got %dx%d", ErrInvalidRules, maxBoardEdge, r.Rows, r.Columns)
	}
	if r.HandSize < 1 || r.HandSize > maxHandSize {
		return fmt.Errorf("%w: hand size must be between 1 and %d, got %d", ErrInvalidRules, maxHandSize, r.HandSize)
	}
	if r.PointsPerLine < 0 {
		return fmt.Errorf("%w: points per line cannot be negative", ErrInvalidRules)
	}
	return nil
}
