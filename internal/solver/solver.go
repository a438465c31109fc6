package solver

import (
	"github.com/avg-cs-student/jcblocks/internal/engine"
)

// Suggestion is a legal move together with what it is expected to achieve.
type Suggestion struct {
	Move      engine.Move `json:"move"`
	Lines     int         `json:"lines"`
	Points    int         `json:"points"`
	Remaining int         `json:"remaining_cells"`
}

// better orders candidates: more lines first, then an emptier board, then the
// lowest slot, rotation, row and column so the result is deterministic.
func (s Suggestion) better(o Suggestion) bool {
	if s.Lines != o.Lines {
		return s.Lines > o.Lines
	}
	if s.Remaining != o.Remaining {
		return s.Remaining < o.Remaining
	}
	a, b := s.Move, o.Move
	if a.Slot != b.Slot {
		return a.Slot < b.Slot
	}
	if a.Rotation != b.Rotation {
		return a.Rotation < b.Rotation
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}

// Hint searches every hand block, orientation and anchor for the move that
// clears the most lines. It returns false when no block in the hand fits.
func Hint(g *engine.Game) (Suggestion, bool) {
	var best Suggestion
	found := false

	for slot, held := range g.Hand {
		if held == nil {
			continue
		}
		seen := make(map[string]struct{}, 4)
		for rot := 0; rot < 4; rot++ {
			b := held.Rotated(rot)
			if _, dup := seen[b.Key()]; dup {
				continue
			}
			seen[b.Key()] = struct{}{}

			for row := 0; row < g.Canvas.Rows; row++ {
				for col := 0; col < g.Canvas.Columns; col++ {
					if !g.Canvas.CanFitAt(b, row, col) {
						continue
					}
					shadow := g.Canvas.Clone()
					p, err := shadow.TryPlace(b, row, col)
					if err != nil {
						continue
					}
					shadow.Add(p)
					lines := shadow.ClearCompletedLines().Count()
					cand := Suggestion{
						Move:      engine.Move{Slot: slot, Rotation: rot, Row: row, Column: col},
						Lines:     lines,
						Points:    lines * g.Rules.PointsPerLine,
						Remaining: shadow.OccupiedCount(),
					}
					if !found || cand.better(best) {
						best = cand
						found = true
					}
				}
			}
		}
	}
	return best, found
}
