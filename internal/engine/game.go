package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/avg-cs-student/jcblocks/internal/block"
	"github.com/avg-cs-student/jcblocks/internal/canvas"
)

var (
	ErrNoBlocksFit = errors.New("no more blocks fit on the canvas")
	ErrGameOver    = errors.New("game is over")
	ErrInvalidSlot = errors.New("hand slot out of range")
	ErrSlotEmpty   = errors.New("hand slot already played")
)

// Move selects a block from the hand, how to turn it, and where to put it.
type Move struct {
	Slot     int `json:"slot"`
	Rotation int `json:"rotation"`
	Row      int `json:"row"`
	Column   int `json:"column"`
}

// MoveResult describes what a placement did to the game.
type MoveResult struct {
	Placement canvas.Placement `json:"-"`
	Cleared   canvas.LineClear `json:"cleared"`
	Points    int              `json:"points"`
	Refilled  bool             `json:"refilled"`
	Over      bool             `json:"over"`
}

// Game holds the high-level state of a single-player session: the board, the
// blocks on offer and the running score.
type Game struct {
	Rules        Rules
	Canvas       *canvas.Canvas
	Score        int
	LinesCleared int
	Moves        int
	// Hand holds the blocks on offer; a nil entry has already been played.
	Hand []*block.Block
	Over bool

	rng *rand.Rand
}

// New starts a game on an empty board and deals the first hand.
func New(rules Rules, rng *rand.Rand) (*Game, error) {
	rules = rules.WithDefaults()
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		Rules:  rules,
		Canvas: canvas.New(rules.Rows, rules.Columns),
		rng:    rng,
	}
	g.deal()
	g.Over = !g.anyHandBlockFits()
	return g, nil
}

// Restore rebuilds a game from persisted state.
func Restore(rules Rules, c *canvas.Canvas, hand []*block.Block, score, lines, moves int, rng *rand.Rand) (*Game, error) {
	rules = rules.WithDefaults()
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if c.Rows != rules.Rows || c.Columns != rules.Columns {
		return nil, fmt.Errorf("%w: canvas is %dx%d but rules say %dx%d", ErrInvalidRules, c.Rows, c.Columns, rules.Rows, rules.Columns)
	}
	g := &Game{
		Rules:        rules,
		Canvas:       c,
		Score:        score,
		LinesCleared: lines,
		Moves:        moves,
		Hand:         hand,
		rng:          rng,
	}
	if g.Remaining() == 0 {
		g.deal()
	}
	g.Over = !g.anyHandBlockFits()
	return g, nil
}

// Reset clears the board and score and deals a fresh hand.
func (g *Game) Reset() *Game {
	g.Canvas.ClearAll()
	g.Score = 0
	g.LinesCleared = 0
	g.Moves = 0
	g.deal()
	g.Over = !g.anyHandBlockFits()
	return g
}

// GenerateBlocks picks n blocks that are guaranteed to fit together in the
// free area of the board. Each block is placed on a shadow copy of the canvas
// so later picks account for the space taken by earlier ones.
func (g *Game) GenerateBlocks(n int) ([]block.Block, error) {
	shadow := g.Canvas.Clone()
	blocks := make([]block.Block, 0, n)
	for i := 0; i < n; i++ {
		b, ok := g.generateBlock(shadow)
		if !ok {
			return nil, ErrNoBlocksFit
		}
		blocks = append(blocks, b)
	}

	for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	}
	return blocks, nil
}

// generateBlock shuffles the catalogue and returns the first block that fits
// the shadow canvas in some orientation, reserving its space.
func (g *Game) generateBlock(shadow *canvas.Canvas) (block.Block, bool) {
	all := block.Catalogue()
	g.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	for _, b := range all {
		for turn := 0; turn < 4; turn++ {
			if p, ok := shadow.CanFit(b); ok {
				shadow.Add(p)
				return b, true
			}
			b.RotateLeft()
		}
	}
	return block.Block{}, false
}

// PlaceBlock puts b on the board at (row, column), clears completed lines and
// updates the score.
func (g *Game) PlaceBlock(b block.Block, row, column int) (MoveResult, error) {
	p, err := g.Canvas.TryPlace(b, row, column)
	if err != nil {
		return MoveResult{}, err
	}

	g.Canvas.Add(p)
	cleared := g.Canvas.ClearCompletedLines()
	points := cleared.Count() * g.Rules.PointsPerLine
	g.Score += points
	g.LinesCleared += cleared.Count()
	g.Moves++

	return MoveResult{Placement: p, Cleared: cleared, Points: points}, nil
}

// Play places a block from the hand. The hand is re-dealt once every block in
// it has been played, and the game ends when nothing left in the hand fits.
func (g *Game) Play(m Move) (MoveResult, error) {
	if g.Over {
		return MoveResult{}, ErrGameOver
	}
	if m.Slot < 0 || m.Slot >= len(g.Hand) {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidSlot, m.Slot)
	}
	if g.Hand[m.Slot] == nil {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrSlotEmpty, m.Slot)
	}

	b := g.Hand[m.Slot].Rotated(m.Rotation)
	res, err := g.PlaceBlock(b, m.Row, m.Column)
	if err != nil {
		return MoveResult{}, err
	}
	g.Hand[m.Slot] = nil

	if g.Remaining() == 0 {
		g.deal()
		res.Refilled = true
	}
	g.Over = !g.anyHandBlockFits()
	res.Over = g.Over
	return res, nil
}

// Remaining is the number of unplayed blocks in the hand.
func (g *Game) Remaining() int {
	n := 0
	for _, b := range g.Hand {
		if b != nil {
			n++
		}
	}
	return n
}

// CanPlay reports whether the hand block in slot fits anywhere in any
// orientation.
func (g *Game) CanPlay(slot int) bool {
	if slot < 0 || slot >= len(g.Hand) || g.Hand[slot] == nil {
		return false
	}
	_, ok := g.Canvas.CanFitAnyRotation(*g.Hand[slot])
	return ok
}

func (g *Game) anyHandBlockFits() bool {
	for i := range g.Hand {
		if g.CanPlay(i) {
			return true
		}
	}
	return false
}

// deal replaces the hand. When no set of blocks fits together the hand is
// filled from the catalogue at random, which lets the game end on its own.
func (g *Game) deal() {
	hand := make([]*block.Block, g.Rules.HandSize)
	blocks, err := g.GenerateBlocks(g.Rules.HandSize)
	if err != nil {
		all := block.Catalogue()
		for i := range hand {
			b := all[g.rng.Intn(len(all))]
			hand[i] = &b
		}
		g.Hand = hand
		return
	}
	for i := range blocks {
		b := blocks[i]
		hand[i] = &b
	}
	g.Hand = hand
}

func (g *Game) String() string {
	return g.Canvas.String()
}
