package game

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/block"
	"gorm.io/gorm"
)

// Game status values
const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
	StatusResigned   = "resigned"
	StatusAbandoned  = "abandoned"
)

// ErrStaleGame is returned when a game row changed since it was read.
var ErrStaleGame = errors.New("game was changed by another request")

// Game is a persisted single-player session. The board and hand are stored
// in compact encoded form and rebuilt into an engine.Game for every move.
type Game struct {
	gorm.Model
	Code       string `json:"code" gorm:"size:8;uniqueIndex"`
	PlayerName string `json:"player_name" gorm:"size:24;index"`
	// PlayerToken authorises moves. It is returned once, when the game is
	// created, and never serialised afterwards.
	PlayerToken string `json:"-" gorm:"size:36"`
	Status      string `json:"status" gorm:"index"`

	Rows          int `json:"rows"`
	Columns       int `json:"columns"`
	HandSize      int `json:"hand_size"`
	PointsPerLine int `json:"points_per_line"`

	// Board is canvas.Encode output: one '.' or '#' per cell, bottom row first.
	Board string `json:"board"`
	// Hand is a JSON array of blocks with null for played slots.
	Hand string `json:"-" gorm:"type:text"`

	Score        int       `json:"score"`
	LinesCleared int       `json:"lines_cleared"`
	Moves        int       `json:"moves"`
	LastActivity time.Time `json:"last_activity" gorm:"index"`
	Message      string    `json:"message"`
	StatsCounted bool      `json:"-"`
	// Revision is bumped on every update; writes against an older revision
	// are rejected with ErrStaleGame.
	Revision int `json:"-"`
}

// TableName stores games as block_games.
func (Game) TableName() string { return "block_games" }

// IsActive reports whether moves may still be played.
func (g *Game) IsActive() bool { return g.Status == StatusInProgress }

// HandBlocks decodes the stored hand.
func (g *Game) HandBlocks() ([]*block.Block, error) {
	if g.Hand == "" {
		return nil, nil
	}
	var hand []*block.Block
	if err := json.Unmarshal([]byte(g.Hand), &hand); err != nil {
		return nil, err
	}
	return hand, nil
}

// SetHandBlocks encodes hand into the Hand column.
func (g *Game) SetHandBlocks(hand []*block.Block) error {
	b, err := json.Marshal(hand)
	if err != nil {
		return err
	}
	g.Hand = string(b)
	return nil
}

// Player stores aggregate stats per player name.
type Player struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:24;uniqueIndex"`
	GamesPlayed int    `json:"games_played"`
	BestScore   int    `json:"best_score"`
	TotalScore  int    `json:"total_score"`
	TotalLines  int    `json:"total_lines"`
}

// Unify global players table name as "player_profiles"
func (Player) TableName() string { return "player_profiles" }
