package service

import (
	"errors"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/game"
)

// GameRepo is the minimal repository interface required by the game use
// cases. Using a small interface simplifies testing. UpdateGame must reject
// a write made from an outdated copy with game.ErrStaleGame.
type GameRepo interface {
	CreateGame(g *game.Game) error
	GetGameByCode(code string) (*game.Game, error)
	UpdateGame(g *game.Game) error
	RecordFinishedGame(g *game.Game) error
}

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameFinished      = errors.New("game is already finished")
	ErrInvalidToken      = errors.New("player token does not match game")
	ErrInvalidPlayerName = errors.New("invalid player name")
	ErrNoMovesAvailable  = errors.New("no block in the hand fits")
)

// now is replaced in tests.
var now = time.Now
