package storage

import (
	"errors"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/game"
)

// ErrNotFound is returned when a game or player does not exist.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	CreateGame(g *game.Game) error
	GetGameByCode(code string) (*game.Game, error)
	UpdateGame(g *game.Game) error
	// ListRecentGames returns the most recently active games, newest first.
	ListRecentGames(limit int) ([]game.Game, error)
	// FindIdleGames returns in-progress games whose last activity is at or
	// before the provided time. The caller decides how to resolve them.
	FindIdleGames(before time.Time) ([]game.Game, error)
	// RecordFinishedGame folds a finished game's score into its player's
	// stats and marks the game StatsCounted, in one transaction. Calling it
	// again for the same game is a no-op.
	RecordFinishedGame(g *game.Game) error
	GetPlayerByName(name string) (*game.Player, error)
	// Leaderboard
	GetTopPlayers(limit int) ([]game.Player, error)
}
