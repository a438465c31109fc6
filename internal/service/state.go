package service

import (
	"crypto/subtle"
	"fmt"
	"math/rand"

	"github.com/avg-cs-student/jcblocks/internal/canvas"
	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/engine"
	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/avg-cs-student/jcblocks/internal/keys"
	"github.com/avg-cs-student/jcblocks/internal/logging"
)

// RulesOf returns the rules a stored game was created with.
func RulesOf(g *game.Game) engine.Rules {
	return engine.Rules{
		Rows:          g.Rows,
		Columns:       g.Columns,
		HandSize:      g.HandSize,
		PointsPerLine: g.PointsPerLine,
	}
}

// Restore rebuilds the engine state of a stored game.
func Restore(g *game.Game, rng *rand.Rand) (*engine.Game, error) {
	c, err := canvas.Decode(g.Rows, g.Columns, g.Board)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", g.Code, err)
	}
	hand, err := g.HandBlocks()
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", g.Code, err)
	}
	return engine.Restore(RulesOf(g), c, hand, g.Score, g.LinesCleared, g.Moves, rng)
}

// store copies the engine state back onto the persisted model.
func store(g *game.Game, eg *engine.Game) error {
	g.Rows = eg.Rules.Rows
	g.Columns = eg.Rules.Columns
	g.HandSize = eg.Rules.HandSize
	g.PointsPerLine = eg.Rules.PointsPerLine
	g.Board = eg.Canvas.Encode()
	g.Score = eg.Score
	g.LinesCleared = eg.LinesCleared
	g.Moves = eg.Moves
	return g.SetHandBlocks(eg.Hand)
}

// load fetches a game and checks the caller holds its token.
func load(repo GameRepo, code, token string) (*game.Game, error) {
	code = keys.NormalizeGameCode(code)
	g, err := repo.GetGameByCode(code)
	if err != nil || g == nil {
		return nil, ErrGameNotFound
	}
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(g.PlayerToken)) != 1 {
		return nil, ErrInvalidToken
	}
	return g, nil
}

// finish ends a game with the given status and folds its score into the
// player's stats. Stats are recorded at most once per game.
func finish(repo GameRepo, g *game.Game, status, message string) error {
	g.Status = status
	g.Message = message
	g.LastActivity = now()
	if err := repo.UpdateGame(g); err != nil {
		return err
	}
	if g.StatsCounted {
		return nil
	}
	if err := repo.RecordFinishedGame(g); err != nil {
		logging.Error("failed to record finished game", err, logging.Fields{constants.LogFieldGameCode: g.Code, constants.LogFieldPlayer: g.PlayerName})
		return err
	}
	logging.Info("game finished", logging.Fields{constants.LogFieldGameCode: g.Code, constants.LogFieldPlayer: g.PlayerName, constants.LogFieldStatus: status, constants.LogFieldScore: g.Score})
	return nil
}
