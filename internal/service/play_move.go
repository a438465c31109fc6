package service

import (
	"fmt"
	"math/rand"

	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/engine"
	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/avg-cs-student/jcblocks/internal/logging"
)

// MoveRequest selects a hand slot, the number of quarter turns to apply and
// the anchor cell on the board.
type MoveRequest = engine.Move

// PlayMove places a block from the player's hand and persists the result.
// When nothing in the refreshed hand fits, the game is finished and the
// player's stats are recorded.
func PlayMove(repo GameRepo, code, token string, req MoveRequest, rng *rand.Rand) (*game.Game, engine.MoveResult, error) {
	g, err := load(repo, code, token)
	if err != nil {
		return nil, engine.MoveResult{}, err
	}
	if !g.IsActive() {
		return nil, engine.MoveResult{}, ErrGameFinished
	}

	eg, err := Restore(g, rng)
	if err != nil {
		return nil, engine.MoveResult{}, err
	}
	res, err := eg.Play(req)
	if err != nil {
		return nil, engine.MoveResult{}, err
	}
	if err := store(g, eg); err != nil {
		return nil, engine.MoveResult{}, err
	}

	g.LastActivity = now()
	if res.Cleared.Count() > 0 {
		g.Message = fmt.Sprintf(constants.MsgLinesCleared, res.Cleared.Count(), res.Points)
	} else {
		g.Message = constants.MsgBlockPlaced
	}

	logging.Debug("move played", logging.Fields{
		constants.LogFieldGameCode: g.Code,
		constants.LogFieldSlot:     req.Slot,
		constants.LogFieldLines:    res.Cleared.Count(),
		constants.LogFieldMoves:    g.Moves,
	})

	if res.Over {
		if err := finish(repo, g, game.StatusFinished, constants.MsgGameOver); err != nil {
			return nil, res, err
		}
		return g, res, nil
	}
	if err := repo.UpdateGame(g); err != nil {
		return nil, res, err
	}
	return g, res, nil
}
