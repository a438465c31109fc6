package service

import (
	"errors"

	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/avg-cs-student/jcblocks/internal/logging"
)

// HandleIdleGame abandons a game nobody has played for longer than the idle
// timeout. g is the snapshot the scanner found; the game is re-read first and
// left alone if it ended or saw activity since that snapshot. A move racing
// the abandon wins.
func HandleIdleGame(repo GameRepo, g *game.Game) error {
	if !g.IsActive() {
		return nil
	}
	cur, err := repo.GetGameByCode(g.Code)
	if err != nil || cur == nil {
		return ErrGameNotFound
	}
	if !cur.IsActive() || cur.LastActivity.After(g.LastActivity) {
		return nil
	}
	logging.Info("abandoning idle game", logging.Fields{
		constants.LogFieldGameCode: cur.Code,
		constants.LogFieldPlayer:   cur.PlayerName,
		constants.LogFieldMoves:    cur.Moves,
	})
	err = finish(repo, cur, game.StatusAbandoned, constants.MsgGameAbandoned)
	if errors.Is(err, game.ErrStaleGame) {
		logging.Debug("idle game changed before abandon", logging.Fields{constants.LogFieldGameCode: cur.Code})
		return nil
	}
	if err != nil {
		return err
	}
	*g = *cur
	return nil
}
