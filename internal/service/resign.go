package service

import (
	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/game"
)

// Resign ends an active game at the player's request. The score reached so
// far still counts towards the player's stats.
func Resign(repo GameRepo, code, token string) (*game.Game, error) {
	g, err := load(repo, code, token)
	if err != nil {
		return nil, err
	}
	if !g.IsActive() {
		return nil, ErrGameFinished
	}
	if err := finish(repo, g, game.StatusResigned, constants.MsgGameResigned); err != nil {
		return nil, err
	}
	return g, nil
}
