package service

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/engine"
	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/avg-cs-student/jcblocks/internal/keys"
	"github.com/avg-cs-student/jcblocks/internal/logging"
	"github.com/google/uuid"
)

var playerNameRegex = regexp.MustCompile(`^[A-Za-z0-9 ._-]{3,24}$`)

const maxCodeAttempts = 5

// NormalizePlayerName trims surrounding space and validates the result.
func NormalizePlayerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if !playerNameRegex.MatchString(name) {
		return "", ErrInvalidPlayerName
	}
	return name, nil
}

// StartGame creates and persists a new game for playerName. The returned
// token must accompany every later move; it is not stored anywhere the API
// exposes.
func StartGame(repo GameRepo, playerName string, rules engine.Rules, rng *rand.Rand) (*game.Game, string, error) {
	name, err := NormalizePlayerName(playerName)
	if err != nil {
		return nil, "", err
	}

	eg, err := engine.New(rules, rng)
	if err != nil {
		return nil, "", err
	}

	code := keys.NewGameCode()
	for i := 1; i < maxCodeAttempts; i++ {
		if existing, err := repo.GetGameByCode(code); err != nil || existing == nil {
			break
		}
		code = keys.NewGameCode()
	}

	token := uuid.NewString()
	g := &game.Game{
		Code:         code,
		PlayerName:   name,
		PlayerToken:  token,
		Status:       game.StatusInProgress,
		LastActivity: now(),
		Message:      constants.MsgGameStarted,
	}
	if err := store(g, eg); err != nil {
		return nil, "", err
	}
	if eg.Over {
		g.Status = game.StatusFinished
		g.Message = constants.MsgGameOver
	}

	if err := repo.CreateGame(g); err != nil {
		return nil, "", err
	}
	logging.Info("game created", logging.Fields{constants.LogFieldGameCode: g.Code, constants.LogFieldPlayer: g.PlayerName})
	return g, token, nil
}
